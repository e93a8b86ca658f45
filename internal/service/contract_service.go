package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"contractiq/internal/config"
	"contractiq/internal/domain"
	"contractiq/internal/port"
)

// sniffedTypes maps http.DetectContentType results (without charset suffix)
// to acceptance. DOCX files sniff as zip archives.
var sniffedTypes = map[string]bool{
	"application/pdf": true,
	"application/zip": true,
	"text/plain":      true,
}

// ContractUploadInput is the DTO for contract upload requests.
type ContractUploadInput struct {
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// ContractService defines the contract file management contract.
type ContractService interface {
	Upload(ctx context.Context, input ContractUploadInput) (*domain.ContractFile, error)
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.ContractFile, error)
	List(ctx context.Context, offset, limit int) ([]domain.ContractFile, int, error)
	ListByUploader(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ContractFile, int, error)
	GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID, fileID uuid.UUID) error
}

type contractService struct {
	fileRepo     port.ContractFileRepository
	analysisRepo port.AnalysisRepository
	chatRepo     port.ChatRepository
	auditRepo    port.AuditRepository
	storage      port.ObjectStorage
	cfg          *config.S3Config
}

// NewContractService creates a new ContractService implementation.
func NewContractService(
	fileRepo port.ContractFileRepository,
	analysisRepo port.AnalysisRepository,
	chatRepo port.ChatRepository,
	auditRepo port.AuditRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ContractService {
	return &contractService{
		fileRepo:     fileRepo,
		analysisRepo: analysisRepo,
		chatRepo:     chatRepo,
		auditRepo:    auditRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *contractService) Upload(ctx context.Context, input ContractUploadInput) (*domain.ContractFile, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte content type detection on the first 512 bytes
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detected := http.DetectContentType(buf[:n])
	if idx := strings.Index(detected, ";"); idx >= 0 {
		detected = detected[:idx]
	}
	if !sniffedTypes[detected] {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	fileID := uuid.New()
	s3Key := fmt.Sprintf("contracts/%s/%s", fileID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	meta := &domain.ContractFile{
		ID:           fileID,
		UploadedBy:   input.UploadedBy,
		FileName:     fileID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.FileStatusPending,
	}

	log.Printf("contractService.Upload: uploading %s (%s, %d bytes) by user %s",
		input.Header.Filename, contentType, input.Header.Size, input.UploadedBy)

	if err := s.fileRepo.Create(ctx, meta); err != nil {
		log.Printf("contractService.Upload: failed to create file metadata: %v", err)
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("contractService.Upload: S3 upload failed for file %s: %v", meta.ID, err)
		_ = s.fileRepo.UpdateStatus(ctx, meta.ID, domain.FileStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.fileRepo.UpdateStatus(ctx, meta.ID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating file status: %w", err)
	}
	meta.Status = domain.FileStatusUploaded

	s.recordAudit(ctx, meta.ID, input.UploadedBy, domain.AuditContractUploaded, meta.OriginalName)

	return meta, nil
}

func (s *contractService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.ContractFile, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

func (s *contractService) List(ctx context.Context, offset, limit int) ([]domain.ContractFile, int, error) {
	return s.fileRepo.List(ctx, offset, limit)
}

func (s *contractService) ListByUploader(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ContractFile, int, error) {
	return s.fileRepo.ListByUploader(ctx, userID, offset, limit)
}

func (s *contractService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	meta, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Bucket, meta.S3Key, s.cfg.PresignExpiry)
}

func (s *contractService) Delete(ctx context.Context, userID, fileID uuid.UUID) error {
	log.Printf("contractService.Delete: deleting contract %s", fileID)

	meta, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, meta.S3Bucket, meta.S3Key); err != nil {
		log.Printf("contractService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	if err := s.analysisRepo.DeleteByContractID(ctx, fileID); err != nil {
		return err
	}
	if err := s.chatRepo.DeleteByContractID(ctx, fileID); err != nil {
		return err
	}

	s.recordAudit(ctx, fileID, userID, domain.AuditContractDeleted, meta.OriginalName)

	return s.fileRepo.Delete(ctx, fileID)
}

func (s *contractService) recordAudit(ctx context.Context, contractID, userID uuid.UUID, action domain.AuditAction, detail string) {
	event := &domain.AuditEvent{
		ContractID: contractID,
		UserID:     userID,
		Action:     action,
		Detail:     detail,
	}
	if err := s.auditRepo.Record(ctx, event); err != nil {
		log.Printf("contractService: failed to record audit event %s: %v", action, err)
	}
}
