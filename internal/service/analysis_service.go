package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"contractiq/internal/assessment"
	"contractiq/internal/contract"
	"contractiq/internal/domain"
	"contractiq/internal/extract"
	"contractiq/internal/nlp"
	"contractiq/internal/port"
	"contractiq/internal/risk"
)

// AnalysisService runs the analysis pipeline for a contract: download,
// text extraction, entity spotting, LLM analysis, risk refinement, and
// template field extraction.
type AnalysisService interface {
	Analyze(ctx context.Context, contractID, userID uuid.UUID) (*domain.Analysis, error)
	GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.Analysis, error)
	ContractText(ctx context.Context, contractID uuid.UUID) (string, error)
}

type analysisService struct {
	fileRepo     port.ContractFileRepository
	analysisRepo port.AnalysisRepository
	chatRepo     port.ChatRepository
	auditRepo    port.AuditRepository
	userRepo     port.UserRepository
	storage      port.ObjectStorage
	analyzer     port.ContractAnalyzer
	email        port.EmailSender
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(
	fileRepo port.ContractFileRepository,
	analysisRepo port.AnalysisRepository,
	chatRepo port.ChatRepository,
	auditRepo port.AuditRepository,
	userRepo port.UserRepository,
	storage port.ObjectStorage,
	contractAnalyzer port.ContractAnalyzer,
	email port.EmailSender,
) AnalysisService {
	return &analysisService{
		fileRepo:     fileRepo,
		analysisRepo: analysisRepo,
		chatRepo:     chatRepo,
		auditRepo:    auditRepo,
		userRepo:     userRepo,
		storage:      storage,
		analyzer:     contractAnalyzer,
		email:        email,
	}
}

func (s *analysisService) Analyze(ctx context.Context, contractID, userID uuid.UUID) (*domain.Analysis, error) {
	meta, err := s.fileRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if meta.Status != domain.FileStatusUploaded {
		return nil, domain.ErrNotFound
	}

	s.recordAudit(ctx, contractID, userID, domain.AuditAnalysisStarted, meta.OriginalName)
	log.Printf("analysisService.Analyze: starting analysis of %s (%s)", meta.OriginalName, contractID)

	text, pre, err := s.prepare(ctx, meta)
	if err != nil {
		s.persistFailure(ctx, contractID, userID, err)
		return nil, err
	}

	out, err := s.analyzer.Analyze(ctx, port.AnalyzeInput{Text: text, Entities: pre.Entities})
	if err != nil {
		log.Printf("analysisService.Analyze: LLM analysis failed for %s: %v", contractID, err)
		s.persistFailure(ctx, contractID, userID, err)
		return nil, err
	}

	parsed, err := assessment.Decode(out.Result)
	if err != nil {
		s.persistFailure(ctx, contractID, userID, err)
		return nil, fmt.Errorf("decoding analysis result: %w", err)
	}
	risk.Refine(parsed, text)

	canonical := contract.Normalize(parsed.ContractType)
	fields := s.extractFields(ctx, text, canonical)

	result, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("marshaling refined result: %w", err)
	}
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshaling extracted fields: %w", err)
	}
	entitiesJSON, err := json.Marshal(pre.Entities)
	if err != nil {
		return nil, fmt.Errorf("marshaling entities: %w", err)
	}

	now := time.Now().UTC()
	analysis := &domain.Analysis{
		ContractID:      contractID,
		Status:          domain.AnalysisStatusCompleted,
		ContractType:    string(canonical),
		RiskLevel:       risk.LevelFromString(parsed.OverallRiskScore),
		RiskScore:       risk.ClampScore(int(parsed.NumericRiskScore)),
		Result:          result,
		ExtractedFields: fieldsJSON,
		Entities:        entitiesJSON,
		ModelUsed:       out.ModelUsed,
		CreatedBy:       userID,
		CompletedAt:     &now,
	}

	if err := s.analysisRepo.Replace(ctx, analysis); err != nil {
		return nil, err
	}

	// A fresh analysis invalidates the previous conversation
	if err := s.chatRepo.DeleteByContractID(ctx, contractID); err != nil {
		log.Printf("analysisService.Analyze: failed to clear chat history for %s: %v", contractID, err)
	}

	s.recordAudit(ctx, contractID, userID, domain.AuditAnalysisCompleted,
		fmt.Sprintf("%s risk, score %d", analysis.RiskLevel, analysis.RiskScore))
	s.notify(ctx, userID, meta.OriginalName, analysis)

	return analysis, nil
}

func (s *analysisService) GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.Analysis, error) {
	return s.analysisRepo.GetByContractID(ctx, contractID)
}

// ContractText downloads the stored file and extracts its plain text.
func (s *analysisService) ContractText(ctx context.Context, contractID uuid.UUID) (string, error) {
	meta, err := s.fileRepo.GetByID(ctx, contractID)
	if err != nil {
		return "", err
	}
	data, err := s.storage.Download(ctx, meta.S3Bucket, meta.S3Key)
	if err != nil {
		return "", fmt.Errorf("downloading contract %s: %w", contractID, err)
	}
	return extract.Text(meta.OriginalName, data)
}

func (s *analysisService) prepare(ctx context.Context, meta *domain.ContractFile) (string, nlp.Preprocessed, error) {
	data, err := s.storage.Download(ctx, meta.S3Bucket, meta.S3Key)
	if err != nil {
		return "", nlp.Preprocessed{}, fmt.Errorf("downloading contract %s: %w", meta.ID, err)
	}

	text, err := extract.Text(meta.OriginalName, data)
	if err != nil {
		return "", nlp.Preprocessed{}, err
	}

	return text, nlp.Preprocess(text), nil
}

// extractFields asks the LLM for template fields. A failed extraction falls
// back to a sentinel-filled set so template population still works.
func (s *analysisService) extractFields(ctx context.Context, text string, canonical contract.CanonicalType) contract.FieldSet {
	out, err := s.analyzer.ExtractFields(ctx, port.ExtractInput{
		Text:         text,
		ContractType: string(canonical),
	})
	if err != nil {
		log.Printf("analysisService.extractFields: extraction failed, using fallback: %v", err)
		fields := contract.EmptyFieldSet()
		fields["contract_type"] = string(canonical)
		return fields
	}
	return out.Fields
}

func (s *analysisService) persistFailure(ctx context.Context, contractID, userID uuid.UUID, cause error) {
	analysis := &domain.Analysis{
		ContractID:    contractID,
		Status:        domain.AnalysisStatusFailed,
		AnalysisError: cause.Error(),
		CreatedBy:     userID,
	}
	if err := s.analysisRepo.Replace(ctx, analysis); err != nil {
		log.Printf("analysisService: failed to persist failed analysis for %s: %v", contractID, err)
	}
	s.recordAudit(ctx, contractID, userID, domain.AuditAnalysisFailed, cause.Error())
}

func (s *analysisService) notify(ctx context.Context, userID uuid.UUID, contractName string, analysis *domain.Analysis) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("analysisService.notify: looking up user %s: %v", userID, err)
		}
		return
	}
	err = s.email.SendAnalysisReady(ctx, user.Email, user.FullName, port.AnalysisNotification{
		ContractName: contractName,
		ContractType: analysis.ContractType,
		RiskLevel:    string(analysis.RiskLevel),
		RiskScore:    analysis.RiskScore,
	})
	if err != nil {
		log.Printf("analysisService.notify: sending notification to %s: %v", user.Email, err)
	}
}

func (s *analysisService) recordAudit(ctx context.Context, contractID, userID uuid.UUID, action domain.AuditAction, detail string) {
	event := &domain.AuditEvent{
		ContractID: contractID,
		UserID:     userID,
		Action:     action,
		Detail:     detail,
	}
	if err := s.auditRepo.Record(ctx, event); err != nil {
		log.Printf("analysisService: failed to record audit event %s: %v", action, err)
	}
}
