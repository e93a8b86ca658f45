package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"contractiq/internal/domain"
	"contractiq/internal/port"
)

type contractFileRepo struct {
	db *sqlx.DB
}

// NewContractFileRepo creates a new PostgreSQL-backed ContractFileRepository.
func NewContractFileRepo(db *sqlx.DB) port.ContractFileRepository {
	return &contractFileRepo{db: db}
}

func (r *contractFileRepo) Create(ctx context.Context, meta *domain.ContractFile) error {
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query := `INSERT INTO contract_files (id, uploaded_by, file_name, original_name, file_type,
		file_size, s3_bucket, s3_key, content_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.UploadedBy, meta.FileName, meta.OriginalName, meta.FileType,
		meta.FileSize, meta.S3Bucket, meta.S3Key, meta.ContentType, meta.Status,
		meta.CreatedAt, meta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("contractFileRepo.Create: %w", err)
	}
	return nil
}

func (r *contractFileRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.ContractFile, error) {
	var meta domain.ContractFile
	err := r.db.GetContext(ctx, &meta, "SELECT * FROM contract_files WHERE id = $1", fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("contractFileRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *contractFileRepo) List(ctx context.Context, offset, limit int) ([]domain.ContractFile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM contract_files")
	if err != nil {
		return nil, 0, fmt.Errorf("contractFileRepo.List count: %w", err)
	}

	var files []domain.ContractFile
	err = r.db.SelectContext(ctx, &files,
		"SELECT * FROM contract_files ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("contractFileRepo.List: %w", err)
	}
	return files, total, nil
}

func (r *contractFileRepo) ListByUploader(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ContractFile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM contract_files WHERE uploaded_by = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("contractFileRepo.ListByUploader count: %w", err)
	}

	var files []domain.ContractFile
	err = r.db.SelectContext(ctx, &files,
		"SELECT * FROM contract_files WHERE uploaded_by = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("contractFileRepo.ListByUploader: %w", err)
	}
	return files, total, nil
}

func (r *contractFileRepo) UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contract_files SET status = $1, updated_at = NOW() WHERE id = $2", status, fileID)
	if err != nil {
		return fmt.Errorf("contractFileRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contractFileRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contract_files WHERE id = $1", fileID)
	if err != nil {
		return fmt.Errorf("contractFileRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
