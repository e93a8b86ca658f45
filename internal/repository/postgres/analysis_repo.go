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

type analysisRepo struct {
	db *sqlx.DB
}

// NewAnalysisRepo creates a new PostgreSQL-backed AnalysisRepository.
func NewAnalysisRepo(db *sqlx.DB) port.AnalysisRepository {
	return &analysisRepo{db: db}
}

// Replace deletes any existing analysis for the contract and inserts the new
// one in a single transaction, so a contract never holds two analyses.
func (r *analysisRepo) Replace(ctx context.Context, analysis *domain.Analysis) error {
	analysis.ID = uuid.New()
	analysis.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("analysisRepo.Replace begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM analyses WHERE contract_id = $1", analysis.ContractID); err != nil {
		return fmt.Errorf("analysisRepo.Replace delete: %w", err)
	}

	query := `INSERT INTO analyses (id, contract_id, status, contract_type, risk_level, risk_score,
		result, extracted_fields, entities, model_used, analysis_error, created_by, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	if _, err := tx.ExecContext(ctx, query,
		analysis.ID, analysis.ContractID, analysis.Status, analysis.ContractType,
		analysis.RiskLevel, analysis.RiskScore, analysis.Result, analysis.ExtractedFields,
		analysis.Entities, analysis.ModelUsed, analysis.AnalysisError, analysis.CreatedBy,
		analysis.CreatedAt, analysis.CompletedAt); err != nil {
		return fmt.Errorf("analysisRepo.Replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("analysisRepo.Replace commit: %w", err)
	}
	return nil
}

func (r *analysisRepo) GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.Analysis, error) {
	var analysis domain.Analysis
	err := r.db.GetContext(ctx, &analysis,
		"SELECT * FROM analyses WHERE contract_id = $1", contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("analysisRepo.GetByContractID: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepo) Update(ctx context.Context, analysis *domain.Analysis) error {
	query := `UPDATE analyses SET status = $1, contract_type = $2, risk_level = $3, risk_score = $4,
		result = $5, extracted_fields = $6, entities = $7, model_used = $8, analysis_error = $9,
		completed_at = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		analysis.Status, analysis.ContractType, analysis.RiskLevel, analysis.RiskScore,
		analysis.Result, analysis.ExtractedFields, analysis.Entities, analysis.ModelUsed,
		analysis.AnalysisError, analysis.CompletedAt, analysis.ID)
	if err != nil {
		return fmt.Errorf("analysisRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAnalysisNotFound
	}
	return nil
}

func (r *analysisRepo) DeleteByContractID(ctx context.Context, contractID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM analyses WHERE contract_id = $1", contractID)
	if err != nil {
		return fmt.Errorf("analysisRepo.DeleteByContractID: %w", err)
	}
	return nil
}
