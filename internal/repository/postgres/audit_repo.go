package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"contractiq/internal/domain"
	"contractiq/internal/port"
)

type auditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new PostgreSQL-backed AuditRepository.
func NewAuditRepo(db *sqlx.DB) port.AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Record(ctx context.Context, event *domain.AuditEvent) error {
	event.ID = uuid.New()
	event.CreatedAt = time.Now().UTC()

	query := `INSERT INTO audit_events (id, contract_id, user_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.ContractID, event.UserID, event.Action, event.Detail, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("auditRepo.Record: %w", err)
	}
	return nil
}

func (r *auditRepo) ListByContractID(ctx context.Context, contractID uuid.UUID, offset, limit int) ([]domain.AuditEvent, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM audit_events WHERE contract_id = $1", contractID)
	if err != nil {
		return nil, 0, fmt.Errorf("auditRepo.ListByContractID count: %w", err)
	}

	var events []domain.AuditEvent
	err = r.db.SelectContext(ctx, &events,
		"SELECT * FROM audit_events WHERE contract_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		contractID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("auditRepo.ListByContractID: %w", err)
	}
	return events, total, nil
}
