package service

import (
	"context"

	"github.com/google/uuid"

	"contractiq/internal/domain"
	"contractiq/internal/port"
)

// AuditService exposes the contract audit trail.
type AuditService interface {
	ListByContractID(ctx context.Context, contractID uuid.UUID, offset, limit int) ([]domain.AuditEvent, int, error)
}

type auditService struct {
	auditRepo port.AuditRepository
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(auditRepo port.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) ListByContractID(ctx context.Context, contractID uuid.UUID, offset, limit int) ([]domain.AuditEvent, int, error) {
	return s.auditRepo.ListByContractID(ctx, contractID, offset, limit)
}
