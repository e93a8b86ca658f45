package port

import (
	"context"

	"github.com/google/uuid"

	"contractiq/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ContractFileRepository defines the contract for uploaded file metadata.
type ContractFileRepository interface {
	Create(ctx context.Context, meta *domain.ContractFile) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.ContractFile, error)
	List(ctx context.Context, offset, limit int) ([]domain.ContractFile, int, error)
	ListByUploader(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ContractFile, int, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}

// AnalysisRepository defines the contract for analysis persistence. A
// contract holds at most one analysis row; Replace swaps it atomically.
type AnalysisRepository interface {
	Replace(ctx context.Context, analysis *domain.Analysis) error
	GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.Analysis, error)
	Update(ctx context.Context, analysis *domain.Analysis) error
	DeleteByContractID(ctx context.Context, contractID uuid.UUID) error
}

// ChatRepository defines the contract for per-contract chat history.
type ChatRepository interface {
	Append(ctx context.Context, msg *domain.ChatMessage) error
	ListByContractID(ctx context.Context, contractID uuid.UUID) ([]domain.ChatMessage, error)
	DeleteByContractID(ctx context.Context, contractID uuid.UUID) error
}

// AuditRepository defines the contract for the audit trail.
type AuditRepository interface {
	Record(ctx context.Context, event *domain.AuditEvent) error
	ListByContractID(ctx context.Context, contractID uuid.UUID, offset, limit int) ([]domain.AuditEvent, int, error)
}
