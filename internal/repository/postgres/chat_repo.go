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

type chatRepo struct {
	db *sqlx.DB
}

// NewChatRepo creates a new PostgreSQL-backed ChatRepository.
func NewChatRepo(db *sqlx.DB) port.ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) Append(ctx context.Context, msg *domain.ChatMessage) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO chat_messages (id, contract_id, user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.ContractID, msg.UserID, msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("chatRepo.Append: %w", err)
	}
	return nil
}

func (r *chatRepo) ListByContractID(ctx context.Context, contractID uuid.UUID) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	err := r.db.SelectContext(ctx, &msgs,
		"SELECT * FROM chat_messages WHERE contract_id = $1 ORDER BY created_at ASC", contractID)
	if err != nil {
		return nil, fmt.Errorf("chatRepo.ListByContractID: %w", err)
	}
	return msgs, nil
}

func (r *chatRepo) DeleteByContractID(ctx context.Context, contractID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM chat_messages WHERE contract_id = $1", contractID)
	if err != nil {
		return fmt.Errorf("chatRepo.DeleteByContractID: %w", err)
	}
	return nil
}
