package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"contractiq/internal/domain"
)

// MockChatRepo is a mock implementation of port.ChatRepository.
type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) Append(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepo) ListByContractID(ctx context.Context, contractID uuid.UUID) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepo) DeleteByContractID(ctx context.Context, contractID uuid.UUID) error {
	args := m.Called(ctx, contractID)
	return args.Error(0)
}
