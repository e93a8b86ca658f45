package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"contractiq/internal/domain"
)

// MockContractFileRepo is a mock implementation of port.ContractFileRepository.
type MockContractFileRepo struct {
	mock.Mock
}

func (m *MockContractFileRepo) Create(ctx context.Context, meta *domain.ContractFile) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockContractFileRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.ContractFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractFile), args.Error(1)
}

func (m *MockContractFileRepo) List(ctx context.Context, offset, limit int) ([]domain.ContractFile, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ContractFile), args.Int(1), args.Error(2)
}

func (m *MockContractFileRepo) ListByUploader(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ContractFile, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ContractFile), args.Int(1), args.Error(2)
}

func (m *MockContractFileRepo) UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error {
	args := m.Called(ctx, fileID, status)
	return args.Error(0)
}

func (m *MockContractFileRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
