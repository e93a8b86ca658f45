package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"contractiq/internal/contract"
)

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) ListTemplates() []contract.TemplateName {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]contract.TemplateName)
}

func (m *MockTemplateService) CompatibleTemplates(ctx context.Context, contractID uuid.UUID) (contract.CanonicalType, []contract.TemplateName, error) {
	args := m.Called(ctx, contractID)
	if args.Get(1) == nil {
		return args.Get(0).(contract.CanonicalType), nil, args.Error(2)
	}
	return args.Get(0).(contract.CanonicalType), args.Get(1).([]contract.TemplateName), args.Error(2)
}

func (m *MockTemplateService) Populate(ctx context.Context, contractID, userID uuid.UUID, name contract.TemplateName) (string, error) {
	args := m.Called(ctx, contractID, userID, name)
	return args.String(0), args.Error(1)
}

func (m *MockTemplateService) RenderDocx(ctx context.Context, contractID, userID uuid.UUID, name contract.TemplateName) ([]byte, error) {
	args := m.Called(ctx, contractID, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
