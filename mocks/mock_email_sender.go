package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contractiq/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendAnalysisReady(ctx context.Context, toEmail, toName string, n port.AnalysisNotification) error {
	args := m.Called(ctx, toEmail, toName, n)
	return args.Error(0)
}
