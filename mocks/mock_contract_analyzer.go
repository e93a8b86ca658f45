package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contractiq/internal/port"
)

// MockContractAnalyzer is a mock implementation of port.ContractAnalyzer.
type MockContractAnalyzer struct {
	mock.Mock
}

func (m *MockContractAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.AnalyzeOutput), args.Error(1)
}

func (m *MockContractAnalyzer) ExtractFields(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ExtractOutput), args.Error(1)
}

func (m *MockContractAnalyzer) Chat(ctx context.Context, input port.ChatInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
