package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractiq/internal/domain"
	"contractiq/internal/port"
	"contractiq/internal/service"
	"contractiq/mocks"
)

type chatFixture struct {
	svc          service.ChatService
	analysisRepo *mocks.MockAnalysisRepo
	chatRepo     *mocks.MockChatRepo
	fileRepo     *mocks.MockContractFileRepo
	storage      *mocks.MockObjectStorage
	analyzer     *mocks.MockContractAnalyzer
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		analysisRepo: new(mocks.MockAnalysisRepo),
		chatRepo:     new(mocks.MockChatRepo),
		fileRepo:     new(mocks.MockContractFileRepo),
		storage:      new(mocks.MockObjectStorage),
		analyzer:     new(mocks.MockContractAnalyzer),
	}
	analyses := service.NewAnalysisService(
		f.fileRepo, f.analysisRepo, f.chatRepo, new(mocks.MockAuditRepo),
		new(mocks.MockUserRepo), f.storage, f.analyzer, new(mocks.MockEmailSender),
	)
	f.svc = service.NewChatService(f.analysisRepo, f.chatRepo, analyses, f.analyzer)
	return f
}

func TestChatService_Ask_Success(t *testing.T) {
	f := newChatFixture()
	contractID := uuid.New()
	userID := uuid.New()
	meta := uploadedTxt(contractID)

	history := []domain.ChatMessage{
		{ContractID: contractID, Role: domain.ChatRoleUser, Content: "What is the notice period?"},
		{ContractID: contractID, Role: domain.ChatRoleAssistant, Content: "30 days."},
	}

	f.analysisRepo.On("GetByContractID", mock.Anything, contractID).
		Return(&domain.Analysis{ContractID: contractID, Status: domain.AnalysisStatusCompleted}, nil)
	f.fileRepo.On("GetByID", mock.Anything, contractID).Return(meta, nil)
	f.storage.On("Download", mock.Anything, meta.S3Bucket, meta.S3Key).
		Return([]byte("full contract text"), nil)
	f.chatRepo.On("ListByContractID", mock.Anything, contractID).Return(history, nil)
	f.analyzer.On("Chat", mock.Anything, mock.MatchedBy(func(in port.ChatInput) bool {
		return in.Question == "Can I terminate early?" &&
			in.Context == "full contract text" &&
			len(in.History) == 2
	})).Return("Yes, with 30 days written notice.", nil)
	f.chatRepo.On("Append", mock.Anything, mock.MatchedBy(func(m *domain.ChatMessage) bool {
		return m.Role == domain.ChatRoleUser && m.Content == "Can I terminate early?" && m.UserID == userID
	})).Return(nil)
	f.chatRepo.On("Append", mock.Anything, mock.MatchedBy(func(m *domain.ChatMessage) bool {
		return m.Role == domain.ChatRoleAssistant
	})).Return(nil)

	msg, err := f.svc.Ask(context.Background(), contractID, userID, "Can I terminate early?")

	assert.NoError(t, err)
	assert.Equal(t, domain.ChatRoleAssistant, msg.Role)
	assert.Equal(t, "Yes, with 30 days written notice.", msg.Content)
	f.chatRepo.AssertExpectations(t)
	f.analyzer.AssertExpectations(t)
}

func TestChatService_Ask_AnalysisNotComplete(t *testing.T) {
	f := newChatFixture()
	contractID := uuid.New()

	f.analysisRepo.On("GetByContractID", mock.Anything, contractID).
		Return(&domain.Analysis{ContractID: contractID, Status: domain.AnalysisStatusRunning}, nil)

	msg, err := f.svc.Ask(context.Background(), contractID, uuid.New(), "Anything?")

	assert.Nil(t, msg)
	assert.ErrorIs(t, err, domain.ErrAnalysisNotComplete)
	f.analyzer.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestChatService_Ask_NoAnalysis(t *testing.T) {
	f := newChatFixture()
	contractID := uuid.New()

	f.analysisRepo.On("GetByContractID", mock.Anything, contractID).
		Return(nil, domain.ErrAnalysisNotFound)

	msg, err := f.svc.Ask(context.Background(), contractID, uuid.New(), "Anything?")

	assert.Nil(t, msg)
	assert.ErrorIs(t, err, domain.ErrAnalysisNotFound)
}

func TestChatService_Ask_LLMFailure(t *testing.T) {
	f := newChatFixture()
	contractID := uuid.New()
	meta := uploadedTxt(contractID)

	f.analysisRepo.On("GetByContractID", mock.Anything, contractID).
		Return(&domain.Analysis{ContractID: contractID, Status: domain.AnalysisStatusCompleted}, nil)
	f.fileRepo.On("GetByID", mock.Anything, contractID).Return(meta, nil)
	f.storage.On("Download", mock.Anything, meta.S3Bucket, meta.S3Key).
		Return([]byte("contract text"), nil)
	f.chatRepo.On("ListByContractID", mock.Anything, contractID).Return([]domain.ChatMessage{}, nil)
	f.analyzer.On("Chat", mock.Anything, mock.Anything).Return("", assert.AnError)

	msg, err := f.svc.Ask(context.Background(), contractID, uuid.New(), "Anything?")

	assert.Nil(t, msg)
	assert.Error(t, err)
	f.chatRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestChatService_History(t *testing.T) {
	f := newChatFixture()
	contractID := uuid.New()

	history := []domain.ChatMessage{
		{ContractID: contractID, Role: domain.ChatRoleUser, Content: "Q"},
		{ContractID: contractID, Role: domain.ChatRoleAssistant, Content: "A"},
	}
	f.chatRepo.On("ListByContractID", mock.Anything, contractID).Return(history, nil)

	msgs, err := f.svc.History(context.Background(), contractID)

	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
}
