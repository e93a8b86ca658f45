package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"contractiq/internal/domain"
	"contractiq/internal/port"
)

// ChatService answers questions about an analyzed contract, keeping a
// per-contract conversation history.
type ChatService interface {
	Ask(ctx context.Context, contractID, userID uuid.UUID, question string) (*domain.ChatMessage, error)
	History(ctx context.Context, contractID uuid.UUID) ([]domain.ChatMessage, error)
}

type chatService struct {
	analysisRepo port.AnalysisRepository
	chatRepo     port.ChatRepository
	analyses     AnalysisService
	analyzer     port.ContractAnalyzer
}

// NewChatService creates a new ChatService implementation.
func NewChatService(
	analysisRepo port.AnalysisRepository,
	chatRepo port.ChatRepository,
	analyses AnalysisService,
	contractAnalyzer port.ContractAnalyzer,
) ChatService {
	return &chatService{
		analysisRepo: analysisRepo,
		chatRepo:     chatRepo,
		analyses:     analyses,
		analyzer:     contractAnalyzer,
	}
}

func (s *chatService) Ask(ctx context.Context, contractID, userID uuid.UUID, question string) (*domain.ChatMessage, error) {
	analysis, err := s.analysisRepo.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if analysis.Status != domain.AnalysisStatusCompleted {
		return nil, domain.ErrAnalysisNotComplete
	}

	text, err := s.analyses.ContractText(ctx, contractID)
	if err != nil {
		return nil, err
	}

	history, err := s.chatRepo.ListByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	answer, err := s.analyzer.Chat(ctx, port.ChatInput{
		Question: question,
		Context:  text,
		History:  history,
	})
	if err != nil {
		return nil, err
	}

	userMsg := &domain.ChatMessage{
		ContractID: contractID,
		UserID:     userID,
		Role:       domain.ChatRoleUser,
		Content:    question,
	}
	if err := s.chatRepo.Append(ctx, userMsg); err != nil {
		return nil, err
	}

	assistantMsg := &domain.ChatMessage{
		ContractID: contractID,
		UserID:     userID,
		Role:       domain.ChatRoleAssistant,
		Content:    answer,
	}
	if err := s.chatRepo.Append(ctx, assistantMsg); err != nil {
		log.Printf("chatService.Ask: failed to persist assistant reply for %s: %v", contractID, err)
		return nil, err
	}

	return assistantMsg, nil
}

func (s *chatService) History(ctx context.Context, contractID uuid.UUID) ([]domain.ChatMessage, error) {
	return s.chatRepo.ListByContractID(ctx, contractID)
}
