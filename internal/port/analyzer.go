package port

import (
	"context"
	"encoding/json"

	"contractiq/internal/contract"
	"contractiq/internal/domain"
	"contractiq/internal/nlp"
)

// AnalyzeInput carries the data needed for a full contract risk analysis.
type AnalyzeInput struct {
	Text     string
	Entities nlp.Entities
}

// AnalyzeOutput contains the structured result from an LLM analyzer.
type AnalyzeOutput struct {
	Result    json.RawMessage
	ModelUsed string
}

// ExtractInput carries the data needed for template field extraction.
type ExtractInput struct {
	Text         string
	ContractType string
}

// ExtractOutput contains the extracted field set for template population.
type ExtractOutput struct {
	Fields    contract.FieldSet
	ModelUsed string
}

// ChatInput carries one question against an analyzed contract, with prior
// conversation turns.
type ChatInput struct {
	Question string
	Context  string
	History  []domain.ChatMessage
}

// ContractAnalyzer abstracts LLM-based contract analysis.
type ContractAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)
	ExtractFields(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
	Chat(ctx context.Context, input ChatInput) (string, error)
}
