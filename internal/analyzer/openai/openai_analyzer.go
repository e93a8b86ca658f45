package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contractiq/internal/analyzer"
	"contractiq/internal/config"
	"contractiq/internal/contract"
	"contractiq/internal/port"
)

const (
	apiURL       = "https://api.openai.com/v1/chat/completions"
	defaultModel = "gpt-4o"

	// Truncation limits keep prompts within provider context windows.
	maxExtractionChars = 15000
	maxChatContextChars = 20000
)

// Analyzer implements port.ContractAnalyzer using an OpenAI-compatible
// Chat Completions API.
type Analyzer struct {
	provider string
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewAnalyzer creates an OpenAI-based contract analyzer from a provider config.
func NewAnalyzer(cfg *config.AnalyzerProviderConfig) *Analyzer {
	return NewCompatible("openai", apiURL, defaultModel, cfg)
}

// NewAnalyzerWithEndpoint creates an analyzer pointing at a custom API endpoint (for testing).
func NewAnalyzerWithEndpoint(cfg *config.AnalyzerProviderConfig, endpoint string) *Analyzer {
	return NewCompatible("openai", endpoint, defaultModel, cfg)
}

// NewCompatible creates an analyzer for any OpenAI-compatible provider
// (Groq exposes the same wire format at a different endpoint).
func NewCompatible(provider, endpoint, fallbackModel string, cfg *config.AnalyzerProviderConfig) *Analyzer {
	model := cfg.DefaultModel
	if model == "" {
		model = fallbackModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Analyzer{
		provider: provider,
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *Analyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	entitiesJSON, err := json.Marshal(input.Entities)
	if err != nil {
		return nil, fmt.Errorf("marshaling entities: %w", err)
	}
	contextStr := fmt.Sprintf("Dimensions found: %s", entitiesJSON)
	prompt := analyzer.BuildAnalysisPrompt(input.Text, contextStr)

	content, err := a.complete(ctx, completionRequest{
		messages: []chatMessage{
			{Role: "system", Content: analyzer.AnalysisSystemPrompt},
			{Role: "user", Content: prompt},
		},
		temperature: 0,
		jsonObject:  true,
	})
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(content)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("analysis output is not valid JSON: %s", truncate(cleaned, 500))
	}

	return &port.AnalyzeOutput{
		Result:    json.RawMessage(cleaned),
		ModelUsed: a.model,
	}, nil
}

func (a *Analyzer) ExtractFields(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	text := input.Text
	if len(text) > maxExtractionChars {
		text = text[:maxExtractionChars]
	}
	prompt := analyzer.BuildExtractionPrompt(text)

	content, err := a.complete(ctx, completionRequest{
		messages: []chatMessage{
			{Role: "system", Content: analyzer.ExtractionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFences(content)
	fields := contract.FieldSet{}
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("parsing extracted fields: %w (raw: %s)", err, truncate(cleaned, 500))
	}

	if fields["contract_type"] == "" {
		fields["contract_type"] = input.ContractType
	}

	return &port.ExtractOutput{
		Fields:    fields,
		ModelUsed: a.model,
	}, nil
}

func (a *Analyzer) Chat(ctx context.Context, input port.ChatInput) (string, error) {
	contractContext := input.Context
	if len(contractContext) > maxChatContextChars {
		contractContext = contractContext[:maxChatContextChars]
	}

	messages := []chatMessage{
		{Role: "system", Content: analyzer.ChatSystemPrompt},
		{Role: "system", Content: fmt.Sprintf("Contract Context: %s...", contractContext)},
	}
	for _, msg := range input.History {
		messages = append(messages, chatMessage{Role: string(msg.Role), Content: msg.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: input.Question})

	return a.complete(ctx, completionRequest{
		messages:    messages,
		temperature: 0.7,
	})
}

type completionRequest struct {
	messages    []chatMessage
	temperature float64
	jsonObject  bool
}

// complete calls the Chat Completions endpoint and returns the first choice's content.
func (a *Analyzer) complete(ctx context.Context, cr completionRequest) (string, error) {
	reqBody := map[string]interface{}{
		"model":       a.model,
		"messages":    cr.messages,
		"temperature": cr.temperature,
	}
	if cr.jsonObject {
		reqBody["response_format"] = map[string]interface{}{"type": "json_object"}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s API: %w", a.provider, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("%s API error (status %d): %s", a.provider, resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := analyzer.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", analyzer.NewRateLimitError(a.provider, baseErr, retryAfter)
		}
		return "", baseErr
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from API: no choices")
	}
	if parsed.Choices[0].FinishReason == "length" {
		return "", fmt.Errorf("output truncated (finish_reason: length): response exceeded output token limit")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// stripCodeFences removes a surrounding markdown code block if the model
// ignored the no-formatting instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.SplitN(s, "```", 3)
	if len(parts) < 2 {
		return s
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
