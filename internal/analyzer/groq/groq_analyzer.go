package groq

import (
	"contractiq/internal/analyzer/openai"
	"contractiq/internal/config"
)

const (
	apiURL       = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.3-70b-versatile"
)

// NewAnalyzer creates a Groq-based contract analyzer. Groq speaks the
// OpenAI Chat Completions wire format, so this reuses the OpenAI client
// against Groq's endpoint.
func NewAnalyzer(cfg *config.AnalyzerProviderConfig) *openai.Analyzer {
	return openai.NewCompatible("groq", apiURL, defaultModel, cfg)
}

// NewAnalyzerWithEndpoint creates an analyzer pointing at a custom API endpoint (for testing).
func NewAnalyzerWithEndpoint(cfg *config.AnalyzerProviderConfig, endpoint string) *openai.Analyzer {
	return openai.NewCompatible("groq", endpoint, defaultModel, cfg)
}
