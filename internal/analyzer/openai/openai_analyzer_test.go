package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractiq/internal/analyzer"
	"contractiq/internal/analyzer/groq"
	"contractiq/internal/analyzer/openai"
	"contractiq/internal/config"
	"contractiq/internal/contract"
	"contractiq/internal/domain"
	"contractiq/internal/nlp"
	"contractiq/internal/port"
)

func newTestAnalyzer(serverURL string) *openai.Analyzer {
	cfg := &config.AnalyzerProviderConfig{
		Provider:     "openai",
		APIKey:       "test-openai-key",
		DefaultModel: "gpt-4o",
		TimeoutSecs:  30,
	}
	return openai.NewAnalyzerWithEndpoint(cfg, serverURL)
}

func successResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestAnalyze_Success(t *testing.T) {
	llmJSON := `{"contract_type":"Service Agreement","summary":"A short summary.","overall_risk_score":"Medium","numeric_risk_score":55,"key_risks":[],"ambiguous_clauses":[],"clauses_analysis":[],"missing_clauses":["Arbitration"]}`

	var capturedReq map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&capturedReq)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	result, err := a.Analyze(context.Background(), port.AnalyzeInput{
		Text: "This agreement is made between Acme Corp and Beta LLC.",
		Entities: nlp.Entities{
			Parties: []string{"Acme Corp", "Beta LLC"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "gpt-4o", result.ModelUsed)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(result.Result, &decoded))
	assert.Equal(t, "Service Agreement", decoded["contract_type"])

	// Request shape
	assert.Equal(t, "gpt-4o", capturedReq["model"])
	assert.Equal(t, float64(0), capturedReq["temperature"])
	respFmt := capturedReq["response_format"].(map[string]interface{})
	assert.Equal(t, "json_object", respFmt["type"])

	messages := capturedReq["messages"].([]interface{})
	require.Len(t, messages, 2)
	system := messages[0].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Contains(t, system["content"], "legal assistant")
	user := messages[1].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.Contains(t, user["content"], "Acme Corp")
	assert.Contains(t, user["content"], "Risk Assessment")
}

func TestAnalyze_StripsCodeFences(t *testing.T) {
	fenced := "```json\n{\"contract_type\":\"NDA\",\"summary\":\"s\"}\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(fenced))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	result, err := a.Analyze(context.Background(), port.AnalyzeInput{Text: "nda text"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(result.Result, &decoded))
	assert.Equal(t, "NDA", decoded["contract_type"])
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("I cannot analyze this contract."))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	result, err := a.Analyze(context.Background(), port.AnalyzeInput{Text: "text"})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestAnalyze_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit exceeded","type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	result, err := a.Analyze(context.Background(), port.AnalyzeInput{Text: "text"})
	assert.Nil(t, result)
	require.Error(t, err)

	var rlErr *analyzer.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(30*1e9), float64(rlErr.RetryAfter))
	assert.Contains(t, rlErr.Err.Error(), "openai API error (status 429)")
}

func TestAnalyze_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"Internal server error"}}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	result, err := a.Analyze(context.Background(), port.AnalyzeInput{Text: "text"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai API error (status 500)")

	var rlErr *analyzer.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
}

func TestAnalyze_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []map[string]interface{}{}})
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	result, err := a.Analyze(context.Background(), port.AnalyzeInput{Text: "text"})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestExtractFields_Success(t *testing.T) {
	llmJSON := `{"contract_type":"Service Agreement","services":"Web development","amount":"INR 5,00,000","provider":"Acme Corp","client":"Beta LLC","jurisdiction":"Courts of Mumbai"}`

	var capturedReq map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&capturedReq)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(llmJSON))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	out, err := a.ExtractFields(context.Background(), port.ExtractInput{
		Text:         "Agreement between Acme Corp and Beta LLC for web development.",
		ContractType: "Service Agreement",
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
	assert.Equal(t, "Web development", out.Fields["services"])
	assert.Equal(t, "Acme Corp", out.Fields["provider"])

	// Extraction uses low temperature and no response_format
	assert.Equal(t, 0.1, capturedReq["temperature"])
	assert.NotContains(t, capturedReq, "response_format")

	messages := capturedReq["messages"].([]interface{})
	require.Len(t, messages, 2)
	user := messages[1].(map[string]interface{})
	assert.Contains(t, user["content"], contract.NotSpecified)
	assert.Contains(t, user["content"], "termination_notice")
}

func TestExtractFields_FillsMissingContractType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"services":"Consulting"}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	out, err := a.ExtractFields(context.Background(), port.ExtractInput{
		Text:         "text",
		ContractType: "NDA",
	})

	require.NoError(t, err)
	assert.Equal(t, "NDA", out.Fields["contract_type"])
}

func TestExtractFields_TruncatesLongText(t *testing.T) {
	long := make([]byte, 40000)
	for i := range long {
		long[i] = 'a'
	}

	var promptLen int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)
		messages := reqBody["messages"].([]interface{})
		user := messages[1].(map[string]interface{})
		promptLen = len(user["content"].(string))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"contract_type":"Other"}`))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	_, err := a.ExtractFields(context.Background(), port.ExtractInput{
		Text:         string(long),
		ContractType: "Other",
	})
	require.NoError(t, err)
	assert.Less(t, promptLen, 20000)
}

func TestExtractFields_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("not json"))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	out, err := a.ExtractFields(context.Background(), port.ExtractInput{Text: "t", ContractType: "Other"})
	assert.Nil(t, out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing extracted fields")
}

func TestChat_Success(t *testing.T) {
	var capturedReq map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&capturedReq)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("The notice period is 30 days."))
	}))
	defer server.Close()

	a := newTestAnalyzer(server.URL)

	answer, err := a.Chat(context.Background(), port.ChatInput{
		Question: "What is the notice period?",
		Context:  "Either party may terminate with 30 days written notice.",
		History: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Content: "Who are the parties?"},
			{Role: domain.ChatRoleAssistant, Content: "Acme Corp and Beta LLC."},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "The notice period is 30 days.", answer)

	assert.Equal(t, 0.7, capturedReq["temperature"])
	messages := capturedReq["messages"].([]interface{})
	// system prompt, context, 2 history turns, question
	require.Len(t, messages, 5)
	ctxMsg := messages[1].(map[string]interface{})
	assert.Equal(t, "system", ctxMsg["role"])
	assert.Contains(t, ctxMsg["content"], "Contract Context:")
	last := messages[4].(map[string]interface{})
	assert.Equal(t, "user", last["role"])
	assert.Equal(t, "What is the notice period?", last["content"])
}

func TestGroq_UsesDefaultModelAndProviderName(t *testing.T) {
	var capturedModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)
		capturedModel = reqBody["model"].(string)

		w.Header().Set("Retry-After", "15")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	cfg := &config.AnalyzerProviderConfig{Provider: "groq", APIKey: "k", TimeoutSecs: 30}
	a := groq.NewAnalyzerWithEndpoint(cfg, server.URL)

	_, err := a.Chat(context.Background(), port.ChatInput{Question: "q", Context: "c"})
	require.Error(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", capturedModel)

	var rlErr *analyzer.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "groq", rlErr.Provider)
}
