package analyzer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractiq/internal/analyzer"
	"contractiq/internal/config"
	"contractiq/internal/contract"
	"contractiq/internal/port"
)

// stubAnalyzer returns canned responses and counts calls.
type stubAnalyzer struct {
	analyzeErr error
	extractErr error
	chatErr    error
	calls      int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	s.calls++
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return &port.AnalyzeOutput{Result: json.RawMessage(`{"contract_type":"NDA"}`), ModelUsed: "stub"}, nil
}

func (s *stubAnalyzer) ExtractFields(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	s.calls++
	if s.extractErr != nil {
		return nil, s.extractErr
	}
	return &port.ExtractOutput{Fields: contract.FieldSet{"contract_type": "NDA"}, ModelUsed: "stub"}, nil
}

func (s *stubAnalyzer) Chat(ctx context.Context, input port.ChatInput) (string, error) {
	s.calls++
	if s.chatErr != nil {
		return "", s.chatErr
	}
	return "stub answer", nil
}

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := &stubAnalyzer{}
	secondary := &stubAnalyzer{}
	f := analyzer.NewFallbackAnalyzer(
		[]port.ContractAnalyzer{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.Analyze(context.Background(), port.AnalyzeInput{Text: "t"})
	require.NoError(t, err)
	assert.Equal(t, "stub", out.ModelUsed)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallback_SecondaryOnFailure(t *testing.T) {
	primary := &stubAnalyzer{analyzeErr: errors.New("boom")}
	secondary := &stubAnalyzer{}
	f := analyzer.NewFallbackAnalyzer(
		[]port.ContractAnalyzer{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.Analyze(context.Background(), port.AnalyzeInput{Text: "t"})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallback_RateLimitOpensCircuit(t *testing.T) {
	primary := &stubAnalyzer{chatErr: analyzer.NewRateLimitError("primary", errors.New("429"), 60)}
	secondary := &stubAnalyzer{}
	f := analyzer.NewFallbackAnalyzer(
		[]port.ContractAnalyzer{primary, secondary},
		[]string{"primary", "secondary"},
	)

	answer, err := f.Chat(context.Background(), port.ChatInput{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, "stub answer", answer)
	assert.Equal(t, 1, primary.calls)

	// Circuit is open, primary is skipped on the next call
	_, err = f.Chat(context.Background(), port.ChatInput{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 2, secondary.calls)
}

func TestFallback_AllRateLimited(t *testing.T) {
	primary := &stubAnalyzer{extractErr: analyzer.NewRateLimitError("primary", errors.New("429"), 30)}
	secondary := &stubAnalyzer{extractErr: analyzer.NewRateLimitError("secondary", errors.New("429"), 90)}
	f := analyzer.NewFallbackAnalyzer(
		[]port.ContractAnalyzer{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.ExtractFields(context.Background(), port.ExtractInput{Text: "t"})
	assert.Nil(t, out)
	require.Error(t, err)

	var rlErr *analyzer.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "all", rlErr.Provider)
	// Earliest reset wins
	assert.LessOrEqual(t, rlErr.RetryAfter.Seconds(), float64(30))
}

func TestFallback_AllFailed(t *testing.T) {
	primary := &stubAnalyzer{analyzeErr: errors.New("primary down")}
	secondary := &stubAnalyzer{analyzeErr: errors.New("secondary down")}
	f := analyzer.NewFallbackAnalyzer(
		[]port.ContractAnalyzer{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.Analyze(context.Background(), port.AnalyzeInput{Text: "t"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all analyzers failed")
	assert.Contains(t, err.Error(), "secondary down")
}

func TestFactory_UnknownProvider(t *testing.T) {
	cfg := &config.AnalyzerProviderConfig{Provider: "does-not-exist"}
	a, err := analyzer.NewAnalyzer(cfg)
	assert.Nil(t, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown analyzer provider")
}

func TestFactory_RegisterAndCreate(t *testing.T) {
	analyzer.RegisterProvider("stub-test", func(cfg *config.AnalyzerProviderConfig) (port.ContractAnalyzer, error) {
		return &stubAnalyzer{}, nil
	})

	a, err := analyzer.NewAnalyzer(&config.AnalyzerProviderConfig{Provider: "stub-test"})
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, analyzer.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, analyzer.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, analyzer.ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
}
