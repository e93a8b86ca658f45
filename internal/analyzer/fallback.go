package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"contractiq/internal/port"
)

// circuitState tracks rate-limit backoff for a single analyzer.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackAnalyzer tries analyzers in order, skipping those with open circuits.
// It implements port.ContractAnalyzer.
type FallbackAnalyzer struct {
	analyzers []port.ContractAnalyzer
	circuits  []*circuitState
	names     []string
}

// NewFallbackAnalyzer creates a FallbackAnalyzer from an ordered list of analyzers and their names.
func NewFallbackAnalyzer(analyzers []port.ContractAnalyzer, names []string) *FallbackAnalyzer {
	circuits := make([]*circuitState, len(analyzers))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackAnalyzer{
		analyzers: analyzers,
		circuits:  circuits,
		names:     names,
	}
}

func (f *FallbackAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	var out *port.AnalyzeOutput
	err := f.tryEach("Analyze", func(a port.ContractAnalyzer) error {
		res, err := a.Analyze(ctx, input)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	return out, err
}

func (f *FallbackAnalyzer) ExtractFields(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	var out *port.ExtractOutput
	err := f.tryEach("ExtractFields", func(a port.ContractAnalyzer) error {
		res, err := a.ExtractFields(ctx, input)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	return out, err
}

func (f *FallbackAnalyzer) Chat(ctx context.Context, input port.ChatInput) (string, error) {
	var out string
	err := f.tryEach("Chat", func(a port.ContractAnalyzer) error {
		res, err := a.Chat(ctx, input)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	return out, err
}

// tryEach runs call against each analyzer in order until one succeeds,
// recording rate-limit circuits along the way.
func (f *FallbackAnalyzer) tryEach(op string, call func(port.ContractAnalyzer) error) error {
	now := time.Now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, a := range f.analyzers {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Printf("analyzer.FallbackAnalyzer.%s: skipping %s (circuit open until %s)", op, f.names[i], resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		err := call(a)
		if err == nil {
			return nil
		}

		log.Printf("analyzer.FallbackAnalyzer.%s: %s failed: %v", op, f.names[i], err)
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		// Every analyzer was rate limited or skipped on an open circuit
		retryAfter := time.Until(earliestReset)
		if retryAfter < 0 {
			retryAfter = time.Second
		}
		return NewRateLimitError("all", fmt.Errorf("all analyzers rate limited"), int(retryAfter.Seconds()))
	}

	return fmt.Errorf("all analyzers failed: %w", lastErr)
}
