package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/obinna/studymate/internal/store"
)

// LoggingProvider is a decorator that records every request in the store's
// request log.
type LoggingProvider struct {
	inner   Provider
	logRepo store.LLMLogRepo
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, repo store.LLMLogRepo) Provider {
	return &LoggingProvider{inner: p, logRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the request but don't fail it if logging fails.
	if logErr := l.logRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
