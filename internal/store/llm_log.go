package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestData captures the data for a single LLM request log row.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequest is a logged LLM API call.
type LLMRequest struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestData
}

// LLMLogRepo provides access to the LLM request log.
type LLMLogRepo interface {
	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error

	// ListLLMRequests returns the most recent logged requests, newest
	// first, up to limit.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error)

	// CountLLMRequests returns the total number of logged requests.
	CountLLMRequests(ctx context.Context) (int, error)
}

type llmLogRepo struct {
	db *sql.DB
}

func (r *llmLogRepo) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (r *llmLogRepo) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequest
	for rows.Next() {
		var req LLMRequest
		var createdAt string
		var success int
		if err := rows.Scan(&req.ID, &createdAt, &req.Provider, &req.Model, &req.Purpose,
			&req.InputTokens, &req.OutputTokens, &req.LatencyMs, &success, &req.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		req.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		req.Success = success != 0
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *llmLogRepo) CountLLMRequests(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM llm_requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count llm requests: %w", err)
	}
	return n, nil
}
