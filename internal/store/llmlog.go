package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent"
	entlog "github.com/abhisek/skillforge/ent/llmrequestlog"
	"github.com/abhisek/skillforge/internal/llm"
)

// requestLogRepo implements RequestLogRepo backed by ent.
type requestLogRepo struct {
	client *ent.Client
}

func (r *requestLogRepo) Append(ctx context.Context, rec llm.RequestRecord) error {
	err := r.client.LLMRequestLog.Create().
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append request log: %w", err)
	}
	return nil
}

func (r *requestLogRepo) Recent(ctx context.Context, limit int) ([]RequestLogEntry, error) {
	q := r.client.LLMRequestLog.Query().
		Order(ent.Desc(entlog.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}
	out := make([]RequestLogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, RequestLogEntry{
			ID:           row.ID,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}
