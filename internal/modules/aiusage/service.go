// README: AI usage recording service (nil-safe; never fails a planning run).
package aiusage

import (
	"context"
	"log"

	"tripcraft/internal/ai"
)

// Service records generation usage for observability. A nil *Service is a
// valid no-op recorder, so callers without a database can still be wired.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordUsage persists one usage entry. Failures are logged and swallowed:
// usage recording is observability, not part of the planning contract.
func (s *Service) RecordUsage(ctx context.Context, stage string, usage ai.Usage) {
	if s == nil || s.store == nil {
		return
	}
	entry := Entry{
		Stage:        stage,
		Model:        usage.Model,
		PromptTokens: usage.PromptTokens,
		OutputTokens: usage.OutputTokens,
		Cost:         EstimateCost(usage.Model, usage.PromptTokens, usage.OutputTokens),
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		log.Printf("record ai usage (%s/%s): %v", stage, usage.Model, err)
	}
}
