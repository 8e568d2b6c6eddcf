// README: AI usage persistence backed by PostgreSQL.
package aiusage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_usage_log persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one usage entry.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage_log (stage, model, prompt_tokens, output_tokens, cost_cents, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, e.Stage, e.Model, e.PromptTokens, e.OutputTokens, e.Cost.Amount, e.Cost.Currency)
	return err
}
