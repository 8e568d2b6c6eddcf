// README: AI-usage module tests (cost estimation and DB-backed recording).
package aiusage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripcraft/internal/ai"
)

func TestEstimateCost(t *testing.T) {
	cases := []struct {
		model          string
		prompt, output int
		wantCents      int64
	}{
		{"gemini-2.0-flash", 1_000_000, 0, 10},
		{"gemini-2.0-flash", 0, 1_000_000, 40},
		{"gpt-4o-mini", 2_000_000, 1_000_000, 90},
		// unknown models cost nothing rather than failing
		{"mystery-model", 1_000_000, 1_000_000, 0},
		{"gemini-2.0-flash", 0, 0, 0},
	}
	for _, tc := range cases {
		got := EstimateCost(tc.model, tc.prompt, tc.output)
		if got.Amount != tc.wantCents || got.Currency != "USD" {
			t.Errorf("EstimateCost(%s, %d, %d) = %+v, want %d cents USD",
				tc.model, tc.prompt, tc.output, got, tc.wantCents)
		}
	}
}

// TestRecordUsageNilService: a nil service is a valid no-op recorder so the
// planner can be wired without a database.
func TestRecordUsageNilService(t *testing.T) {
	var svc *Service
	// must not panic
	svc.RecordUsage(context.Background(), "itinerary", ai.Usage{Model: "gemini-2.0-flash", PromptTokens: 10, OutputTokens: 10})
}

func TestRecordUsageInsertsRow(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	svc.RecordUsage(ctx, "itinerary", ai.Usage{Model: "gemini-2.0-flash", PromptTokens: 1200, OutputTokens: 800})

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM ai_usage_log WHERE stage = 'itinerary'").Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 usage row, got %d", count)
	}
}

func setupTestService(t *testing.T) (*Service, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TRIP_TEST_DSN")
	if dsn == "" {
		t.Skip("TRIP_TEST_DSN not set; skipping DB-backed usage tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	migration, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_ai_usage_log.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := db.Exec(ctx, string(migration)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE ai_usage_log"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return NewService(NewStore(db)), db
}
