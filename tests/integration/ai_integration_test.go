// README: Live Gemini integration test (requires GEMINI_API_KEY).
package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"tripcraft/internal/ai"
)

// TestGeminiGenerate exercises the real Gemini API end to end. It is skipped
// unless GEMINI_API_KEY is set so CI stays offline by default.
func TestGeminiGenerate(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live Gemini test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		t.Fatalf("init provider: %v", err)
	}
	defer provider.Close()

	result, err := provider.Generate(ctx, "Write one sentence about Paris.")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if strings.TrimSpace(result.Text) == "" {
		t.Error("expected non-empty generation output")
	}
	if result.Usage.OutputTokens <= 0 {
		t.Errorf("expected positive output token count, got %d", result.Usage.OutputTokens)
	}
	if result.Usage.Model == "" {
		t.Error("expected the model name in usage metadata")
	}
}
