// README: AI usage log entry and per-model price table.
package aiusage

import "tripcraft/internal/types"

// Entry is one recorded generation call.
type Entry struct {
	Stage        string
	Model        string
	PromptTokens int
	OutputTokens int
	Cost         types.Money
}

// Approximate prices in cents per million tokens. Unknown models fall back
// to the zero rate so recording never blocks a run.
var (
	promptRateCents = map[string]int64{
		"gemini-2.0-flash": 10,
		"gpt-4o-mini":      15,
	}
	outputRateCents = map[string]int64{
		"gemini-2.0-flash": 40,
		"gpt-4o-mini":      60,
	}
)

// EstimateCost converts token counts into an approximate USD cost.
func EstimateCost(model string, promptTokens, outputTokens int) types.Money {
	cents := promptRateCents[model]*int64(promptTokens)/1_000_000 +
		outputRateCents[model]*int64(outputTokens)/1_000_000
	return types.Money{Amount: cents, Currency: "USD"}
}
