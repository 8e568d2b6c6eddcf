package ai

// Usage captures approximate token consumption for one generation call.
// Counts come from the provider's usage metadata when available and are
// estimated from text length otherwise.
type Usage struct {
	Model        string
	PromptTokens int
	OutputTokens int
}

// Result is the outcome of a successful generation call.
type Result struct {
	Text  string
	Usage Usage
}

// estimateTokens is a rough 4-chars-per-token heuristic used when the
// provider does not report usage metadata.
func estimateTokens(s string) int {
	return (len(s) + 3) / 4
}
