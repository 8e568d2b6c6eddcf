package ai

import "context"

// Generator defines the contract for the external text-generation service.
// This interface allows for swapping different providers (Gemini, OpenAI, etc.)
// and for substituting a deterministic fake in tests.
type Generator interface {
	// Generate produces free-form text for the given prompt.
	// Callers bound the call with a context timeout; any error (including
	// context expiry) is a normal fallback trigger, never a run failure.
	Generate(ctx context.Context, prompt string) (Result, error)
}
