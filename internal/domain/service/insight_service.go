package service

import (
	"context"
	"encoding/json"
)

// InsightService is the black-box boundary to an external LLM provider:
// prompt text in, structured JSON out. Implementations must not be called
// while holding any lock protecting shared package state.
type InsightService interface {
	// GenerateInsight sends the prompt to the provider and returns the
	// provider's JSON response verbatim.
	GenerateInsight(ctx context.Context, prompt string) (json.RawMessage, error)
}
