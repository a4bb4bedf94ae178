package llm

import (
	"context"
)

// Client is the surface the recommendation services need from Gemini.
type Client interface {
	// GenerateJSON runs a schema-constrained generation and returns the raw
	// JSON text of the first candidate.
	GenerateJSON(ctx context.Context, prompt string, schema Schema, temperature float64) (string, error)

	// GenerateGrounded runs a maps-grounded generation anchored at the given
	// coordinates and returns the grounding chunks of the first candidate.
	GenerateGrounded(ctx context.Context, prompt string, latitude, longitude float64) ([]GroundingChunk, error)
}
