package favorites

import (
	"context"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type Repository interface {
	// Load returns the persisted collection for a client, oldest first.
	Load(ctx context.Context, clientID string) ([]pairing.Recommendation, error)

	// ReplaceAll rewrites the entire persisted collection for a client.
	ReplaceAll(ctx context.Context, clientID string, items []pairing.Recommendation) error
}
