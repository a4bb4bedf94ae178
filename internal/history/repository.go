package history

import "context"

type Repository interface {
	// Load returns the persisted history for a client, most recent first.
	Load(ctx context.Context, clientID string) ([]string, error)

	// ReplaceAll rewrites the entire persisted history for a client.
	ReplaceAll(ctx context.Context, clientID string, queries []string) error
}
