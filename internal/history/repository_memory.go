package history

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	queries map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		queries: make(map[string][]string),
	}
}

func (r *InMemoryRepository) Load(ctx context.Context, clientID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.queries[clientID]
	out := make([]string, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *InMemoryRepository) ReplaceAll(ctx context.Context, clientID string, queries []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]string, len(queries))
	copy(stored, queries)
	r.queries[clientID] = stored
	return nil
}
