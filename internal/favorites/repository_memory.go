package favorites

import (
	"context"
	"sync"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string][]pairing.Recommendation
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string][]pairing.Recommendation),
	}
}

func (r *InMemoryRepository) Load(
	ctx context.Context,
	clientID string,
) ([]pairing.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.items[clientID]
	out := make([]pairing.Recommendation, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *InMemoryRepository) ReplaceAll(
	ctx context.Context,
	clientID string,
	items []pairing.Recommendation,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]pairing.Recommendation, len(items))
	copy(stored, items)
	r.items[clientID] = stored
	return nil
}
