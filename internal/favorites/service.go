package favorites

import (
	"context"
	"log"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load reads the persisted collection. A failed read is logged and defaults
// to an empty shelf; it is never surfaced to the user.
func (s *Service) Load(ctx context.Context, clientID string) []pairing.Recommendation {
	items, err := s.repo.Load(ctx, clientID)
	if err != nil {
		log.Printf("favorites: load failed for client %s: %v", clientID, err)
		return nil
	}
	return items
}

// Toggle flips membership of the pairing and rewrites the whole persisted
// collection. Write failures are logged; the in-memory result stands.
func (s *Service) Toggle(
	ctx context.Context,
	clientID string,
	current []pairing.Recommendation,
	rec pairing.Recommendation,
) []pairing.Recommendation {

	updated := toggle(current, rec)

	if err := s.repo.ReplaceAll(ctx, clientID, updated); err != nil {
		log.Printf("favorites: persist failed for client %s: %v", clientID, err)
	}

	return updated
}

// Contains reports membership by (name, type) identity.
func Contains(list []pairing.Recommendation, rec pairing.Recommendation) bool {
	for _, item := range list {
		if item.SameAs(rec) {
			return true
		}
	}
	return false
}

func toggle(list []pairing.Recommendation, rec pairing.Recommendation) []pairing.Recommendation {
	if !Contains(list, rec) {
		return append(append([]pairing.Recommendation{}, list...), rec)
	}

	out := make([]pairing.Recommendation, 0, len(list))
	for _, item := range list {
		if item.SameAs(rec) {
			continue
		}
		out = append(out, item)
	}
	return out
}
