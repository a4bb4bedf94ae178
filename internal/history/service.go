package history

import (
	"context"
	"log"
	"strings"
)

// maxEntries caps the history at the five most recent queries.
const maxEntries = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load reads the persisted history. A failed read is logged and defaults to
// empty; it is never surfaced to the user.
func (s *Service) Load(ctx context.Context, clientID string) []string {
	queries, err := s.repo.Load(ctx, clientID)
	if err != nil {
		log.Printf("history: load failed for client %s: %v", clientID, err)
		return nil
	}
	return queries
}

// Record prepends the query (original casing), removing any case-insensitive
// duplicate and keeping at most five entries, then persists the full list.
func (s *Service) Record(
	ctx context.Context,
	clientID string,
	current []string,
	query string,
) []string {

	updated := push(current, strings.TrimSpace(query))

	if err := s.repo.ReplaceAll(ctx, clientID, updated); err != nil {
		log.Printf("history: persist failed for client %s: %v", clientID, err)
	}

	return updated
}

// Clear empties the history and persists immediately.
func (s *Service) Clear(ctx context.Context, clientID string) {
	if err := s.repo.ReplaceAll(ctx, clientID, nil); err != nil {
		log.Printf("history: clear failed for client %s: %v", clientID, err)
	}
}

func push(current []string, query string) []string {
	updated := make([]string, 0, maxEntries)
	updated = append(updated, query)

	lower := strings.ToLower(query)
	for _, item := range current {
		if strings.ToLower(item) == lower {
			continue
		}
		updated = append(updated, item)
		if len(updated) == maxEntries {
			break
		}
	}

	return updated
}
