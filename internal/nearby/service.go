package nearby

import (
	"context"
	"errors"
	"log"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/llm"
)

// ErrNearbyFetch covers transport and parse failures from the grounded call.
var ErrNearbyFetch = errors.New("failed to find nearby venues")

// Place is a venue referenced by grounding metadata. Identity is the URI.
type Place struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Find asks for venues selling or serving the drink near the coordinates.
// Absent grounding metadata is a valid empty result, not an error. No cap is
// imposed here; display truncation belongs to the caller.
func (s *Service) Find(
	ctx context.Context,
	drinkName string,
	coords geo.Coordinates,
) ([]Place, error) {

	prompt := llm.BuildNearbyPrompt(drinkName)

	chunks, err := s.client.GenerateGrounded(ctx, prompt, coords.Latitude, coords.Longitude)
	if err != nil {
		log.Printf("nearby: grounded call failed for %q: %v", drinkName, err)
		return nil, ErrNearbyFetch
	}

	places := make([]Place, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Maps == nil || chunk.Maps.Title == "" || chunk.Maps.URI == "" {
			continue
		}
		places = append(places, Place{
			Title: chunk.Maps.Title,
			URI:   chunk.Maps.URI,
		})
	}

	return dedupeByURI(places), nil
}

// dedupeByURI keeps one place per URI: position of the first occurrence,
// title of the last.
func dedupeByURI(places []Place) []Place {
	index := make(map[string]int, len(places))
	unique := make([]Place, 0, len(places))

	for _, p := range places {
		if at, seen := index[p.URI]; seen {
			unique[at] = p
			continue
		}
		index[p.URI] = len(unique)
		unique = append(unique, p)
	}

	return unique
}
