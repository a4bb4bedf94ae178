package pairing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/llm"
)

// ErrPairingFetch covers every transport, parse, or schema failure from the
// pairing call. Callers surface it as a generic user-facing message; the
// detail is logged here.
var ErrPairingFetch = errors.New("failed to get pairing recommendations")

var responseSchema = llm.Schema{
	Type: "ARRAY",
	Items: &llm.Schema{
		Type: "OBJECT",
		Properties: map[string]llm.Schema{
			"name": {
				Type:        "STRING",
				Description: "Name of the drink recommendation.",
			},
			"type": {
				Type:        "STRING",
				Description: "Category or type of the drink (e.g., Red Wine, IPA Beer, Cocktail, Tequila, Non-alcoholic Mocktail).",
			},
			"description": {
				Type:        "STRING",
				Description: "A brief, enticing description of the drink itself.",
			},
			"reasoning": {
				Type:        "STRING",
				Description: "A detailed explanation of why this drink pairs well with the specified food, discussing flavor profiles, textures, and contrasts.",
			},
			"estimatedPrice": {
				Type:        "STRING",
				Description: "Estimated price of the drink, tailored to the user's budget when one is given.",
			},
		},
		Required:         []string{"name", "type", "description", "reasoning", "estimatedPrice"},
		PropertyOrdering: []string{"name", "type", "description", "reasoning", "estimatedPrice"},
	},
}

type Service struct {
	client   llm.Client
	validate *validator.Validate
}

func NewService(client llm.Client) *Service {
	return &Service{
		client:   client,
		validate: validator.New(),
	}
}

// Recommend fetches five pairings for the dish. One attempt only; any failure
// maps to ErrPairingFetch.
func (s *Service) Recommend(
	ctx context.Context,
	dish string,
	season Season,
	budget string,
) ([]Recommendation, error) {

	dish = strings.TrimSpace(dish)
	if dish == "" {
		return nil, errors.New("dish is required")
	}

	prompt := llm.BuildPairingPrompt(dish, string(season), strings.TrimSpace(budget))

	raw, err := s.client.GenerateJSON(ctx, prompt, responseSchema, 0.8)
	if err != nil {
		log.Printf("pairing: gemini call failed for %q: %v", dish, err)
		return nil, ErrPairingFetch
	}

	recs, err := decodeRecommendations(s.validate, raw)
	if err != nil {
		log.Printf("pairing: bad response for %q: %v", dish, err)
		return nil, ErrPairingFetch
	}

	return recs, nil
}

// decodeRecommendations is the explicit decode step: the declared schema is
// not trusted, every field of every record must be a present, non-empty
// string.
func decodeRecommendations(validate *validator.Validate, raw string) ([]Recommendation, error) {
	var recs []Recommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("invalid pairing JSON: %w", err)
	}

	for i, rec := range recs {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("pairing %d violates schema: %w", i, err)
		}
	}

	return recs, nil
}
