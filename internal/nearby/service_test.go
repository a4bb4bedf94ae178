package nearby

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/llm"
)

// --------------------------------------------------
// Mock grounded client
// --------------------------------------------------

type mockClient struct {
	lastPrompt string
	lastLat    float64
	lastLng    float64

	chunks []llm.GroundingChunk
	err    error
}

func (m *mockClient) GenerateJSON(
	ctx context.Context,
	prompt string,
	schema llm.Schema,
	temperature float64,
) (string, error) {
	return "", nil
}

func (m *mockClient) GenerateGrounded(
	ctx context.Context,
	prompt string,
	latitude float64,
	longitude float64,
) ([]llm.GroundingChunk, error) {
	m.lastPrompt = prompt
	m.lastLat = latitude
	m.lastLng = longitude
	return m.chunks, m.err
}

func mapsChunk(title, uri string) llm.GroundingChunk {
	return llm.GroundingChunk{Maps: &llm.MapsPlace{Title: title, URI: uri}}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestFind_DedupLastTitleWins(t *testing.T) {
	client := &mockClient{chunks: []llm.GroundingChunk{
		mapsChunk("t1", "u1"),
		mapsChunk("t2", "u1"),
		mapsChunk("t3", "u2"),
	}}
	service := NewService(client)

	places, err := service.Find(context.Background(), "Paloma", geo.Coordinates{Latitude: 40.7, Longitude: -74.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(places) != 2 {
		t.Fatalf("expected 2 places, got %d", len(places))
	}
	if places[0].URI != "u1" || places[0].Title != "t2" {
		t.Errorf("expected u1 with last title t2 first, got %+v", places[0])
	}
	if places[1].URI != "u2" || places[1].Title != "t3" {
		t.Errorf("expected u2/t3 second, got %+v", places[1])
	}
}

func TestFind_FiltersIncompleteChunks(t *testing.T) {
	client := &mockClient{chunks: []llm.GroundingChunk{
		{},                        // no maps payload
		mapsChunk("", "u1"),       // missing title
		mapsChunk("Bar None", ""), // missing uri
		mapsChunk("The Cellar", "u2"),
	}}
	service := NewService(client)

	places, err := service.Find(context.Background(), "Pinot Noir", geo.Coordinates{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(places) != 1 || places[0].Title != "The Cellar" {
		t.Fatalf("expected only The Cellar, got %+v", places)
	}
}

func TestFind_EmptyMetadata(t *testing.T) {
	client := &mockClient{chunks: nil}
	service := NewService(client)

	places, err := service.Find(context.Background(), "Stout", geo.Coordinates{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected empty result, got %+v", places)
	}
}

func TestFind_TransportError(t *testing.T) {
	client := &mockClient{err: errors.New("timeout")}
	service := NewService(client)

	if _, err := service.Find(context.Background(), "Stout", geo.Coordinates{}); !errors.Is(err, ErrNearbyFetch) {
		t.Fatalf("expected ErrNearbyFetch, got %v", err)
	}
}

func TestFind_PromptAndCoordinates(t *testing.T) {
	client := &mockClient{}
	service := NewService(client)

	coords := geo.Coordinates{Latitude: 51.5, Longitude: -0.12}
	if _, err := service.Find(context.Background(), "Old Fashioned", coords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastLat != 51.5 || client.lastLng != -0.12 {
		t.Errorf("coordinates not forwarded: lat=%v lng=%v", client.lastLat, client.lastLng)
	}
	if want := `"Old Fashioned"`; !strings.Contains(client.lastPrompt, want) {
		t.Errorf("prompt missing drink name: %s", client.lastPrompt)
	}
}
