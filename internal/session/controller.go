package session

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/favorites"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/history"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/nearby"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/speech"
)

const (
	msgEmptyQuery       = "Please enter a dish or menu."
	msgPairingFailed    = "Sorry, we couldn't find pairings for that. Please try another dish."
	msgNearbyFailed     = "Could not find places nearby."
	msgLocationRequired = "Please enable location services to find nearby places."
)

// ErrValidation marks a rejected user input; no service call was made.
var ErrValidation = errors.New("validation failed")

// ErrLocationRequired guards the nearby lookup while location is not granted.
var ErrLocationRequired = errors.New(msgLocationRequired)

// ErrVoiceUnavailable reports the speech capability as disabled, not failed.
var ErrVoiceUnavailable = errors.New("voice input is not available")

// Controller sequences the services and owns every state transition.
type Controller struct {
	sessions    *Manager
	pairings    *pairing.Service
	venues      *nearby.Service
	favorites   *favorites.Service
	history     *history.Service
	resolver    *geo.Resolver
	transcriber speech.Transcriber
}

func NewController(
	sessions *Manager,
	pairings *pairing.Service,
	venues *nearby.Service,
	favService *favorites.Service,
	histService *history.Service,
	resolver *geo.Resolver,
	transcriber speech.Transcriber,
) *Controller {
	return &Controller{
		sessions:    sessions,
		pairings:    pairings,
		venues:      venues,
		favorites:   favService,
		history:     histService,
		resolver:    resolver,
		transcriber: transcriber,
	}
}

// State returns the client's current state.
func (c *Controller) State(ctx context.Context, clientID string) State {
	sess := c.sessions.Get(ctx, clientID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state
}

// Search runs one pairing search. The lifecycle is Searching then exactly
// one of Success/Failed; a resolution belonging to an older search than the
// newest started one is discarded inside Reduce.
func (c *Controller) Search(
	ctx context.Context,
	clientID string,
	query string,
	budget string,
	seasonOverride string,
) (State, error) {

	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()

	if seasonOverride != "" {
		season, err := pairing.ParseSeason(seasonOverride)
		if err != nil {
			state := sess.state
			sess.mu.Unlock()
			return state, err
		}
		sess.state = Reduce(sess.state, SeasonSet{Season: season})
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		sess.state = Reduce(sess.state, ValidationFailed{Message: msgEmptyQuery})
		state := sess.state
		sess.mu.Unlock()
		return state, ErrValidation
	}

	updated := c.history.Record(ctx, clientID, sess.state.History, trimmed)
	sess.state = Reduce(sess.state, HistoryUpdated{History: updated})

	sess.nextSeq++
	seq := sess.nextSeq
	sess.state = Reduce(sess.state, SearchStarted{Seq: seq, Query: trimmed, Budget: strings.TrimSpace(budget)})
	season := sess.state.Season
	budgetUsed := sess.state.Budget

	sess.mu.Unlock()

	// The call runs outside the session lock so overlapping searches and
	// nearby lookups proceed independently.
	recs, err := c.pairings.Recommend(ctx, trimmed, season, budgetUsed)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		sess.state = Reduce(sess.state, SearchFailed{Seq: seq, Message: msgPairingFailed})
	} else {
		sess.state = Reduce(sess.state, SearchSucceeded{Seq: seq, Recommendations: recs})
	}

	return sess.state, nil
}

// FindNearby runs one per-drink venue lookup, gated on granted location.
func (c *Controller) FindNearby(
	ctx context.Context,
	clientID string,
	drinkName string,
) (State, error) {

	drinkName = strings.TrimSpace(drinkName)
	if drinkName == "" {
		return c.State(ctx, clientID), ErrValidation
	}

	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()
	if sess.state.Location != geo.PermissionGranted || sess.state.Coordinates == nil {
		state := sess.state
		sess.mu.Unlock()
		return state, ErrLocationRequired
	}
	coords := *sess.state.Coordinates
	sess.state = Reduce(sess.state, NearbyStarted{Drink: drinkName})
	sess.mu.Unlock()

	places, err := c.venues.Find(ctx, drinkName, coords)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		sess.state = Reduce(sess.state, NearbyFailed{Drink: drinkName, Message: msgNearbyFailed})
	} else {
		sess.state = Reduce(sess.state, NearbyLoaded{Drink: drinkName, Places: places})
	}

	return sess.state, nil
}

// ToggleFavorite flips membership by (name, type) and persists the shelf.
func (c *Controller) ToggleFavorite(
	ctx context.Context,
	clientID string,
	rec pairing.Recommendation,
) State {

	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	updated := c.favorites.Toggle(ctx, clientID, sess.state.Favorites, rec)
	sess.state = Reduce(sess.state, FavoritesUpdated{Favorites: updated})
	return sess.state
}

// ReportLocation accepts either device coordinates or a free-text address.
// Any failure lands in the denied state; re-calling is the manual retry.
func (c *Controller) ReportLocation(
	ctx context.Context,
	clientID string,
	coords *geo.Coordinates,
	address string,
) State {

	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch {
	case coords != nil:
		sess.state = Reduce(sess.state, LocationGranted{Coordinates: *coords})

	case strings.TrimSpace(address) != "":
		resolved, err := c.resolver.Resolve(address)
		if err != nil {
			log.Printf("session: geocoding failed for client %s: %v", clientID, err)
			sess.state = Reduce(sess.state, LocationDenied{})
			break
		}
		sess.state = Reduce(sess.state, LocationGranted{Coordinates: resolved})

	default:
		sess.state = Reduce(sess.state, LocationDenied{})
	}

	return sess.state
}

// Voice transcribes one utterance and feeds it straight into a search.
// Transcription failures are logged only; the session returns to idle.
func (c *Controller) Voice(
	ctx context.Context,
	clientID string,
	audio io.Reader,
	cfg speech.AudioConfig,
) (State, error) {

	if c.transcriber == nil || !c.transcriber.Available() {
		return c.State(ctx, clientID), ErrVoiceUnavailable
	}

	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()
	sess.state = Reduce(sess.state, ListeningSet{On: true})
	sess.mu.Unlock()

	transcript, err := c.transcriber.Transcribe(ctx, audio, cfg)

	sess.mu.Lock()
	sess.state = Reduce(sess.state, ListeningSet{On: false})
	state := sess.state
	sess.mu.Unlock()

	if err != nil {
		log.Printf("session: transcription failed for client %s: %v", clientID, err)
		return state, nil
	}

	return c.Search(ctx, clientID, transcript, state.Budget, "")
}

// ClearHistory empties the search history and persists immediately.
func (c *Controller) ClearHistory(ctx context.Context, clientID string) State {
	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	c.history.Clear(ctx, clientID)
	sess.state = Reduce(sess.state, HistoryUpdated{History: nil})
	return sess.state
}

// SetTab switches between the recommendations and favorites views.
func (c *Controller) SetTab(ctx context.Context, clientID string, tab Tab) (State, error) {
	if tab != TabRecommendations && tab != TabFavorites {
		return c.State(ctx, clientID), ErrValidation
	}

	sess := c.sessions.Get(ctx, clientID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state = Reduce(sess.state, TabSet{Tab: tab})
	return sess.state, nil
}

// VoiceAvailable reports whether the speech capability is configured.
func (c *Controller) VoiceAvailable() bool {
	return c.transcriber != nil && c.transcriber.Available()
}
