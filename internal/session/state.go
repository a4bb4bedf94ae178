package session

import (
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/nearby"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type Tab string

const (
	TabRecommendations Tab = "recommendations"
	TabFavorites       Tab = "favorites"
)

// NearbyState is the per-drink lifecycle of a nearby-venue lookup.
type NearbyState struct {
	Places    []nearby.Place `json:"places"`
	IsLoading bool           `json:"isLoading"`
	Error     string         `json:"error,omitempty"`
}

// State is the whole application state of one client. It is only ever
// changed by Reduce, one action at a time.
type State struct {
	Query            string                             `json:"query"`
	Budget           string                             `json:"budget"`
	Season           pairing.Season                     `json:"season"`
	Searching        bool                               `json:"searching"`
	Recommendations  []pairing.Recommendation           `json:"recommendations"`
	Err              string                             `json:"error,omitempty"`
	ActiveTab        Tab                                `json:"activeTab"`
	NearbyPlaces     map[string]NearbyState             `json:"nearbyPlaces"`
	Favorites        []pairing.Recommendation           `json:"favorites"`
	History          []string                           `json:"searchHistory"`
	Location         geo.Permission                     `json:"locationPermission"`
	Coordinates      *geo.Coordinates                   `json:"coordinates,omitempty"`
	Listening        bool                               `json:"listening"`

	// latestSeq is the sequence number of the newest search ever started.
	// Resolutions carrying an older number are stale and are discarded.
	latestSeq uint64
}

// Action is one explicit state transition.
type Action interface{ isAction() }

type SearchStarted struct {
	Seq    uint64
	Query  string
	Budget string
}

type SearchSucceeded struct {
	Seq             uint64
	Recommendations []pairing.Recommendation
}

type SearchFailed struct {
	Seq     uint64
	Message string
}

type ValidationFailed struct{ Message string }

type HistoryUpdated struct{ History []string }

type FavoritesUpdated struct{ Favorites []pairing.Recommendation }

type NearbyStarted struct{ Drink string }

type NearbyLoaded struct {
	Drink  string
	Places []nearby.Place
}

type NearbyFailed struct {
	Drink   string
	Message string
}

type SeasonSet struct{ Season pairing.Season }

type TabSet struct{ Tab Tab }

type LocationGranted struct{ Coordinates geo.Coordinates }

type LocationDenied struct{}

type ListeningSet struct{ On bool }

func (SearchStarted) isAction()    {}
func (SearchSucceeded) isAction()  {}
func (SearchFailed) isAction()     {}
func (ValidationFailed) isAction() {}
func (HistoryUpdated) isAction()   {}
func (FavoritesUpdated) isAction() {}
func (NearbyStarted) isAction()    {}
func (NearbyLoaded) isAction()     {}
func (NearbyFailed) isAction()     {}
func (SeasonSet) isAction()        {}
func (TabSet) isAction()           {}
func (LocationGranted) isAction()  {}
func (LocationDenied) isAction()   {}
func (ListeningSet) isAction()     {}

// NewState is the state of a freshly opened session.
func NewState(season pairing.Season) State {
	return State{
		Season:       season,
		ActiveTab:    TabRecommendations,
		NearbyPlaces: map[string]NearbyState{},
		Location:     geo.PermissionPrompt,
	}
}

// Reduce applies one action and returns the next state. Pure: the input
// state is never modified.
func Reduce(s State, action Action) State {
	switch a := action.(type) {

	case SearchStarted:
		if a.Seq <= s.latestSeq {
			return s
		}
		s.latestSeq = a.Seq
		s.Query = a.Query
		s.Budget = a.Budget
		s.Searching = true
		s.Err = ""
		s.Recommendations = nil
		s.NearbyPlaces = map[string]NearbyState{}
		s.ActiveTab = TabRecommendations
		return s

	case SearchSucceeded:
		if a.Seq != s.latestSeq {
			return s
		}
		s.Searching = false
		s.Recommendations = a.Recommendations
		s.Err = ""
		return s

	case SearchFailed:
		if a.Seq != s.latestSeq {
			return s
		}
		s.Searching = false
		s.Recommendations = nil
		s.Err = a.Message
		return s

	case ValidationFailed:
		s.Err = a.Message
		return s

	case HistoryUpdated:
		s.History = a.History
		return s

	case FavoritesUpdated:
		s.Favorites = a.Favorites
		return s

	case NearbyStarted:
		s.NearbyPlaces = copyNearby(s.NearbyPlaces)
		s.NearbyPlaces[a.Drink] = NearbyState{Places: []nearby.Place{}, IsLoading: true}
		return s

	case NearbyLoaded:
		s.NearbyPlaces = copyNearby(s.NearbyPlaces)
		s.NearbyPlaces[a.Drink] = NearbyState{Places: a.Places, IsLoading: false}
		return s

	case NearbyFailed:
		s.NearbyPlaces = copyNearby(s.NearbyPlaces)
		s.NearbyPlaces[a.Drink] = NearbyState{Places: []nearby.Place{}, IsLoading: false, Error: a.Message}
		return s

	case SeasonSet:
		s.Season = a.Season
		return s

	case TabSet:
		s.ActiveTab = a.Tab
		return s

	case LocationGranted:
		coords := a.Coordinates
		s.Location = geo.PermissionGranted
		s.Coordinates = &coords
		return s

	case LocationDenied:
		s.Location = geo.PermissionDenied
		s.Coordinates = nil
		return s

	case ListeningSet:
		s.Listening = a.On
		return s
	}

	return s
}

func copyNearby(in map[string]NearbyState) map[string]NearbyState {
	out := make(map[string]NearbyState, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
