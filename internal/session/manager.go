package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/favorites"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/history"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

// Session holds the live state of one client.
type Session struct {
	mu       sync.Mutex
	state    State
	nextSeq  uint64
	lastSeen time.Time
}

// Manager keeps sessions in memory, creating them lazily from the persisted
// collections, and evicts idle ones.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	favorites *favorites.Service
	history   *history.Service

	ttl time.Duration
	now func() time.Time
}

func NewManager(favService *favorites.Service, histService *history.Service, ttl time.Duration) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		favorites: favService,
		history:   histService,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Get returns the client's session, creating it on first touch. Creation
// loads favorites and history from storage; read failures have already been
// downgraded to empty collections by the services.
func (m *Manager) Get(ctx context.Context, clientID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[clientID]; ok {
		sess.mu.Lock()
		sess.lastSeen = m.now()
		sess.mu.Unlock()
		return sess
	}

	state := NewState(pairing.CurrentSeason(m.now()))
	state.Favorites = m.favorites.Load(ctx, clientID)
	state.History = m.history.Load(ctx, clientID)

	sess := &Session{
		state:    state,
		lastSeen: m.now(),
	}
	m.sessions[clientID] = sess
	return sess
}

// Sweep drops sessions idle longer than the TTL. Persisted favorites and
// history survive; only the transient view state goes.
func (m *Manager) Sweep() {
	if m.ttl <= 0 {
		return
	}

	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sess := range m.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(m.sessions, id)
		}
	}
}

// StartSweeper runs Sweep on a fixed interval until the scheduler is stopped.
func (m *Manager) StartSweeper(interval time.Duration) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)

	minutes := int(interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	if _, err := s.Every(minutes).Minutes().Do(m.Sweep); err != nil {
		log.Printf("session: failed to schedule sweep: %v", err)
		return s
	}

	s.StartAsync()
	return s
}
