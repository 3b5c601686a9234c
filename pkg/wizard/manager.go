package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("wizard session not found")

// Session pairs a live wizard state with its id and activity timestamp.
type Session struct {
	ID        string
	State     State
	UpdatedAt time.Time
}

// Manager owns the active wizard sessions. WizardState is ephemeral by
// contract: sessions live in memory only, expire after the TTL and are
// purged by the cron job. Each session is owned by one form flow; the
// manager's lock only guards the map itself.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	ttl      time.Duration
}

// NewManager creates a session manager with the given TTL.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Start opens a session for a lead kind and returns its id and state.
func (m *Manager) Start(d *forms.Descriptor) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		State:     NewState(d),
		UpdatedAt: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns a copy of the session, or ErrSessionNotFound.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok || time.Since(s.UpdatedAt) > m.ttl {
		return Session{}, ErrSessionNotFound
	}
	return *s, nil
}

// Put stores the new state for an existing session.
func (m *Manager) Put(id string, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.State = state
	s.UpdatedAt = time.Now()
	return nil
}

// PutIfAttempt stores state only while the session still carries the
// given attempt token. It reports false when the session was reset or
// discarded in the meantime, so late submission responses are dropped.
func (m *Manager) PutIfAttempt(id, attemptToken string, state State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.State.AttemptToken != attemptToken {
		return false
	}
	s.State = state
	s.UpdatedAt = time.Now()
	return true
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PurgeExpired drops sessions idle past the TTL and returns how many
// were removed. Called from the cron manager.
func (m *Manager) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	now := time.Now()
	for id, s := range m.sessions {
		if now.Sub(s.UpdatedAt) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Kinds returns the kind of each live session, for stats logging.
func (m *Manager) Kinds() map[models.Kind]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[models.Kind]int)
	for _, s := range m.sessions {
		out[s.State.Kind]++
	}
	return out
}
