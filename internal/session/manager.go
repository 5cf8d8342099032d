package session

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ugaemi/graphfight-server/internal/game"
)

// Manager manages all active sessions.
type Manager struct {
	sessions map[string]*Session // code -> session
	codes    *rand.Rand          // guarded by mu
	mu       sync.RWMutex
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		codes:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create registers g under a fresh code and returns the session.
func (m *Manager) Create(g *game.Game) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := NewCode(m.codes, m.inUse)
	s := NewSession(code, g)
	m.sessions[code] = s

	slog.Info("session created", "code", code, "game", g.ID)
	return s
}

// inUse must be called with mu held.
func (m *Manager) inUse(code string) bool {
	_, ok := m.sessions[code]
	return ok
}

// Get returns a session by its code.
func (m *Manager) Get(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[code]
}

// Remove removes a session by its code.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, code)
	slog.Info("session removed", "code", code)
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// FindByClient returns every session the client is subscribed to.
func (m *Manager) FindByClient(clientID string) []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found []*Session
	for _, s := range m.sessions {
		if s.HasClient(clientID) {
			found = append(found, s)
		}
	}
	return found
}

// Leave unsubscribes the client from s and drops s once it is empty.
func (m *Manager) Leave(s *Session, clientID string) {
	s.RemoveClient(clientID)
	if s.IsEmpty() {
		m.Remove(s.Code)
	}
}

// LeaveAll unsubscribes the client from every session it watches.
func (m *Manager) LeaveAll(clientID string) {
	for _, s := range m.FindByClient(clientID) {
		m.Leave(s, clientID)
	}
}
