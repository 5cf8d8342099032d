package session

import (
	"sync"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/snapshot"
)

// Sender is the part of a connected client a session needs.
type Sender interface {
	SendRaw(data []byte)
	SendBinary(data []byte)
}

// Session is one generated game and the clients watching it.
type Session struct {
	Code string

	game    *game.Game
	clients map[string]Sender

	mu sync.RWMutex
}

func NewSession(code string, g *game.Game) *Session {
	return &Session{
		Code:    code,
		game:    g,
		clients: make(map[string]Sender),
	}
}

// AddClient subscribes a client to the session.
func (s *Session) AddClient(id string, c Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = c
}

// RemoveClient unsubscribes a client.
func (s *Session) RemoveClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}

func (s *Session) HasClient(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clients[id]
	return ok
}

func (s *Session) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// IsEmpty returns true if nobody is subscribed.
func (s *Session) IsEmpty() bool {
	return s.ClientCount() == 0
}

// Layout returns a snapshot of the current game.
func (s *Session) Layout() snapshot.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l := snapshot.FromGame(s.game)
	l.Code = s.Code
	return l
}

// NextTurn ends the current team's turn and hands it to the next living
// team. It returns that team's index and the player selected to act; ok is
// false when the game is over.
func (s *Session) NextTurn() (team int, player *game.Player, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.game.CurrentTeam()
	t, ok := s.game.NextTeam()
	if !ok {
		return s.game.CurrentTeamIndex(), nil, false
	}
	prev.NextPlayer()

	player = t.CurrentPlayer()
	if player != nil && !player.IsAlive() {
		player = t.NextPlayer()
	}
	return t.Index, player, true
}

// KillPlayer marks a player dead. It returns false for unknown IDs.
func (s *Session) KillPlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.KillPlayer(playerID)
}

// State returns the game state.
func (s *Session) State() game.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.State
}

// Broadcast sends a text frame to every subscribed client.
func (s *Session) Broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		c.SendRaw(data)
	}
}

// Winner returns the last team standing, or -1.
func (s *Session) Winner() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.game.Arena == nil {
		return -1
	}
	return game.Winner(s.game.Arena.Teams)
}
