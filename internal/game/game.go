package game

import (
	"log/slog"

	"github.com/google/uuid"
)

// Game is one seeded arena plus the turn state played on top of it.
type Game struct {
	ID      string
	Options Options
	Arena   *Arena
	State   State

	attempts    int
	currentTeam int
}

// NewGame validates opts and returns a game in the setup state.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		ID:      uuid.New().String(),
		Options: opts,
		State:   StateSetup,
	}, nil
}

// Init builds the arena from a generator seeded with Options.Seed. Calling it
// again with the same options reproduces the same layout.
func (g *Game) Init() error {
	rng := NewRNG(g.Options.Seed)

	arena, attempts, err := BuildArena(g.Options, rng)
	g.attempts = attempts
	if err != nil {
		slog.Warn("arena generation failed", "game", g.ID, "seed", g.Options.Seed, "attempts", attempts, "error", err)
		return err
	}

	g.Arena = arena
	g.currentTeam = 0
	g.State = StatePlaying
	slog.Info("arena built", "game", g.ID, "seed", g.Options.Seed, "attempts", attempts)
	return nil
}

// Attempts reports how many whole-arena attempts the last Init used.
func (g *Game) Attempts() int {
	return g.attempts
}

// CurrentTeamIndex returns the index of the team whose turn it is.
func (g *Game) CurrentTeamIndex() int {
	return g.currentTeam
}
