package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/ugaemi/graphfight-server/internal/geometry"
)

// Arena owns everything placed in one game: obstacles and teams inside a
// rectangle centered at the origin.
type Arena struct {
	Area      geometry.Rectangle
	Obstacles []*Obstacle
	Teams     []*Team
}

func NewArena(width, height float64) *Arena {
	return &Arena{
		Area: geometry.NewRectangle(geometry.NewPoint(0, 0), width, height),
	}
}

// AddTeams partitions the arena into len(sizes) zones and fills zone i with
// sizes[i] players.
func (a *Arena) AddTeams(sizes []int, radius float64, rng *rand.Rand) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no teams requested", ErrInvalidOptions)
	}

	zones := a.Area.Partition(len(sizes))
	for i, size := range sizes {
		team := NewTeam(i, zones[i])
		if err := team.AddPlayers(size, radius, a, rng); err != nil {
			return err
		}
		a.Teams = append(a.Teams, team)
	}
	return nil
}

// Clear drops all obstacles and teams, keeping the area.
func (a *Arena) Clear() {
	a.Obstacles = nil
	a.Teams = nil
}

// Players returns every player in team order.
func (a *Arena) Players() []*Player {
	var players []*Player
	for _, t := range a.Teams {
		players = append(players, t.Players...)
	}
	return players
}

// BuildArena fills a fresh arena from opts, starting over from a blank
// arena whenever a placement fails. The rng keeps advancing across
// attempts. It returns the arena and the number of attempts used.
func BuildArena(opts Options, rng *rand.Rand) (*Arena, int, error) {
	arena := NewArena(2*opts.HalfWidth, 2*opts.HalfHeight)
	sizes := opts.TeamSizes()

	var lastErr error
	for attempt := 1; attempt <= MaxArenaAttempts; attempt++ {
		arena.Clear()

		err := arena.AddObstacles(opts.NumObstacles, opts.MinObstacleSize, opts.MaxObstacleSize, rng)
		if err == nil {
			err = arena.AddTeams(sizes, opts.PlayerRadius, rng)
		}
		if err == nil {
			slog.Debug("arena built", "attempt", attempt, "obstacles", len(arena.Obstacles), "teams", len(arena.Teams))
			return arena, attempt, nil
		}
		if errors.Is(err, ErrInvalidOptions) {
			return nil, attempt, err
		}

		lastErr = err
		slog.Debug("arena attempt failed", "attempt", attempt, "error", err)
	}

	arena.Clear()
	return nil, MaxArenaAttempts, fmt.Errorf("%w (%d attempts, last: %w)", ErrArenaExhausted, MaxArenaAttempts, lastErr)
}
