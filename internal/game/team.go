package game

import "github.com/ugaemi/graphfight-server/internal/geometry"

// Team is an ordered group of players confined to one zone of the arena.
type Team struct {
	Index   int
	Area    geometry.Rectangle
	Players []*Player

	current int
}

func NewTeam(index int, area geometry.Rectangle) *Team {
	return &Team{Index: index, Area: area}
}

// IsAlive reports whether at least one player of the team is alive.
func (t *Team) IsAlive() bool {
	for _, p := range t.Players {
		if p.IsAlive() {
			return true
		}
	}
	return false
}

// CurrentPlayer returns the player selected to act, or nil for an empty team.
func (t *Team) CurrentPlayer() *Player {
	if len(t.Players) == 0 {
		return nil
	}
	return t.Players[t.current]
}

// NextPlayer advances to the next living player, wrapping around. The
// current player is chosen again only if it is the last one alive.
func (t *Team) NextPlayer() *Player {
	n := len(t.Players)
	for step := 1; step <= n; step++ {
		idx := (t.current + step) % n
		if t.Players[idx].IsAlive() {
			t.current = idx
			return t.Players[idx]
		}
	}
	return nil
}
