package game

import (
	"github.com/google/uuid"

	"github.com/ugaemi/graphfight-server/internal/geometry"
)

// Player is a circular entity owned by exactly one team.
type Player struct {
	ID      string
	Team    int
	Shape   geometry.Circle
	Alive   bool
	Formula string
}

// NewPlayer creates a living player of the given team.
func NewPlayer(team int, shape geometry.Circle) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Team:  team,
		Shape: shape,
		Alive: true,
	}
}

// Pos returns the player's center.
func (p *Player) Pos() geometry.Point {
	return p.Shape.Pos()
}

// Radius returns the player's radius.
func (p *Player) Radius() float64 {
	return p.Shape.Radius()
}

func (p *Player) Kill() {
	p.Alive = false
}

func (p *Player) Revive() {
	p.Alive = true
}

func (p *Player) IsAlive() bool {
	return p.Alive
}

// SetFormula stores the formula the player fires with on its turn.
func (p *Player) SetFormula(formula string) {
	p.Formula = formula
}
