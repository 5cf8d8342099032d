package game

import "github.com/ugaemi/graphfight-server/internal/geometry"

// Validator decides whether a candidate circle is an acceptable placement.
type Validator interface {
	Valid(shape geometry.Circle) bool
}

// ValidatorFunc adapts a plain function to a Validator.
type ValidatorFunc func(shape geometry.Circle) bool

// Valid calls f(shape).
func (f ValidatorFunc) Valid(shape geometry.Circle) bool {
	return f(shape)
}

// playerValidator accepts circles that stay inside the zone and clear of
// every player (the team being built and all finished teams) and obstacle.
type playerValidator struct {
	zone  geometry.Rectangle
	team  *Team
	arena *Arena
}

func (v playerValidator) Valid(shape geometry.Circle) bool {
	if !v.zone.ContainsCircle(shape) {
		return false
	}
	if v.team.CollidesWithPlayer(shape) {
		return false
	}
	if v.arena.CollidesWithPlayer(shape) {
		return false
	}
	return !v.arena.CollidesWithObstacle(shape)
}

// obstacleValidator accepts circles that do not touch any player.
type obstacleValidator struct {
	arena *Arena
}

func (v obstacleValidator) Valid(shape geometry.Circle) bool {
	return !v.arena.CollidesWithPlayer(shape)
}

// CollidesWithPlayer reports whether shape overlaps any player of the team.
func (t *Team) CollidesWithPlayer(shape geometry.Circle) bool {
	for _, p := range t.Players {
		if p.Shape.CollidesCircle(shape) {
			return true
		}
	}
	return false
}

// CollidesWithPlayer reports whether shape overlaps any player in the arena.
func (a *Arena) CollidesWithPlayer(shape geometry.Circle) bool {
	for _, t := range a.Teams {
		if t.CollidesWithPlayer(shape) {
			return true
		}
	}
	return false
}

// CollidesWithObstacle reports whether shape overlaps any obstacle.
func (a *Arena) CollidesWithObstacle(shape geometry.Circle) bool {
	for _, o := range a.Obstacles {
		if o.Shape.CollidesCircle(shape) {
			return true
		}
	}
	return false
}
