package game

import (
	"math/rand"

	"github.com/ugaemi/graphfight-server/internal/geometry"
)

// FindPosition draws candidate centers uniformly from xRange and yRange and
// returns the first circle of the given radius that v accepts. It gives up
// with ErrPositionNotFound after MaxPlacementAttempts draws.
//
// x and y are independent draws, so the sampling is uniform over the ranges
// and not weighted by area.
func FindPosition(rng *rand.Rand, xRange, yRange geometry.Range[float64], radius float64, v Validator) (geometry.Circle, error) {
	for i := 0; i < MaxPlacementAttempts; i++ {
		pos := geometry.RandomPoint(xRange, yRange, rng)
		shape := geometry.NewCircle(pos, radius)

		if v.Valid(shape) {
			return shape, nil
		}
	}
	return geometry.Circle{}, ErrPositionNotFound
}

// AddPlayers places teamSize players inside the team's zone. Samples are
// drawn from the whole zone and rejected when the circle pokes out of it.
func (t *Team) AddPlayers(teamSize int, radius float64, arena *Arena, rng *rand.Rand) error {
	rangeH := t.Area.RangeH()
	rangeV := t.Area.RangeV()
	v := playerValidator{zone: t.Area, team: t, arena: arena}

	for i := 0; i < teamSize; i++ {
		shape, err := FindPosition(rng, rangeH, rangeV, radius, v)
		if err != nil {
			return &PlacementError{Kind: KindPlayer, Team: t.Index, Index: i, Err: err}
		}
		t.Players = append(t.Players, NewPlayer(t.Index, shape))
	}
	return nil
}
