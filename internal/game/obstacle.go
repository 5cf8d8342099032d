package game

import (
	"math/rand"

	"github.com/ugaemi/graphfight-server/internal/geometry"
)

// Obstacle is a static circle. Obstacles may overlap each other and the
// arena boundary; only players have to stay clear of them.
type Obstacle struct {
	Shape geometry.Circle
}

// NewObstacle creates an obstacle from its shape.
func NewObstacle(shape geometry.Circle) *Obstacle {
	return &Obstacle{Shape: shape}
}

// obstacleSize draws a radius from Normal((max-min)/2, ObstacleSizeStdDev)
// clamped into [min, max].
func obstacleSize(rng *rand.Rand, min, max float64) float64 {
	mean := (max - min) / 2
	size := rng.NormFloat64()*ObstacleSizeStdDev + mean
	if size < min {
		return min
	}
	if size > max {
		return max
	}
	return size
}

// AddObstacles places count obstacles anywhere in the arena. Each position
// only has to avoid existing players; earlier obstacles do not block later ones.
func (a *Arena) AddObstacles(count int, minSize, maxSize float64, rng *rand.Rand) error {
	rangeH := a.Area.RangeH()
	rangeV := a.Area.RangeV()
	v := obstacleValidator{arena: a}

	for i := 0; i < count; i++ {
		size := obstacleSize(rng, minSize, maxSize)
		shape, err := FindPosition(rng, rangeH, rangeV, size, v)
		if err != nil {
			return &PlacementError{Kind: KindObstacle, Team: -1, Index: i, Err: err}
		}
		a.Obstacles = append(a.Obstacles, NewObstacle(shape))
	}
	return nil
}
