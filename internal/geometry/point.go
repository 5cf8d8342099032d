package geometry

import (
	"math"
	"math/rand"
)

// Point is a 2D coordinate in world units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the vector difference p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// DistanceTo calculates the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// RandomPoint draws x from xRange and y from yRange with two independent
// uniform draws, x first. The draw order is part of the layout's determinism.
func RandomPoint(xRange, yRange Range[float64], rng *rand.Rand) Point {
	x := rng.Float64()*xRange.Width() + xRange.Min()
	y := rng.Float64()*yRange.Width() + yRange.Min()
	return Point{X: x, Y: y}
}
