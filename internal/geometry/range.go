package geometry

import "fmt"

// Float is the set of element types a Range can hold.
type Float interface {
	~float32 | ~float64
}

// Range is a closed interval [min, max].
type Range[T Float] struct {
	min T
	max T
}

// NewRange creates a Range. It panics if min > max.
func NewRange[T Float](min, max T) Range[T] {
	if min > max {
		panic(fmt.Sprintf("geometry: range min %v must be smaller or equal than max %v", min, max))
	}
	return Range[T]{min: min, max: max}
}

// Min returns the lower bound.
func (r Range[T]) Min() T {
	return r.min
}

// Max returns the upper bound.
func (r Range[T]) Max() T {
	return r.max
}

// Width returns max - min.
func (r Range[T]) Width() T {
	return r.max - r.min
}

// Interpolate maps x linearly so that min -> 0 and max -> 1.
// Values outside the range map outside [0, 1].
func (r Range[T]) Interpolate(x T) T {
	return (x - r.min) / r.Width()
}

// SubtractBoth shrinks the range by d on both sides.
// It panics if the result would be inverted.
func (r Range[T]) SubtractBoth(d T) Range[T] {
	return NewRange(r.min+d, r.max-d)
}

// Contains reports whether x lies in the closed interval.
func (r Range[T]) Contains(x T) bool {
	return r.min <= x && x <= r.max
}
