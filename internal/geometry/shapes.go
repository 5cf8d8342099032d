package geometry

import "fmt"

// Circle is a disk with a strictly positive radius.
type Circle struct {
	pos    Point
	radius float64
}

// NewCircle creates a Circle. It panics if radius <= 0.
func NewCircle(pos Point, radius float64) Circle {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: circle radius must be positive, got %v", radius))
	}
	return Circle{pos: pos, radius: radius}
}

// Pos returns the center.
func (c Circle) Pos() Point {
	return c.pos
}

// Radius returns the radius.
func (c Circle) Radius() float64 {
	return c.radius
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return c.pos.DistanceTo(p) <= c.radius
}

// CollidesCircle reports whether two circles overlap. Touching counts.
func (c Circle) CollidesCircle(o Circle) bool {
	return c.pos.DistanceTo(o.pos) <= c.radius+o.radius
}

// CollidesRect reports whether the circle overlaps r, using the point of r
// closest to the circle's center.
func (c Circle) CollidesRect(r Rectangle) bool {
	closest := Point{
		X: clamp(c.pos.X, r.Left(), r.Right()),
		Y: clamp(c.pos.Y, r.Bottom(), r.Top()),
	}
	return c.pos.DistanceTo(closest) <= c.radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rectangle is an axis-aligned rectangle described by its center.
// Y grows upwards: Top is pos.Y + height/2.
type Rectangle struct {
	pos    Point
	width  float64
	height float64
}

// NewRectangle creates a Rectangle centered at pos.
func NewRectangle(pos Point, width, height float64) Rectangle {
	return Rectangle{pos: pos, width: width, height: height}
}

// Pos returns the center.
func (r Rectangle) Pos() Point {
	return r.pos
}

func (r Rectangle) Width() float64 {
	return r.width
}

func (r Rectangle) Height() float64 {
	return r.height
}

func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) Left() float64 {
	return r.pos.X - r.width/2
}

func (r Rectangle) Right() float64 {
	return r.pos.X + r.width/2
}

func (r Rectangle) Top() float64 {
	return r.pos.Y + r.height/2
}

func (r Rectangle) Bottom() float64 {
	return r.pos.Y - r.height/2
}

// RangeH returns the horizontal extent [Left, Right].
func (r Rectangle) RangeH() Range[float64] {
	return NewRange(r.Left(), r.Right())
}

// RangeV returns the vertical extent [Bottom, Top].
func (r Rectangle) RangeV() Range[float64] {
	return NewRange(r.Bottom(), r.Top())
}

// Contains reports whether p lies inside or on the border of r.
func (r Rectangle) Contains(p Point) bool {
	return r.Left() <= p.X && p.X <= r.Right() &&
		r.Bottom() <= p.Y && p.Y <= r.Top()
}

// ContainsCircle reports whether c lies fully inside r, i.e. its center is
// at least c.Radius() away from every side.
func (r Rectangle) ContainsCircle(c Circle) bool {
	p := c.Pos()
	return r.Left()+c.Radius() <= p.X &&
		r.Right()-c.Radius() >= p.X &&
		r.Bottom()+c.Radius() <= p.Y &&
		r.Top()-c.Radius() >= p.Y
}

// CollidesRect reports whether two rectangles overlap. Shared edges count.
func (r Rectangle) CollidesRect(o Rectangle) bool {
	return r.Right() >= o.Left() &&
		r.Left() <= o.Right() &&
		r.Top() >= o.Bottom() &&
		r.Bottom() <= o.Top()
}

// CollidesCircle reports whether c overlaps r.
func (r Rectangle) CollidesCircle(c Circle) bool {
	return c.CollidesRect(r)
}

// String implements fmt.Stringer.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(center=(%g, %g), %gx%g)", r.pos.X, r.pos.Y, r.width, r.height)
}
