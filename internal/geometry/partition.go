package geometry

import "fmt"

// Partition splits r into n rectangles of similar area that tile r exactly.
//
// The longer side is halved (width > height splits along x, otherwise along
// y) and both halves are partitioned recursively. When n is odd the first
// half (left or bottom) receives the extra partition. The first half's
// partitions come before the second half's in the result.
//
// Partition panics if n < 1.
func (r Rectangle) Partition(n int) []Rectangle {
	if n < 1 {
		panic(fmt.Sprintf("geometry: cannot partition into %d rectangles, the minimum is 1", n))
	}
	if n == 1 {
		return []Rectangle{r}
	}

	var first, second Rectangle
	if r.width > r.height {
		offset := Point{X: r.width / 4}
		first = NewRectangle(r.pos.Sub(offset), r.width/2, r.height)
		second = NewRectangle(r.pos.Add(offset), r.width/2, r.height)
	} else {
		offset := Point{Y: r.height / 4}
		first = NewRectangle(r.pos.Sub(offset), r.width, r.height/2)
		second = NewRectangle(r.pos.Add(offset), r.width, r.height/2)
	}

	parts := first.Partition(n/2 + n%2)
	return append(parts, second.Partition(n/2)...)
}
