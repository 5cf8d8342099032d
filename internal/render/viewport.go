package render

import (
	"math"

	"github.com/ugaemi/graphfight-server/internal/geometry"
)

// Viewport maps world coordinates inside area onto a cols x rows grid of
// terminal cells. World y grows upward, rows grow downward.
type Viewport struct {
	area geometry.Rectangle
	cols int
	rows int
}

func NewViewport(area geometry.Rectangle, cols, rows int) Viewport {
	return Viewport{area: area, cols: cols, rows: rows}
}

// Cell returns the cell containing p, clamped to the grid.
func (v Viewport) Cell(p geometry.Point) (col, row int) {
	fx := v.area.RangeH().Interpolate(p.X)
	fy := 1 - v.area.RangeV().Interpolate(p.Y)

	col = clampInt(int(math.Floor(fx*float64(v.cols))), 0, v.cols-1)
	row = clampInt(int(math.Floor(fy*float64(v.rows))), 0, v.rows-1)
	return col, row
}

// Center returns the world point at the middle of a cell.
func (v Viewport) Center(col, row int) geometry.Point {
	x := v.area.Left() + (float64(col)+0.5)/float64(v.cols)*v.area.Width()
	y := v.area.Top() - (float64(row)+0.5)/float64(v.rows)*v.area.Height()
	return geometry.NewPoint(x, y)
}

// CellBounds returns the inclusive cell range covered by r.
func (v Viewport) CellBounds(r geometry.Rectangle) (left, top, right, bottom int) {
	left, top = v.Cell(geometry.NewPoint(r.Left(), r.Top()))
	right, bottom = v.Cell(geometry.NewPoint(r.Right(), r.Bottom()))
	return left, top, right, bottom
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
