package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_Square4(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), 10, 10)

	parts := a.Partition(4)
	require.Len(t, parts, 4)

	expected := []Point{{-2.5, -2.5}, {2.5, -2.5}, {-2.5, 2.5}, {2.5, 2.5}}
	for i, p := range parts {
		assert.InDelta(t, expected[i].X, p.Pos().X, 1e-9, "partition %d x", i)
		assert.InDelta(t, expected[i].Y, p.Pos().Y, 1e-9, "partition %d y", i)
		assert.InDelta(t, 5.0, p.Width(), 1e-9, "partition %d width", i)
		assert.InDelta(t, 5.0, p.Height(), 1e-9, "partition %d height", i)
	}
}

func TestPartition_One(t *testing.T) {
	a := NewRectangle(NewPoint(3, -1), 7, 2)
	assert.Equal(t, []Rectangle{a}, a.Partition(1))
}

func TestPartition_WideSplitsAlongX(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), 20, 10)

	parts := a.Partition(2)
	require.Len(t, parts, 2)
	assert.InDelta(t, -5.0, parts[0].Pos().X, 1e-9)
	assert.InDelta(t, 5.0, parts[1].Pos().X, 1e-9)
	assert.InDelta(t, 10.0, parts[0].Width(), 1e-9)
	assert.InDelta(t, 10.0, parts[0].Height(), 1e-9)
}

func TestPartition_OddGivesExtraToFirstHalf(t *testing.T) {
	a := NewRectangle(NewPoint(0, 0), 10, 10)

	// Square splits along y: bottom half gets 2 (split along x), top half 1.
	parts := a.Partition(3)
	require.Len(t, parts, 3)

	assert.InDelta(t, -2.5, parts[0].Pos().X, 1e-9)
	assert.InDelta(t, -2.5, parts[0].Pos().Y, 1e-9)
	assert.InDelta(t, 2.5, parts[1].Pos().X, 1e-9)
	assert.InDelta(t, -2.5, parts[1].Pos().Y, 1e-9)
	assert.InDelta(t, 0.0, parts[2].Pos().X, 1e-9)
	assert.InDelta(t, 2.5, parts[2].Pos().Y, 1e-9)
	assert.InDelta(t, 10.0, parts[2].Width(), 1e-9)
	assert.InDelta(t, 5.0, parts[2].Height(), 1e-9)
}

func TestPartition_TilesParent(t *testing.T) {
	rects := []Rectangle{
		NewRectangle(NewPoint(0, 0), 10, 10),
		NewRectangle(NewPoint(-4, 9), 37, 11),
		NewRectangle(NewPoint(100, 100), 3, 50),
	}

	for _, r := range rects {
		for n := 1; n <= 17; n++ {
			parts := r.Partition(n)
			require.Len(t, parts, n)

			total := 0.0
			for _, p := range parts {
				total += p.Area()
				const eps = 1e-9
				assert.GreaterOrEqual(t, p.Left(), r.Left()-eps, "%v escapes %v", p, r)
				assert.LessOrEqual(t, p.Right(), r.Right()+eps, "%v escapes %v", p, r)
				assert.GreaterOrEqual(t, p.Bottom(), r.Bottom()-eps, "%v escapes %v", p, r)
				assert.LessOrEqual(t, p.Top(), r.Top()+eps, "%v escapes %v", p, r)
			}
			assert.InDelta(t, r.Area(), total, 1e-6, "n=%d", n)

			// Interiors must be disjoint.
			for i := range parts {
				for j := i + 1; j < len(parts); j++ {
					a, b := parts[i], parts[j]
					overlapW := min(a.Right(), b.Right()) - max(a.Left(), b.Left())
					overlapH := min(a.Top(), b.Top()) - max(a.Bottom(), b.Bottom())
					assert.False(t, overlapW > 1e-9 && overlapH > 1e-9, "n=%d: %v overlaps %v", n, a, b)
				}
			}
		}
	}
}

func TestPartition_PowerOfTwoEqualAreas(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), 40, 30)
	for _, n := range []int{2, 4, 8, 16} {
		for _, p := range r.Partition(n) {
			assert.InDelta(t, r.Area()/float64(n), p.Area(), 1e-9, "n=%d", n)
		}
	}
}

func TestPartition_PanicsOnZero(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), 1, 1)
	assert.Panics(t, func() { r.Partition(0) })
}
