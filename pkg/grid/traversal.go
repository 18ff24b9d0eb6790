package grid

import (
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
)

// Intersect walks the cells pierced by ray in distance order and returns
// the nearest hit. The walk stops as soon as the best hit lies strictly
// before the next cell boundary, since no farther cell can hold a
// nearer surface.
func (g *Grid) Intersect(ray core.Ray) geometry.Intersection {
	best := geometry.NoHit()
	if len(g.shapes) == 0 || ray.Direction.IsZero() {
		return best
	}

	tEnter, _, ok := ray.IntersectBox(g.Bounds)
	if !ok {
		return best
	}
	tEnter = max(tEnter, 0)
	entry := ray.At(tEnter)

	var (
		cell  [3]int     // Current cell
		step  [3]int     // +1 or -1 per axis
		exit  [3]int     // Index at which the ray leaves the grid
		next  [3]float64 // t of the next boundary crossing
		delta [3]float64 // t to cross one whole cell
	)
	for axis := 0; axis < 3; axis++ {
		offset := entry.Axis(axis) - g.Bounds.Min.Axis(axis)
		size := g.cellSize.Axis(axis)
		cell[axis] = max(0, min(g.Cells[axis]-1, int(math.Floor(offset/size))))

		d := ray.Direction.Axis(axis)
		switch {
		case d > 0:
			boundary := float64(cell[axis]+1) * size
			next[axis] = tEnter + (boundary-offset)/d
			delta[axis] = size / d
			step[axis] = 1
			exit[axis] = g.Cells[axis]
		case d < 0:
			boundary := float64(cell[axis]) * size
			next[axis] = tEnter + (boundary-offset)/d
			delta[axis] = -size / d
			step[axis] = -1
			exit[axis] = -1
		default:
			next[axis] = math.Inf(1)
			delta[axis] = math.Inf(1)
			exit[axis] = -1
		}
	}

	for {
		shapes := g.cells[g.index(cell[0], cell[1], cell[2])]
		if hit := geometry.IntersectObjects(shapes, ray); best.Closer(hit) {
			best = hit
		}

		axis := nextAxis(next)
		if best.Hit && best.T < next[axis] {
			return best
		}
		cell[axis] += step[axis]
		if cell[axis] == exit[axis] {
			return best
		}
		next[axis] += delta[axis]
	}
}

// nextAxis returns the axis with the nearest boundary crossing. Ties
// resolve x before y before z.
func nextAxis(next [3]float64) int {
	if next[0] <= next[1] {
		if next[0] <= next[2] {
			return 0
		}
		return 2
	}
	if next[1] <= next[2] {
		return 1
	}
	return 2
}
