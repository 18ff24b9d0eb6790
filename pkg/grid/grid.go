// Package grid implements a uniform spatial grid over scene shapes and
// the incremental (DDA) traversal that finds the nearest hit along a ray
// while visiting only the cells the ray crosses.
package grid

import (
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
)

const (
	// DefaultDensity is the target average number of shapes per cell
	DefaultDensity = 2.0
	// MaxCellsPerAxis bounds the derived resolution of each axis
	MaxCellsPerAxis = 128
	// boundsPadding keeps flat scenes from producing zero-width cells
	boundsPadding = 1e-4
)

// Config selects the grid resolution. Explicit cell counts win when any
// axis is non-zero; otherwise counts are derived from Density.
type Config struct {
	Cells   [3]int  // Cells per axis, zero entries clamp to 1
	Density float64 // Average shapes per cell when deriving counts
}

// Grid partitions shapes into axis-aligned cells by their bounding
// boxes. A shape is referenced by every cell its box overlaps. The grid
// is read-only after construction and safe for concurrent queries.
type Grid struct {
	Bounds   core.AABB
	Size     core.Vec3 // World-space extent of Bounds
	Cells    [3]int
	cellSize core.Vec3
	cells    [][]geometry.Shape // Flattened x-fastest
	shapes   []geometry.Shape
}

// Stats summarises grid occupancy
type Stats struct {
	Cells      int     // Total cell count
	Occupied   int     // Cells holding at least one shape
	References int     // Shape references across all cells
	PerCell    float64 // Mean references per occupied cell
}

// New builds a grid over shapes
func New(shapes []geometry.Shape, config Config) *Grid {
	g := &Grid{shapes: shapes}
	if len(shapes) == 0 {
		g.Cells = [3]int{1, 1, 1}
		g.cells = make([][]geometry.Shape, 1)
		return g
	}

	g.Bounds = geometry.BoundsOf(shapes).Expand(boundsPadding)
	g.Size = g.Bounds.Size()
	g.Cells = resolveCells(config, g.Size, len(shapes))
	g.cellSize = core.NewVec3(
		g.Size.X/float64(g.Cells[0]),
		g.Size.Y/float64(g.Cells[1]),
		g.Size.Z/float64(g.Cells[2]),
	)

	g.cells = make([][]geometry.Shape, g.Cells[0]*g.Cells[1]*g.Cells[2])
	for _, shape := range shapes {
		lo, hi := g.cellRange(shape.BoundingBox())
		for z := lo[2]; z <= hi[2]; z++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for x := lo[0]; x <= hi[0]; x++ {
					i := g.index(x, y, z)
					g.cells[i] = append(g.cells[i], shape)
				}
			}
		}
	}

	stats := g.Stats()
	core.Logger().Debug("grid built",
		"shapes", len(shapes),
		"cells", g.Cells,
		"occupied", stats.Occupied,
		"references", stats.References)
	return g
}

// resolveCells picks the per-axis cell counts
func resolveCells(config Config, size core.Vec3, shapeCount int) [3]int {
	if config.Cells != [3]int{} {
		cells := config.Cells
		for axis := range cells {
			if cells[axis] < 1 {
				core.Logger().Debug("grid axis has no cells, clamping to 1", "axis", axis)
				cells[axis] = 1
			}
		}
		return cells
	}

	density := config.Density
	if density <= 0 {
		density = DefaultDensity
	}

	// Spread shapeCount/density cells over the non-degenerate axes in
	// proportion to their extent.
	extent := 1.0
	dims := 0
	for axis := 0; axis < 3; axis++ {
		if s := size.Axis(axis); s > 4*boundsPadding {
			extent *= s
			dims++
		}
	}
	cells := [3]int{1, 1, 1}
	if dims == 0 {
		return cells
	}
	k := math.Pow(float64(shapeCount)/density/extent, 1/float64(dims))
	for axis := 0; axis < 3; axis++ {
		s := size.Axis(axis)
		if s <= 4*boundsPadding {
			continue
		}
		cells[axis] = max(1, min(MaxCellsPerAxis, int(math.Round(s*k))))
	}
	return cells
}

// cellRange returns the inclusive cell index range overlapped by box
func (g *Grid) cellRange(box core.AABB) (lo, hi [3]int) {
	for axis := 0; axis < 3; axis++ {
		lo[axis] = g.cellCoord(box.Min.Axis(axis), axis)
		hi[axis] = g.cellCoord(box.Max.Axis(axis), axis)
	}
	return lo, hi
}

// cellCoord maps a world coordinate to a clamped cell index on axis
func (g *Grid) cellCoord(v float64, axis int) int {
	c := int(math.Floor((v - g.Bounds.Min.Axis(axis)) / g.cellSize.Axis(axis)))
	return max(0, min(g.Cells[axis]-1, c))
}

func (g *Grid) index(x, y, z int) int {
	return x + g.Cells[0]*(y+g.Cells[1]*z)
}

// Cell returns the shapes registered in cell (x, y, z)
func (g *Grid) Cell(x, y, z int) []geometry.Shape {
	return g.cells[g.index(x, y, z)]
}

// Shapes returns every shape the grid was built over
func (g *Grid) Shapes() []geometry.Shape {
	return g.shapes
}

// Stats returns occupancy statistics
func (g *Grid) Stats() Stats {
	stats := Stats{Cells: len(g.cells)}
	for _, cell := range g.cells {
		if len(cell) > 0 {
			stats.Occupied++
			stats.References += len(cell)
		}
	}
	if stats.Occupied > 0 {
		stats.PerCell = float64(stats.References) / float64(stats.Occupied)
	}
	return stats
}
