package material

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image.
// Textures are immutable once built and safe to share between workers.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewCheckerTexture builds a size×size texture of squares×squares
// alternating checks
func NewCheckerTexture(size, squares int, even, odd core.Vec3) *ImageTexture {
	size = max(1, size)
	squares = max(1, squares)
	pixels := make([]core.Vec3, size*size)
	cell := max(1, size/squares)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				pixels[y*size+x] = even
			} else {
				pixels[y*size+x] = odd
			}
		}
	}
	return NewImageTexture(size, size, pixels)
}

// Evaluate samples the texture at uv using nearest-neighbor filtering.
// UVs wrap into [0, 1); V=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2) core.Vec3 {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return core.NewVec3(1, 1, 1)
	}

	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
