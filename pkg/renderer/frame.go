package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Frame is a row-major buffer of packed 0xRRGGBB pixels
type Frame struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// At returns the packed pixel at (x, y)
func (f *Frame) At(x, y int) uint32 {
	return f.Pixels[y*f.Width+x]
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := UnpackRGB(f.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Upscale presents the frame at width×height using nearest-neighbour
// scaling, so preview renders keep hard pixel edges
func (f *Frame) Upscale(width, height int) *image.RGBA {
	src := f.Image()
	if width == f.Width && height == f.Height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
