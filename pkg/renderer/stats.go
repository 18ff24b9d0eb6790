package renderer

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width         int
	Height        int
	Samples       int // Primary camera rays traced
	Workers       int
	Duration      time.Duration
	MeanLuminance float64 // Scene mean before exposure
	Exposure      float64
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// SamplesPerSecond returns the primary ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Samples) / s.Duration.Seconds()
}

var printer = message.NewPrinter(language.English)

// Summary returns a one-line human readable description of the render
func (s RenderStats) Summary() string {
	resolution := fmt.Sprintf("%dx%d", s.Width, s.Height)
	return printer.Sprintf("%s (%d pixels, %d samples) on %d workers in %v, %.0f samples/s, mean luminance %.4f, exposure %.3f",
		resolution, s.TotalPixels(), s.Samples, s.Workers,
		s.Duration.Round(time.Millisecond), s.SamplesPerSecond(), s.MeanLuminance, s.Exposure)
}
