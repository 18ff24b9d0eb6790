package renderer

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/integrator"
)

var (
	// ErrInvalidWorkers is returned when the worker count is below one
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
	// ErrNoCamera is returned when the scene has no camera to render from
	ErrNoCamera = errors.New("scene has no camera")
)

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() *geometry.Camera
	GetAA() int // Stratified samples per pixel axis
}

// Config contains renderer configuration. It is read once when the
// renderer is created.
type Config struct {
	Workers    int                   // Size of the row worker pool
	MaxDepth   int                   // Recursion bound for the default integrator
	Integrator integrator.Integrator // Optional; nil selects a Whitted integrator
}

// Renderer turns a scene into a tone-mapped frame
type Renderer struct {
	scene      Scene
	integrator integrator.Integrator
	workers    int
}

// NewRenderer validates config and creates a renderer for scene
func NewRenderer(scene Scene, config Config) (*Renderer, error) {
	if config.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, config.Workers)
	}
	if scene.GetCamera() == nil {
		return nil, ErrNoCamera
	}

	integ := config.Integrator
	if integ == nil {
		integ = integrator.NewWhittedIntegrator(config.MaxDepth)
	}

	return &Renderer{
		scene:      scene,
		integrator: integ,
		workers:    config.Workers,
	}, nil
}

// Workers returns the size of the worker pool
func (r *Renderer) Workers() int {
	return r.workers
}

// Render traces every pixel at the camera's active resolution and
// returns the tone-mapped frame. Rows are rendered in parallel; the mean
// luminance is reduced from per-row sums in row order, so the result
// does not depend on scheduling or worker count.
func (r *Renderer) Render() (*Frame, RenderStats, error) {
	logger := core.Logger()
	camera := r.scene.GetCamera()
	width, height := camera.Resolution()
	aa := max(1, r.scene.GetAA())

	logger.Info("render started",
		"width", width, "height", height,
		"workers", r.workers, "aa", aa, "preview", camera.Preview())
	start := time.Now()

	radiance := make([]core.Vec3, width*height)
	rowLuminance := make([]float64, height)

	tracer := &rowTracer{
		scene:      r.scene,
		camera:     camera,
		integrator: r.integrator,
		width:      width,
		aa:         aa,
	}
	pool := NewWorkerPool(tracer, height, r.workers)
	pool.Start()

	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{
			Y:      y,
			Pixels: radiance[y*width : (y+1)*width],
		})
	}

	samples := 0
	for i := 0; i < height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		rowLuminance[result.Y] = result.Luminance
		samples += result.Samples
		logger.Debug("row complete", "row", result.Y, "worker", result.WorkerID)
	}
	pool.Stop()

	mean := floats.Sum(rowLuminance) / float64(width*height)
	exposure := Exposure(mean)

	frame := NewFrame(width, height)
	for i, c := range radiance {
		frame.Pixels[i] = ToneMap(c, exposure)
	}

	stats := RenderStats{
		Width:         width,
		Height:        height,
		Samples:       samples,
		Workers:       r.workers,
		Duration:      time.Since(start),
		MeanLuminance: mean,
		Exposure:      exposure,
	}
	logger.Info("render complete",
		"duration", stats.Duration, "mean_luminance", mean, "exposure", exposure)

	return frame, stats, nil
}

// rowTracer renders single image rows. It only reads shared state and
// may be used by many workers at once.
type rowTracer struct {
	scene      Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	width      int
	aa         int
}

// renderRow writes the averaged linear radiance of row y into pixels and
// returns the row's luminance sum and sample count
func (rt *rowTracer) renderRow(y int, pixels []core.Vec3) (luminance float64, samples int) {
	inv := 1.0 / float64(rt.aa*rt.aa)
	for x := 0; x < rt.width; x++ {
		var color core.Vec3
		for sy := 0; sy < rt.aa; sy++ {
			for sx := 0; sx < rt.aa; sx++ {
				ray := rt.camera.GetRay(x, y, sx, sy, rt.aa)
				color = color.Add(rt.integrator.RayColor(ray, rt.scene))
			}
		}
		color = color.Multiply(inv)
		pixels[x] = color
		luminance += color.Luminance()
	}
	return luminance, rt.width * rt.aa * rt.aa
}
