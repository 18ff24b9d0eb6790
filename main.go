package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-grid-raytracer/pkg/config"
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/grid"
	"github.com/df07/go-grid-raytracer/pkg/loaders"
	"github.com/df07/go-grid-raytracer/pkg/material"
	"github.com/df07/go-grid-raytracer/pkg/renderer"
	"github.com/df07/go-grid-raytracer/pkg/scene"
)

// backdropDistance places a -texture backdrop behind the built-in scenes
const backdropDistance = 30.0

// options holds the command line flags
type options struct {
	configPath string
	sceneName  string
	modelPath  string
	modelScale float64
	modelAt    string
	texture    string
	width      int
	height     int
	aa         int
	workers    int
	preview    bool
	format     string
	outDir     string
	logLevel   string
	list       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file")
	flag.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name (see -list)")
	flag.StringVar(&opts.modelPath, "model", "", "Wavefront OBJ mesh to add to the scene")
	flag.Float64Var(&opts.modelScale, "model-scale", 1.0, "Uniform scale applied to -model")
	flag.StringVar(&opts.modelAt, "model-at", "0,0,-5", "Location x,y,z of -model")
	flag.StringVar(&opts.texture, "texture", "", "Image file shown as a backdrop behind the scene")
	flag.IntVar(&opts.width, "width", 0, "Image width (overrides config)")
	flag.IntVar(&opts.height, "height", 0, "Image height (overrides config)")
	flag.IntVar(&opts.aa, "aa", 0, "Stratified samples per pixel axis (overrides config)")
	flag.IntVar(&opts.workers, "workers", -1, "Worker count, 0 detects (overrides config)")
	flag.BoolVar(&opts.preview, "preview", false, "Render at preview resolution and upscale")
	flag.StringVar(&opts.format, "format", "", "Output format png, bmp or tiff (overrides config)")
	flag.StringVar(&opts.outDir, "out", "", "Output directory (overrides config)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level debug, info, warn or error (overrides config)")
	flag.BoolVar(&opts.list, "list", false, "List built-in scenes and exit")
	flag.Parse()

	if opts.list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-10s %s\n", info.Name, info.Description)
		}
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s, err := createScene(opts.sceneName, cfg)
	if err != nil {
		return err
	}
	if err := addExtras(s, opts); err != nil {
		return err
	}
	if err := s.Preprocess(); err != nil {
		return fmt.Errorf("failed to prepare scene: %w", err)
	}

	r, err := renderer.NewRenderer(s, renderer.Config{
		Workers:  cfg.ResolveWorkers(),
		MaxDepth: cfg.Render.MaxDepth,
	})
	if err != nil {
		return err
	}

	frame, stats, err := r.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Println(stats.Summary())

	img := frame.Image()
	if s.Camera.Preview() {
		img = frame.Upscale(s.Camera.FullResolution())
	}

	filename, err := saveImage(img, cfg.Output, opts.sceneName)
	if err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// loadConfig reads the config file, if any, and applies flag overrides
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.width > 0 {
		cfg.Render.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Render.Height = opts.height
	}
	if opts.aa > 0 {
		cfg.Render.AA = opts.aa
	}
	if opts.workers >= 0 {
		cfg.Render.Workers = opts.workers
	}
	if opts.preview {
		cfg.Render.Preview = true
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.outDir != "" {
		cfg.Output.Dir = opts.outDir
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createScene builds the named scene and applies the render settings
func createScene(name string, cfg *config.Config) (*scene.Scene, error) {
	s, err := scene.Create(name, geometry.CameraConfig{
		Width:         cfg.Render.Width,
		Height:        cfg.Render.Height,
		PreviewWidth:  cfg.Render.PreviewWidth,
		PreviewHeight: cfg.Render.PreviewHeight,
		VFov:          cfg.Render.FOV,
	})
	if err != nil {
		return nil, err
	}

	// Scenes pick their own sample count unless the config raises it
	s.AA = max(s.AA, cfg.Render.AA)
	s.GridConfig = grid.Config{
		Cells:   cfg.GridCells(),
		Density: cfg.Grid.Density,
	}
	s.Camera.SetPreview(cfg.Render.Preview)
	return s, nil
}

// addExtras loads the optional mesh and backdrop texture into s
func addExtras(s *scene.Scene, opts options) error {
	if opts.modelPath != "" {
		location, err := parseVec3(opts.modelAt)
		if err != nil {
			return fmt.Errorf("invalid -model-at: %w", err)
		}
		model, err := loaders.LoadOBJ(opts.modelPath, loaders.OBJOptions{
			Scale:    opts.modelScale,
			Location: location,
			Material: material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), 0.8, 0.2),
		})
		if err != nil {
			return err
		}
		s.Shapes = append(s.Shapes, model)
	}

	if opts.texture != "" {
		texture, err := loaders.LoadTexture(opts.texture)
		if err != nil {
			return err
		}
		s.AddBackdrop(texture, backdropDistance)
	}
	return nil
}

// parseVec3 parses "x,y,z"
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", value)
	}
	var coords [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("coordinate %q: %w", part, err)
		}
		coords[i] = f
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// saveImage writes img to <dir>/<scene>/render_<timestamp>.<format>
func saveImage(img image.Image, output config.OutputConfig, sceneName string) (string, error) {
	outputDir := filepath.Join(output.Dir, sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	format := strings.ToLower(output.Format)
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := encodeImage(file, img, format); err != nil {
		return "", err
	}
	return filename, nil
}

// encodeImage writes img in the named format
func encodeImage(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", format, err)
	}
	return nil
}
