package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Grid   GridConfig   `yaml:"grid"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig contains image and sampling configuration
type RenderConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PreviewWidth  int     `yaml:"preview_width"`  // 0 means a quarter of width
	PreviewHeight int     `yaml:"preview_height"` // 0 means a quarter of height
	Preview       bool    `yaml:"preview"`        // Render at preview resolution
	AA            int     `yaml:"aa"`             // Stratified samples per pixel axis
	Workers       int     `yaml:"workers"`        // 0 detects the logical CPU count
	MaxDepth      int     `yaml:"max_depth"`
	FOV           float64 `yaml:"fov"` // Vertical degrees; 0 keeps the scene's own
}

// GridConfig contains acceleration grid configuration
type GridConfig struct {
	Cells   []int   `yaml:"cells"`   // Explicit x, y, z counts; empty derives from density
	Density float64 `yaml:"density"` // Target shapes per cell
}

// OutputConfig contains image output configuration
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png, bmp or tiff
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Default creates a default configuration
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:    640,
			Height:   480,
			AA:       1,
			Workers:  0,
			MaxDepth: 4,
		},
		Grid: GridConfig{
			Density: 2.0,
		},
		Output: OutputConfig{
			Dir:    "output",
			Format: "png",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults
func Load(filePath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the configuration to a file
func Save(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Validate reports the first out-of-range setting
func (c *Config) Validate() error {
	r := c.Render
	switch {
	case r.Width < 1 || r.Height < 1:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case r.PreviewWidth < 0 || r.PreviewHeight < 0:
		return fmt.Errorf("%w: preview resolution %dx%d", ErrInvalidConfig, r.PreviewWidth, r.PreviewHeight)
	case r.AA < 1:
		return fmt.Errorf("%w: aa %d", ErrInvalidConfig, r.AA)
	case r.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, r.Workers)
	case r.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth %d", ErrInvalidConfig, r.MaxDepth)
	case r.FOV < 0 || r.FOV >= 180:
		return fmt.Errorf("%w: fov %g", ErrInvalidConfig, r.FOV)
	}

	if n := len(c.Grid.Cells); n != 0 && n != 3 {
		return fmt.Errorf("%w: grid cells needs 3 entries, got %d", ErrInvalidConfig, n)
	}
	for _, cells := range c.Grid.Cells {
		if cells < 0 {
			return fmt.Errorf("%w: grid cells %v", ErrInvalidConfig, c.Grid.Cells)
		}
	}
	if c.Grid.Density < 0 {
		return fmt.Errorf("%w: grid density %g", ErrInvalidConfig, c.Grid.Density)
	}

	switch strings.ToLower(c.Output.Format) {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Output.Format)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// GridCells returns the explicit grid cell counts, all zero when unset
func (c *Config) GridCells() [3]int {
	var cells [3]int
	copy(cells[:], c.Grid.Cells)
	return cells
}

// ParseLevel maps a level name to its slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
}

// ResolveWorkers returns the configured worker count, detecting it when
// the configuration leaves it at zero
func (c *Config) ResolveWorkers() int {
	if c.Render.Workers > 0 {
		return c.Render.Workers
	}
	return DetectWorkers()
}

// DetectWorkers returns the logical CPU count, falling back to the Go
// runtime's view when the system query fails
func DetectWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}
