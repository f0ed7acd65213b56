package sketch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MinWidth and MinHeight are the smallest window a backend allows.
	MinWidth  = 100
	MinHeight = 100

	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTitle     = "p5py"
	DefaultFrameRate = 60

	BackendGLFW  = "glfw"
	BackendShiny = "shiny"
)

// Config holds the sketch settings a window is created with.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// FrameRate is the target number of frames per second.
	// Zero runs frames as fast as the backend allows.
	FrameRate float64 `yaml:"frame_rate"`

	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
	Backend   string `yaml:"backend"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Title:     DefaultTitle,
		FrameRate: DefaultFrameRate,
		VSync:     true,
		Backend:   BackendGLFW,
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings no backend can work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return fmt.Errorf("invalid frame rate %v", c.FrameRate)
	}
	switch c.Backend {
	case BackendGLFW, BackendShiny:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}
