package config

import (
	"fmt"
	"os"

	"github.com/san-kum/wavefront/internal/camera"
	"github.com/san-kum/wavefront/internal/clock"
	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/integrators"
	"github.com/san-kum/wavefront/internal/plot"
	"github.com/san-kum/wavefront/internal/wavefront"
	"gopkg.in/yaml.v3"
)

const (
	DefaultIntegrator = "euler"
	DefaultCount      = 100
	DefaultRadius     = 1.0
	DefaultOffset     = 0.0
	DefaultStyle      = "point"
	DefaultWidth      = 1.0
	DefaultFPS        = 60
	DefaultTheme      = "cyberpunk"
)

type Config struct {
	Seed       int64            `yaml:"seed"`
	Integrator string           `yaml:"integrator"`
	Wavefront  wavefront.Layout `yaml:"wavefront"`
	Clock      clock.Config     `yaml:"clock"`
	Camera     CameraConfig     `yaml:"camera"`
	Plot       PlotConfig       `yaml:"plot"`
	Params     field.Bounds     `yaml:"params"`
	View       ViewConfig       `yaml:"view"`
}

type CameraConfig struct {
	Scale      float64      `yaml:"scale"`
	Projection string       `yaml:"projection"`
	Orbit      camera.Orbit `yaml:"orbit"`
}

type PlotConfig struct {
	Style string  `yaml:"style"`
	Width float64 `yaml:"width"`
}

type ViewConfig struct {
	FPS   int    `yaml:"fps"`
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: DefaultIntegrator,
		Wavefront: wavefront.Layout{
			Offset: DefaultOffset,
			Radius: DefaultRadius,
			Count:  DefaultCount,
		},
		Clock: clock.DefaultConfig(),
		Camera: CameraConfig{
			Scale:      camera.DefaultScale,
			Projection: camera.Orthographic.String(),
			Orbit:      camera.DefaultOrbit(),
		},
		Plot:   PlotConfig{Style: DefaultStyle, Width: DefaultWidth},
		Params: field.DefaultBounds(),
		View:   ViewConfig{FPS: DefaultFPS, Theme: DefaultTheme},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Wavefront.Count <= 0 {
		return fmt.Errorf("%w: wavefront.count must be positive, got %d", dynamo.ErrInvalidConfig, c.Wavefront.Count)
	}
	if c.Wavefront.Radius <= 0 {
		return fmt.Errorf("%w: wavefront.radius must be positive, got %g", dynamo.ErrInvalidConfig, c.Wavefront.Radius)
	}
	if c.Camera.Scale <= 0 {
		return fmt.Errorf("%w: camera.scale must be positive, got %g", dynamo.ErrInvalidConfig, c.Camera.Scale)
	}
	// The eye must stay off the up axis or the look-at basis degenerates.
	if c.Camera.Orbit.Radius <= 0 {
		return fmt.Errorf("%w: camera.orbit.radius must be positive, got %g", dynamo.ErrInvalidConfig, c.Camera.Orbit.Radius)
	}
	if c.Plot.Width <= 0 {
		return fmt.Errorf("%w: plot.width must be positive, got %g", dynamo.ErrInvalidConfig, c.Plot.Width)
	}
	if c.View.FPS <= 0 {
		return fmt.Errorf("%w: view.fps must be positive, got %d", dynamo.ErrInvalidConfig, c.View.FPS)
	}
	if err := c.Clock.Validate(); err != nil {
		return err
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if _, err := c.ProjectionMode(); err != nil {
		return err
	}
	if _, err := c.PlotStyle(); err != nil {
		return fmt.Errorf("%w: %w", dynamo.ErrInvalidConfig, err)
	}
	if _, err := integrators.Get(c.Integrator); err != nil {
		return err
	}
	return nil
}

func (c *Config) ProjectionMode() (camera.Projection, error) {
	return camera.ParseProjection(c.Camera.Projection)
}

func (c *Config) PlotStyle() (plot.Style, error) {
	return plot.ParseStyle(c.Plot.Style)
}

// FrameDt is the nominal frame duration in seconds.
func (c *Config) FrameDt() float64 {
	return 1.0 / float64(c.View.FPS)
}
