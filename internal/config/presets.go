package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/wavefront/internal/dynamo"
)

func preset(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": preset(func(c *Config) {
		c.Clock.Speed = 5
		c.Clock.MaxPhase = 200
	}),
	"dense": preset(func(c *Config) {
		c.Wavefront.Count = 400
		c.Plot.Style = "line"
	}),
	"orbit": preset(func(c *Config) {
		c.Camera.Projection = "perspective"
		c.Camera.Orbit.Rate = 0.01
		c.Plot.Style = "line"
	}),
	// classic draws selectors from {0, 1} only, as early versions did.
	"classic": preset(func(c *Config) {
		c.Params.Axes = 2
		c.Plot.Style = "radial"
	}),
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
	}
	c := *cfg
	return &c, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
