package main

import (
	"github.com/spf13/cobra"

	"github.com/san-kum/wavefront/internal/config"
)

// loadConfig resolves the configuration: a config file wins over a preset,
// and flags override either only when set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case configFile != "":
		cfg, err = config.Load(configFile)
	case preset != "":
		cfg, err = config.GetPreset(preset)
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("count") {
		cfg.Wavefront.Count = count
	}
	if flags.Changed("speed") {
		cfg.Clock.Speed = speed
	}
	if flags.Changed("style") {
		cfg.Plot.Style = style
	}
	if flags.Changed("projection") {
		cfg.Camera.Projection = projection
	}
	if flags.Changed("fps") {
		cfg.View.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
