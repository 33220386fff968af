// Package app holds the start-up plumbing shared by the entry points.
package app

import (
	"flag"
	"fmt"

	"github.com/olivierh59500/interactive-bg/internal/config"
)

// Options are the command-line settings common to every host.
type Options struct {
	ConfigPath string
	Debug      bool
	Particles  int
	FPS        int
	Seed       int64
}

// Register binds the shared flags on fs.
func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "JSON config file (defaults apply to missing keys)")
	fs.BoolVar(&o.Debug, "debug", false, "write logs to the logs directory")
	fs.IntVar(&o.Particles, "particles", -1, "particle count (overrides config)")
	fs.IntVar(&o.FPS, "fps", 0, "frame rate for timer-driven hosts (overrides config)")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed, 0 seeds from the clock (overrides config)")
}

// Config loads the configured file, if any, and applies flag overrides.
func (o *Options) Config() (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if o.Particles >= 0 {
		cfg.ParticleCount = o.Particles
	}
	if o.FPS > 0 {
		cfg.FPS = o.FPS
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
