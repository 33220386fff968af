package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Defaults for the interactive background.
const (
	WindowWidth  = 800
	WindowHeight = 600

	ParticleCount = 60 // Density
	FPS           = 60
	MaxFPS        = 1000

	LinkDistance        = 150.0
	LinkAlpha           = 0.1
	LinkFalloff         = 1500.0
	PointerLinkDistance = 200.0
	PointerLinkAlpha    = 0.2
	PointerLinkFalloff  = 1000.0

	AttractRadius = 150.0
	AttractFactor = 0.01

	MinRadius = 1.0
	MaxRadius = 3.0
	MaxSpeed  = 0.25

	ParticleAlpha = 0.15
	LineWidth     = 1.0

	ParticleColor = "#ffffff"
	AccentColor   = "#10b981" // Green accent near the pointer
	Background    = "#000000"

	DriftScale = 0.005
)

// Config holds every tunable of the particle field and its hosts.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	ParticleCount int   `json:"particle_count"`
	FPS           int   `json:"fps"`
	Seed          int64 `json:"seed"` // 0 seeds from the clock

	LinkDistance        float64 `json:"link_distance"`
	LinkAlpha           float64 `json:"link_alpha"`
	LinkFalloff         float64 `json:"link_falloff"`
	PointerLinkDistance float64 `json:"pointer_link_distance"`
	PointerLinkAlpha    float64 `json:"pointer_link_alpha"`
	PointerLinkFalloff  float64 `json:"pointer_link_falloff"`

	AttractRadius float64 `json:"attract_radius"`
	AttractFactor float64 `json:"attract_factor"`

	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	MaxSpeed  float64 `json:"max_speed"`

	ParticleAlpha float64 `json:"particle_alpha"`
	LineWidth     float64 `json:"line_width"`

	ParticleColor string `json:"particle_color"`
	AccentColor   string `json:"accent_color"`
	Background    string `json:"background"`

	// Drift > 0 enables a perlin noise position nudge of at most Drift units per frame.
	Drift      float64 `json:"drift"`
	DriftScale float64 `json:"drift_scale"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Width:               WindowWidth,
		Height:              WindowHeight,
		ParticleCount:       ParticleCount,
		FPS:                 FPS,
		LinkDistance:        LinkDistance,
		LinkAlpha:           LinkAlpha,
		LinkFalloff:         LinkFalloff,
		PointerLinkDistance: PointerLinkDistance,
		PointerLinkAlpha:    PointerLinkAlpha,
		PointerLinkFalloff:  PointerLinkFalloff,
		AttractRadius:       AttractRadius,
		AttractFactor:       AttractFactor,
		MinRadius:           MinRadius,
		MaxRadius:           MaxRadius,
		MaxSpeed:            MaxSpeed,
		ParticleAlpha:       ParticleAlpha,
		LineWidth:           LineWidth,
		ParticleColor:       ParticleColor,
		AccentColor:         AccentColor,
		Background:          Background,
		DriftScale:          DriftScale,
	}
}

// Load reads a JSON file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first problem found. A zero or negative particle count
// is accepted and yields an empty field.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Width, c.Height)
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be in 1..%d, got %d", MaxFPS, c.FPS)
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"link_distance", c.LinkDistance},
		{"link_alpha", c.LinkAlpha},
		{"link_falloff", c.LinkFalloff},
		{"pointer_link_distance", c.PointerLinkDistance},
		{"pointer_link_alpha", c.PointerLinkAlpha},
		{"pointer_link_falloff", c.PointerLinkFalloff},
		{"attract_radius", c.AttractRadius},
		{"attract_factor", c.AttractFactor},
		{"max_speed", c.MaxSpeed},
		{"particle_alpha", c.ParticleAlpha},
		{"line_width", c.LineWidth},
		{"drift", c.Drift},
		{"drift_scale", c.DriftScale},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return fmt.Errorf("%s must not be negative, got %g", f.name, f.v)
		}
	}
	if c.LinkFalloff == 0 || c.PointerLinkFalloff == 0 {
		return errors.New("link falloff must be non-zero")
	}
	if c.MinRadius <= 0 {
		return fmt.Errorf("min_radius must be positive, got %g", c.MinRadius)
	}
	if c.MinRadius > c.MaxRadius {
		return fmt.Errorf("min_radius %g exceeds max_radius %g", c.MinRadius, c.MaxRadius)
	}
	for _, hex := range []string{c.ParticleColor, c.AccentColor, c.Background} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("colour %q: %w", hex, err)
		}
	}
	return nil
}

// Colors returns the parsed particle, accent and background colours.
func (c Config) Colors() (particle, accent, background colorful.Color, err error) {
	if particle, err = colorful.Hex(c.ParticleColor); err != nil {
		return
	}
	if accent, err = colorful.Hex(c.AccentColor); err != nil {
		return
	}
	background, err = colorful.Hex(c.Background)
	return
}
