package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, args ...string) Options {
	t.Helper()
	var o Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return o
}

func TestDefaultsWithoutFlags(t *testing.T) {
	o := parse(t)
	cfg, err := o.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.ParticleCount != 60 || cfg.FPS != 60 || cfg.Seed != 0 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.json")
	os.WriteFile(path, []byte(`{"particle_count": 10, "fps": 30, "seed": 5}`), 0644)

	o := parse(t, "-config", path, "-particles", "0", "-seed", "9")
	cfg, err := o.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.ParticleCount != 0 {
		t.Errorf("particles = %d, want 0 from flag", cfg.ParticleCount)
	}
	if cfg.FPS != 30 {
		t.Errorf("fps = %d, want 30 from file", cfg.FPS)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed = %d, want 9 from flag", cfg.Seed)
	}
}

func TestBadConfigFile(t *testing.T) {
	o := parse(t, "-config", filepath.Join(t.TempDir(), "nope.json"))
	if _, err := o.Config(); err == nil {
		t.Error("expected error for missing config file")
	}
}
