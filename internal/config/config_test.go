package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Preset != "Orbital" {
		t.Errorf("expected preset Orbital, got %s", cfg.Preset)
	}
	if cfg.Dt != 0.005 {
		t.Errorf("expected dt 0.005, got %g", cfg.Dt)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	b := cfg.Bounds()
	if b.Min != -100000 || b.Max != 100000 {
		t.Errorf("unexpected default bounds: %+v", b)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative dt", func(c *Config) { c.Dt = -0.01 }},
		{"zero steps", func(c *Config) { c.Steps = 0 }},
		{"inverted boundary", func(c *Config) { c.BoundaryMin = 10; c.BoundaryMax = -10 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Preset = "Dipole"
	cfg.Dt = 0.002
	cfg.Steps = 500

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", cfg, loaded)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preset: Ring\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Preset != "Ring" {
		t.Errorf("expected preset Ring, got %s", cfg.Preset)
	}
	if cfg.Dt != DefaultDt || cfg.Steps != DefaultSteps {
		t.Error("unset keys should keep defaults")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dt: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for negative dt")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
