package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/coulomb/internal/charge"
)

const (
	DefaultPreset   = "Orbital"
	DefaultDt       = 0.005
	DefaultSteps    = 2000
	DefaultBoundary = 100000.0
	DefaultFPS      = 60
)

// Config carries run parameters shared by the CLI commands. Everything in
// it has a usable default; a file only needs the keys it wants to change.
type Config struct {
	Preset      string  `yaml:"preset"`
	Dt          float64 `yaml:"dt"`
	Steps       int     `yaml:"steps"`
	BoundaryMin float64 `yaml:"boundary_min"`
	BoundaryMax float64 `yaml:"boundary_max"`
	FPS         int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:      DefaultPreset,
		Dt:          DefaultDt,
		Steps:       DefaultSteps,
		BoundaryMin: -DefaultBoundary,
		BoundaryMax: DefaultBoundary,
		FPS:         DefaultFPS,
	}
}

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
		return nil, err
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
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}
	if c.BoundaryMin >= c.BoundaryMax {
		return fmt.Errorf("config: boundary_min %g must be below boundary_max %g",
			c.BoundaryMin, c.BoundaryMax)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	return nil
}

// Bounds converts the boundary pair to the physics type.
func (c *Config) Bounds() charge.Bounds {
	return charge.Bounds{Min: c.BoundaryMin, Max: c.BoundaryMax}
}
