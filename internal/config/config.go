// Package config provides configuration loading for the vecalc command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sci3d/internal/geo"
	"sci3d/internal/geometry/vector"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Geo       GeoConfig       `yaml:"geo"`
}

// ToleranceConfig holds the tolerances of the model, one per measured quantity.
type ToleranceConfig struct {
	Length     float64 `yaml:"length"`
	NormLength float64 `yaml:"norm_length"`
	AngleRad   float64 `yaml:"angle_rad"`
}

// GeoConfig holds the origin of the local ENU frame.
type GeoConfig struct {
	OriginLat float64 `yaml:"origin_lat"`
	OriginLon float64 `yaml:"origin_lon"`
}

// LengthComparer compares points and non normalized directions.
func (t ToleranceConfig) LengthComparer() vector.Comparer {
	return vector.NewComparer(t.Length)
}

// NormComparer compares unit vectors.
func (t ToleranceConfig) NormComparer() vector.Comparer {
	return vector.NewComparer(t.NormLength)
}

// Compass measures headings with the plane-angle tolerance.
func (t ToleranceConfig) Compass() geo.Compass {
	return geo.Compass{AngleTol: t.AngleRad}
}

// GeoRef returns the local frame anchored at the configured origin.
func (g GeoConfig) GeoRef() geo.GeoRef {
	return geo.GeoRef{OriginLat: g.OriginLat, OriginLon: g.OriginLon}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed, or if a tolerance
// is negative.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks that every tolerance is non-negative.
func (c *Config) Validate() error {
	t := c.Tolerance
	if t.Length < 0 || t.NormLength < 0 || t.AngleRad < 0 {
		return fmt.Errorf("invalid config: tolerances must be non-negative: %+v", t)
	}
	return nil
}
