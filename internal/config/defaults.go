package config

import "sci3d/internal/geometry/tolerance"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Tolerance.Length == 0 {
		cfg.Tolerance.Length = 1e-6
	}
	if cfg.Tolerance.NormLength == 0 {
		cfg.Tolerance.NormLength = tolerance.NormLength
	}
	if cfg.Tolerance.AngleRad == 0 {
		cfg.Tolerance.AngleRad = 1e-3
	}
	// Origin (Tel Aviv)
	if cfg.Geo.OriginLat == 0 && cfg.Geo.OriginLon == 0 {
		cfg.Geo.OriginLat = 32.0853
		cfg.Geo.OriginLon = 34.7818
	}
}
