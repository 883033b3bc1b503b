package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer configuration.
type Config struct {
	Seed           int64   `yaml:"seed"`
	GeneratorType  string  `yaml:"generator"`       // "terrain", "flat" or "empty"
	ViewRadius     int     `yaml:"view_radius"`     // horizontal radius in chunks
	VerticalRadius int     `yaml:"vertical_radius"` // vertical radius in chunks
	FlatHeight     int     `yaml:"flat_height"`
	Terrain        Terrain `yaml:"terrain"`

	AtlasSource string `yaml:"atlas_source"` // path, URL or go-getter address of the atlas manifest
	ExportPath  string `yaml:"export_path"`  // .obj or .obj.zst; empty disables export
	LogLevel    string `yaml:"log_level"`
}

// Terrain tunes the noise height field.
type Terrain struct {
	BaseHeight  float64 `yaml:"base_height"`
	Amplitude   float64 `yaml:"amplitude"`
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	SurfaceTile string  `yaml:"surface_tile"`
	FillTile    string  `yaml:"fill_tile"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GeneratorType:  "terrain",
		ViewRadius:     4,
		VerticalRadius: 0,
		FlatHeight:     4,
		Terrain: Terrain{
			BaseHeight:  8,
			Amplitude:   6,
			Scale:       48,
			Octaves:     4,
			Persistence: 0.5,
			SurfaceTile: "grass",
			FillTile:    "stone",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with.
func (c *Config) Validate() error {
	switch c.GeneratorType {
	case "terrain", "flat", "empty":
	default:
		return fmt.Errorf("config: unknown generator %q", c.GeneratorType)
	}
	if c.ViewRadius < 0 || c.VerticalRadius < 0 {
		return fmt.Errorf("config: negative view radius")
	}
	if c.Terrain.Octaves < 1 {
		return fmt.Errorf("config: terrain octaves must be at least 1, got %d", c.Terrain.Octaves)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["view-radius"] {
		cfg.ViewRadius = fromFile.ViewRadius
	}
	if !explicitFlags["vertical-radius"] {
		cfg.VerticalRadius = fromFile.VerticalRadius
	}
	if !explicitFlags["atlas"] {
		cfg.AtlasSource = fromFile.AtlasSource
	}
	if !explicitFlags["export"] {
		cfg.ExportPath = fromFile.ExportPath
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	// No flags exist for these.
	cfg.FlatHeight = fromFile.FlatHeight
	cfg.Terrain = fromFile.Terrain
}
