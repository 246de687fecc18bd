// Package config loads and validates the gridroute engine
// configuration.
//
// Configuration is TOML, read over the stock defaults: absent keys keep
// their default values, so a deployment only states what it changes.
//
//	[cache]
//	enabled = true
//	capacity = 1000
//
//	[planner]
//	exhaustive_ceiling = 8
//	matrix_ceiling = 10
//
//	[limits]
//	max_waypoints = 50
//	max_grid_rows = 1000
//	max_grid_columns = 1000
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadCapacity flags a cache capacity below 1 while caching is
	// enabled.
	ErrBadCapacity = errors.New("config: cache capacity out of range")

	// ErrBadCeilings flags planner ceilings that are non-positive or
	// out of order.
	ErrBadCeilings = errors.New("config: planner ceilings out of order")

	// ErrBadLimits flags request limits that are negative or zero where
	// a positive bound is required.
	ErrBadLimits = errors.New("config: request limits out of range")
)

// CacheConfig controls the process-wide path cache.
type CacheConfig struct {
	// Enabled turns leg memoization on. Off, the engine plans every
	// request from scratch.
	Enabled bool `toml:"enabled"`

	// Capacity is the most entries the cache will hold; inserts stop
	// there (no eviction). Ignored when Enabled is false.
	Capacity int `toml:"capacity"`
}

// PlannerConfig carries the strategy-selector ceilings.
type PlannerConfig struct {
	// ExhaustiveCeiling is the largest waypoint count planned by full
	// permutation enumeration.
	ExhaustiveCeiling int `toml:"exhaustive_ceiling"`

	// MatrixCeiling is the largest waypoint count planned with a full
	// leg table; above it requests degrade to the estimate heuristic.
	MatrixCeiling int `toml:"matrix_ceiling"`
}

// LimitsConfig caps the shape of requests the engine accepts.
type LimitsConfig struct {
	// MaxWaypoints is the most waypoints a single request may carry.
	MaxWaypoints int `toml:"max_waypoints"`

	// MaxGridRows and MaxGridColumns bound accepted grid dimensions.
	MaxGridRows    int `toml:"max_grid_rows"`
	MaxGridColumns int `toml:"max_grid_columns"`
}

// Config mirrors the gridroute TOML schema.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Planner PlannerConfig `toml:"planner"`
	Limits  LimitsConfig  `toml:"limits"`
}

// Default returns the stock configuration: caching on with 1000
// entries, ceilings 8/10, up to 50 waypoints on grids of at most
// 1000×1000 cells.
func Default() Config {
	return Config{
		Cache:   CacheConfig{Enabled: true, Capacity: 1000},
		Planner: PlannerConfig{ExhaustiveCeiling: 8, MatrixCeiling: 10},
		Limits:  LimitsConfig{MaxWaypoints: 50, MaxGridRows: 1000, MaxGridColumns: 1000},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values no deployment can mean.
func (c Config) Validate() error {
	if c.Cache.Enabled && c.Cache.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d with caching enabled", ErrBadCapacity, c.Cache.Capacity)
	}
	if c.Planner.ExhaustiveCeiling < 1 {
		return fmt.Errorf("%w: exhaustive_ceiling %d must be positive", ErrBadCeilings, c.Planner.ExhaustiveCeiling)
	}
	if c.Planner.MatrixCeiling < c.Planner.ExhaustiveCeiling {
		return fmt.Errorf("%w: matrix_ceiling %d below exhaustive_ceiling %d",
			ErrBadCeilings, c.Planner.MatrixCeiling, c.Planner.ExhaustiveCeiling)
	}
	if c.Limits.MaxWaypoints < 0 {
		return fmt.Errorf("%w: max_waypoints %d", ErrBadLimits, c.Limits.MaxWaypoints)
	}
	if c.Limits.MaxGridRows < 1 || c.Limits.MaxGridColumns < 1 {
		return fmt.Errorf("%w: grid caps %d×%d must be positive",
			ErrBadLimits, c.Limits.MaxGridRows, c.Limits.MaxGridColumns)
	}

	return nil
}
