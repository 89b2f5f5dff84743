// Package config provides YAML-based lab configuration loading for the
// cell lab platform.
package config

import (
	"fmt"

	"github.com/celldev/celllab/internal/sim"
)

// LabConfig contains all configuration for a lab session.
type LabConfig struct {
	Board BoardConfig `yaml:"board"`
	Life  LifeConfig  `yaml:"life"`
	Fire  FireConfig  `yaml:"fire"`
}

// BoardConfig defines the grid shape and stepping parameters shared by
// every model.
type BoardConfig struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	TickRate int    `yaml:"tick_rate"` // Ticks per second while playing
	Edge     string `yaml:"edge"`      // "bounded" or "wrap"
}

// LifeConfig defines parameters for the Life model.
type LifeConfig struct {
	Density float64 `yaml:"density"` // Alive fraction used by randomize
	Pattern string  `yaml:"pattern"` // Catalogue pattern stamped at start, "" for blank
}

// FireConfig defines parameters for the forest-fire model.
type FireConfig struct {
	Growth       float64 `yaml:"p_growth"`
	Lightning    float64 `yaml:"p_lightning"`
	SeedStrategy string  `yaml:"seed_strategy"` // "layered" or "categorical"
	TreeDensity  float64 `yaml:"tree_density"`
	FireDensity  float64 `yaml:"fire_density"`
}

// Validate checks the configuration against the simulation core's
// limits so bad files fail at startup rather than mid-session.
func (c LabConfig) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Board.TickRate < 1 || c.Board.TickRate > 60 {
		return fmt.Errorf("config: tick_rate must be in [1, 60], got %d", c.Board.TickRate)
	}
	if _, err := sim.ParseEdgePolicy(c.Board.Edge); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Life.Density < 0 || c.Life.Density > 1 {
		return fmt.Errorf("config: life density must be in [0, 1], got %g", c.Life.Density)
	}
	if c.Life.Pattern != "" {
		if _, err := sim.LookupPattern(c.Life.Pattern); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	params := sim.FireParams{Growth: c.Fire.Growth, Lightning: c.Fire.Lightning}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	seed, err := c.FireSeed()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EdgePolicy returns the configured edge policy.
func (c LabConfig) EdgePolicy() (sim.EdgePolicy, error) {
	return sim.ParseEdgePolicy(c.Board.Edge)
}

// FireParams returns the configured fire probabilities.
func (c LabConfig) FireParams() sim.FireParams {
	return sim.FireParams{Growth: c.Fire.Growth, Lightning: c.Fire.Lightning}
}

// FireSeed returns the configured fire seeding strategy.
func (c LabConfig) FireSeed() (sim.FireSeed, error) {
	strategy, err := sim.ParseFireSeedStrategy(c.Fire.SeedStrategy)
	if err != nil {
		return sim.FireSeed{}, err
	}
	return sim.FireSeed{
		Strategy:    strategy,
		TreeDensity: c.Fire.TreeDensity,
		FireDensity: c.Fire.FireDensity,
	}, nil
}
