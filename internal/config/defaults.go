package config

import (
	_ "embed"
)

//go:embed defaults/celllab.yaml
var defaultLabYAML []byte

// DefaultLabConfig returns the default lab configuration.
func DefaultLabConfig() LabConfig {
	return LabConfig{
		Board: BoardConfig{
			Rows:     35,
			Cols:     50,
			TickRate: 10,
			Edge:     "bounded",
		},
		Life: LifeConfig{
			Density: 0.35,
		},
		Fire: FireConfig{
			Growth:       0.01,
			Lightning:    0.001,
			SeedStrategy: "layered",
			TreeDensity:  0.65,
			FireDensity:  0.01,
		},
	}
}
