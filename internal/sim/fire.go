package sim

import (
	"fmt"
	"math/rand"
)

// FireParams are the per-step probabilities of the forest-fire model.
// Both must lie in [0,1]; a zero probability disables the transition.
type FireParams struct {
	Growth    float64 // empty -> tree regrowth probability
	Lightning float64 // spontaneous tree -> burning probability
}

// DefaultFireParams mirrors the classic slow-regrowth regime.
func DefaultFireParams() FireParams {
	return FireParams{Growth: 0.01, Lightning: 0.001}
}

// Validate rejects probabilities outside [0,1]. Out-of-range values are
// an error, never clamped, so callers can surface them.
func (p FireParams) Validate() error {
	if p.Growth < 0 || p.Growth > 1 {
		return fmt.Errorf("%w: p_growth=%v", ErrInvalidParameter, p.Growth)
	}
	if p.Lightning < 0 || p.Lightning > 1 {
		return fmt.Errorf("%w: p_lightning=%v", ErrInvalidParameter, p.Lightning)
	}
	return nil
}

// FireStats describes one Fire step. The state counts refer to the grid
// after the step; BurnedTotal is the cumulative number of trees that
// have caught fire over the simulation's lifetime and only resets on an
// explicit clear or randomize.
type FireStats struct {
	Empty       int
	Trees       int
	Burning     int
	BurnedTotal int
	ForestPct   float64
	BurningPct  float64
}

// StepFire advances a forest-fire grid by one step. All transitions are
// evaluated against the prior grid only:
//
//   - a burning cell always burns out to empty,
//   - a tree ignites if any Moore neighbor is burning, or independently
//     by lightning with probability params.Lightning,
//   - an empty cell grows a tree with probability params.Growth.
//
// Each applicable cell gets one independent Bernoulli draw per
// condition. burnedTotal is the caller-owned cumulative counter; the
// returned stats carry it forward incremented by this step's ignitions.
func StepFire(g *Grid, params FireParams, policy EdgePolicy, burnedTotal int, rng *rand.Rand) (*Grid, FireStats, error) {
	if err := params.Validate(); err != nil {
		return nil, FireStats{}, err
	}

	burningNeighbors := NeighborCounts(g, Burning, policy)
	next := &Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([]uint8, len(g.Cells))}

	ignited := 0
	for i, v := range g.Cells {
		switch v {
		case Burning:
			next.Cells[i] = Empty
		case Tree:
			if burningNeighbors[i] > 0 || rng.Float64() < params.Lightning {
				next.Cells[i] = Burning
				ignited++
			} else {
				next.Cells[i] = Tree
			}
		default:
			if rng.Float64() < params.Growth {
				next.Cells[i] = Tree
			}
		}
	}

	stats := FireStatsFor(next)
	stats.BurnedTotal = burnedTotal + ignited
	return next, stats, nil
}

// FireStatsFor computes the instantaneous state counts of a grid
// without stepping it. BurnedTotal is left zero; the caller owns it.
func FireStatsFor(g *Grid) FireStats {
	total := g.Size()
	trees := g.Count(Tree)
	burning := g.Count(Burning)
	return FireStats{
		Empty:      total - trees - burning,
		Trees:      trees,
		Burning:    burning,
		ForestPct:  float64(trees) / float64(total),
		BurningPct: float64(burning) / float64(total),
	}
}
