package sim

// LifeStats describes one Life step. Alive and Density refer to the
// grid after the step; Births and Deaths count the cells that flipped
// during it.
type LifeStats struct {
	Alive   int
	Births  int
	Deaths  int
	Density float64
}

// StepLife advances a Life grid by one generation and returns the new
// grid plus step statistics. The input grid is never written: every
// decision is made from the prior generation's neighbor counts, so the
// rule is fully deterministic.
//
// Transition: an alive cell survives with 2 or 3 alive neighbors and
// dies otherwise; a dead cell with exactly 3 alive neighbors is born.
func StepLife(g *Grid, policy EdgePolicy) (*Grid, LifeStats) {
	counts := NeighborCounts(g, Alive, policy)
	next := &Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([]uint8, len(g.Cells))}

	var stats LifeStats
	for i, v := range g.Cells {
		n := counts[i]
		switch {
		case v == Alive && (n == 2 || n == 3):
			next.Cells[i] = Alive
		case v == Alive:
			next.Cells[i] = Dead
			stats.Deaths++
		case n == 3:
			next.Cells[i] = Alive
			stats.Births++
		}
	}
	stats.Alive = next.Count(Alive)
	stats.Density = float64(stats.Alive) / float64(next.Size())
	return next, stats
}

// LifeStatsFor computes the instantaneous statistics of a grid without
// stepping it, used when displaying a freshly edited or loaded board.
func LifeStatsFor(g *Grid) LifeStats {
	alive := g.Count(Alive)
	return LifeStats{
		Alive:   alive,
		Density: float64(alive) / float64(g.Size()),
	}
}
