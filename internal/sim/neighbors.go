package sim

import "fmt"

// EdgePolicy controls how neighbor lookups treat the grid border.
//
// EdgeBounded is the default: cells outside the grid do not count, so
// border cells see fewer than eight neighbors and edge effects are
// visible during interactive editing. EdgeWrap is the opt-in toroidal
// mode where indices wrap modulo the grid dimensions and every cell has
// exactly eight neighbors.
type EdgePolicy uint8

const (
	EdgeBounded EdgePolicy = iota
	EdgeWrap
)

// String returns the policy identifier used in config and the CLI.
func (p EdgePolicy) String() string {
	if p == EdgeWrap {
		return "wrap"
	}
	return "bounded"
}

// ParseEdgePolicy converts a config/CLI identifier to an EdgePolicy.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "bounded", "":
		return EdgeBounded, nil
	case "wrap", "toroidal":
		return EdgeWrap, nil
	default:
		return 0, fmt.Errorf("sim: unknown edge policy %q", s)
	}
}

// NeighborCounts returns, for every cell, the number of its eight Moore
// neighbors (the cell itself excluded) currently holding state. The
// result is grid-shaped, row-major.
func NeighborCounts(g *Grid, state uint8, policy EdgePolicy) []int {
	counts := make([]int, len(g.Cells))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if policy == EdgeWrap {
						nr = (nr + g.Rows) % g.Rows
						nc = (nc + g.Cols) % g.Cols
					} else if nr < 0 || nr >= g.Rows || nc < 0 || nc >= g.Cols {
						continue
					}
					if g.Cells[nr*g.Cols+nc] == state {
						n++
					}
				}
			}
			counts[r*g.Cols+c] = n
		}
	}
	return counts
}
