// Package fire drives the probabilistic forest-fire model over the
// simulation core.
package fire

import (
	"fmt"
	"math/rand"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/registry"
	"github.com/celldev/celllab/internal/sim"
)

// Automaton implements the forest-fire lab driver. Besides the board it
// owns the cumulative burned counter, which survives steps and resets
// only on clear or randomize.
type Automaton struct {
	rng         *rand.Rand
	grid        *sim.Grid
	edge        sim.EdgePolicy
	params      sim.FireParams
	seed        sim.FireSeed
	burnedTotal int
	tick        uint64
	playing     bool
	tickRate    int
	stats       sim.FireStats
}

// Package-level knobs applied by the CLI before creation.
var (
	selectedEdge   = sim.EdgeBounded
	selectedParams = sim.DefaultFireParams()
	selectedSeed   = sim.DefaultFireSeed()
)

// SetEdgePolicy sets the neighbor edge policy for the next game.
func SetEdgePolicy(p sim.EdgePolicy) {
	selectedEdge = p
}

// SetParams sets the growth/lightning probabilities for the next game.
func SetParams(p sim.FireParams) {
	selectedParams = p
}

// SetSeeding sets the randomize strategy for the next game.
func SetSeeding(s sim.FireSeed) {
	selectedSeed = s
}

// New creates a forest-fire automaton.
func New() *Automaton {
	return &Automaton{}
}

func init() {
	registry.Register("fire", func() registry.Automaton {
		return New()
	})
}

// ID returns the automaton identifier.
func (a *Automaton) ID() string { return "fire" }

// Title returns the display name.
func (a *Automaton) Title() string { return "Forest Fire" }

// Model returns the simulation variant.
func (a *Automaton) Model() sim.Model { return sim.ModelFire }

// Reset initializes an empty board; Randomize seeds a forest.
func (a *Automaton) Reset(cfg core.RuntimeConfig) {
	a.rng = rand.New(rand.NewSource(cfg.Seed))
	a.tick = 0
	a.playing = false
	a.tickRate = cfg.TickRate
	a.edge = selectedEdge
	a.params = selectedParams
	a.seed = selectedSeed
	a.burnedTotal = 0
	a.grid = sim.MustNew(cfg.Rows, cfg.Cols)
	a.stats = sim.FireStatsFor(a.grid)
}

// Step consumes one frame of input and, when playing, advances the
// board by one step.
func (a *Automaton) Step(in core.InputFrame) core.StepResult {
	for _, edit := range in.Edits {
		a.grid.Set(edit.Row, edit.Col, sim.ModelFire.NextEditState(a.grid.At(edit.Row, edit.Col)))
	}
	if len(in.Edits) > 0 {
		a.refreshStats()
	}

	switch {
	case in.Has(core.ActionPlayPause):
		a.playing = !a.playing
	case in.Has(core.ActionClear):
		a.grid.Clear()
		a.tick = 0
		a.playing = false
		a.burnedTotal = 0
		a.refreshStats()
	case in.Has(core.ActionRandomize):
		if g, err := sim.RandomFire(a.grid.Rows, a.grid.Cols, a.seed, a.rng); err == nil {
			a.grid = g
		}
		a.tick = 0
		a.burnedTotal = 0
		a.refreshStats()
	case in.Has(core.ActionToggleEdges):
		if a.edge == sim.EdgeBounded {
			a.edge = sim.EdgeWrap
		} else {
			a.edge = sim.EdgeBounded
		}
	}

	if in.Has(core.ActionSpeedUp) {
		a.tickRate = core.Clamp(a.tickRate+1, 1, 60)
	}
	if in.Has(core.ActionSpeedDown) {
		a.tickRate = core.Clamp(a.tickRate-1, 1, 60)
	}

	if a.playing || in.Has(core.ActionStep) {
		a.advance()
	}

	return core.StepResult{State: a.State()}
}

// advance runs one fire step. Parameters were validated when set, so a
// step error means a programming bug; the board is left unchanged.
func (a *Automaton) advance() {
	next, stats, err := sim.StepFire(a.grid, a.params, a.edge, a.burnedTotal, a.rng)
	if err != nil {
		return
	}
	a.grid = next
	a.stats = stats
	a.burnedTotal = stats.BurnedTotal
	a.tick++
}

// refreshStats recomputes instantaneous counts after an edit or reset,
// carrying the cumulative burned counter.
func (a *Automaton) refreshStats() {
	a.stats = sim.FireStatsFor(a.grid)
	a.stats.BurnedTotal = a.burnedTotal
}

// Resize reshapes the board, preserving the top-left overlap.
func (a *Automaton) Resize(rows, cols int) error {
	next, err := a.grid.Resize(rows, cols)
	if err != nil {
		return err
	}
	a.grid = next
	a.refreshStats()
	return nil
}

// State reports the current lab state.
func (a *Automaton) State() core.LabState {
	return core.LabState{
		Tick:     a.tick,
		Playing:  a.playing,
		TickRate: a.tickRate,
		Status: fmt.Sprintf("empty=%d trees=%d burning=%d burned=%d forest=%.3f fire=%.3f",
			a.stats.Empty, a.stats.Trees, a.stats.Burning, a.stats.BurnedTotal,
			a.stats.ForestPct, a.stats.BurningPct),
	}
}

// Render draws the HUD, the bordered board and the key help line.
func (a *Automaton) Render(dst *core.Screen) {
	mode := "paused"
	if a.playing {
		mode = "playing"
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("%s  [%s]  edges=%s  p_growth=%.3f p_lightning=%.3f  %d tps  tick %d",
		a.Title(), mode, a.edge, a.params.Growth, a.params.Lightning, a.tickRate, a.tick), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, a.State().Status, core.ColorGray)

	if !core.BoardFits(dst.Width(), dst.Height(), a.grid.Rows, a.grid.Cols) {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small for this board")
		return
	}

	board := core.BoardRect(dst.Width(), dst.Height(), a.grid.Rows, a.grid.Cols)
	dst.DrawBox(core.NewRect(board.X-1, board.Y-1, board.W+2, board.H+2), core.ColorGray)
	for r := 0; r < a.grid.Rows; r++ {
		for c := 0; c < a.grid.Cols; c++ {
			switch a.grid.At(r, c) {
			case sim.Tree:
				dst.SetCell(board.X+c, board.Y+r, '█', core.ColorGreen)
			case sim.Burning:
				dst.SetCell(board.X+c, board.Y+r, '█', core.ColorOrange)
			}
		}
	}

	dst.DrawTextColored(1, dst.Height()-1,
		"space play/pause  n step  r random  c clear  e edges  +/- speed  s save  q quit",
		core.ColorGray)
}

// Edge returns the active edge policy.
func (a *Automaton) Edge() sim.EdgePolicy {
	return a.edge
}

// SetEdge switches the neighbor edge policy for subsequent generations.
func (a *Automaton) SetEdge(p sim.EdgePolicy) {
	a.edge = p
}

// Grid returns a copy of the current board.
func (a *Automaton) Grid() *sim.Grid {
	return a.grid.Clone()
}

// SetGrid installs a board loaded from a preset. The cumulative burned
// counter starts over with the new board.
func (a *Automaton) SetGrid(g *sim.Grid) error {
	for i, v := range g.Cells {
		if !sim.ModelFire.ValidCell(v) {
			return fmt.Errorf("fire: cell %d holds %d, outside the fire alphabet", i, v)
		}
	}
	a.grid = g.Clone()
	a.tick = 0
	a.playing = false
	a.burnedTotal = 0
	a.refreshStats()
	return nil
}
