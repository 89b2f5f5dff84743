// Package life drives Conway's Game of Life over the simulation core.
package life

import (
	"fmt"
	"math/rand"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/registry"
	"github.com/celldev/celllab/internal/sim"
)

// Automaton implements the Life lab driver. It owns the board
// exclusively: each generation consumes the previous grid and installs
// the fresh one returned by the rule.
type Automaton struct {
	rng      *rand.Rand
	grid     *sim.Grid
	edge     sim.EdgePolicy
	tick     uint64
	playing  bool
	tickRate int
	density  float64
	stats    sim.LifeStats
	pattern  int // index into the catalogue for ActionCyclePattern
}

// Package-level knobs applied by the CLI before creation.
var (
	selectedEdge    = sim.EdgeBounded
	selectedDensity = 0.35
	selectedPattern string
)

// SetEdgePolicy sets the neighbor edge policy for the next game.
func SetEdgePolicy(p sim.EdgePolicy) {
	selectedEdge = p
}

// SetDensity sets the randomize density for the next game.
func SetDensity(d float64) {
	selectedDensity = d
}

// SetStartPattern stamps the named pattern on the board at reset.
// Empty means start from a blank board.
func SetStartPattern(name string) {
	selectedPattern = name
}

// New creates a Life automaton.
func New() *Automaton {
	return &Automaton{}
}

func init() {
	registry.Register("life", func() registry.Automaton {
		return New()
	})
}

// ID returns the automaton identifier.
func (a *Automaton) ID() string { return "life" }

// Title returns the display name.
func (a *Automaton) Title() string { return "Game of Life" }

// Model returns the simulation variant.
func (a *Automaton) Model() sim.Model { return sim.ModelLife }

// Reset initializes the board. A selected start pattern is stamped on
// a blank grid; otherwise the board starts empty for mouse editing.
func (a *Automaton) Reset(cfg core.RuntimeConfig) {
	a.rng = rand.New(rand.NewSource(cfg.Seed))
	a.tick = 0
	a.playing = false
	a.tickRate = cfg.TickRate
	a.edge = selectedEdge
	a.density = selectedDensity
	a.grid = sim.MustNew(cfg.Rows, cfg.Cols)

	if selectedPattern != "" {
		if stamped, err := sim.InsertPattern(a.grid, sim.ModelLife, selectedPattern); err == nil {
			a.grid = stamped
		}
		selectedPattern = ""
	}
	a.stats = sim.LifeStatsFor(a.grid)
}

// Step consumes one frame of input and, when playing, advances the
// board by one generation.
func (a *Automaton) Step(in core.InputFrame) core.StepResult {
	for _, edit := range in.Edits {
		a.grid.Set(edit.Row, edit.Col, sim.ModelLife.NextEditState(a.grid.At(edit.Row, edit.Col)))
	}
	if len(in.Edits) > 0 {
		a.stats = sim.LifeStatsFor(a.grid)
	}

	switch {
	case in.Has(core.ActionPlayPause):
		a.playing = !a.playing
	case in.Has(core.ActionClear):
		a.grid.Clear()
		a.tick = 0
		a.playing = false
		a.stats = sim.LifeStatsFor(a.grid)
	case in.Has(core.ActionRandomize):
		if g, err := sim.RandomLife(a.grid.Rows, a.grid.Cols, a.density, a.rng); err == nil {
			a.grid = g
		}
		a.tick = 0
		a.stats = sim.LifeStatsFor(a.grid)
	case in.Has(core.ActionCyclePattern):
		a.stampNextPattern()
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

// advance runs one generation.
func (a *Automaton) advance() {
	next, stats := sim.StepLife(a.grid, a.edge)
	a.grid = next
	a.stats = stats
	a.tick++
}

// stampNextPattern clears the board and stamps the next catalogue
// pattern, skipping any that do not fit the grid.
func (a *Automaton) stampNextPattern() {
	names := sim.PatternNames()
	for range names {
		name := names[a.pattern%len(names)]
		a.pattern++
		blank := sim.MustNew(a.grid.Rows, a.grid.Cols)
		stamped, err := sim.InsertPattern(blank, sim.ModelLife, name)
		if err != nil {
			continue
		}
		a.grid = stamped
		a.tick = 0
		a.stats = sim.LifeStatsFor(a.grid)
		return
	}
}

// Resize reshapes the board, preserving the top-left overlap. Called by
// the platform when the terminal is resized.
func (a *Automaton) Resize(rows, cols int) error {
	next, err := a.grid.Resize(rows, cols)
	if err != nil {
		return err
	}
	a.grid = next
	a.stats = sim.LifeStatsFor(a.grid)
	return nil
}

// State reports the current lab state.
func (a *Automaton) State() core.LabState {
	return core.LabState{
		Tick:     a.tick,
		Playing:  a.playing,
		TickRate: a.tickRate,
		Status: fmt.Sprintf("alive=%d births=%d deaths=%d density=%.3f",
			a.stats.Alive, a.stats.Births, a.stats.Deaths, a.stats.Density),
	}
}

// Render draws the HUD, the bordered board and the key help line.
func (a *Automaton) Render(dst *core.Screen) {
	mode := "paused"
	if a.playing {
		mode = "playing"
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("%s  [%s]  edges=%s  %d tps  tick %d",
		a.Title(), mode, a.edge, a.tickRate, a.tick), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, a.State().Status, core.ColorGray)

	if !core.BoardFits(dst.Width(), dst.Height(), a.grid.Rows, a.grid.Cols) {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small for this board")
		return
	}

	board := core.BoardRect(dst.Width(), dst.Height(), a.grid.Rows, a.grid.Cols)
	dst.DrawBox(core.NewRect(board.X-1, board.Y-1, board.W+2, board.H+2), core.ColorGray)
	for r := 0; r < a.grid.Rows; r++ {
		for c := 0; c < a.grid.Cols; c++ {
			if a.grid.At(r, c) == sim.Alive {
				dst.SetCell(board.X+c, board.Y+r, '█', core.ColorWhite)
			}
		}
	}

	dst.DrawTextColored(1, dst.Height()-1,
		"space play/pause  n step  r random  c clear  p pattern  e edges  +/- speed  s save  q quit",
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

// SetGrid installs a board loaded from a preset.
func (a *Automaton) SetGrid(g *sim.Grid) error {
	for i, v := range g.Cells {
		if !sim.ModelLife.ValidCell(v) {
			return fmt.Errorf("life: cell %d holds %d, outside the life alphabet", i, v)
		}
	}
	a.grid = g.Clone()
	a.tick = 0
	a.playing = false
	a.stats = sim.LifeStatsFor(a.grid)
	return nil
}
