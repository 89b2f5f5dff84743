package life

import (
	"testing"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		Rows:     9,
		Cols:     9,
		TickRate: 10,
		Seed:     12345,
	}
}

func TestResetStartsBlankAndPaused(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	if a.playing {
		t.Error("should start paused for editing")
	}
	if a.grid.Count(sim.Alive) != 0 {
		t.Error("should start with a blank board")
	}
	if a.tick != 0 {
		t.Errorf("tick = %d, expected 0", a.tick)
	}
}

func TestEditsToggleCells(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	in := core.NewInputFrame()
	in.AddEdit(4, 4)
	a.Step(in)

	if a.grid.At(4, 4) != sim.Alive {
		t.Error("click on a dead cell should make it alive")
	}

	in.Clear()
	in.AddEdit(4, 4)
	a.Step(in)

	if a.grid.At(4, 4) != sim.Dead {
		t.Error("click on a live cell should kill it")
	}
}

func TestStepOnlyAdvancesWhenRequested(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	// Vertical blinker in the middle.
	for _, r := range []int{3, 4, 5} {
		a.grid.Set(r, 4, sim.Alive)
	}

	// Paused with no step action: nothing moves.
	a.Step(core.NewInputFrame())
	if a.tick != 0 || a.grid.At(3, 4) != sim.Alive {
		t.Fatal("paused automaton advanced without a step action")
	}

	// Single-step while paused.
	in := core.NewInputFrame()
	in.Set(core.ActionStep)
	a.Step(in)
	if a.tick != 1 {
		t.Errorf("tick = %d, expected 1", a.tick)
	}
	if a.grid.At(4, 3) != sim.Alive || a.grid.At(4, 5) != sim.Alive {
		t.Error("blinker should have flipped horizontal")
	}

	// Play, then every tick advances.
	in.Clear()
	in.Set(core.ActionPlayPause)
	a.Step(in)
	if !a.playing {
		t.Fatal("play/pause should start playback")
	}
	a.Step(core.NewInputFrame())
	if a.tick != 3 {
		t.Errorf("tick = %d, expected 3 (toggle tick also advances)", a.tick)
	}
}

func TestClearResetsBoardAndTick(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRandomize)
	a.Step(in)
	if a.grid.Count(sim.Alive) == 0 {
		t.Fatal("randomize at 35% density left an empty 9x9 board (seed regression)")
	}

	in.Clear()
	in.Set(core.ActionClear)
	a.Step(in)
	if a.grid.Count(sim.Alive) != 0 || a.tick != 0 || a.playing {
		t.Error("clear should blank the board, zero the tick and pause")
	}
}

func TestCyclePatternStampsCatalogue(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionCyclePattern)
	a.Step(in)

	// First catalogue entry is the beacon: 8 live cells.
	if a.grid.Count(sim.Alive) != 8 {
		t.Errorf("alive = %d, expected beacon's 8", a.grid.Count(sim.Alive))
	}

	// The 13x13 pulsar cannot fit a 9x9 board and must be skipped when
	// its turn comes around.
	for i := 0; i < 10; i++ {
		in.Clear()
		in.Set(core.ActionCyclePattern)
		a.Step(in)
		if a.grid.Count(sim.Alive) == 0 {
			t.Fatalf("cycle %d left an empty board", i)
		}
	}
}

func TestToggleEdges(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	if a.edge != sim.EdgeBounded {
		t.Fatal("bounded edges must be the default")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionToggleEdges)
	a.Step(in)
	if a.edge != sim.EdgeWrap {
		t.Error("toggle should switch to toroidal")
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.grid.Set(0, 0, sim.Alive)
	a.grid.Set(8, 8, sim.Alive)

	if err := a.Resize(5, 12); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if a.grid.Rows != 5 || a.grid.Cols != 12 {
		t.Fatalf("shape = %dx%d, expected 5x12", a.grid.Rows, a.grid.Cols)
	}
	if a.grid.At(0, 0) != sim.Alive {
		t.Error("overlap cell lost on resize")
	}
	if a.grid.Count(sim.Alive) != 1 {
		t.Error("truncated cell should be gone")
	}
}

func TestSetGridRejectsForeignAlphabet(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	g := sim.MustNew(4, 4)
	g.Set(1, 1, sim.Burning)
	if err := a.SetGrid(g); err == nil {
		t.Error("fire alphabet should be rejected by the life automaton")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.grid.Set(2, 2, sim.Alive)

	grid := a.Grid()
	grid.Set(0, 0, sim.Alive) // copy must not alias the board
	if a.grid.At(0, 0) != sim.Dead {
		t.Error("Grid() must return a copy")
	}

	params, err := a.Params()
	if err != nil {
		t.Fatalf("Params failed: %v", err)
	}
	if err := a.SetParams(params); err != nil {
		t.Errorf("SetParams rejected its own output: %v", err)
	}
}
