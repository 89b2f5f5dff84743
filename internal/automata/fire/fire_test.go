package fire

import (
	"encoding/json"
	"testing"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		Rows:     10,
		Cols:     10,
		TickRate: 10,
		Seed:     42,
	}
}

func TestResetStartsEmpty(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	if a.grid.Count(sim.Tree) != 0 || a.grid.Count(sim.Burning) != 0 {
		t.Error("board should start empty")
	}
	if a.burnedTotal != 0 {
		t.Error("burned counter should start at zero")
	}
}

func TestEditsCycleThreeStates(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	want := []uint8{sim.Tree, sim.Burning, sim.Empty}
	for _, state := range want {
		in := core.NewInputFrame()
		in.AddEdit(5, 5)
		a.Step(in)
		if got := a.grid.At(5, 5); got != state {
			t.Fatalf("cell = %d, expected %d", got, state)
		}
	}
}

func TestBurnedAccumulatesAcrossSteps(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.params = sim.FireParams{} // no growth, no lightning

	// A burning cell surrounded by trees ignites all eight neighbors.
	for r := 4; r <= 6; r++ {
		for c := 4; c <= 6; c++ {
			a.grid.Set(r, c, sim.Tree)
		}
	}
	a.grid.Set(5, 5, sim.Burning)

	in := core.NewInputFrame()
	in.Set(core.ActionStep)
	a.Step(in)
	if a.burnedTotal != 8 {
		t.Fatalf("burnedTotal = %d, expected 8", a.burnedTotal)
	}

	// Second step: the ring burns out with nothing left to ignite.
	in.Clear()
	in.Set(core.ActionStep)
	a.Step(in)
	if a.burnedTotal != 8 {
		t.Errorf("burnedTotal = %d, expected to stay at 8", a.burnedTotal)
	}
	if a.grid.Count(sim.Burning) != 0 {
		t.Error("ring should have burned out")
	}
}

func TestClearAndRandomizeResetBurned(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.burnedTotal = 99
	a.stats.BurnedTotal = 99

	in := core.NewInputFrame()
	in.Set(core.ActionClear)
	a.Step(in)
	if a.burnedTotal != 0 || a.stats.BurnedTotal != 0 {
		t.Error("clear should reset the burned counter")
	}

	a.burnedTotal = 99
	in.Clear()
	in.Set(core.ActionRandomize)
	a.Step(in)
	if a.burnedTotal != 0 {
		t.Error("randomize should reset the burned counter")
	}
	if a.grid.Count(sim.Tree) == 0 {
		t.Error("default seeding should plant trees on a 10x10 board")
	}
}

func TestEditsDoNotTouchBurned(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.burnedTotal = 7

	in := core.NewInputFrame()
	in.AddEdit(2, 2)
	a.Step(in)
	if a.stats.BurnedTotal != 7 {
		t.Errorf("BurnedTotal = %d, expected edit to carry 7", a.stats.BurnedTotal)
	}
}

func TestSetParamsValidates(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	before := a.params

	if err := a.SetParams([]byte(`{"p_growth":1.5,"p_lightning":0.0}`)); err == nil {
		t.Error("out-of-range growth should be rejected")
	}
	if a.params != before {
		t.Error("rejected blob must leave current parameters in place")
	}

	if err := a.SetParams([]byte(`{"p_growth":0.05,"p_lightning":0.002}`)); err != nil {
		t.Fatalf("SetParams failed: %v", err)
	}
	if a.params.Growth != 0.05 || a.params.Lightning != 0.002 {
		t.Errorf("params = %+v after SetParams", a.params)
	}
}

func TestParamsRoundTrip(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.params = sim.FireParams{Growth: 0.02, Lightning: 0.004}

	blob, err := a.Params()
	if err != nil {
		t.Fatalf("Params failed: %v", err)
	}

	b := New()
	b.Reset(testConfig())
	if err := b.SetParams(blob); err != nil {
		t.Fatalf("SetParams failed: %v", err)
	}
	if b.params != a.params {
		t.Errorf("round trip changed params: %+v vs %+v", b.params, a.params)
	}
}

func TestStatsSummaryKeys(t *testing.T) {
	a := New()
	a.Reset(testConfig())
	a.grid.Set(0, 0, sim.Tree)
	a.burnedTotal = 3
	a.refreshStats()

	blob, err := a.StatsSummary()
	if err != nil {
		t.Fatalf("StatsSummary failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(blob, &got); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	for _, key := range []string{"empty", "trees", "burning", "burned_total", "forest_pct", "burning_pct"} {
		if _, ok := got[key]; !ok {
			t.Errorf("summary missing %q", key)
		}
	}
	if got["burned_total"].(float64) != 3 {
		t.Errorf("burned_total = %v, expected 3", got["burned_total"])
	}
}

func TestSetGridRejectsBadCells(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	g := sim.MustNew(4, 4)
	g.Cells[5] = 7
	if err := a.SetGrid(g); err == nil {
		t.Error("cell values outside empty/tree/burning should be rejected")
	}

	g.Cells[5] = sim.Burning
	a.burnedTotal = 50
	if err := a.SetGrid(g); err != nil {
		t.Fatalf("SetGrid failed: %v", err)
	}
	if a.burnedTotal != 0 {
		t.Error("loading a preset should start the burned counter over")
	}
}
