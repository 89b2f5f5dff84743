package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFireParamsValidation(t *testing.T) {
	tests := []struct {
		name   string
		params FireParams
		valid  bool
	}{
		{"defaults", DefaultFireParams(), true},
		{"zero both", FireParams{}, true},
		{"one both", FireParams{Growth: 1, Lightning: 1}, true},
		{"negative growth", FireParams{Growth: -0.1}, false},
		{"growth above one", FireParams{Growth: 1.5}, false},
		{"negative lightning", FireParams{Lightning: -0.01}, false},
		{"lightning above one", FireParams{Lightning: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestStepFireRejectsBadParams(t *testing.T) {
	g := MustNew(3, 3)
	rng := rand.New(rand.NewSource(1))
	if _, _, err := StepFire(g, FireParams{Growth: -1}, EdgeBounded, 0, rng); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestLoneBurningCellBurnsOut(t *testing.T) {
	g := MustNew(3, 3)
	g.Set(1, 1, Burning)
	rng := rand.New(rand.NewSource(2))

	next, stats, err := StepFire(g, FireParams{}, EdgeBounded, 0, rng)
	if err != nil {
		t.Fatalf("StepFire failed: %v", err)
	}

	if next.Count(Empty) != next.Size() {
		t.Errorf("expected all empty after burnout, got %v", next.Cells)
	}
	if stats.BurnedTotal != 0 {
		t.Errorf("burned_total = %d, expected 0 (no tree ignited)", stats.BurnedTotal)
	}
	if stats.Empty != 9 || stats.Trees != 0 || stats.Burning != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestFireSpreadsToNeighborTrees(t *testing.T) {
	// A burning cell surrounded by trees ignites all eight, regardless
	// of probabilities, because neighbor fire is a sufficient trigger.
	g := MustNew(3, 3)
	for i := range g.Cells {
		g.Cells[i] = Tree
	}
	g.Set(1, 1, Burning)
	rng := rand.New(rand.NewSource(3))

	next, stats, err := StepFire(g, FireParams{}, EdgeBounded, 5, rng)
	if err != nil {
		t.Fatalf("StepFire failed: %v", err)
	}

	if next.At(1, 1) != Empty {
		t.Error("center should burn out to empty")
	}
	if stats.Burning != 8 {
		t.Errorf("burning = %d, expected all 8 neighbors ignited", stats.Burning)
	}
	if stats.BurnedTotal != 5+8 {
		t.Errorf("burned_total = %d, expected prior 5 + 8 ignitions", stats.BurnedTotal)
	}
}

func TestFireStatsPartitionAndMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g, err := RandomFire(15, 15, DefaultFireSeed(), rng)
	if err != nil {
		t.Fatalf("RandomFire failed: %v", err)
	}

	params := FireParams{Growth: 0.05, Lightning: 0.002}
	burned := 0
	for step := 0; step < 40; step++ {
		next, stats, err := StepFire(g, params, EdgeBounded, burned, rng)
		if err != nil {
			t.Fatalf("step %d failed: %v", step, err)
		}
		if stats.Empty+stats.Trees+stats.Burning != g.Size() {
			t.Fatalf("step %d: counts %d+%d+%d do not cover %d cells",
				step, stats.Empty, stats.Trees, stats.Burning, g.Size())
		}
		if stats.BurnedTotal < burned {
			t.Fatalf("step %d: burned_total decreased %d -> %d", step, burned, stats.BurnedTotal)
		}
		burned = stats.BurnedTotal
		g = next
	}
}

func TestFireZeroProbabilitiesFreezeTransitions(t *testing.T) {
	// With both probabilities zero and no fire present, a forest is a
	// fixed point: nothing grows and nothing ignites.
	g := MustNew(4, 4)
	g.Set(0, 0, Tree)
	g.Set(2, 3, Tree)
	rng := rand.New(rand.NewSource(5))

	next, stats, err := StepFire(g, FireParams{}, EdgeBounded, 0, rng)
	if err != nil {
		t.Fatalf("StepFire failed: %v", err)
	}
	if !next.Equal(g) {
		t.Error("grid changed despite zero probabilities and no fire")
	}
	if stats.BurnedTotal != 0 {
		t.Errorf("burned_total = %d, expected 0", stats.BurnedTotal)
	}
}

func TestFireDeterministicUnderSeed(t *testing.T) {
	seedGrid := func() *Grid {
		rng := rand.New(rand.NewSource(6))
		g, err := RandomFire(10, 10, DefaultFireSeed(), rng)
		if err != nil {
			t.Fatalf("RandomFire failed: %v", err)
		}
		return g
	}

	run := func() *Grid {
		g := seedGrid()
		rng := rand.New(rand.NewSource(42))
		params := DefaultFireParams()
		burned := 0
		for i := 0; i < 20; i++ {
			next, stats, err := StepFire(g, params, EdgeWrap, burned, rng)
			if err != nil {
				t.Fatalf("StepFire failed: %v", err)
			}
			burned = stats.BurnedTotal
			g = next
		}
		return g
	}

	if !run().Equal(run()) {
		t.Error("same seed produced different fire evolutions")
	}
}
