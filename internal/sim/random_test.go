package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRandomLifeDensityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	if _, err := RandomLife(5, 5, -0.1, rng); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative density: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := RandomLife(5, 5, 1.1, rng); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("density above one: expected ErrInvalidParameter, got %v", err)
	}

	full, err := RandomLife(5, 5, 1, rng)
	if err != nil {
		t.Fatalf("RandomLife(1.0) failed: %v", err)
	}
	if full.Count(Alive) != 25 {
		t.Errorf("density 1.0 left %d dead cells", full.Count(Dead))
	}

	none, err := RandomLife(5, 5, 0, rng)
	if err != nil {
		t.Fatalf("RandomLife(0.0) failed: %v", err)
	}
	if none.Count(Alive) != 0 {
		t.Errorf("density 0.0 produced %d live cells", none.Count(Alive))
	}
}

func TestRandomFireStrategiesProduceValidAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(22))

	for _, strategy := range []FireSeedStrategy{FireSeedLayered, FireSeedCategorical} {
		seed := FireSeed{Strategy: strategy, TreeDensity: 0.5, FireDensity: 0.1}
		g, err := RandomFire(20, 20, seed, rng)
		if err != nil {
			t.Fatalf("%v: RandomFire failed: %v", strategy, err)
		}
		for i, v := range g.Cells {
			if !ModelFire.ValidCell(v) {
				t.Fatalf("%v: cell %d holds %d, outside fire alphabet", strategy, i, v)
			}
		}
	}
}

func TestRandomFireCategoricalRejectsOverfullDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	seed := FireSeed{Strategy: FireSeedCategorical, TreeDensity: 0.8, FireDensity: 0.3}
	if _, err := RandomFire(5, 5, seed, rng); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	// The same densities are fine for the layered strategy, where the
	// draws are independent.
	layered := FireSeed{Strategy: FireSeedLayered, TreeDensity: 0.8, FireDensity: 0.3}
	if _, err := RandomFire(5, 5, layered, rng); err != nil {
		t.Errorf("layered strategy rejected independent densities: %v", err)
	}
}

func TestRandomFireDeterministicUnderSeed(t *testing.T) {
	gen := func() *Grid {
		rng := rand.New(rand.NewSource(24))
		g, err := RandomFire(15, 15, DefaultFireSeed(), rng)
		if err != nil {
			t.Fatalf("RandomFire failed: %v", err)
		}
		return g
	}
	if !gen().Equal(gen()) {
		t.Error("same seed produced different fire grids")
	}
}

func TestParseFireSeedStrategy(t *testing.T) {
	if s, err := ParseFireSeedStrategy(""); err != nil || s != FireSeedLayered {
		t.Errorf("empty string should default to layered, got %v, %v", s, err)
	}
	if s, err := ParseFireSeedStrategy("categorical"); err != nil || s != FireSeedCategorical {
		t.Errorf("ParseFireSeedStrategy(categorical) = %v, %v", s, err)
	}
	if _, err := ParseFireSeedStrategy("uniform"); err == nil {
		t.Error("unknown strategy should be rejected")
	}
}

func TestParseModel(t *testing.T) {
	if m, err := ParseModel("life"); err != nil || m != ModelLife {
		t.Errorf("ParseModel(life) = %v, %v", m, err)
	}
	if m, err := ParseModel("fire"); err != nil || m != ModelFire {
		t.Errorf("ParseModel(fire) = %v, %v", m, err)
	}
	if _, err := ParseModel("sand"); !errors.Is(err, ErrUnsupportedModel) {
		t.Errorf("expected ErrUnsupportedModel, got %v", err)
	}
}

func TestNextEditState(t *testing.T) {
	if ModelLife.NextEditState(Dead) != Alive || ModelLife.NextEditState(Alive) != Dead {
		t.Error("life editing should toggle dead/alive")
	}
	if ModelFire.NextEditState(Empty) != Tree ||
		ModelFire.NextEditState(Tree) != Burning ||
		ModelFire.NextEditState(Burning) != Empty {
		t.Error("fire editing should cycle empty -> tree -> burning -> empty")
	}
}
