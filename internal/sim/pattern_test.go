package sim

import (
	"errors"
	"testing"
)

func TestPatternCatalogue(t *testing.T) {
	expected := []string{"beacon", "blinker", "glider", "pulsar", "toad"}
	names := PatternNames()
	if len(names) != len(expected) {
		t.Fatalf("catalogue has %d patterns, expected %d", len(names), len(expected))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("catalogue[%d] = %q, expected %q", i, names[i], name)
		}
	}
}

func TestInsertPatternCentersBlinker(t *testing.T) {
	g := MustNew(3, 3)
	out, err := InsertPattern(g, ModelLife, "blinker")
	if err != nil {
		t.Fatalf("InsertPattern failed: %v", err)
	}

	expected := gridFromRows(t,
		"...",
		"###",
		"...",
	)
	if !out.Equal(expected) {
		t.Errorf("blinker not centered: %v", out.Cells)
	}

	// Source grid must be untouched.
	if g.Count(Alive) != 0 {
		t.Error("InsertPattern mutated its input grid")
	}
}

func TestInsertPatternPreservesSurroundings(t *testing.T) {
	g := MustNew(9, 9)
	g.Set(0, 0, Alive)

	out, err := InsertPattern(g, ModelLife, "glider")
	if err != nil {
		t.Fatalf("InsertPattern failed: %v", err)
	}
	if out.At(0, 0) != Alive {
		t.Error("cell outside pattern bounding box was cleared")
	}

	// Glider has 5 live cells, centered well away from (0,0).
	if out.Count(Alive) != 6 {
		t.Errorf("alive count = %d, expected 6", out.Count(Alive))
	}
}

func TestInsertPatternRejectsSmallGrid(t *testing.T) {
	g := MustNew(5, 5)
	if _, err := InsertPattern(g, ModelLife, "pulsar"); !errors.Is(err, ErrPatternOutOfBounds) {
		t.Errorf("expected ErrPatternOutOfBounds, got %v", err)
	}
}

func TestInsertPatternRejectsFireModel(t *testing.T) {
	g := MustNew(20, 20)
	if _, err := InsertPattern(g, ModelFire, "glider"); !errors.Is(err, ErrUnsupportedModel) {
		t.Errorf("expected ErrUnsupportedModel, got %v", err)
	}
}

func TestInsertPatternUnknownName(t *testing.T) {
	g := MustNew(20, 20)
	if _, err := InsertPattern(g, ModelLife, "spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestGliderTravelsUnderWrap(t *testing.T) {
	// A glider on a toroidal grid keeps exactly 5 live cells forever.
	g := MustNew(10, 10)
	g, err := InsertPattern(g, ModelLife, "glider")
	if err != nil {
		t.Fatalf("InsertPattern failed: %v", err)
	}

	for step := 0; step < 40; step++ {
		g, _ = StepLife(g, EdgeWrap)
		if g.Count(Alive) != 5 {
			t.Fatalf("step %d: glider has %d cells, expected 5", step+1, g.Count(Alive))
		}
	}
}
