package sim

import (
	"errors"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
		{5, -3},
		{0, 0},
	}
	for _, tc := range tests {
		if _, err := New(tc.rows, tc.cols); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d): expected ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestGridAtSetBounds(t *testing.T) {
	g := MustNew(3, 4)
	g.Set(1, 2, Alive)

	if got := g.At(1, 2); got != Alive {
		t.Errorf("At(1,2) = %d, expected %d", got, Alive)
	}
	if got := g.At(-1, 0); got != 0 {
		t.Errorf("out-of-bounds read = %d, expected 0", got)
	}

	// Out-of-bounds writes must not corrupt anything
	g.Set(3, 0, 1)
	g.Set(0, 4, 1)
	if g.Count(Alive) != 1 {
		t.Errorf("expected exactly 1 alive cell, got %d", g.Count(Alive))
	}
}

func TestGridCloneIndependence(t *testing.T) {
	g := MustNew(2, 2)
	g.Set(0, 0, 1)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	clone.Set(1, 1, 1)
	if g.At(1, 1) != 0 {
		t.Error("mutating clone leaked into original")
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := MustNew(4, 5)
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			g.Set(r, c, uint8((r+c)%2))
		}
	}

	tests := []struct {
		name       string
		rows, cols int
	}{
		{"grow both", 6, 8},
		{"shrink both", 2, 3},
		{"grow rows shrink cols", 7, 2},
		{"same shape", 4, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := g.Resize(tc.rows, tc.cols)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if out.Rows != tc.rows || out.Cols != tc.cols {
				t.Fatalf("got shape %dx%d, expected %dx%d", out.Rows, out.Cols, tc.rows, tc.cols)
			}
			copyRows := min(tc.rows, g.Rows)
			copyCols := min(tc.cols, g.Cols)
			for r := 0; r < tc.rows; r++ {
				for c := 0; c < tc.cols; c++ {
					expected := uint8(0)
					if r < copyRows && c < copyCols {
						expected = g.At(r, c)
					}
					if out.At(r, c) != expected {
						t.Errorf("cell (%d,%d) = %d, expected %d", r, c, out.At(r, c), expected)
					}
				}
			}
		})
	}
}

func TestResizeRejectsBadDimensions(t *testing.T) {
	g := MustNew(3, 3)
	if _, err := g.Resize(0, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := g.Resize(3, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestGridCountAndClear(t *testing.T) {
	g := MustNew(3, 3)
	g.Set(0, 0, Tree)
	g.Set(1, 1, Tree)
	g.Set(2, 2, Burning)

	if g.Count(Tree) != 2 {
		t.Errorf("Count(Tree) = %d, expected 2", g.Count(Tree))
	}
	if g.Count(Burning) != 1 {
		t.Errorf("Count(Burning) = %d, expected 1", g.Count(Burning))
	}

	g.Clear()
	if g.Count(Empty) != g.Size() {
		t.Error("Clear should zero every cell")
	}
}
