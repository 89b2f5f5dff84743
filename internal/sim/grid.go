// Package sim implements the cellular-automaton simulation core:
// the grid data structure, the Life and Forest-Fire transition rules,
// pattern seeding, grid resizing, and run-length serialization.
// The package is UI-agnostic and deterministic given a seeded RNG.
package sim

import "fmt"

// Grid is a fixed-shape 2D array of cell states stored in row-major
// order: index = row*Cols + col. Cell values are drawn from the active
// model's alphabet. A Grid is owned by exactly one driver at a time;
// transition functions consume one grid and return a fresh one, so no
// cell is ever read and written in the same pass.
type Grid struct {
	Rows  int
	Cols  int
	Cells []uint8
}

// New allocates a zero-filled grid. Non-positive dimensions are
// rejected with ErrInvalidDimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: make([]uint8, rows*cols)}, nil
}

// MustNew is New for dimensions known to be valid, such as constants in
// tests and defaults. Panics on invalid dimensions.
func MustNew(rows, cols int) *Grid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// index converts coordinates to a flat slice index.
func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the cell value at (row, col). Out-of-bounds reads return 0.
func (g *Grid) At(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.Cells[g.index(row, col)]
}

// Set writes a cell value. Out-of-bounds writes are silently ignored.
func (g *Grid) Set(row, col int, v uint8) {
	if g.InBounds(row, col) {
		g.Cells[g.index(row, col)] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// Equal reports whether two grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, v := range g.Cells {
		if v != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given state.
func (g *Grid) Count(state uint8) int {
	n := 0
	for _, v := range g.Cells {
		if v == state {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = 0
	}
}

// Size returns the total cell count.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// Resize returns a new grid of the target shape. The rectangular
// overlap between the old and new shape, top-left aligned, is copied
// verbatim; all other cells are zero. Shrinking truncates, growing
// pads; both always succeed for positive dimensions.
func (g *Grid) Resize(rows, cols int) (*Grid, error) {
	out, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	copyRows := min(rows, g.Rows)
	copyCols := min(cols, g.Cols)
	for r := 0; r < copyRows; r++ {
		copy(out.Cells[r*cols:r*cols+copyCols], g.Cells[r*g.Cols:r*g.Cols+copyCols])
	}
	return out, nil
}
