package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '#', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3,2) = %+v, expected '#' in green", cell)
	}

	// Out of bounds is a no-op read and write.
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '@', ColorRed)
	s.Clear()
	if got := s.GetCell(1, 1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 1, 'a')
	s.Set(5, 3, 'b')

	s.Resize(4, 6)
	if s.Width() != 4 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 4x6", s.Width(), s.Height())
	}
	if s.GetCell(2, 1).Rune != 'a' {
		t.Error("cell inside the overlap was lost on resize")
	}
	if s.GetCell(3, 5).Rune != ' ' {
		t.Error("new area should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "hello")

	// Clipped at the edge: only "hel" fits.
	if got := s.Row(0); got != "     hel" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}
