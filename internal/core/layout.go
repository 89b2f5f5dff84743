package core

// HUDRows is the number of status lines drawn above the board.
const HUDRows = 2

// BoardRect returns the screen rectangle occupied by the board
// interior (excluding the border box) for a rows x cols grid. The
// board sits below the HUD, centered horizontally. Both the automaton
// renderers and the platform's mouse mapping derive cell positions
// from this one function.
func BoardRect(screenW, screenH, rows, cols int) Rect {
	x := Max(1, (screenW-cols)/2)
	y := HUDRows + 1
	return NewRect(x, y, cols, rows)
}

// BoardFits reports whether the board plus its border and HUD fit the
// screen.
func BoardFits(screenW, screenH, rows, cols int) bool {
	return screenW >= cols+2 && screenH >= rows+HUDRows+3
}
