package core

// Color is a foreground color for a screen cell, mapped to ANSI codes
// by the platform layer.
type Color uint8

// Colors used by the lab: board states, HUD accents, and chrome.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorOrange
	ColorRed
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)
