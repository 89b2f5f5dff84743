package core

// Action is a semantic lab action, abstracted from physical key
// presses. Drivers consume actions without knowing the key bindings.
type Action int

const (
	ActionNone        Action = iota
	ActionPlayPause          // Space - toggle automatic stepping
	ActionStep               // N - advance one tick while paused
	ActionRandomize          // R - reseed the board randomly
	ActionClear              // C - zero the board, reset counters
	ActionSpeedUp            // + - more ticks per second
	ActionSpeedDown          // - - fewer ticks per second
	ActionCyclePattern       // P - stamp the next catalogue pattern (Life)
	ActionToggleEdges        // E - bounded <-> toroidal neighbor lookup
	ActionConfirm            // Enter - confirm selection in menus
	ActionBack               // Esc/B - back to menu
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlayPause:
		return "PlayPause"
	case ActionStep:
		return "Step"
	case ActionRandomize:
		return "Randomize"
	case ActionClear:
		return "Clear"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionCyclePattern:
		return "CyclePattern"
	case ActionToggleEdges:
		return "ToggleEdges"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CellEdit is a mouse edit targeting one board cell, in grid
// coordinates. The platform translates screen clicks into these.
type CellEdit struct {
	Row, Col int
}

// InputFrame is the input gathered for a single simulation tick:
// triggered actions plus any cell edits since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
	Edits   []CellEdit
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddEdit queues a cell edit for this frame.
func (f *InputFrame) AddEdit(row, col int) {
	f.Edits = append(f.Edits, CellEdit{Row: row, Col: col})
}

// Clear resets all actions and edits for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Edits = f.Edits[:0]
}
