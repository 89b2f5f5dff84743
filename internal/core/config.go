package core

// RuntimeConfig is passed to automata at initialization. It carries the
// screen shape, the board shape, the tick cadence and the RNG seed for
// deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	Rows     int   // Board rows
	Cols     int   // Board columns
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig matching the classic lab board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Rows:     35,
		Cols:     50,
		TickRate: 10,
		Seed:     0,
	}
}

// LabState is what an automaton reports back to the platform after each
// tick: board bookkeeping plus a preformatted stats line for the HUD.
type LabState struct {
	Tick     uint64 // Completed simulation steps since the last reset
	Playing  bool   // Whether the timer is advancing the board
	TickRate int    // Current ticks per second
	Status   string // One-line stats summary for the HUD
}

// StepResult is returned by an automaton's Step after each tick.
type StepResult struct {
	State LabState
}
