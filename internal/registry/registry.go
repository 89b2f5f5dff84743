// Package registry provides a global registry for automaton factories.
// Automata register themselves in init() functions, allowing the
// platform and CLI to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/celldev/celllab/internal/core"
	"github.com/celldev/celllab/internal/sim"
)

// Automaton is the contract every lab model must implement. Implementations
// contain pure driver logic over internal/sim with no external
// dependencies (especially no Bubble Tea); the platform handles input
// mapping, timing, rendering and persistence.
type Automaton interface {
	// ID returns a unique identifier ("life", "fire") used for CLI
	// commands and preset/run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Model returns the simulation variant this automaton drives.
	Model() sim.Model

	// Reset initializes or resets the board and counters. The
	// RuntimeConfig provides board shape, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one frame of input (actions plus queued cell edits)
	// and, when playing, advances the board by one generation. The
	// automaton owns its grid exclusively; each generation consumes the
	// previous grid and installs a fresh one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current board and HUD into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current lab state (tick, playing, stats line).
	State() core.LabState

	// Resize reshapes the board, preserving the overlapping top-left
	// region. Cells outside the new shape are discarded.
	Resize(rows, cols int) error

	// Edge returns the active edge policy, for preset storage.
	Edge() sim.EdgePolicy

	// SetEdge switches the edge policy, used when a preset carries a
	// different one than the session default.
	SetEdge(p sim.EdgePolicy)

	// Grid returns a copy of the current board, for persistence.
	Grid() *sim.Grid

	// SetGrid installs a board loaded from a preset. The grid's cells
	// must belong to the model's alphabet.
	SetGrid(g *sim.Grid) error

	// Params returns the automaton's tunable parameters as a JSON blob
	// for preset storage. Life has none and returns "{}".
	Params() ([]byte, error)

	// SetParams applies a parameter blob previously produced by Params.
	SetParams(data []byte) error

	// StatsSummary returns the current statistics as a JSON blob for
	// run records.
	StatsSummary() ([]byte, error)
}

// Info contains metadata about a registered automaton.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new automaton instance.
type Factory func() Automaton

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an automaton factory to the registry. Typically called
// from an automaton package's init() function. Panics if the ID is
// already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: automaton %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered automata, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new automaton by its ID.
func Create(id string) (Automaton, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown automaton %q", id)
	}

	return f(), nil
}

// Exists checks whether an automaton with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
