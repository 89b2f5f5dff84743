package sim

import "fmt"

// Model selects which automaton rule a grid evolves under. It is a
// closed variant: each model carries its own cell alphabet and
// transition function, chosen once by the driver and threaded
// explicitly instead of string-compared per call.
type Model uint8

const (
	// ModelLife is Conway's Game of Life. Alphabet {Dead, Alive}.
	ModelLife Model = iota
	// ModelFire is the probabilistic forest-fire model.
	// Alphabet {Empty, Tree, Burning}.
	ModelFire
)

// Life cell states.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Fire cell states.
const (
	Empty   uint8 = 0
	Tree    uint8 = 1
	Burning uint8 = 2
)

// String returns the model identifier used in the CLI and storage.
func (m Model) String() string {
	switch m {
	case ModelLife:
		return "life"
	case ModelFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ParseModel converts a stored or user-supplied identifier to a Model.
func ParseModel(s string) (Model, error) {
	switch s {
	case "life":
		return ModelLife, nil
	case "fire":
		return ModelFire, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedModel, s)
	}
}

// States returns the alphabet size of the model.
func (m Model) States() uint8 {
	if m == ModelFire {
		return 3
	}
	return 2
}

// NextEditState returns the value a cell takes when the user clicks it:
// Life toggles dead/alive, Fire cycles empty -> tree -> burning -> empty.
func (m Model) NextEditState(v uint8) uint8 {
	return (v + 1) % m.States()
}

// ValidCell reports whether v belongs to the model's alphabet.
func (m Model) ValidCell(v uint8) bool {
	return v < m.States()
}
