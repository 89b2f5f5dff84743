package life

import "encoding/json"

// statsSummary is the run-record stats blob for Life.
type statsSummary struct {
	Alive   int     `json:"alive"`
	Births  int     `json:"births"`
	Deaths  int     `json:"deaths"`
	Density float64 `json:"density"`
}

// Params returns the Life parameter blob. Life has no tunable rule
// parameters; presets store an empty object.
func (a *Automaton) Params() ([]byte, error) {
	return []byte("{}"), nil
}

// SetParams accepts a parameter blob previously produced by Params.
func (a *Automaton) SetParams(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var m map[string]any
	return json.Unmarshal(data, &m)
}

// StatsSummary returns the current statistics for run records.
func (a *Automaton) StatsSummary() ([]byte, error) {
	return json.Marshal(statsSummary{
		Alive:   a.stats.Alive,
		Births:  a.stats.Births,
		Deaths:  a.stats.Deaths,
		Density: a.stats.Density,
	})
}
