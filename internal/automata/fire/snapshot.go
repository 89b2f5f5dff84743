package fire

import (
	"encoding/json"

	"github.com/celldev/celllab/internal/sim"
)

// paramsBlob is the preset parameter format, matching the keys the lab
// has always stored.
type paramsBlob struct {
	Growth    float64 `json:"p_growth"`
	Lightning float64 `json:"p_lightning"`
}

// statsSummary is the run-record stats blob for the fire model.
type statsSummary struct {
	Empty       int     `json:"empty"`
	Trees       int     `json:"trees"`
	Burning     int     `json:"burning"`
	BurnedTotal int     `json:"burned_total"`
	ForestPct   float64 `json:"forest_pct"`
	BurningPct  float64 `json:"burning_pct"`
}

// Params returns the growth/lightning probabilities as JSON.
func (a *Automaton) Params() ([]byte, error) {
	return json.Marshal(paramsBlob{
		Growth:    a.params.Growth,
		Lightning: a.params.Lightning,
	})
}

// SetParams applies a preset parameter blob. Out-of-range
// probabilities are rejected, leaving the current parameters in place.
func (a *Automaton) SetParams(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var blob paramsBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return err
	}
	params := sim.FireParams{Growth: blob.Growth, Lightning: blob.Lightning}
	if err := params.Validate(); err != nil {
		return err
	}
	a.params = params
	return nil
}

// StatsSummary returns the current statistics for run records.
func (a *Automaton) StatsSummary() ([]byte, error) {
	return json.Marshal(statsSummary{
		Empty:       a.stats.Empty,
		Trees:       a.stats.Trees,
		Burning:     a.stats.Burning,
		BurnedTotal: a.stats.BurnedTotal,
		ForestPct:   a.stats.ForestPct,
		BurningPct:  a.stats.BurningPct,
	})
}
