package combat

import (
	"encoding/json"
	"math"
)

// Report is the JSON shape of an Evaluation. Non-finite EVs are encoded as
// null with usable=false.
type Report struct {
	Best    Action         `json:"best"`
	EV      *float64       `json:"ev"`
	Actions []ActionReport `json:"actions"`
	Me      Combatant      `json:"me"`
	Enemy   Combatant      `json:"enemy"`
}

type ActionReport struct {
	Action   Action   `json:"action"`
	Usable   bool     `json:"usable"`
	EV       *float64 `json:"ev"`
	Reason   string   `json:"reason,omitempty"`
	Branches []Branch `json:"branches,omitempty"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewReport flattens an Evaluation for output.
func NewReport(me, enemy Combatant, ev Evaluation) Report {
	r := Report{
		Best:    ev.Best,
		EV:      finite(ev.BestEV),
		Actions: make([]ActionReport, 0, len(ev.Actions)),
		Me:      me,
		Enemy:   enemy,
	}
	for _, a := range ev.Actions {
		r.Actions = append(r.Actions, ActionReport{
			Action:   a.Action,
			Usable:   a.Usable(),
			EV:       finite(a.EV),
			Reason:   a.Reason,
			Branches: a.Branches,
		})
	}
	return r
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
