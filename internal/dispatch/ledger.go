package dispatch

import "grid-scenarios/internal/model"

// LedgerRow is one hour of BESS dispatch.
// This is the primary artifact for "what happened" over the synthetic day.
type LedgerRow struct {
	Hour int

	Window string
	Action model.Action

	RequestedMWh float64
	AppliedMWh   float64

	SOCStart float64
	SOCEnd   float64

	ChargeMWh float64
}

type Result struct {
	Ledger   []LedgerRow
	FinalSOC float64
}

// SOCPercent returns the end-of-hour state of charge of every row as percent of capacity.
func (r *Result) SOCPercent() model.Profile {
	out := make(model.Profile, len(r.Ledger))
	for i, row := range r.Ledger {
		out[i] = row.SOCEnd * 100
	}
	return out
}
