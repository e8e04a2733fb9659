package dispatch

import (
	"fmt"

	"grid-scenarios/internal/model"
	"grid-scenarios/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run folds the strategy over hours 0..23, carrying the battery charge forward.
// The battery is mutated in place; callers pass a fresh battery per run.
func (e *Engine) Run(batt *model.Battery, strat strategy.Strategy) (*Result, error) {
	if batt == nil {
		return nil, fmt.Errorf("battery is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}

	ledger := make([]LedgerRow, 0, model.HoursPerDay)
	for hour := 0; hour < model.HoursPerDay; hour++ {
		req := strat.Decide(strategy.Context{
			Hour:    hour,
			Battery: batt,
		})
		res := batt.Apply(req)

		row := LedgerRow{
			Hour: hour,

			Action: model.ActionFromEnergyMWh(res.AppliedMWh),

			RequestedMWh: res.RequestedMWh,
			AppliedMWh:   res.AppliedMWh,

			SOCStart: res.SOCStart,
			SOCEnd:   res.SOCEnd,

			ChargeMWh: batt.State.ChargeMWh,
			Window:    req.Window,
		}
		ledger = append(ledger, row)
	}

	return &Result{
		Ledger:   ledger,
		FinalSOC: batt.SOC(),
	}, nil
}
