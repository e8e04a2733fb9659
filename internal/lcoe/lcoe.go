// Package lcoe estimates the levelized cost of electricity ($/kWh) under the
// cooking and e-mobility interventions.
package lcoe

import (
	"fmt"
	"strconv"

	"grid-scenarios/internal/model"
)

// Estimate is the point LCOE comparison.
type Estimate struct {
	Current          float64 `json:"current"`
	Optimized        float64 `json:"optimized"`
	ReductionPercent float64 `json:"reduction_percent"`
}

// Calculate returns the current vs optimized LCOE. A zero current LCOE reports a 0% reduction.
func Calculate(p model.LCOEParams) Estimate {
	e := Estimate{Current: p.Current, Optimized: p.Optimized}
	if p.Current != 0 {
		e.ReductionPercent = (p.Current - p.Optimized) / p.Current * 100
	}
	return e
}

// Default evaluates Calculate over the case-study tables.
func Default() Estimate {
	return Calculate(model.DefaultParams().LCOE)
}

// Sweep is the LCOE across adoption levels 0%..100% in 10% steps.
type Sweep struct {
	Levels      []string  `json:"levels"`
	CookingOnly []float64 `json:"cooking_only"`
	EVOnly      []float64 `json:"ev_only"`
	Combined    []float64 `json:"combined"`
}

const (
	sweepStep  = 10
	sweepLevel = 100
)

// AdoptionSweep linearly interpolates each series from the current LCOE down to
// current minus its maximum reduction at full adoption. Values are rounded to 3 decimals.
func AdoptionSweep(p model.LCOEParams) Sweep {
	n := sweepLevel/sweepStep + 1
	s := Sweep{
		Levels:      make([]string, 0, n),
		CookingOnly: make([]float64, 0, n),
		EVOnly:      make([]float64, 0, n),
		Combined:    make([]float64, 0, n),
	}
	for i := 0; i <= sweepLevel; i += sweepStep {
		frac := float64(i) / 100
		s.Levels = append(s.Levels, fmt.Sprintf("%d%%", i))
		s.CookingOnly = append(s.CookingOnly, round3(p.Current-frac*p.MaxReductionCooking))
		s.EVOnly = append(s.EVOnly, round3(p.Current-frac*p.MaxReductionEV))
		s.Combined = append(s.Combined, round3(p.Current-frac*(p.MaxReductionCooking+p.MaxReductionEV)))
	}
	return s
}

// DefaultSweep evaluates AdoptionSweep over the case-study tables.
func DefaultSweep() Sweep {
	return AdoptionSweep(model.DefaultParams().LCOE)
}

// round3 rounds the exact binary value of x to 3 decimals, so 0.1185 (stored as
// 0.11849999...) becomes 0.118.
func round3(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 3, 64), 64)
	if err != nil {
		return x
	}
	return v
}
