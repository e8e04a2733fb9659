package analysis

import (
	"sort"

	"grid-scenarios/internal/profile"
)

// Scenario names a pair of dashboard inputs.
type Scenario struct {
	Name string
	Inputs
}

type RankedScenario struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Report Report `json:"report"`
}

// Compare builds a report for every scenario and ranks them: lowest optimized peak
// first, ties broken by higher optimized revenue. Input order breaks remaining ties.
func Compare(calc *profile.Calculator, scenarios []Scenario) []RankedScenario {
	out := make([]RankedScenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, RankedScenario{Name: s.Name, Report: Build(calc, s.Inputs)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Report, out[j].Report
		if a.Demand.OptimizedPeak != b.Demand.OptimizedPeak {
			return a.Demand.OptimizedPeak < b.Demand.OptimizedPeak
		}
		return a.Financial.OptimizedRevenue > b.Financial.OptimizedRevenue
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
