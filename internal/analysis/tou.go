package analysis

import (
	"fmt"
	"math"

	"grid-scenarios/internal/model"
)

// TOUTariff is the reduced time-of-use tariff offered alongside load shifting.
var TOUTariff = model.TariffParams{Peak: 0.14, OffPeak: 0.07}

// TOURevenueResult compares daily revenue before and after a TOU tariff.
type TOURevenueResult struct {
	BaselineLoad     model.Profile `json:"baseline_load"`
	TOULoad          model.Profile `json:"tou_load"`
	BaselineHourly   model.Profile `json:"baseline_hourly"`
	TOUHourly        model.Profile `json:"tou_hourly"`
	TotalBaseline    float64       `json:"total_baseline"`
	TotalTOU         float64       `json:"total_tou"`
	Difference       float64       `json:"difference"`
	DifferencePct    float64       `json:"difference_percent"`
	RevenueIncreases bool          `json:"revenue_increases"`
}

// Title renders the headline the TOU chart shows.
func (r TOURevenueResult) Title() string {
	dir := "Decrease"
	if r.RevenueIncreases {
		dir = "Increase"
	}
	return fmt.Sprintf("TOU Financial Viability: Revenue %s of %.2f%%", dir, math.Abs(r.DifferencePct))
}

// TOURevenue applies a 10% peak reduction (18-21) and a 5% increase over 0-5 to the
// reference load, then prices the baseline at baseline and the TOU load at TOUTariff.
func TOURevenue(baseline model.TariffParams) TOURevenueResult {
	tou := make(model.Profile, len(ReferenceLoad))
	for hour, load := range ReferenceLoad {
		switch {
		case model.IsPeakHour(hour):
			tou[hour] = load * 0.9
		case hour >= 0 && hour <= 5:
			tou[hour] = load * 1.05
		default:
			tou[hour] = load
		}
	}

	baseHourly := HourlyRevenue(ReferenceLoad, baseline.TariffAt)
	touHourly := HourlyRevenue(tou, TOUTariff.TariffAt)
	totalBase := baseHourly.Sum()
	totalTOU := touHourly.Sum()
	diff := totalTOU - totalBase

	original := make(model.Profile, len(ReferenceLoad))
	copy(original, ReferenceLoad)

	return TOURevenueResult{
		BaselineLoad:     original,
		TOULoad:          tou,
		BaselineHourly:   baseHourly,
		TOUHourly:        touHourly,
		TotalBaseline:    totalBase,
		TotalTOU:         totalTOU,
		Difference:       diff,
		DifferencePct:    percentOf(diff, totalBase),
		RevenueIncreases: diff >= 0,
	}
}
