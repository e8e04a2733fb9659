package analysis

import (
	"math"

	"grid-scenarios/internal/model"
	"grid-scenarios/internal/profile"
)

// VPPPerformance splits the VPP contribution into its EV and BESS parts and shows
// the peak tariff the contribution makes affordable.
type VPPPerformance struct {
	Labels          []string      `json:"labels"`
	EVContrib       model.Profile `json:"ev_contribution"`
	BESSContrib     model.Profile `json:"bess_contribution"`
	Total           model.Profile `json:"total_contribution"`
	EffectiveTariff model.Profile `json:"effective_tariff"`
}

const (
	// tariffReliefPerMWh is the $/kWh taken off the peak tariff per MWh of VPP contribution.
	tariffReliefPerMWh = 0.0005
	maxTariffRelief    = 0.05
)

// share returns the fraction of a resource dispatched at hour: peak, morning ramp, otherwise.
func share(hour int, peak, morning, other float64) float64 {
	switch {
	case model.IsPeakHour(hour):
		return peak
	case hour >= 7 && hour <= 9:
		return morning
	default:
		return other
	}
}

// ComputeVPPPerformance evaluates the breakdown at a thermal displacement percentage.
// EV dispatches 40% of its base during the peak and BESS 60%; both give 20% on the
// morning ramp and 5% otherwise.
func ComputeVPPPerformance(calc *profile.Calculator, thermalDisplacement float64) VPPPerformance {
	p := calc.Params()
	evBase := p.VPP.EVContribMWh
	bessBase := p.BESS.VPPContribMWh()
	scale := thermalDisplacement / p.VPP.BaselineThermalDisplacement

	ev := model.NewProfile(func(hour int) float64 { return evBase * share(hour, 0.4, 0.2, 0.05) })
	bess := model.NewProfile(func(hour int) float64 { return bessBase * share(hour, 0.6, 0.2, 0.05) })
	total := ev.Add(bess)

	ev = ev.Scale(scale)
	bess = bess.Scale(scale)
	total = total.Scale(scale)

	tariff := model.NewProfile(func(hour int) float64 {
		if model.IsPeakHour(hour) {
			return p.Tariff.Peak - math.Min(total[hour]*tariffReliefPerMWh, maxTariffRelief)
		}
		return p.Tariff.OffPeak
	})

	return VPPPerformance{
		Labels:          model.HourLabels(),
		EVContrib:       ev,
		BESSContrib:     bess,
		Total:           total,
		EffectiveTariff: tariff,
	}
}
