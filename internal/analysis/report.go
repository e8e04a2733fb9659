package analysis

import (
	"grid-scenarios/internal/lcoe"
	"grid-scenarios/internal/model"
	"grid-scenarios/internal/profile"
)

// Inputs are the two dashboard percentages a report is computed for.
type Inputs struct {
	CookingShiftPercent float64 `json:"cooking_shift_percent" yaml:"cooking_shift_percent"`
	ThermalDisplacement float64 `json:"thermal_displacement" yaml:"thermal_displacement"`
}

// DefaultInputs are the dashboard slider defaults.
func DefaultInputs() Inputs {
	return Inputs{
		CookingShiftPercent: profile.DefaultCookingShift,
		ThermalDisplacement: profile.DefaultThermalDisplacement,
	}
}

// DemandSummary is in MW. ReductionPercent is 0 when the peak is 0.
type DemandSummary struct {
	Peak             float64 `json:"peak"`
	OptimizedPeak    float64 `json:"optimized_peak"`
	Reduction        float64 `json:"reduction"`
	ReductionPercent float64 `json:"reduction_percent"`
}

// FinancialSummary is daily revenue in $ (MW treated as MWh over one hour, times $/kWh).
// PercentChange is 0 when BaseRevenue is 0; callers needing to tell that case apart
// should check BaseRevenue.
type FinancialSummary struct {
	BaseRevenue      float64 `json:"base_revenue"`
	OptimizedRevenue float64 `json:"optimized_revenue"`
	Difference       float64 `json:"difference"`
	PercentChange    float64 `json:"percent_change"`
}

type VPPSummary struct {
	PeakContribution    float64 `json:"peak_contribution"`    // MWh
	AverageContribution float64 `json:"average_contribution"` // MWh
	CostSavings         float64 `json:"cost_savings"`         // $
}

// EmissionSummary is in kgCO2.
type EmissionSummary struct {
	DailyReduction  float64 `json:"daily_reduction"`
	AnnualReduction float64 `json:"annual_reduction"`
	FiveYearTotal   float64 `json:"five_year_total"`
}

// Report is the system performance rollup behind the dashboard.
type Report struct {
	Inputs    Inputs           `json:"inputs"`
	Demand    DemandSummary    `json:"demand"`
	Financial FinancialSummary `json:"financial"`
	VPP       VPPSummary       `json:"vpp"`
	Emissions EmissionSummary  `json:"emissions"`
	LCOE      lcoe.Estimate    `json:"lcoe"`
}

// TotalDemand sums base load, cooking load and EV charging per hour (MW; EV MWh over
// a one-hour interval counts as MW).
func TotalDemand(calc *profile.Calculator, cookingShiftPercent float64) model.Profile {
	return calc.BaseLoad().Add(calc.Cooking(cookingShiftPercent), calc.EVCharging())
}

// PeakReductionPotential is the MW the combined strategy takes off the peak at a cooking shift.
func PeakReductionPotential(p model.Params, cookingShiftPercent float64) float64 {
	return p.LoadShifting.CombinedStrategyMW * (cookingShiftPercent / 100)
}

// OptimizeDemand spreads reduction out of the four peak hours and adds a tenth of it
// to each of the solar (10-14) and night (0-4) hours.
func OptimizeDemand(demand model.Profile, reduction float64) model.Profile {
	out := make(model.Profile, len(demand))
	for hour, load := range demand {
		switch {
		case model.IsPeakHour(hour):
			out[hour] = load - reduction/peakHourCount
		case (hour >= 10 && hour <= 14) || (hour >= 0 && hour <= 4):
			out[hour] = load + reduction/10
		default:
			out[hour] = load
		}
	}
	return out
}

const peakHourCount = 4

// Revenue prices every hour of demand at the peak/off-peak tariff and sums it.
func Revenue(demand model.Profile, t model.TariffParams) float64 {
	return RevenueWith(demand, t.TariffAt)
}

// RevenueWith sums demand[h] * tariff(h) in hour order.
func RevenueWith(demand model.Profile, tariff func(hour int) float64) float64 {
	sum := 0.0
	for hour, load := range demand {
		sum += load * tariff(hour)
	}
	return sum
}

// HourlyRevenue returns demand[h] * tariff(h) per hour.
func HourlyRevenue(demand model.Profile, tariff func(hour int) float64) model.Profile {
	out := make(model.Profile, len(demand))
	for hour, load := range demand {
		out[hour] = load * tariff(hour)
	}
	return out
}

// PerformanceReport computes the report over the case-study tables.
func PerformanceReport(cookingShiftPercent, thermalDisplacement float64) Report {
	return Build(profile.Default(), Inputs{
		CookingShiftPercent: cookingShiftPercent,
		ThermalDisplacement: thermalDisplacement,
	})
}

// Build computes the report for in against the calculator's tables.
func Build(calc *profile.Calculator, in Inputs) Report {
	p := calc.Params()

	total := TotalDemand(calc, in.CookingShiftPercent)
	vpp := calc.VPPContribution(in.ThermalDisplacement)

	peak := total.Max()
	reduction := PeakReductionPotential(p, in.CookingShiftPercent)

	baseRevenue := Revenue(total, p.Tariff)
	optimizedRevenue := Revenue(OptimizeDemand(total, reduction), p.Tariff)

	daily := p.Emissions.DailyReductionMWh() * p.Emissions.Factor * (in.ThermalDisplacement / 100)

	return Report{
		Inputs: in,
		Demand: DemandSummary{
			Peak:             peak,
			OptimizedPeak:    peak - reduction,
			Reduction:        reduction,
			ReductionPercent: percentOf(reduction, peak),
		},
		Financial: FinancialSummary{
			BaseRevenue:      baseRevenue,
			OptimizedRevenue: optimizedRevenue,
			Difference:       optimizedRevenue - baseRevenue,
			PercentChange:    percentOf(optimizedRevenue-baseRevenue, baseRevenue),
		},
		VPP: VPPSummary{
			PeakContribution:    vpp.Max(),
			AverageContribution: vpp.Sum() / model.HoursPerDay,
			CostSavings:         reduction * p.Tariff.Peak,
		},
		Emissions: EmissionSummary{
			DailyReduction:  daily,
			AnnualReduction: daily * 365,
			FiveYearTotal:   calc.EmissionReduction(in.ThermalDisplacement).Sum(),
		},
		LCOE: lcoe.Calculate(p.LCOE),
	}
}

// percentOf returns part/whole*100, or 0 when whole is 0.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
