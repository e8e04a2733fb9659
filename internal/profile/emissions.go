package profile

import "grid-scenarios/internal/model"

// TrajectoryYears is the length of the emission reduction trajectory.
const TrajectoryYears = 5

// yearlyGrowth is the additional reduction gained each year over year one.
const yearlyGrowth = 0.2

// YearOneReductionKg is the annual kgCO2 avoided in the first year at baseline displacement.
func (c *Calculator) YearOneReductionKg() float64 {
	e := c.params.Emissions
	return e.DailyReductionMWh() * e.Factor * 365
}

// EmissionReduction returns annual kgCO2 reductions for years 1..5.
func (c *Calculator) EmissionReduction(thermalDisplacement float64) model.Profile {
	yearOne := c.YearOneReductionKg()
	scale := c.thermalScale(thermalDisplacement)

	out := make(model.Profile, TrajectoryYears)
	for i := range out {
		year := i + 1
		out[i] = yearOne * (1 + float64(year-1)*yearlyGrowth) * scale
	}
	return out
}

// ToTonnes converts a kgCO2 series to tonnes, as the emission chart plots it.
func ToTonnes(kg model.Profile) model.Profile {
	return kg.Scale(1.0 / 1000)
}

// YearLabels returns "Year 1".."Year 5".
func YearLabels() []string {
	return []string{"Year 1", "Year 2", "Year 3", "Year 4", "Year 5"}
}
