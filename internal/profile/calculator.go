// Package profile generates the hourly and yearly series behind the scenario dashboard.
//
// Every generator is a pure function of the constant tables and at most one
// percentage input. Out-of-range percentages are not rejected: they extrapolate
// linearly (a negative percentage yields a negative scale factor).
package profile

import "grid-scenarios/internal/model"

const (
	// DefaultCookingShift is the cooking-shift percentage used when the caller has none.
	DefaultCookingShift = 30.0
	// DefaultThermalDisplacement is the thermal-displacement percentage used when the caller has none.
	DefaultThermalDisplacement = 40.0
)

// Calculator evaluates the generators against a fixed set of constant tables.
// The zero value is not usable; use New or Default.
type Calculator struct {
	params model.Params
}

func New(params model.Params) *Calculator {
	return &Calculator{params: params}
}

// Default returns a calculator over model.DefaultParams.
func Default() *Calculator {
	return New(model.DefaultParams())
}

// Params returns a copy of the tables the calculator works from.
func (c *Calculator) Params() model.Params {
	return c.params
}

// thermalScale normalises a thermal displacement percentage to the baseline.
func (c *Calculator) thermalScale(thermalDisplacement float64) float64 {
	return thermalDisplacement / c.params.VPP.BaselineThermalDisplacement
}

var defaultCalc = Default()

func BaseLoadProfile() model.Profile { return defaultCalc.BaseLoad() }

func CookingProfile(shiftPercent float64) model.Profile { return defaultCalc.Cooking(shiftPercent) }

func EVChargingProfile() model.Profile { return defaultCalc.EVCharging() }

func BatteryStateOfChargeProfile() model.Profile { return defaultCalc.BatteryStateOfCharge() }

func VPPContributionProfile(thermalDisplacement float64) model.Profile {
	return defaultCalc.VPPContribution(thermalDisplacement)
}

func EmissionReductionTrajectory(thermalDisplacement float64) model.Profile {
	return defaultCalc.EmissionReduction(thermalDisplacement)
}
