package analysis

import (
	"grid-scenarios/internal/model"
	"grid-scenarios/internal/profile"
)

// LoadShiftingView is the base load next to its shifted counterpart.
type LoadShiftingView struct {
	Labels        []string      `json:"labels"`
	OriginalLoad  model.Profile `json:"original_load"`
	OptimizedLoad model.Profile `json:"optimized_load"`
	ImpactFactor  float64       `json:"impact_factor"`
}

// referenceCookingShift is the cooking shift at which the combined strategy applies in full.
const referenceCookingShift = 30.0

// ShiftLoad moves combined/4 * impact MW out of each peak hour (18-21) and adds
// combined/10 * impact MW to hours 0-4 and 10-14, with impact = cookingShift/30.
// The divisors are kept as the dashboard states them; the shifted energy is not balanced.
func ShiftLoad(calc *profile.Calculator, cookingShiftPercent float64) LoadShiftingView {
	combined := calc.Params().LoadShifting.CombinedStrategyMW
	impact := cookingShiftPercent / referenceCookingShift
	base := calc.BaseLoad()

	optimized := make(model.Profile, len(base))
	for hour, load := range base {
		switch {
		case isShiftPeakHour(hour):
			optimized[hour] = load - (combined/4)*impact
		case isShiftTargetHour(hour):
			optimized[hour] = load + (combined/10)*impact
		default:
			optimized[hour] = load
		}
	}

	return LoadShiftingView{
		Labels:        model.HourLabels(),
		OriginalLoad:  base,
		OptimizedLoad: optimized,
		ImpactFactor:  impact,
	}
}

var (
	shiftPeakHours   = []int{18, 19, 20, 21}
	shiftTargetHours = []int{0, 1, 2, 3, 4, 10, 11, 12, 13, 14}
)

func isShiftPeakHour(hour int) bool {
	return containsHour(shiftPeakHours, hour)
}

func isShiftTargetHour(hour int) bool {
	return containsHour(shiftTargetHours, hour)
}

func containsHour(hours []int, hour int) bool {
	for _, h := range hours {
		if h == hour {
			return true
		}
	}
	return false
}
