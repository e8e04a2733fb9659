package analysis

import "grid-scenarios/internal/model"

// ReferenceLoad is the measured-shape 24-hour load (MW) the shifting and TOU
// studies run against. Unlike the synthetic base load it peaks at 18:00.
var ReferenceLoad = model.Profile{
	90, 85, 80, 78, 75, 72, 70, 75, 85, 95, 105, 115, 125, 135, 140, 145, 150,
	155, 160, 155, 150, 140, 130, 100,
}

// ShiftingPotential compares the reference load with a shifted load and their hourly revenue.
type ShiftingPotential struct {
	OriginalLoad     model.Profile `json:"original_load"`
	ShiftedLoad      model.Profile `json:"shifted_load"`
	OriginalRevenue  model.Profile `json:"original_revenue"`
	ShiftedRevenue   model.Profile `json:"shifted_revenue"`
	TotalOriginal    float64       `json:"total_original"`
	TotalShifted     float64       `json:"total_shifted"`
	PeakReductionMW  float64       `json:"peak_reduction_mw"`
	ShoulderIncrease float64       `json:"shoulder_increase_mw"`
}

const (
	potentialPeakCutMW      = 15
	potentialShoulderGainMW = 5
)

// ComputeShiftingPotential takes 15 MW off each peak hour (18-21) and adds 5 MW to the
// shoulder hours 16 and 22. Revenue assumes the load persists for the hour (MWh = MW).
func ComputeShiftingPotential(t model.TariffParams) ShiftingPotential {
	shifted := make(model.Profile, len(ReferenceLoad))
	for hour, load := range ReferenceLoad {
		switch {
		case model.IsPeakHour(hour):
			shifted[hour] = load - potentialPeakCutMW
		case hour == 16 || hour == 22:
			shifted[hour] = load + potentialShoulderGainMW
		default:
			shifted[hour] = load
		}
	}

	origRev := HourlyRevenue(ReferenceLoad, t.TariffAt)
	shiftRev := HourlyRevenue(shifted, t.TariffAt)

	original := make(model.Profile, len(ReferenceLoad))
	copy(original, ReferenceLoad)

	return ShiftingPotential{
		OriginalLoad:     original,
		ShiftedLoad:      shifted,
		OriginalRevenue:  origRev,
		ShiftedRevenue:   shiftRev,
		TotalOriginal:    origRev.Sum(),
		TotalShifted:     shiftRev.Sum(),
		PeakReductionMW:  potentialPeakCutMW,
		ShoulderIncrease: potentialShoulderGainMW,
	}
}
