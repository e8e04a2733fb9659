package profile

import "grid-scenarios/internal/model"

// BaseLoad returns the 24-hour base load profile in MW.
func (c *Calculator) BaseLoad() model.Profile {
	peak := c.params.Grid.PeakDemandMW
	offPeak := c.params.Grid.OffPeakDemandMW

	return model.NewProfile(func(hour int) float64 {
		switch {
		// Morning ramp toward peak.
		case hour >= 7 && hour <= 9:
			return offPeak + (peak-offPeak)*0.7
		case hour >= 18 && hour <= 21:
			return peak
		case hour >= 12 && hour <= 14:
			return offPeak + (peak-offPeak)*0.4
		// Night low load.
		case hour >= 23 || hour <= 5:
			return offPeak * 0.8
		default:
			return offPeak
		}
	})
}

// EVCharging returns the 24-hour EV charging profile in MWh.
func (c *Calculator) EVCharging() model.Profile {
	daily := c.params.Mobility.DailyDemandMWh

	return model.NewProfile(func(hour int) float64 {
		var factor float64
		switch {
		case hour >= 8 && hour <= 10:
			factor = 0.15
		case hour >= 13 && hour <= 15:
			factor = 0.2
		case hour >= 18 && hour <= 22:
			factor = 0.5
		case hour >= 23 || hour <= 5:
			factor = 0.15
		}
		return daily * factor
	})
}
