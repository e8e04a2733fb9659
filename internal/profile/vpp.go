package profile

import "grid-scenarios/internal/model"

// VPPContribution returns the 24-hour virtual power plant contribution in MWh,
// scaled by thermalDisplacement relative to the 40% baseline.
func (c *Calculator) VPPContribution(thermalDisplacement float64) model.Profile {
	bess := c.params.BESS.VPPContribMWh()
	ev := c.params.VPP.EVContribMWh
	smart := c.params.VPP.SmartLoadContribMWh
	scale := c.thermalScale(thermalDisplacement)

	return model.NewProfile(func(hour int) float64 {
		var contribution float64
		switch {
		case hour >= 18 && hour <= 21:
			contribution = bess*0.3 + ev*0.3 + smart*0.3
		case hour >= 7 && hour <= 9:
			contribution = bess*0.2 + ev*0.1 + smart*0.2
		default:
			contribution = bess*0.05 + ev*0.05 + smart*0.05
		}
		return contribution * scale
	})
}
