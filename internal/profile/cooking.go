package profile

import "grid-scenarios/internal/model"

// Cooking returns the 24-hour electric cooking load in MW for a given cooking-shift
// percentage. Shifting moves households out of the 8 AM and 7 PM slots into the
// shoulder hours and a handful of off-peak hours.
func (c *Calculator) Cooking(shiftPercent float64) model.Profile {
	cp := c.params.Cooking
	shift := shiftPercent / 100

	morning := cp.Households * cp.Distribution.Morning
	afternoon := cp.Households * cp.Distribution.Afternoon
	evening := cp.Households * cp.Distribution.Evening

	return model.NewProfile(func(hour int) float64 {
		var households float64
		switch hour {
		case 6:
			households = morning * (1 + 0.3*shift)
		case 7:
			households = morning
		case 8:
			households = morning * (1 - 0.5*shift)
		case 12, 13:
			households = afternoon
		case 17:
			households = evening * (0.5 * shift)
		case 18:
			households = evening
		case 19:
			households = evening * (1 - 0.7*shift)
		case 20:
			households = evening * (1 + 0.2*shift)
		case 10, 14, 16:
			households = cp.Households * (0.05 * shift)
		}
		// kW -> MW
		return households * cp.PowerRatingKW / 1000
	})
}
