package model

// Action is a human-friendly operating mode for one hour of BESS dispatch.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionFromEnergyMWh classifies a signed energy step: positive charges the battery,
// negative discharges it.
func ActionFromEnergyMWh(deltaMWh float64) Action {
	switch {
	case deltaMWh > 0:
		return ActionCharging
	case deltaMWh < 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}
