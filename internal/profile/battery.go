package profile

import (
	"log"

	"grid-scenarios/internal/dispatch"
	"grid-scenarios/internal/model"
	"grid-scenarios/internal/strategy"
)

// InitialSOC is the state of charge every BESS fold starts from.
const InitialSOC = 0.5

// BatteryDispatch runs the default BESS schedule over a fresh battery at 50% charge.
func (c *Calculator) BatteryDispatch() (*dispatch.Result, error) {
	batt, err := model.NewBattery(c.params.BESS, InitialSOC)
	if err != nil {
		return nil, err
	}
	return dispatch.New().Run(batt, strategy.DefaultBESSSchedule())
}

// BatteryStateOfCharge returns the end-of-hour BESS state of charge in percent of capacity.
// Hour 0 has no schedule window, so it reports the initial 50%.
func (c *Calculator) BatteryStateOfCharge() model.Profile {
	res, err := c.BatteryDispatch()
	if err != nil {
		// Only reachable with invalid BESS tables; config.Validate rejects those.
		log.Printf("profile: battery dispatch failed: %v", err)
		return make(model.Profile, model.HoursPerDay)
	}
	return res.SOCPercent()
}
