package config

import "grid-scenarios/internal/model"

// field binds one YAML table entry to the model.Params value it overrides.
// Apply and MergeParams both walk these lists, so a new table entry is added here once.
type field[T any] struct {
	key   string
	cfg   func(*ParamsConfig) *T
	param func(*model.Params) *T
}

var floatFields = []field[float64]{
	{"grid.capacity_mw",
		func(c *ParamsConfig) *float64 { return &c.Grid.CapacityMW },
		func(p *model.Params) *float64 { return &p.Grid.CapacityMW }},
	{"grid.peak_demand_mw",
		func(c *ParamsConfig) *float64 { return &c.Grid.PeakDemandMW },
		func(p *model.Params) *float64 { return &p.Grid.PeakDemandMW }},
	{"grid.offpeak_demand_mw",
		func(c *ParamsConfig) *float64 { return &c.Grid.OffPeakDemandMW },
		func(p *model.Params) *float64 { return &p.Grid.OffPeakDemandMW }},
	{"grid.spinning_reserve",
		func(c *ParamsConfig) *float64 { return &c.Grid.SpinningReserve },
		func(p *model.Params) *float64 { return &p.Grid.SpinningReserve }},
	{"energy_mix.hydro",
		func(c *ParamsConfig) *float64 { return &c.EnergyMix.Hydro },
		func(p *model.Params) *float64 { return &p.EnergyMix.Hydro }},
	{"energy_mix.thermal",
		func(c *ParamsConfig) *float64 { return &c.EnergyMix.Thermal },
		func(p *model.Params) *float64 { return &p.EnergyMix.Thermal }},
	{"energy_mix.solar",
		func(c *ParamsConfig) *float64 { return &c.EnergyMix.Solar },
		func(p *model.Params) *float64 { return &p.EnergyMix.Solar }},
	{"tariff.peak",
		func(c *ParamsConfig) *float64 { return &c.Tariff.Peak },
		func(p *model.Params) *float64 { return &p.Tariff.Peak }},
	{"tariff.offpeak",
		func(c *ParamsConfig) *float64 { return &c.Tariff.OffPeak },
		func(p *model.Params) *float64 { return &p.Tariff.OffPeak }},
	{"cooking.households",
		func(c *ParamsConfig) *float64 { return &c.Cooking.Households },
		func(p *model.Params) *float64 { return &p.Cooking.Households }},
	{"cooking.power_rating_kw",
		func(c *ParamsConfig) *float64 { return &c.Cooking.PowerRatingKW },
		func(p *model.Params) *float64 { return &p.Cooking.PowerRatingKW }},
	{"cooking.sessions_per_day",
		func(c *ParamsConfig) *float64 { return &c.Cooking.SessionsPerDay },
		func(p *model.Params) *float64 { return &p.Cooking.SessionsPerDay }},
	{"cooking.session_duration_h",
		func(c *ParamsConfig) *float64 { return &c.Cooking.SessionDurationH },
		func(p *model.Params) *float64 { return &p.Cooking.SessionDurationH }},
	{"cooking.daily_consumption_kwh",
		func(c *ParamsConfig) *float64 { return &c.Cooking.DailyConsumptionKWh },
		func(p *model.Params) *float64 { return &p.Cooking.DailyConsumptionKWh }},
	{"cooking.monthly_total_mwh",
		func(c *ParamsConfig) *float64 { return &c.Cooking.MonthlyTotalMWh },
		func(p *model.Params) *float64 { return &p.Cooking.MonthlyTotalMWh }},
	{"cooking.morning_share",
		func(c *ParamsConfig) *float64 { return &c.Cooking.Morning },
		func(p *model.Params) *float64 { return &p.Cooking.Distribution.Morning }},
	{"cooking.afternoon_share",
		func(c *ParamsConfig) *float64 { return &c.Cooking.Afternoon },
		func(p *model.Params) *float64 { return &p.Cooking.Distribution.Afternoon }},
	{"cooking.evening_share",
		func(c *ParamsConfig) *float64 { return &c.Cooking.Evening },
		func(p *model.Params) *float64 { return &p.Cooking.Distribution.Evening }},
	{"cooking.shift_willingness",
		func(c *ParamsConfig) *float64 { return &c.Cooking.ShiftWillingness },
		func(p *model.Params) *float64 { return &p.Cooking.ShiftWillingness }},
	{"mobility.two_wheelers.capacity_kwh",
		func(c *ParamsConfig) *float64 { return &c.Mobility.TwoWheelers.CapacityKWh },
		func(p *model.Params) *float64 { return &p.Mobility.TwoWheelers.CapacityKWh }},
	{"mobility.two_wheelers.kwh_per_km",
		func(c *ParamsConfig) *float64 { return &c.Mobility.TwoWheelers.KWhPerKm },
		func(p *model.Params) *float64 { return &p.Mobility.TwoWheelers.KWhPerKm }},
	{"mobility.two_wheelers.daily_distance_km",
		func(c *ParamsConfig) *float64 { return &c.Mobility.TwoWheelers.DailyDistanceKm },
		func(p *model.Params) *float64 { return &p.Mobility.TwoWheelers.DailyDistanceK }},
	{"mobility.three_wheelers.capacity_kwh",
		func(c *ParamsConfig) *float64 { return &c.Mobility.ThreeWheelers.CapacityKWh },
		func(p *model.Params) *float64 { return &p.Mobility.ThreeWheelers.CapacityKWh }},
	{"mobility.three_wheelers.kwh_per_km",
		func(c *ParamsConfig) *float64 { return &c.Mobility.ThreeWheelers.KWhPerKm },
		func(p *model.Params) *float64 { return &p.Mobility.ThreeWheelers.KWhPerKm }},
	{"mobility.three_wheelers.daily_distance_km",
		func(c *ParamsConfig) *float64 { return &c.Mobility.ThreeWheelers.DailyDistanceKm },
		func(p *model.Params) *float64 { return &p.Mobility.ThreeWheelers.DailyDistanceK }},
	{"mobility.four_wheelers.capacity_kwh",
		func(c *ParamsConfig) *float64 { return &c.Mobility.FourWheelers.CapacityKWh },
		func(p *model.Params) *float64 { return &p.Mobility.FourWheelers.CapacityKWh }},
	{"mobility.four_wheelers.kwh_per_km",
		func(c *ParamsConfig) *float64 { return &c.Mobility.FourWheelers.KWhPerKm },
		func(p *model.Params) *float64 { return &p.Mobility.FourWheelers.KWhPerKm }},
	{"mobility.four_wheelers.daily_distance_km",
		func(c *ParamsConfig) *float64 { return &c.Mobility.FourWheelers.DailyDistanceKm },
		func(p *model.Params) *float64 { return &p.Mobility.FourWheelers.DailyDistanceK }},
	{"mobility.charging_sessions_per_day",
		func(c *ParamsConfig) *float64 { return &c.Mobility.ChargingSessionsPerDay },
		func(p *model.Params) *float64 { return &p.Mobility.ChargingSessionsPerDay }},
	{"mobility.daily_demand_mwh",
		func(c *ParamsConfig) *float64 { return &c.Mobility.DailyDemandMWh },
		func(p *model.Params) *float64 { return &p.Mobility.DailyDemandMWh }},
	{"bess.capacity_mwh",
		func(c *ParamsConfig) *float64 { return &c.BESS.CapacityMWh },
		func(p *model.Params) *float64 { return &p.BESS.CapacityMWh }},
	{"bess.efficiency",
		func(c *ParamsConfig) *float64 { return &c.BESS.Efficiency },
		func(p *model.Params) *float64 { return &p.BESS.Efficiency }},
	{"bess.daily_cycles",
		func(c *ParamsConfig) *float64 { return &c.BESS.DailyCycles },
		func(p *model.Params) *float64 { return &p.BESS.DailyCycles }},
	{"bess.vpp_utilization",
		func(c *ParamsConfig) *float64 { return &c.BESS.VPPUtilization },
		func(p *model.Params) *float64 { return &p.BESS.VPPUtilization }},
	{"emissions.current_use_mwh",
		func(c *ParamsConfig) *float64 { return &c.Emissions.CurrentUseMWh },
		func(p *model.Params) *float64 { return &p.Emissions.CurrentUseMWh }},
	{"emissions.projected_use_mwh",
		func(c *ParamsConfig) *float64 { return &c.Emissions.ProjectedUseMWh },
		func(p *model.Params) *float64 { return &p.Emissions.ProjectedUseMWh }},
	{"emissions.emission_factor",
		func(c *ParamsConfig) *float64 { return &c.Emissions.Factor },
		func(p *model.Params) *float64 { return &p.Emissions.Factor }},
	{"load_shifting.ecooking_shift_mw",
		func(c *ParamsConfig) *float64 { return &c.LoadShifting.ECookingShiftMW },
		func(p *model.Params) *float64 { return &p.LoadShifting.ECookingShiftMW }},
	{"load_shifting.ev_smart_charging_mw",
		func(c *ParamsConfig) *float64 { return &c.LoadShifting.EVSmartChargingMW },
		func(p *model.Params) *float64 { return &p.LoadShifting.EVSmartChargingMW }},
	{"load_shifting.bess_discharge_mw",
		func(c *ParamsConfig) *float64 { return &c.LoadShifting.BESSDischargeMW },
		func(p *model.Params) *float64 { return &p.LoadShifting.BESSDischargeMW }},
	{"load_shifting.combined_strategy_mw",
		func(c *ParamsConfig) *float64 { return &c.LoadShifting.CombinedStrategyMW },
		func(p *model.Params) *float64 { return &p.LoadShifting.CombinedStrategyMW }},
	{"vpp.ev_contrib_mwh",
		func(c *ParamsConfig) *float64 { return &c.VPP.EVContribMWh },
		func(p *model.Params) *float64 { return &p.VPP.EVContribMWh }},
	{"vpp.smart_load_contrib_mwh",
		func(c *ParamsConfig) *float64 { return &c.VPP.SmartLoadContribMWh },
		func(p *model.Params) *float64 { return &p.VPP.SmartLoadContribMWh }},
	{"vpp.baseline_thermal_displacement",
		func(c *ParamsConfig) *float64 { return &c.VPP.BaselineThermalDisplacement },
		func(p *model.Params) *float64 { return &p.VPP.BaselineThermalDisplacement }},
	{"lcoe.current",
		func(c *ParamsConfig) *float64 { return &c.LCOE.Current },
		func(p *model.Params) *float64 { return &p.LCOE.Current }},
	{"lcoe.optimized",
		func(c *ParamsConfig) *float64 { return &c.LCOE.Optimized },
		func(p *model.Params) *float64 { return &p.LCOE.Optimized }},
	{"lcoe.max_reduction_cooking",
		func(c *ParamsConfig) *float64 { return &c.LCOE.MaxReductionCooking },
		func(p *model.Params) *float64 { return &p.LCOE.MaxReductionCooking }},
	{"lcoe.max_reduction_ev",
		func(c *ParamsConfig) *float64 { return &c.LCOE.MaxReductionEV },
		func(p *model.Params) *float64 { return &p.LCOE.MaxReductionEV }},
}

var intFields = []field[int]{
	{"mobility.total_vehicles",
		func(c *ParamsConfig) *int { return &c.Mobility.TotalVehicles },
		func(p *model.Params) *int { return &p.Mobility.TotalVehicles }},
	{"mobility.two_wheelers.count",
		func(c *ParamsConfig) *int { return &c.Mobility.TwoWheelers.Count },
		func(p *model.Params) *int { return &p.Mobility.TwoWheelers.Count }},
	{"mobility.three_wheelers.count",
		func(c *ParamsConfig) *int { return &c.Mobility.ThreeWheelers.Count },
		func(p *model.Params) *int { return &p.Mobility.ThreeWheelers.Count }},
	{"mobility.four_wheelers.count",
		func(c *ParamsConfig) *int { return &c.Mobility.FourWheelers.Count },
		func(p *model.Params) *int { return &p.Mobility.FourWheelers.Count }},
}
