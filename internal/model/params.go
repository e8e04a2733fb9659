package model

// Params holds every named constant the scenario calculator works from.
// Units:
// - demand and load shifting: MW
// - tariffs and LCOE: $/kWh
// - BESS capacity, EV demand, VPP contributions: MWh
// - emission use: MWh/day, emission factor: kgCO2/kWh
// - fractions (mix, distribution, utilisation, reserve): 0..1
type Params struct {
	Grid         GridParams
	EnergyMix    EnergyMix
	Tariff       TariffParams
	Cooking      CookingParams
	Mobility     MobilityParams
	BESS         BESSParams
	Emissions    EmissionParams
	LoadShifting LoadShiftingParams
	VPP          VPPParams
	LCOE         LCOEParams
}

type GridParams struct {
	CapacityMW      float64
	PeakDemandMW    float64
	OffPeakDemandMW float64
	SpinningReserve float64
}

type EnergyMix struct {
	Hydro   float64
	Thermal float64
	Solar   float64
}

type TariffParams struct {
	Peak    float64
	OffPeak float64
}

// CookingDistribution is the share of households cooking in each period.
type CookingDistribution struct {
	Morning   float64 // 6-9 AM
	Afternoon float64 // 12-2 PM
	Evening   float64 // 6-9 PM
}

type CookingParams struct {
	Households          float64
	PowerRatingKW       float64
	SessionsPerDay      float64
	SessionDurationH    float64
	DailyConsumptionKWh float64 // per household
	MonthlyTotalMWh     float64
	Distribution        CookingDistribution
	ShiftWillingness    float64
}

// VehicleClass describes one class of the electric fleet.
type VehicleClass struct {
	Count          int
	CapacityKWh    float64
	KWhPerKm       float64
	DailyDistanceK float64
}

type MobilityParams struct {
	TotalVehicles          int
	TwoWheelers            VehicleClass
	ThreeWheelers          VehicleClass
	FourWheelers           VehicleClass
	ChargingSessionsPerDay float64
	DailyDemandMWh         float64
}

type BESSParams struct {
	CapacityMWh    float64
	Efficiency     float64
	DailyCycles    float64
	VPPUtilization float64
}

type EmissionParams struct {
	CurrentUseMWh   float64
	ProjectedUseMWh float64
	Factor          float64
}

// LoadShiftingParams are the peak reductions attributed to each strategy.
type LoadShiftingParams struct {
	ECookingShiftMW    float64
	EVSmartChargingMW  float64
	BESSDischargeMW    float64
	CombinedStrategyMW float64
}

type VPPParams struct {
	EVContribMWh        float64
	SmartLoadContribMWh float64
	// BaselineThermalDisplacement is the thermal displacement percentage at which
	// VPP and emission outputs are reported unscaled.
	BaselineThermalDisplacement float64
}

type LCOEParams struct {
	Current             float64
	Optimized           float64
	MaxReductionCooking float64
	MaxReductionEV      float64
}

// DefaultParams returns the case-study constant tables.
func DefaultParams() Params {
	return Params{
		Grid: GridParams{
			CapacityMW:      200,
			PeakDemandMW:    150,
			OffPeakDemandMW: 90,
			SpinningReserve: 0.2,
		},
		EnergyMix: EnergyMix{Hydro: 0.6, Thermal: 0.3, Solar: 0.1},
		Tariff:    TariffParams{Peak: 0.15, OffPeak: 0.08},
		Cooking: CookingParams{
			Households:          10000,
			PowerRatingKW:       1.2,
			SessionsPerDay:      2,
			SessionDurationH:    45.0 / 60.0,
			DailyConsumptionKWh: 1.8,
			MonthlyTotalMWh:     540,
			Distribution:        CookingDistribution{Morning: 0.4, Afternoon: 0.2, Evening: 0.4},
			ShiftWillingness:    0.3,
		},
		Mobility: MobilityParams{
			TotalVehicles:          1500,
			TwoWheelers:            VehicleClass{Count: 800, CapacityKWh: 3, KWhPerKm: 0.02, DailyDistanceK: 50},
			ThreeWheelers:          VehicleClass{Count: 500, CapacityKWh: 8, KWhPerKm: 0.06, DailyDistanceK: 30},
			FourWheelers:           VehicleClass{Count: 200, CapacityKWh: 40, KWhPerKm: 0.15, DailyDistanceK: 80},
			ChargingSessionsPerDay: 1.5,
			DailyDemandMWh:         8.4,
		},
		BESS: BESSParams{
			CapacityMWh:    50,
			Efficiency:     0.85,
			DailyCycles:    1.2,
			VPPUtilization: 0.8,
		},
		Emissions: EmissionParams{
			CurrentUseMWh:   1500,
			ProjectedUseMWh: 1350,
			Factor:          0.6,
		},
		LoadShifting: LoadShiftingParams{
			ECookingShiftMW:    12.5,
			EVSmartChargingMW:  8.2,
			BESSDischargeMW:    15.0,
			CombinedStrategyMW: 30.2,
		},
		VPP: VPPParams{
			EVContribMWh:                10,
			SmartLoadContribMWh:         8,
			BaselineThermalDisplacement: 40,
		},
		LCOE: LCOEParams{
			Current:             0.12,
			Optimized:           0.09,
			MaxReductionCooking: 0.015,
			MaxReductionEV:      0.015,
		},
	}
}

// IsPeakHour reports whether hour falls in the evening peak tariff window (18-21).
func IsPeakHour(hour int) bool {
	return hour >= 18 && hour <= 21
}

// TariffAt returns the $/kWh tariff that applies at hour.
func (t TariffParams) TariffAt(hour int) float64 {
	if IsPeakHour(hour) {
		return t.Peak
	}
	return t.OffPeak
}

// DailyReductionMWh is the daily consumption saved by the projected efficiency gains.
func (e EmissionParams) DailyReductionMWh() float64 {
	return e.CurrentUseMWh - e.ProjectedUseMWh
}
