package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load parameter tables from a separate YAML (e.g. params/case_study.yaml).
	// If both ParamsFile and Params are provided, non-zero Params fields override ParamsFile.
	ParamsFile string         `yaml:"params_file"`
	Params     ParamsConfig   `yaml:"params"`
	Scenario   ScenarioConfig `yaml:"scenario"`
}

// ScenarioConfig selects the dashboard inputs. Zero percentages are meaningful
// (the Baseline scenario), so only fields left out of the YAML fall back to the
// slider defaults.
type ScenarioConfig struct {
	Name                string   `yaml:"name"`
	CookingShiftPercent *float64 `yaml:"cooking_shift_percent"`
	ThermalDisplacement *float64 `yaml:"thermal_displacement"`
}

// Inputs resolves the scenario percentages, falling back to the slider defaults.
func (s ScenarioConfig) Inputs() analysis.Inputs {
	in := analysis.DefaultInputs()
	if s.CookingShiftPercent != nil {
		in.CookingShiftPercent = *s.CookingShiftPercent
	}
	if s.ThermalDisplacement != nil {
		in.ThermalDisplacement = *s.ThermalDisplacement
	}
	return in
}

type ParamsConfig struct {
	Grid         GridConfig         `yaml:"grid"`
	EnergyMix    EnergyMixConfig    `yaml:"energy_mix"`
	Tariff       TariffConfig       `yaml:"tariff"`
	Cooking      CookingConfig      `yaml:"cooking"`
	Mobility     MobilityConfig     `yaml:"mobility"`
	BESS         BESSConfig         `yaml:"bess"`
	Emissions    EmissionsConfig    `yaml:"emissions"`
	LoadShifting LoadShiftingConfig `yaml:"load_shifting"`
	VPP          VPPConfig          `yaml:"vpp"`
	LCOE         LCOEConfig         `yaml:"lcoe"`
}

type GridConfig struct {
	CapacityMW      float64 `yaml:"capacity_mw"`
	PeakDemandMW    float64 `yaml:"peak_demand_mw"`
	OffPeakDemandMW float64 `yaml:"offpeak_demand_mw"`
	SpinningReserve float64 `yaml:"spinning_reserve"`
}

type EnergyMixConfig struct {
	Hydro   float64 `yaml:"hydro"`
	Thermal float64 `yaml:"thermal"`
	Solar   float64 `yaml:"solar"`
}

type TariffConfig struct {
	Peak    float64 `yaml:"peak"`
	OffPeak float64 `yaml:"offpeak"`
}

type CookingConfig struct {
	Households          float64 `yaml:"households"`
	PowerRatingKW       float64 `yaml:"power_rating_kw"`
	SessionsPerDay      float64 `yaml:"sessions_per_day"`
	SessionDurationH    float64 `yaml:"session_duration_h"`
	DailyConsumptionKWh float64 `yaml:"daily_consumption_kwh"`
	MonthlyTotalMWh     float64 `yaml:"monthly_total_mwh"`
	Morning             float64 `yaml:"morning_share"`
	Afternoon           float64 `yaml:"afternoon_share"`
	Evening             float64 `yaml:"evening_share"`
	ShiftWillingness    float64 `yaml:"shift_willingness"`
}

type VehicleClassConfig struct {
	Count           int     `yaml:"count"`
	CapacityKWh     float64 `yaml:"capacity_kwh"`
	KWhPerKm        float64 `yaml:"kwh_per_km"`
	DailyDistanceKm float64 `yaml:"daily_distance_km"`
}

type MobilityConfig struct {
	TotalVehicles          int                `yaml:"total_vehicles"`
	TwoWheelers            VehicleClassConfig `yaml:"two_wheelers"`
	ThreeWheelers          VehicleClassConfig `yaml:"three_wheelers"`
	FourWheelers           VehicleClassConfig `yaml:"four_wheelers"`
	ChargingSessionsPerDay float64            `yaml:"charging_sessions_per_day"`
	DailyDemandMWh         float64            `yaml:"daily_demand_mwh"`
}

type BESSConfig struct {
	CapacityMWh    float64 `yaml:"capacity_mwh"`
	Efficiency     float64 `yaml:"efficiency"`
	DailyCycles    float64 `yaml:"daily_cycles"`
	VPPUtilization float64 `yaml:"vpp_utilization"`
}

type EmissionsConfig struct {
	CurrentUseMWh   float64 `yaml:"current_use_mwh"`
	ProjectedUseMWh float64 `yaml:"projected_use_mwh"`
	Factor          float64 `yaml:"emission_factor"`
}

type LoadShiftingConfig struct {
	ECookingShiftMW    float64 `yaml:"ecooking_shift_mw"`
	EVSmartChargingMW  float64 `yaml:"ev_smart_charging_mw"`
	BESSDischargeMW    float64 `yaml:"bess_discharge_mw"`
	CombinedStrategyMW float64 `yaml:"combined_strategy_mw"`
}

type VPPConfig struct {
	EVContribMWh                float64 `yaml:"ev_contrib_mwh"`
	SmartLoadContribMWh         float64 `yaml:"smart_load_contrib_mwh"`
	BaselineThermalDisplacement float64 `yaml:"baseline_thermal_displacement"`
}

type LCOEConfig struct {
	Current             float64 `yaml:"current"`
	Optimized           float64 `yaml:"optimized"`
	MaxReductionCooking float64 `yaml:"max_reduction_cooking"`
	MaxReductionEV      float64 `yaml:"max_reduction_ev"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// If params_file is set, load it and merge in any explicit overrides from c.Params.
	if c.ParamsFile != "" {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := loadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeParams(loaded, c.Params)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return ValidateParams(c.ToModelParams())
}

// ValidateParams rejects tables the generators cannot evaluate meaningfully.
func ValidateParams(p model.Params) error {
	if p.Grid.OffPeakDemandMW <= 0 {
		return errors.New("grid.offpeak_demand_mw must be > 0")
	}
	if p.Grid.PeakDemandMW < p.Grid.OffPeakDemandMW {
		return errors.New("grid.peak_demand_mw must be >= grid.offpeak_demand_mw")
	}
	if p.Tariff.Peak <= 0 || p.Tariff.OffPeak <= 0 {
		return errors.New("tariff.peak and tariff.offpeak must be > 0")
	}
	if p.Cooking.Households < 0 {
		return errors.New("cooking.households must be >= 0")
	}
	if p.Emissions.Factor < 0 {
		return errors.New("emissions.emission_factor must be >= 0")
	}
	if p.VPP.BaselineThermalDisplacement <= 0 {
		return errors.New("vpp.baseline_thermal_displacement must be > 0")
	}
	// Validate BESS params by constructing a model.Battery.
	if _, err := model.NewBattery(p.BESS, 0.5); err != nil {
		return fmt.Errorf("bess config invalid: %w", err)
	}
	return nil
}

// ToModelParams overlays the configured values onto model.DefaultParams.
func (c *Config) ToModelParams() model.Params {
	return c.Params.Apply(model.DefaultParams())
}

// Apply overlays non-zero fields onto base.
func (pc ParamsConfig) Apply(base model.Params) model.Params {
	out := base
	for _, f := range floatFields {
		setF(f.param(&out), *f.cfg(&pc))
	}
	for _, f := range intFields {
		setI(f.param(&out), *f.cfg(&pc))
	}
	return out
}

// setF overwrites *dst when v is non-zero.
// Note: zero is treated as "not set", so a table cannot be overridden to exactly 0.
func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setI(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

type paramsFileWrapper struct {
	Params ParamsConfig `yaml:"params"`
}

func loadParamsFile(path string) (ParamsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsConfig{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParamsConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Params, nil
}

// MergeParams overlays non-zero fields from override onto base.
// This is used when loading a params file and then applying overrides from the config.
func MergeParams(base, override ParamsConfig) ParamsConfig {
	out := base
	for _, f := range floatFields {
		setF(f.cfg(&out), *f.cfg(&override))
	}
	for _, f := range intFields {
		setI(f.cfg(&out), *f.cfg(&override))
	}
	return out
}
