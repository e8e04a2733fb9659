package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"grid-scenarios/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should overlay configured values on the defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", `
params:
  grid:
    peak_demand_mw: 180
  tariff:
    peak: 0.2
scenario:
  name: evening
  cooking_shift_percent: 0
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		p := cfg.ToModelParams()
		assert.Equal(t, 180.0, p.Grid.PeakDemandMW)
		assert.Equal(t, 90.0, p.Grid.OffPeakDemandMW)
		assert.Equal(t, 0.2, p.Tariff.Peak)
		assert.Equal(t, 0.08, p.Tariff.OffPeak)

		in := cfg.Scenario.Inputs()
		assert.Equal(t, 0.0, in.CookingShiftPercent)
		assert.Equal(t, 40.0, in.ThermalDisplacement)
	})

	t.Run("should merge a params file relative to the config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "params"), 0o755))
		writeFile(t, dir, "params/site.yaml", `
params:
  grid:
    peak_demand_mw: 120
    offpeak_demand_mw: 60
  bess:
    capacity_mwh: 80
`)
		path := writeFile(t, dir, "config.yaml", `
params_file: params/site.yaml
params:
  grid:
    peak_demand_mw: 130
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		p := cfg.ToModelParams()
		assert.Equal(t, 130.0, p.Grid.PeakDemandMW)
		assert.Equal(t, 60.0, p.Grid.OffPeakDemandMW)
		assert.Equal(t, 80.0, p.BESS.CapacityMWh)
	})

	t.Run("should reject invalid tables", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", `
params:
  grid:
    peak_demand_mw: 50
`)
		_, err := Load(path)
		assert.Error(t, err)

		cfg, err := LoadUnchecked(path)
		require.NoError(t, err)
		assert.Equal(t, 50.0, cfg.Params.Grid.PeakDemandMW)
	})

	t.Run("should report malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", "params: [unclosed")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidateParams(t *testing.T) {
	require.NoError(t, ValidateParams(model.DefaultParams()))

	p := model.DefaultParams()
	p.BESS.VPPUtilization = 2
	assert.Error(t, ValidateParams(p))

	p = model.DefaultParams()
	p.VPP.BaselineThermalDisplacement = 0
	assert.Error(t, ValidateParams(p))

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestMergeParams(t *testing.T) {
	t.Run("should keep base values the override leaves unset", func(t *testing.T) {
		base := ParamsConfig{Tariff: TariffConfig{Peak: 0.15, OffPeak: 0.08}}
		out := MergeParams(base, ParamsConfig{Tariff: TariffConfig{Peak: 0.2}})
		assert.Equal(t, 0.2, out.Tariff.Peak)
		assert.Equal(t, 0.08, out.Tariff.OffPeak)
	})

	t.Run("should carry session fleet and mix fields through a params file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "params.yaml", `
params:
  energy_mix:
    hydro: 0.7
  cooking:
    sessions_per_day: 3
  mobility:
    three_wheelers:
      count: 650
`)
		path := writeFile(t, dir, "config.yaml", `
params_file: params.yaml
params:
  energy_mix:
    solar: 0.05
  mobility:
    four_wheelers:
      kwh_per_km: 0.18
    charging_sessions_per_day: 2
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		p := cfg.ToModelParams()
		assert.Equal(t, 0.7, p.EnergyMix.Hydro)
		assert.Equal(t, 0.3, p.EnergyMix.Thermal)
		assert.Equal(t, 0.05, p.EnergyMix.Solar)
		assert.Equal(t, 3.0, p.Cooking.SessionsPerDay)
		assert.Equal(t, 650, p.Mobility.ThreeWheelers.Count)
		assert.Equal(t, 8.0, p.Mobility.ThreeWheelers.CapacityKWh)
		assert.Equal(t, 0.18, p.Mobility.FourWheelers.KWhPerKm)
		assert.Equal(t, 2.0, p.Mobility.ChargingSessionsPerDay)
	})
}

// leafCount counts the float64 and int fields reachable from v.
func leafCount(v reflect.Value) (floats, ints int) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f, n := leafCount(v.Field(i))
			floats += f
			ints += n
		}
	case reflect.Float64:
		floats = 1
	case reflect.Int:
		ints = 1
	}
	return floats, ints
}

func TestOverlayFields(t *testing.T) {
	t.Run("should cover every table entry of the config and the model", func(t *testing.T) {
		cfgFloats, cfgInts := leafCount(reflect.ValueOf(ParamsConfig{}))
		assert.Equal(t, cfgFloats, len(floatFields))
		assert.Equal(t, cfgInts, len(intFields))

		modelFloats, modelInts := leafCount(reflect.ValueOf(model.Params{}))
		assert.Equal(t, modelFloats, len(floatFields))
		assert.Equal(t, modelInts, len(intFields))
	})

	t.Run("should bind each entry to a distinct field", func(t *testing.T) {
		var pc ParamsConfig
		var p model.Params
		cfgSeen := map[*float64]string{}
		paramSeen := map[*float64]string{}
		for _, f := range floatFields {
			c, m := f.cfg(&pc), f.param(&p)
			_, dupCfg := cfgSeen[c]
			_, dupParam := paramSeen[m]
			assert.False(t, dupCfg, f.key)
			assert.False(t, dupParam, f.key)
			cfgSeen[c] = f.key
			paramSeen[m] = f.key
		}
	})

	t.Run("should apply and merge every entry", func(t *testing.T) {
		var override ParamsConfig
		for i, f := range floatFields {
			*f.cfg(&override) = float64(i + 1)
		}
		for i, f := range intFields {
			*f.cfg(&override) = i + 1
		}

		merged := MergeParams(ParamsConfig{}, override)
		applied := override.Apply(model.Params{})
		for i, f := range floatFields {
			assert.Equal(t, float64(i+1), *f.cfg(&merged), f.key)
			assert.Equal(t, float64(i+1), *f.param(&applied), f.key)
		}
		for i, f := range intFields {
			assert.Equal(t, i+1, *f.cfg(&merged), f.key)
			assert.Equal(t, i+1, *f.param(&applied), f.key)
		}
	})
}

func TestPresets(t *testing.T) {
	t.Run("should ship the four dashboard scenarios", func(t *testing.T) {
		presets, err := Presets("")
		require.NoError(t, err)
		require.Len(t, presets, 4)

		p, ok := FindPreset(presets, "full optimization")
		require.True(t, ok)
		assert.Equal(t, "full_optimization", p.ID)
		assert.Equal(t, 80.0, p.Inputs.CookingShiftPercent)
		assert.Equal(t, "Full Optimization", p.Scenario().Name)
	})

	t.Run("should add and override presets from a directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "baseline.yaml", `
description: Measured baseline
scenario:
  name: Baseline
  cooking_shift_percent: 5
`)
		writeFile(t, dir, "evening_cooking.yml", `
scenario:
  cooking_shift_percent: 60
  thermal_displacement: 10
`)
		writeFile(t, dir, "broken.yaml", "scenario: [")
		writeFile(t, dir, "notes.txt", "ignored")

		presets, err := Presets(dir)
		require.NoError(t, err)
		require.Len(t, presets, 5)

		base, ok := FindPreset(presets, "baseline")
		require.True(t, ok)
		assert.Equal(t, 5.0, base.Inputs.CookingShiftPercent)
		assert.Equal(t, 40.0, base.Inputs.ThermalDisplacement)
		assert.Equal(t, "Measured baseline", base.Description)

		custom, ok := FindPreset(presets, "evening_cooking")
		require.True(t, ok)
		assert.Equal(t, "evening_cooking", custom.Name)
		assert.Equal(t, 10.0, custom.Inputs.ThermalDisplacement)

		_, ok = FindPreset(presets, "broken")
		assert.False(t, ok)
	})

	t.Run("should treat a missing directory as empty", func(t *testing.T) {
		loaded, err := LoadPresetDir(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestExampleFiles(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultParams(), cfg.ToModelParams())
	assert.Equal(t, 30.0, cfg.Scenario.Inputs().CookingShiftPercent)

	presets, err := Presets(filepath.Join("..", "..", "examples", "scenarios"))
	require.NoError(t, err)
	_, ok := FindPreset(presets, "Storage Heavy")
	assert.True(t, ok)
}
