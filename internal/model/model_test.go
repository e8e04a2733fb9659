package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHelpers(t *testing.T) {
	p := Profile{1, 2, 3, 4}

	t.Run("should sum, max and average", func(t *testing.T) {
		assert.Equal(t, 10.0, p.Sum())
		assert.Equal(t, 4.0, p.Max())
		assert.Equal(t, 2.5, p.Mean())
	})

	t.Run("should treat an empty profile as zero", func(t *testing.T) {
		var empty Profile
		assert.Equal(t, 0.0, empty.Sum())
		assert.Equal(t, 0.0, empty.Max())
		assert.Equal(t, 0.0, empty.Mean())
	})

	t.Run("should sum an inclusive range and clip it to bounds", func(t *testing.T) {
		assert.Equal(t, 5.0, p.SumRange(1, 2))
		assert.Equal(t, 10.0, p.SumRange(-3, 99))
		assert.Equal(t, 0.0, p.SumRange(3, 1))
	})

	t.Run("should scale and add without touching the receiver", func(t *testing.T) {
		assert.Equal(t, Profile{2, 4, 6, 8}, p.Scale(2))
		assert.Equal(t, Profile{2, 4, 6, 8}, p.Add(p))
		assert.Equal(t, Profile{1, 2, 3, 4}, p)
	})

	t.Run("should panic when adding profiles of different length", func(t *testing.T) {
		assert.Panics(t, func() { p.Add(Profile{1}) })
	})
}

func TestNewProfile(t *testing.T) {
	p := NewProfile(func(hour int) float64 { return float64(hour) })
	require.Len(t, p, HoursPerDay)
	assert.Equal(t, 23.0, p[23])

	labels := HourLabels()
	require.Len(t, labels, HoursPerDay)
	assert.Equal(t, "0:00", labels[0])
	assert.Equal(t, "23:00", labels[23])
}

func TestTariff(t *testing.T) {
	tariff := DefaultParams().Tariff
	for hour := 0; hour < HoursPerDay; hour++ {
		if hour >= 18 && hour <= 21 {
			assert.Equal(t, 0.15, tariff.TariffAt(hour), "hour %d", hour)
			assert.True(t, IsPeakHour(hour))
		} else {
			assert.Equal(t, 0.08, tariff.TariffAt(hour), "hour %d", hour)
			assert.False(t, IsPeakHour(hour))
		}
	}
}

func TestBattery(t *testing.T) {
	params := DefaultParams().BESS

	t.Run("should start at the requested state of charge", func(t *testing.T) {
		b, err := NewBattery(params, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 25.0, b.State.ChargeMWh)
		assert.Equal(t, 0.5, b.SOC())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		_, err := NewBattery(BESSParams{CapacityMWh: 0}, 0.5)
		assert.Error(t, err)

		_, err = NewBattery(params, 1.5)
		assert.Error(t, err)

		bad := params
		bad.Efficiency = 1.2
		_, err = NewBattery(bad, 0.5)
		assert.Error(t, err)
	})

	t.Run("should clamp charging at capacity", func(t *testing.T) {
		b, err := NewBattery(params, 0.98)
		require.NoError(t, err)
		res := b.Apply(Dispatch{CapacityFraction: 0.1})
		assert.Equal(t, 5.0, res.RequestedMWh)
		assert.InDelta(t, 1.0, res.AppliedMWh, 1e-9)
		assert.Equal(t, 1.0, res.SOCEnd)
	})

	t.Run("should clamp discharging at empty", func(t *testing.T) {
		b, err := NewBattery(params, 0.02)
		require.NoError(t, err)
		res := b.Apply(Dispatch{CapacityFraction: -0.1})
		assert.InDelta(t, -1.0, res.AppliedMWh, 1e-9)
		assert.Equal(t, 0.0, res.SOCEnd)
	})

	t.Run("should hold charge on an idle step", func(t *testing.T) {
		b, err := NewBattery(params, 0.5)
		require.NoError(t, err)
		res := b.Apply(Dispatch{})
		assert.Equal(t, 0.0, res.AppliedMWh)
		assert.Equal(t, res.SOCStart, res.SOCEnd)
	})

	t.Run("should offer the utilised share to the VPP", func(t *testing.T) {
		assert.Equal(t, 40.0, params.VPPContribMWh())
	})
}

func TestActionFromEnergyMWh(t *testing.T) {
	assert.Equal(t, ActionCharging, ActionFromEnergyMWh(2.5))
	assert.Equal(t, ActionDischarging, ActionFromEnergyMWh(-0.1))
	assert.Equal(t, ActionIdle, ActionFromEnergyMWh(0))
}

func TestEmissionParams(t *testing.T) {
	assert.Equal(t, 150.0, DefaultParams().Emissions.DailyReductionMWh())
}
