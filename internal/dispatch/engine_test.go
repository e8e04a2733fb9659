package dispatch

import (
	"testing"

	"grid-scenarios/internal/model"
	"grid-scenarios/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDefault(t *testing.T) *Result {
	t.Helper()
	batt, err := model.NewBattery(model.DefaultParams().BESS, 0.5)
	require.NoError(t, err)
	res, err := New().Run(batt, strategy.DefaultBESSSchedule())
	require.NoError(t, err)
	return res
}

func TestRunDefaultSchedule(t *testing.T) {
	res := runDefault(t)
	require.Len(t, res.Ledger, model.HoursPerDay)

	want := []float64{
		50, 60, 70, 80, 90, 100, 100, 95, 90, 85, 90, 95,
		100, 100, 100, 100, 100, 100, 90, 80, 70, 60, 60, 60,
	}
	soc := res.SOCPercent()
	for h, w := range want {
		assert.InDelta(t, w, soc[h], 1e-9, "hour %d", h)
	}
	assert.InDelta(t, 0.6, res.FinalSOC, 1e-12)
}

func TestLedgerRows(t *testing.T) {
	res := runDefault(t)

	t.Run("should label windows and actions", func(t *testing.T) {
		assert.Equal(t, "", res.Ledger[0].Window)
		assert.Equal(t, model.ActionIdle, res.Ledger[0].Action)
		assert.Equal(t, "night_charge", res.Ledger[1].Window)
		assert.Equal(t, model.ActionCharging, res.Ledger[1].Action)
		assert.Equal(t, model.ActionDischarging, res.Ledger[7].Action)
		assert.Equal(t, "evening_discharge", res.Ledger[21].Window)
	})

	t.Run("should report clamped steps as idle", func(t *testing.T) {
		row := res.Ledger[13]
		assert.Equal(t, "solar_charge", row.Window)
		assert.Equal(t, 2.5, row.RequestedMWh)
		assert.Equal(t, 0.0, row.AppliedMWh)
		assert.Equal(t, model.ActionIdle, row.Action)
	})

	t.Run("should chain each hour from the previous end state", func(t *testing.T) {
		for h := 1; h < len(res.Ledger); h++ {
			assert.Equal(t, res.Ledger[h-1].SOCEnd, res.Ledger[h].SOCStart, "hour %d", h)
		}
	})
}

// evenHourCharge charges a fifth of capacity on even hours and labels the step itself.
type evenHourCharge struct{}

func (evenHourCharge) Name() string { return "even_hour_charge" }

func (evenHourCharge) Decide(ctx strategy.Context) model.Dispatch {
	if ctx.Hour%2 != 0 {
		return model.Dispatch{}
	}
	return model.Dispatch{CapacityFraction: 0.2, Window: "even_hours"}
}

func TestRunCustomStrategy(t *testing.T) {
	batt, err := model.NewBattery(model.DefaultParams().BESS, 0)
	require.NoError(t, err)
	res, err := New().Run(batt, evenHourCharge{})
	require.NoError(t, err)

	t.Run("should take window labels from the strategy", func(t *testing.T) {
		assert.Equal(t, "even_hours", res.Ledger[0].Window)
		assert.Equal(t, "", res.Ledger[1].Window)
		assert.Equal(t, "even_hours", res.Ledger[22].Window)
	})

	t.Run("should clamp the charge at capacity", func(t *testing.T) {
		assert.InDelta(t, 1.0, res.Ledger[8].SOCEnd, 1e-12)
		row := res.Ledger[10]
		assert.Equal(t, "even_hours", row.Window)
		assert.Equal(t, 0.0, row.AppliedMWh)
		assert.Equal(t, model.ActionIdle, row.Action)
		assert.InDelta(t, 1.0, res.FinalSOC, 1e-12)
	})
}

func TestRunRejectsNil(t *testing.T) {
	_, err := New().Run(nil, strategy.DefaultBESSSchedule())
	assert.Error(t, err)

	batt, err := model.NewBattery(model.DefaultParams().BESS, 0.5)
	require.NoError(t, err)
	_, err = New().Run(batt, nil)
	assert.Error(t, err)
}
