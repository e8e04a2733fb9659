package profile

import (
	"testing"

	"grid-scenarios/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestBaseLoad(t *testing.T) {
	p := BaseLoadProfile()
	require.Len(t, p, model.HoursPerDay)

	t.Run("should follow the daily shape", func(t *testing.T) {
		assert.InDelta(t, 72.0, p[2], eps)
		assert.Equal(t, 90.0, p[6])
		assert.InDelta(t, 132.0, p[8], eps)
		assert.InDelta(t, 114.0, p[13], eps)
		assert.Equal(t, 150.0, p[19])
		assert.InDelta(t, 72.0, p[23], eps)
	})

	t.Run("should peak in the evening", func(t *testing.T) {
		assert.Equal(t, 150.0, p.Max())
		assert.InDelta(t, 2472.0, p.Sum(), eps)
	})
}

func TestCooking(t *testing.T) {
	t.Run("should use the default split at zero shift", func(t *testing.T) {
		p := CookingProfile(0)
		assert.InDelta(t, 4.8, p[8], eps)
		assert.InDelta(t, 4.8, p[19], eps)
		assert.InDelta(t, 2.4, p[12], eps)
		assert.Equal(t, 0.0, p[17])
		assert.Equal(t, 0.0, p[10])
		assert.InDelta(t, 33.6, p.Sum(), eps)
	})

	t.Run("should move load out of the peak slots when shifted", func(t *testing.T) {
		p := CookingProfile(30)
		assert.InDelta(t, 5.232, p[6], eps)
		assert.InDelta(t, 4.8, p[7], eps)
		assert.InDelta(t, 4.08, p[8], eps)
		assert.InDelta(t, 0.72, p[17], eps)
		assert.InDelta(t, 3.792, p[19], eps)
		assert.InDelta(t, 5.088, p[20], eps)
		assert.InDelta(t, 0.18, p[10], eps)
		assert.InDelta(t, 0.18, p[16], eps)
		assert.Equal(t, 0.0, p[0])
		assert.Equal(t, 0.0, p[23])
	})

	t.Run("should extrapolate past 100%", func(t *testing.T) {
		p := CookingProfile(200)
		assert.InDelta(t, 0.0, p[8], eps)
		assert.Less(t, p[19], 0.0)
	})
}

func TestEVCharging(t *testing.T) {
	p := EVChargingProfile()
	assert.InDelta(t, 21.0, p.SumRange(18, 22), eps)
	assert.InDelta(t, 1.26, p[9], eps)
	assert.InDelta(t, 1.68, p[14], eps)
	assert.Equal(t, 0.0, p[6])
	assert.Equal(t, 0.0, p[17])
	assert.InDelta(t, 38.64, p.Sum(), eps)
}

func TestBatteryStateOfCharge(t *testing.T) {
	p := BatteryStateOfChargeProfile()
	require.Len(t, p, model.HoursPerDay)

	assert.Equal(t, 50.0, p[0])
	for h := 1; h <= 5; h++ {
		assert.Greater(t, p[h], p[h-1], "hour %d", h)
	}
	for h := 7; h <= 9; h++ {
		assert.LessOrEqual(t, p[h], p[h-1], "hour %d", h)
	}
	for h := 18; h <= 21; h++ {
		assert.Less(t, p[h], p[h-1], "hour %d", h)
	}
	for _, v := range p {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
	assert.InDelta(t, 60.0, p[23], eps)
}

func TestBatteryDispatchInvalidTables(t *testing.T) {
	params := model.DefaultParams()
	params.BESS.CapacityMWh = 0
	calc := New(params)

	_, err := calc.BatteryDispatch()
	assert.Error(t, err)
	assert.Equal(t, make(model.Profile, model.HoursPerDay), calc.BatteryStateOfCharge())
}

func TestVPPContribution(t *testing.T) {
	p := VPPContributionProfile(40)
	assert.InDelta(t, 17.4, p[19], eps)
	assert.InDelta(t, 10.6, p[8], eps)
	assert.InDelta(t, 2.9, p[3], eps)

	t.Run("should scale linearly with thermal displacement", func(t *testing.T) {
		doubled := VPPContributionProfile(80)
		for h := range p {
			assert.InDelta(t, 2*p[h], doubled[h], eps, "hour %d", h)
		}
		assert.Equal(t, 0.0, VPPContributionProfile(0).Sum())
	})
}

func TestEmissionReduction(t *testing.T) {
	p := EmissionReductionTrajectory(40)
	require.Len(t, p, TrajectoryYears)

	assert.InDelta(t, 32850.0, p[0], 1e-6)
	assert.InDelta(t, 59130.0, p[4], 1e-6)
	assert.InDelta(t, 1.8, p[4]/p[0], eps)
	assert.InDelta(t, 229950.0, p.Sum(), 1e-6)

	t.Run("should convert to tonnes", func(t *testing.T) {
		tonnes := ToTonnes(p)
		assert.InDelta(t, 32.85, tonnes[0], 1e-9)
		assert.Len(t, YearLabels(), TrajectoryYears)
	})

	t.Run("should double at twice the baseline displacement", func(t *testing.T) {
		assert.InDelta(t, 65700.0, EmissionReductionTrajectory(80)[0], 1e-6)
	})
}

func TestGeneratorsAreIdempotent(t *testing.T) {
	calc := Default()
	assert.Equal(t, calc.BaseLoad(), calc.BaseLoad())
	assert.Equal(t, calc.Cooking(45), calc.Cooking(45))
	assert.Equal(t, calc.VPPContribution(55), calc.VPPContribution(55))
	assert.Equal(t, calc.BatteryStateOfCharge(), calc.BatteryStateOfCharge())
}

func TestCustomTables(t *testing.T) {
	params := model.DefaultParams()
	params.Grid.PeakDemandMW = 200
	calc := New(params)
	assert.Equal(t, 200.0, calc.BaseLoad()[20])
	assert.Equal(t, 150.0, BaseLoadProfile()[20])
}
