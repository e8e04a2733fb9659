package model

import (
	"errors"
	"math"
)

// BatteryState captures mutable state.
type BatteryState struct {
	// ChargeMWh is the stored energy in [0, CapacityMWh].
	ChargeMWh float64
}

// Battery is a convenience wrapper bundling params + state.
// It models the BESS as a single aggregate store without efficiency losses;
// the state-of-charge profile only tracks the scheduled energy steps.
type Battery struct {
	Params BESSParams
	State  BatteryState
}

// NewBattery builds a battery holding initialSOC (fraction 0..1) of its capacity.
func NewBattery(params BESSParams, initialSOC float64) (*Battery, error) {
	b := &Battery{
		Params: params,
		State:  BatteryState{ChargeMWh: params.CapacityMWh * initialSOC},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.CapacityMWh <= 0 {
		return errors.New("CapacityMWh must be > 0")
	}
	if p.Efficiency < 0 || p.Efficiency > 1 {
		return errors.New("Efficiency must be in [0, 1]")
	}
	if p.VPPUtilization < 0 || p.VPPUtilization > 1 {
		return errors.New("VPPUtilization must be in [0, 1]")
	}
	if b.State.ChargeMWh < 0 || b.State.ChargeMWh > p.CapacityMWh {
		return errors.New("initial charge must be within [0, CapacityMWh]")
	}
	return nil
}

// Dispatch is a requested energy step for one hour, as a fraction of capacity.
// Convention: positive = charge, negative = discharge.
type Dispatch struct {
	CapacityFraction float64
	// Window names the schedule rule that produced the step; empty when idle.
	Window string
}

// StepResult captures what happened in one hour.
type StepResult struct {
	RequestedMWh float64
	AppliedMWh   float64 // realized step after clamping (may be smaller in magnitude)
	SOCStart     float64 // fraction 0..1
	SOCEnd       float64 // fraction 0..1
}

// Apply moves the stored energy by the requested step, clamping to [0, CapacityMWh].
func (b *Battery) Apply(d Dispatch) StepResult {
	capMWh := b.Params.CapacityMWh
	res := StepResult{
		RequestedMWh: d.CapacityFraction * capMWh,
		SOCStart:     b.SOC(),
	}
	before := b.State.ChargeMWh
	switch {
	case d.CapacityFraction > 0:
		b.State.ChargeMWh = math.Min(before+res.RequestedMWh, capMWh)
	case d.CapacityFraction < 0:
		b.State.ChargeMWh = math.Max(before+res.RequestedMWh, 0)
	}
	res.AppliedMWh = b.State.ChargeMWh - before
	res.SOCEnd = b.SOC()
	return res
}

// SOC returns the state of charge as a fraction of capacity.
func (b *Battery) SOC() float64 {
	return b.State.ChargeMWh / b.Params.CapacityMWh
}

// VPPContribMWh is the share of the BESS capacity offered to the VPP.
func (p BESSParams) VPPContribMWh() float64 {
	return p.CapacityMWh * p.VPPUtilization
}
