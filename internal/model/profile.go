package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// HoursPerDay is the length of every hourly profile.
const HoursPerDay = 24

// Profile is an ordered sequence of values indexed by hour of a synthetic day
// (or by year / adoption level for the non-hourly series). The unit depends on
// the generator that produced it.
type Profile []float64

// NewProfile builds a 24-entry profile by evaluating fn for each hour 0..23.
func NewProfile(fn func(hour int) float64) Profile {
	p := make(Profile, HoursPerDay)
	for h := range p {
		p[h] = fn(h)
	}
	return p
}

// Sum returns the total of all entries.
func (p Profile) Sum() float64 {
	if len(p) == 0 {
		return 0
	}
	return floats.Sum(p)
}

// Max returns the largest entry, or 0 for an empty profile.
func (p Profile) Max() float64 {
	if len(p) == 0 {
		return 0
	}
	return floats.Max(p)
}

// Mean returns the arithmetic mean over all entries.
func (p Profile) Mean() float64 {
	if len(p) == 0 {
		return 0
	}
	return floats.Sum(p) / float64(len(p))
}

// SumRange returns the total over the inclusive index range [from, to].
func (p Profile) SumRange(from, to int) float64 {
	if from < 0 {
		from = 0
	}
	if to >= len(p) {
		to = len(p) - 1
	}
	if from > to {
		return 0
	}
	return floats.Sum(p[from : to+1])
}

// Scale returns a copy of p with every entry multiplied by k.
func (p Profile) Scale(k float64) Profile {
	out := make(Profile, len(p))
	copy(out, p)
	floats.Scale(k, out)
	return out
}

// Add returns the elementwise sum of p and others. Like floats.Add, it panics
// when lengths differ.
func (p Profile) Add(others ...Profile) Profile {
	out := make(Profile, len(p))
	copy(out, p)
	for _, o := range others {
		floats.Add(out, o)
	}
	return out
}

// HourLabels returns "0:00".."23:00", the axis labels used by the dashboard charts.
func HourLabels() []string {
	out := make([]string, HoursPerDay)
	for h := range out {
		out[h] = fmt.Sprintf("%d:00", h)
	}
	return out
}
