package strategy

import (
	"fmt"

	"grid-scenarios/internal/model"
)

// Window is an inclusive hour range [StartHour, EndHour] with a signed energy step
// expressed as a fraction of BESS capacity (positive = charge, negative = discharge).
// A window with StartHour > EndHour wraps across midnight.
type Window struct {
	Name             string
	StartHour        int
	EndHour          int
	CapacityFraction float64
}

// HourSchedule implements a simple daily hour-window strategy.
// Windows are checked in order and the first match wins; hours matching no window are IDLE.
type HourSchedule struct {
	Windows []Window
}

// DefaultBESSSchedule is the case-study BESS operating pattern:
// - charge 10% of capacity per hour during low demand (1-5 AM)
// - discharge 5% during the morning ramp (7-9 AM)
// - charge 5% during the solar peak (10 AM-2 PM)
// - discharge 10% during the evening peak (6-9 PM)
func DefaultBESSSchedule() *HourSchedule {
	return &HourSchedule{Windows: []Window{
		{Name: "night_charge", StartHour: 1, EndHour: 5, CapacityFraction: 0.1},
		{Name: "morning_discharge", StartHour: 7, EndHour: 9, CapacityFraction: -0.05},
		{Name: "solar_charge", StartHour: 10, EndHour: 14, CapacityFraction: 0.05},
		{Name: "evening_discharge", StartHour: 18, EndHour: 21, CapacityFraction: -0.1},
	}}
}

func (s *HourSchedule) Name() string { return "hour_schedule" }

func (s *HourSchedule) Decide(ctx Context) model.Dispatch {
	if w, ok := s.Match(ctx.Hour); ok {
		return model.Dispatch{CapacityFraction: w.CapacityFraction, Window: w.Name}
	}
	return model.Dispatch{}
}

// Match returns the first window containing hour.
func (s *HourSchedule) Match(hour int) (Window, bool) {
	for _, w := range s.Windows {
		if inWindow(hour, w.StartHour, w.EndHour) {
			return w, true
		}
	}
	return Window{}, false
}

// Validate checks that every window uses hours in [0, 23].
func (s *HourSchedule) Validate() error {
	for i, w := range s.Windows {
		if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
			return fmt.Errorf("window %d (%q): hours must be in [0, 23]", i, w.Name)
		}
	}
	return nil
}

// inWindow checks whether hour is in [start, end] on a 24h clock.
// If start <= end, it's a normal same-day window.
// If start > end, it wraps across midnight.
func inWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour <= end
	}
	// wrap
	return hour >= start || hour <= end
}
