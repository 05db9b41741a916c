// Package trip converts trip time constraints into hour budgets and trims
// cluster sequences that cannot fit them.
//
// Two modes:
//   - Fixed: explicit start and end dates. Total available hours are the
//     inclusive day count times the daily hour budget, and over-budget
//     sequences are trimmed (lowest desirability first), never silently.
//   - Auto: no end date, or the auto-calculate flag set. The budget is
//     derived from the clusters themselves and nothing is trimmed.
//
// When exact transport legs are not yet known, inter-cluster travel is
// estimated at a flat rate per hop (FlatHopHours); the route engine
// replaces the estimate with computed legs at materialization time.
package trip

import (
	"errors"
	"time"
)

// Sentinel errors returned by the trip package.
var (
	// ErrEndBeforeStart indicates a fixed date range with End before Start.
	ErrEndBeforeStart = errors.New("trip: end date before start date")

	// ErrBadDailyHours indicates a non-positive daily hour budget.
	ErrBadDailyHours = errors.New("trip: DailyHours must be positive")
)

// DefaultDailyHours is the per-day activity budget when unset.
const DefaultDailyHours = 9.0

// FlatHopHours is the coarse inter-cluster travel estimate used before
// exact transport legs exist.
const FlatHopHours = 2.0

// TimeConstraints describes the caller's trip window.
//
// Start         – first trip day (required).
// End           – last trip day; zero value means auto mode.
// AutoCalculate – force auto mode even when End is set.
// DailyHours    – activity hours available per day (default 9).
type TimeConstraints struct {
	Start         time.Time
	End           time.Time
	AutoCalculate bool
	DailyHours    float64
}

// Auto reports whether tc is in auto mode.
func (tc TimeConstraints) Auto() bool {
	return tc.AutoCalculate || tc.End.IsZero()
}

// EffectiveDailyHours returns DailyHours with the default applied.
func (tc TimeConstraints) EffectiveDailyHours() float64 {
	if tc.DailyHours > 0 {
		return tc.DailyHours
	}
	return DefaultDailyHours
}

// HourBudget is the computed time envelope for a trip.
//
// Fixed == false means the budget was derived from the candidate clusters
// (auto mode) and is advisory rather than binding.
type HourBudget struct {
	Hours float64 // total available (fixed) or required (auto) hours
	Days  int     // inclusive day count (fixed) or required estimate (auto)
	Fixed bool
}
