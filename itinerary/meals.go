package itinerary

import (
	"math"
	"time"
)

// insertMeals adds a lunch block when the day spans the lunch window and a
// dinner block when the day runs into the evening. Lunch displaces every
// later visit by exactly its own duration; dinner is appended after the
// last departure and displaces nothing.
func insertMeals(d *Day, opts Options) {
	if len(d.Visits) == 0 {
		return
	}
	insertLunch(d, opts)
	insertDinner(d, opts)
}

// insertLunch picks the visit to eat after, in three tiers:
//
//	Tier 1: a visit departing inside [window start − 30min, window end].
//	Tier 2: a visit in progress at the window start.
//	Tier 3: the visit departing closest to the window start.
//
// The meal starts one visit buffer after that departure and every later
// visit and leg shifts by the lunch duration.
func insertLunch(d *Day, opts Options) {
	window := atHour(d.Date, 0).Add(hours(opts.LunchStartHour))
	windowEnd := window.Add(hours(opts.LunchHours))
	if d.Start.After(window) || d.End.Before(windowEnd) {
		return
	}

	idx := lunchAnchor(d.Visits, window, windowEnd)
	anchor := d.Visits[idx]
	shift := hours(opts.LunchHours)

	meal := Meal{
		Type:      Lunch,
		Start:     anchor.Depart.Add(hours(opts.VisitBufferHours)),
		Location:  anchor.Destination,
		NearLabel: anchor.Destination.Name,
	}
	meal.End = meal.Start.Add(shift)
	d.Meals = append(d.Meals, meal)

	for i := idx + 1; i < len(d.Visits); i++ {
		d.Visits[i].Arrive = d.Visits[i].Arrive.Add(shift)
		d.Visits[i].Depart = d.Visits[i].Depart.Add(shift)
	}
	for i := idx + 1; i < len(d.Legs); i++ {
		d.Legs[i].Depart = d.Legs[i].Depart.Add(shift)
		d.Legs[i].Arrive = d.Legs[i].Arrive.Add(shift)
	}
	d.End = laterOf(d.Visits[len(d.Visits)-1].Depart, meal.End)
}

// lunchAnchor returns the index of the visit lunch follows.
func lunchAnchor(visits []Visit, window, windowEnd time.Time) int {
	early := window.Add(-30 * time.Minute)
	for i, v := range visits {
		if !v.Depart.Before(early) && !v.Depart.After(windowEnd) {
			return i
		}
	}
	for i, v := range visits {
		if !v.Arrive.After(window) && !v.Depart.Before(window) {
			return i
		}
	}
	best, bestGap := 0, math.MaxFloat64
	for i, v := range visits {
		gap := math.Abs(v.Depart.Sub(window).Hours())
		if gap < bestGap {
			best, bestGap = i, gap
		}
	}
	return best
}

// insertDinner appends a dinner block when the day ends at or after the
// configured evening hour.
func insertDinner(d *Day, opts Options) {
	if d.End.Before(atHour(d.Date, opts.DinnerAfterHour)) {
		return
	}
	last := d.Visits[len(d.Visits)-1]
	meal := Meal{
		Type:      Dinner,
		Start:     d.End.Add(hours(opts.VisitBufferHours)),
		Location:  last.Destination,
		NearLabel: last.Destination.Name,
	}
	meal.End = meal.Start.Add(hours(opts.DinnerHours))
	d.Meals = append(d.Meals, meal)
	d.End = meal.End
}

// laterOf returns the later of two instants.
func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
