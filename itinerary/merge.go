package itinerary

import (
	"fmt"
	"time"
)

// mergeDays collapses adjacent underutilized days. Two neighbours merge
// when both sit under the merge threshold and their combined activity and
// travel still fits the daily budget. Later days move one calendar day
// earlier for every merge. Returns the surviving days and one note per
// merge performed.
func mergeDays(days []Day, opts Options) ([]Day, []string) {
	var notes []string
	i := 0
	for i < len(days)-1 {
		a, b := &days[i], &days[i+1]
		if !mergeable(a, b, opts) {
			i++
			continue
		}
		days[i] = merge(a, b, opts)
		days = append(days[:i+1], days[i+2:]...)
		for j := i + 1; j < len(days); j++ {
			shiftDay(&days[j], -24*time.Hour)
			days[j].Number = j + 1
		}
		notes = append(notes, fmt.Sprintf("merged a light day into day %d", i+1))
	}
	return days, notes
}

// mergeable applies the two merge conditions.
func mergeable(a, b *Day, opts Options) bool {
	if a.Stats.Utilization >= opts.MergeUtilization || b.Stats.Utilization >= opts.MergeUtilization {
		return false
	}
	combined := a.Stats.ActiveHours + a.Stats.TravelHours +
		b.Stats.ActiveHours + b.Stats.TravelHours
	return combined <= opts.DailyHours
}

// merge appends b's schedule onto a. The connecting leg already exists as
// b's first leg; only its clock times move. The result is re-finalized so
// stats and validation reflect the combined day.
func merge(a, b *Day, opts Options) Day {
	resume := a.Visits[len(a.Visits)-1].Depart.Add(hours(opts.VisitBufferHours))
	offset := resume.Sub(b.Legs[0].Depart)

	out := Day{
		Number: a.Number,
		Date:   a.Date,
		Start:  a.Start,
		Visits: append([]Visit(nil), a.Visits...),
		Legs:   append([]Leg(nil), a.Legs...),
	}
	for _, l := range b.Legs {
		l.Depart = l.Depart.Add(offset)
		l.Arrive = l.Arrive.Add(offset)
		out.Legs = append(out.Legs, l)
	}
	for _, v := range b.Visits {
		v.Arrive = v.Arrive.Add(offset)
		v.Depart = v.Depart.Add(offset)
		v.Period = periodOf(v.Arrive.Sub(out.Start).Hours())
		out.Visits = append(out.Visits, v)
	}
	finalize(&out, opts)
	return out
}

// shiftDay moves an entire day's schedule by a fixed offset.
func shiftDay(d *Day, offset time.Duration) {
	d.Date = d.Date.Add(offset)
	d.Start = d.Start.Add(offset)
	d.End = d.End.Add(offset)
	for i := range d.Visits {
		d.Visits[i].Arrive = d.Visits[i].Arrive.Add(offset)
		d.Visits[i].Depart = d.Visits[i].Depart.Add(offset)
	}
	for i := range d.Legs {
		d.Legs[i].Depart = d.Legs[i].Depart.Add(offset)
		d.Legs[i].Arrive = d.Legs[i].Arrive.Add(offset)
	}
}
