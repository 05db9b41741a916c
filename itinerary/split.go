package itinerary

import (
	"fmt"
	"time"

	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/route"
	"github.com/roamplan/roamplan/transport"
	"github.com/roamplan/roamplan/trip"
)

// stop is one destination-level scheduling unit produced by expanding a
// route solution: clusters are flattened into individual destinations in
// their intra-cluster visiting order.
type stop struct {
	dest geo.Location
	stay float64
}

// Split expands an optimized route into concrete calendar days.
//
// Algorithm Outline:
//
//	Stage 1: flatten clusters into destination-level stops, ordering each
//	         cluster internally from its entry point.
//	Stage 2: walk the stops chronologically, opening a new day whenever the
//	         activity budget would overflow, the visit would end past the
//	         end-of-day hour, or the incoming leg is long enough to force
//	         an overnight.
//	Stage 3: merge adjacent underutilized days.
//	Stage 4: insert lunch and dinner breaks per day.
//	Stage 5: attach lodging suggestions to every night.
//	Stage 6: aggregate trip statistics.
//
// Errors: ErrNilCache, ErrNoStartDate.
func Split(sol route.Solution, departure geo.Location, tc trip.TimeConstraints, cache *geo.DistanceCache, opts Options) (Plan, error) {
	if cache == nil {
		return Plan{}, ErrNilCache
	}
	if tc.Start.IsZero() {
		return Plan{}, ErrNoStartDate
	}
	opts = opts.normalized()

	stops := expand(sol, departure, cache, opts)
	if len(stops) == 0 {
		return Plan{}, nil
	}

	days := pack(stops, departure, tc.Start, cache, opts)
	days, mergeNotes := mergeDays(days, opts)
	for i := range days {
		insertMeals(&days[i], opts)
	}
	attachLodging(days, opts)

	plan := Plan{
		Days:     days,
		Stats:    aggregate(days, opts),
		Warnings: mergeNotes,
	}
	for i := range days {
		for _, issue := range days[i].Validation {
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("day %d: %s", days[i].Number, issue.Message))
		}
	}
	return plan, nil
}

// expand flattens a solution into destination-level stops. Each cluster is
// ordered internally starting from wherever the previous stop left off.
func expand(sol route.Solution, departure geo.Location, cache *geo.DistanceCache, opts Options) []stop {
	var stops []stop
	prev := departure
	for _, c := range sol.Clusters {
		ordered, _ := route.OrderWithin(c, prev, cache, opts.Transport)
		for _, dest := range ordered {
			stops = append(stops, stop{dest: dest, stay: c.AvgStayHours})
			prev = dest
		}
	}
	return stops
}

// pack walks the stops and assigns them to days.
func pack(stops []stop, departure geo.Location, start time.Time, cache *geo.DistanceCache, opts Options) []Day {
	var days []Day
	date := start
	day := newDay(1, date, opts)
	now := day.Start
	prev := departure
	var spent float64 // activity+travel hours consumed on the current day

	for _, s := range stops {
		distKm := cache.Distance(prev, s.dest)
		mode, legHours := transport.EstimateLeg(distKm, opts.Transport)
		cost := legHours + s.stay + opts.VisitBufferHours

		if len(day.Visits) > 0 && breaksDay(day, now, spent, cost, legHours, s.stay, opts) {
			finalize(&day, opts)
			days = append(days, day)
			date = date.AddDate(0, 0, 1)
			day = newDay(len(days)+1, date, opts)
			now = day.Start
			spent = 0
		}

		arrive := now.Add(hours(legHours))
		depart := arrive.Add(hours(s.stay))
		day.Legs = append(day.Legs, Leg{
			From:       prev,
			To:         s.dest,
			DistanceKm: distKm,
			Mode:       mode,
			Depart:     now,
			Arrive:     arrive,
			Hours:      legHours,
		})
		day.Visits = append(day.Visits, Visit{
			Destination: s.dest,
			Arrive:      arrive,
			Depart:      depart,
			StayHours:   s.stay,
			Period:      periodOf(arrive.Sub(day.Start).Hours()),
			Rushed:      s.stay < 1,
			Extended:    s.stay > 4,
		})

		now = depart.Add(hours(opts.VisitBufferHours))
		spent += cost
		prev = s.dest
	}

	finalize(&day, opts)
	days = append(days, day)
	return days
}

// breaksDay reports whether appending the next stop must open a new day.
func breaksDay(day Day, now time.Time, spent, cost, legHours, stay float64, opts Options) bool {
	if spent+cost > opts.DailyHours {
		return true
	}
	if legHours > opts.LongTransportHours {
		return true
	}
	visitEnd := now.Add(hours(legHours + stay))
	return visitEnd.After(atHour(day.Date, opts.DayEndHour))
}

// newDay opens an empty day starting at the configured morning hour.
func newDay(number int, date time.Time, opts Options) Day {
	return Day{
		Number: number,
		Date:   truncateDate(date),
		Start:  atHour(date, opts.DayStartHour),
	}
}

// finalize snaps the day end to the last departure, computes stats, and
// runs validation. The day is immutable afterwards except for the meal and
// lodging insertion passes.
func finalize(d *Day, opts Options) {
	if d.finalized || len(d.Visits) == 0 {
		d.finalized = true
		return
	}
	d.End = d.Visits[len(d.Visits)-1].Depart

	var active, travel, walkKm float64
	for _, v := range d.Visits {
		active += v.StayHours
	}
	for _, l := range d.Legs {
		travel += l.Hours
		if l.Mode == transport.Walking {
			walkKm += l.DistanceKm
		}
	}
	util := (active + travel) / opts.DailyHours
	d.Stats = DayStats{
		ActiveHours: active,
		TravelHours: travel,
		WalkingKm:   walkKm,
		Utilization: util,
		Pace:        paceOf(util),
	}
	d.Validation = validate(d, opts)
	d.finalized = true
}

// validate grades a finalized day against the scheduling thresholds.
func validate(d *Day, opts Options) []DayIssue {
	var issues []DayIssue
	total := d.Stats.ActiveHours + d.Stats.TravelHours
	if total > opts.DailyHours {
		issues = append(issues, DayIssue{
			Code:     CodeExceedsDailyLimit,
			Severity: SeverityError,
			Message:  fmt.Sprintf("scheduled %.1fh exceeds the %.1fh daily limit", total, opts.DailyHours),
		})
	}
	if len(d.Visits) > opts.MaxDayVisits {
		issues = append(issues, DayIssue{
			Code:     CodeTooManyDestinations,
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("%d destinations scheduled, more than the recommended %d", len(d.Visits), opts.MaxDayVisits),
		})
	}
	if d.Stats.WalkingKm > opts.MaxDailyWalkKm {
		issues = append(issues, DayIssue{
			Code:     CodeExcessiveWalking,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("%.1fkm of walking, more than the recommended %.1fkm", d.Stats.WalkingKm, opts.MaxDailyWalkKm),
		})
	}
	if !d.End.Before(atHour(d.Date, opts.DayEndHour)) {
		issues = append(issues, DayIssue{
			Code:     CodeLateFinish,
			Severity: SeverityLow,
			Message:  fmt.Sprintf("day ends at %s, past the %02d:00 target", d.End.Format("15:04"), opts.DayEndHour),
		})
	}
	if d.Stats.Utilization >= 0.85 && total <= opts.DailyHours {
		issues = append(issues, DayIssue{
			Code:     CodePackedSchedule,
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("schedule is %.0f%% full, little slack remains", d.Stats.Utilization*100),
		})
	}
	return issues
}

// aggregate rolls day stats up into trip stats.
func aggregate(days []Day, opts Options) TripStats {
	stats := TripStats{TotalDays: len(days)}
	var utilSum float64
	for i := range days {
		d := &days[i]
		stats.TotalDestinations += len(d.Visits)
		stats.TotalActiveHours += d.Stats.ActiveHours
		stats.TotalTravelHours += d.Stats.TravelHours
		for _, l := range d.Legs {
			stats.TotalDistanceKm += l.DistanceKm
		}
		utilSum += d.Stats.Utilization
	}
	if len(days) > 0 {
		stats.AvgUtilization = utilSum / float64(len(days))
	}
	return stats
}

// paceOf labels a utilization ratio.
func paceOf(util float64) string {
	switch {
	case util < 0.60:
		return "relaxed"
	case util >= 0.85:
		return "packed"
	default:
		return "moderate"
	}
}

// periodOf buckets hours elapsed since the day start.
func periodOf(elapsed float64) EnergyPeriod {
	switch {
	case elapsed < 4:
		return Morning
	case elapsed < 8:
		return Afternoon
	default:
		return Evening
	}
}

// normalized substitutes documented defaults for zero-valued fields so a
// partially filled Options literal behaves sensibly.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.DailyHours <= 0 {
		o.DailyHours = d.DailyHours
	}
	if o.DayStartHour <= 0 {
		o.DayStartHour = d.DayStartHour
	}
	if o.DayEndHour <= 0 {
		o.DayEndHour = d.DayEndHour
	}
	if o.VisitBufferHours <= 0 {
		o.VisitBufferHours = d.VisitBufferHours
	}
	if o.LongTransportHours <= 0 {
		o.LongTransportHours = d.LongTransportHours
	}
	if o.MaxDailyWalkKm <= 0 {
		o.MaxDailyWalkKm = d.MaxDailyWalkKm
	}
	if o.MaxDayVisits <= 0 {
		o.MaxDayVisits = d.MaxDayVisits
	}
	if o.LunchStartHour <= 0 {
		o.LunchStartHour = d.LunchStartHour
	}
	if o.LunchHours <= 0 {
		o.LunchHours = d.LunchHours
	}
	if o.DinnerHours <= 0 {
		o.DinnerHours = d.DinnerHours
	}
	if o.DinnerAfterHour <= 0 {
		o.DinnerAfterHour = d.DinnerAfterHour
	}
	if o.MergeUtilization <= 0 {
		o.MergeUtilization = d.MergeUtilization
	}
	if o.LodgingSearchRadiusKm <= 0 {
		o.LodgingSearchRadiusKm = d.LodgingSearchRadiusKm
	}
	if o.LodgingBase == nil {
		o.LodgingBase = d.LodgingBase
	}
	if o.Hubs == nil {
		o.Hubs = d.Hubs
	}
	return o
}

// hours converts fractional hours to a duration.
func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// atHour returns the given date at a whole local hour.
func atHour(date time.Time, hour int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, date.Location())
}

// truncateDate strips the time-of-day component.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
