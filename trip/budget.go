package trip

import (
	"fmt"
	"math"
	"time"

	"github.com/roamplan/roamplan/cluster"
)

// Budget derives the hour budget for tc over the candidate clusters.
//
// Fixed mode: inclusive-day-count × daily hours, binding.
// Auto mode: the flat estimate of the clusters themselves, advisory.
//
// Errors: ErrEndBeforeStart, ErrBadDailyHours.
func Budget(tc TimeConstraints, clusters []cluster.Cluster) (HourBudget, error) {
	if tc.DailyHours < 0 {
		return HourBudget{}, ErrBadDailyHours
	}
	daily := tc.EffectiveDailyHours()

	if tc.Auto() {
		hours := EstimateHours(clusters)
		return HourBudget{
			Hours: hours,
			Days:  RequiredDays(clusters, daily),
			Fixed: false,
		}, nil
	}

	if tc.End.Before(tc.Start) {
		return HourBudget{}, ErrEndBeforeStart
	}
	days := inclusiveDays(tc.Start, tc.End)
	return HourBudget{
		Hours: float64(days) * daily,
		Days:  days,
		Fixed: true,
	}, nil
}

// inclusiveDays counts calendar days from start through end, inclusive.
// Both endpoints are truncated to their calendar date first, so partial-day
// timestamps do not shift the count.
func inclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(e.Sub(s).Hours()/24) + 1
}

// EstimateHours returns the flat time estimate for visiting seq in order:
// per-cluster stay time plus FlatHopHours per inter-cluster hop.
//
// Complexity: O(n).
func EstimateHours(seq []cluster.Cluster) float64 {
	var total float64
	for _, c := range seq {
		total += c.TotalStayHours()
	}
	if len(seq) > 1 {
		total += FlatHopHours * float64(len(seq)-1)
	}
	return total
}

// RequiredDays estimates how many daily-hour blocks seq needs, minimum 1.
func RequiredDays(seq []cluster.Cluster, dailyHours float64) int {
	if dailyHours <= 0 {
		dailyHours = DefaultDailyHours
	}
	days := int(math.Ceil(EstimateHours(seq) / dailyHours))
	if days < 1 {
		days = 1
	}
	return days
}

// FitToBudget trims seq until its flat estimate fits budget.Hours,
// removing the lowest-desirability cluster first. Only binding (fixed)
// budgets trim; auto budgets return seq unchanged.
//
// Every removal is reported in warnings — clusters are never dropped
// silently. The relative order of the kept clusters is preserved.
//
// Complexity: O(k·n) for k removals.
func FitToBudget(seq []cluster.Cluster, budget HourBudget) (kept, trimmed []cluster.Cluster, warnings []string) {
	kept = append(kept, seq...)
	if !budget.Fixed {
		return kept, nil, nil
	}

	for len(kept) > 0 && EstimateHours(kept) > budget.Hours {
		worst := 0
		for i := 1; i < len(kept); i++ {
			if kept[i].Desirability < kept[worst].Desirability {
				worst = i
			}
		}
		c := kept[worst]
		trimmed = append(trimmed, c)
		warnings = append(warnings, fmt.Sprintf(
			"trimmed cluster %s (%d destinations, %.1fh) to fit %.1fh budget",
			c.ID, len(c.Destinations), c.TotalStayHours(), budget.Hours))
		kept = append(kept[:worst], kept[worst+1:]...)
	}
	return kept, trimmed, warnings
}
