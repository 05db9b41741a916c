// Package trip_test covers budget derivation in both modes and the
// lowest-desirability-first trimming rule.
package trip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/trip"
)

// clusterWith builds a cluster with n destinations, a fixed stay, and a
// desirability score.
func clusterWith(id string, n int, stay, desirability float64) cluster.Cluster {
	c := cluster.Cluster{ID: id, AvgStayHours: stay, Desirability: desirability}
	for i := 0; i < n; i++ {
		c.Destinations = append(c.Destinations, geo.Location{ID: id + "-d", Name: id})
	}
	return c
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudget_FixedInclusiveDays(t *testing.T) {
	tc := trip.TimeConstraints{Start: date(2026, 6, 1), End: date(2026, 6, 2)}
	b, err := trip.Budget(tc, nil)
	require.NoError(t, err)

	assert.True(t, b.Fixed)
	assert.Equal(t, 2, b.Days)
	assert.InDelta(t, 18.0, b.Hours, 1e-9) // 2 days × default 9h
}

func TestBudget_FixedSingleDay(t *testing.T) {
	d := date(2026, 6, 1)
	b, err := trip.Budget(trip.TimeConstraints{Start: d, End: d, DailyHours: 8}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Days)
	assert.InDelta(t, 8.0, b.Hours, 1e-9)
}

func TestBudget_EndBeforeStart(t *testing.T) {
	tc := trip.TimeConstraints{Start: date(2026, 6, 2), End: date(2026, 6, 1)}
	_, err := trip.Budget(tc, nil)
	assert.ErrorIs(t, err, trip.ErrEndBeforeStart)
}

func TestBudget_AutoMode(t *testing.T) {
	clusters := []cluster.Cluster{
		clusterWith("a", 3, 2, 1.0), // 6h stay
		clusterWith("b", 2, 2, 0.5), // 4h stay
	}
	// 6 + 4 + one 2h hop = 12h → 2 days at 9h/day.
	b, err := trip.Budget(trip.TimeConstraints{Start: date(2026, 6, 1)}, clusters)
	require.NoError(t, err)

	assert.False(t, b.Fixed)
	assert.InDelta(t, 12.0, b.Hours, 1e-9)
	assert.Equal(t, 2, b.Days)
}

func TestBudget_AutoCalculateFlagWins(t *testing.T) {
	tc := trip.TimeConstraints{
		Start:         date(2026, 6, 1),
		End:           date(2026, 6, 10),
		AutoCalculate: true,
	}
	b, err := trip.Budget(tc, nil)
	require.NoError(t, err)
	assert.False(t, b.Fixed)
}

func TestEstimateHours(t *testing.T) {
	assert.Equal(t, 0.0, trip.EstimateHours(nil))

	one := []cluster.Cluster{clusterWith("a", 2, 3, 0)}
	assert.InDelta(t, 6.0, trip.EstimateHours(one), 1e-9)

	two := append(one, clusterWith("b", 1, 2, 0))
	assert.InDelta(t, 10.0, trip.EstimateHours(two), 1e-9) // 6 + 2 + 2h hop
}

func TestRequiredDays_MinimumOne(t *testing.T) {
	assert.Equal(t, 1, trip.RequiredDays(nil, 9))
}

func TestFitToBudget_TrimsLowestDesirabilityFirst(t *testing.T) {
	seq := []cluster.Cluster{
		clusterWith("best", 2, 3, 2.0),   // 6h
		clusterWith("worst", 2, 3, -1.0), // 6h
		clusterWith("mid", 2, 3, 0.5),    // 6h
	}
	// Flat estimate: 18h stay + 4h hops = 22h; a 16h budget forces one trim
	// (dropping "worst" leaves 12 + 2 = 14h ≤ 16h).
	budget := trip.HourBudget{Hours: 16, Fixed: true}

	kept, trimmed, warnings := trip.FitToBudget(seq, budget)
	require.Len(t, trimmed, 1)
	assert.Equal(t, "worst", trimmed[0].ID)

	require.Len(t, kept, 2)
	assert.Equal(t, "best", kept[0].ID)
	assert.Equal(t, "mid", kept[1].ID, "kept clusters preserve order")

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "worst")
}

func TestFitToBudget_AutoBudgetNeverTrims(t *testing.T) {
	seq := []cluster.Cluster{clusterWith("a", 5, 4, 0)} // 20h
	kept, trimmed, warnings := trip.FitToBudget(seq, trip.HourBudget{Hours: 1, Fixed: false})
	assert.Len(t, kept, 1)
	assert.Empty(t, trimmed)
	assert.Empty(t, warnings)
}

func TestFitToBudget_AlreadyFitting(t *testing.T) {
	seq := []cluster.Cluster{clusterWith("a", 1, 2, 0)}
	kept, trimmed, warnings := trip.FitToBudget(seq, trip.HourBudget{Hours: 9, Fixed: true})
	assert.Len(t, kept, 1)
	assert.Empty(t, trimmed)
	assert.Empty(t, warnings)
}
