// Package cluster_test exercises the fixed-radius grouping rule, the
// partition post-condition, and preference aggregation.
package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/prefs"
)

func loc(id string, lat, lng float64) geo.Location {
	return geo.Location{ID: id, Name: id, Lat: lat, Lng: lng}
}

// Two groups ~80 km apart; within each group the points are a few km apart.
// One degree of latitude ≈ 111 km, so 0.72° ≈ 80 km.
func twoGroups() []geo.Location {
	return []geo.Location{
		loc("a1", 48.85, 2.35),
		loc("a2", 48.87, 2.30),
		loc("a3", 48.83, 2.40),
		loc("b1", 49.57, 2.35),
		loc("b2", 49.59, 2.33),
	}
}

func TestClusterByRadius_TwoGeographicGroups(t *testing.T) {
	clusters, err := cluster.ClusterByRadius(twoGroups(), nil, cluster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, clusters, 2, "80 km separation with 50 km radius must yield two clusters")

	sizes := []int{len(clusters[0].Destinations), len(clusters[1].Destinations)}
	assert.ElementsMatch(t, []int{3, 2}, sizes)
}

func TestClusterByRadius_PartitionInvariant(t *testing.T) {
	dests := twoGroups()
	clusters, err := cluster.ClusterByRadius(dests, nil, cluster.DefaultOptions())
	require.NoError(t, err)

	seen := map[string]int{}
	for _, c := range clusters {
		for _, m := range c.Destinations {
			seen[m.ID]++
		}
	}
	require.Len(t, seen, len(dests))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "destination %s must appear exactly once", id)
	}
	assert.Equal(t, len(dests), cluster.DestinationCount(clusters))
}

func TestClusterByRadius_MembersWithinRadiusOfSeed(t *testing.T) {
	dests := twoGroups()
	opts := cluster.DefaultOptions()
	clusters, err := cluster.ClusterByRadius(dests, nil, opts)
	require.NoError(t, err)

	for _, c := range clusters {
		seed := c.Destinations[0]
		for _, m := range c.Destinations[1:] {
			assert.LessOrEqual(t, geo.Haversine(seed, m), opts.RadiusKm)
		}
	}
}

func TestClusterByRadius_NoTransitiveChaining(t *testing.T) {
	// Chain: a—b within 50 km, b—c within 50 km, a—c beyond it. The seed
	// rule groups a+b; c is out of the seed's reach and forms its own
	// cluster even though it neighbors b.
	dests := []geo.Location{
		loc("a", 0, 0),
		loc("b", 0.40, 0), // ~44 km from a
		loc("c", 0.80, 0), // ~44 km from b, ~89 km from a
	}
	clusters, err := cluster.ClusterByRadius(dests, nil, cluster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, clusters, 2)
}

func TestClusterByRadius_SingleDestination(t *testing.T) {
	only := loc("solo", 35.0, 135.0)
	res, err := prefs.Normalize([]prefs.Rating{
		{TravelerKey: "t1", DestinationID: "solo", Score: 5},
	})
	require.NoError(t, err)

	clusters, err := cluster.ClusterByRadius([]geo.Location{only}, res.Prefs, cluster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	c := clusters[0]
	assert.Len(t, c.Destinations, 1)
	assert.Equal(t, "solo", c.Destinations[0].ID)
	assert.InDelta(t, 35.0, c.Center.Lat, 1e-6)
	// Single 5-rating is degenerate: neutral score, zero desirability.
	assert.Equal(t, 0.0, c.Desirability)
	assert.Equal(t, cluster.DefaultStayHours, c.AvgStayHours)
}

func TestClusterByRadius_AggregatesPreferences(t *testing.T) {
	res, err := prefs.Normalize([]prefs.Rating{
		{TravelerKey: "t1", DestinationID: "a1", Score: 5, DurationHours: 3},
		{TravelerKey: "t1", DestinationID: "a2", Score: 1, DurationHours: 1},
		{TravelerKey: "t2", DestinationID: "a1", Score: 4},
		{TravelerKey: "t2", DestinationID: "b1", Score: 2},
	})
	require.NoError(t, err)

	clusters, err := cluster.ClusterByRadius(twoGroups(), res.Prefs, cluster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, clusters, 2)

	// The a-group holds t1's extreme scores and t2's high score; it must
	// rank above the b-group, which holds only t2's low score.
	top := clusters[0]
	assert.Equal(t, "a1", top.Destinations[0].ID)
	assert.Greater(t, top.Desirability, clusters[1].Desirability)

	// Stay time averages only the durations actually given (3h and 1h).
	assert.InDelta(t, 2.0, top.AvgStayHours, 1e-9)
	// The b-group has no durations; default applies.
	assert.Equal(t, cluster.DefaultStayHours, clusters[1].AvgStayHours)

	// Per-traveler sums exist for both raters of the a-group.
	assert.Contains(t, top.TravelerScores, "t1")
	assert.Contains(t, top.TravelerScores, "t2")
}

func TestClusterByRadius_InputChecks(t *testing.T) {
	_, err := cluster.ClusterByRadius(nil, nil, cluster.DefaultOptions())
	assert.ErrorIs(t, err, cluster.ErrNoDestinations)

	_, err = cluster.ClusterByRadius(twoGroups(), nil, cluster.Options{RadiusKm: 0})
	assert.ErrorIs(t, err, cluster.ErrBadRadius)
}

func TestClusterByRadius_FreshClusterIdentity(t *testing.T) {
	c1, err := cluster.ClusterByRadius(twoGroups(), nil, cluster.DefaultOptions())
	require.NoError(t, err)
	c2, err := cluster.ClusterByRadius(twoGroups(), nil, cluster.DefaultOptions())
	require.NoError(t, err)
	assert.NotEqual(t, c1[0].ID, c2[0].ID)
}
