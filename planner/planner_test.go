package planner_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/planner"
	"github.com/roamplan/roamplan/prefs"
	"github.com/roamplan/roamplan/trip"
)

var start = time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

// seeded returns default options with a pinned route RNG so runs are
// reproducible.
func seeded() planner.Options {
	opts := planner.DefaultOptions()
	opts.Route.Seed = 1
	return opts
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	in := planner.Input{
		Departure: geo.Location{ID: "dep", Lat: 91, Lng: 0},
		Destinations: []geo.Location{
			{ID: "", Lat: 1, Lng: 1},
			{ID: "a", Lat: 1, Lng: 1},
			{ID: "a", Lat: 2, Lng: 2},
			{ID: "b", Lat: 0, Lng: 200},
		},
		Ratings: []prefs.Rating{
			{TravelerKey: "t", DestinationID: "zzz", Score: 3},
			{TravelerKey: "t", DestinationID: "a", Score: 7},
			{TravelerKey: "", DestinationID: "a", Score: 2},
		},
	}

	errs := planner.Validate(in)
	require.Len(t, errs, 8)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Contains(t, fields, "departure")
	assert.Contains(t, fields, "destinations[0]")
	assert.Contains(t, fields, "destinations[2]") // duplicate id
	assert.Contains(t, fields, "destinations[3]") // bad longitude
	assert.Contains(t, fields, "ratings[0]")      // orphaned rating
	assert.Contains(t, fields, "ratings[1]")      // score off scale
	assert.Contains(t, fields, "ratings[2]")      // missing traveler
	assert.Contains(t, fields, "time.start")
}

func TestValidate_AcceptsPlannableInput(t *testing.T) {
	in := planner.Input{
		Departure:    geo.Location{ID: "dep", Lat: 48.85, Lng: 2.35},
		Destinations: []geo.Location{{ID: "a", Lat: 48.86, Lng: 2.34}},
		Ratings:      []prefs.Rating{{TravelerKey: "t", DestinationID: "a", Score: 4}},
		Time:         trip.TimeConstraints{Start: start, AutoCalculate: true},
	}
	assert.Empty(t, planner.Validate(in))
}

func TestPlan_RejectsInvalidInput(t *testing.T) {
	_, err := planner.Plan(planner.Input{}, seeded())
	require.Error(t, err)

	var invalid *planner.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.NotEmpty(t, invalid.Errors)
	assert.Contains(t, invalid.Error(), "planner:")
}

// TestPlan_EndToEnd runs the full pipeline over two geographic groups
// roughly 130km apart: two Paris museums and two Reims landmarks.
func TestPlan_EndToEnd(t *testing.T) {
	in := planner.Input{
		Departure: geo.Location{ID: "dep", Name: "Paris hotel", Lat: 48.8566, Lng: 2.3522},
		Destinations: []geo.Location{
			{ID: "louvre", Name: "Louvre", Lat: 48.8606, Lng: 2.3376},
			{ID: "orsay", Name: "Orsay", Lat: 48.8599, Lng: 2.3266},
			{ID: "cathedral", Name: "Reims Cathedral", Lat: 49.2583, Lng: 4.0317},
			{ID: "tau", Name: "Palace of Tau", Lat: 49.2577, Lng: 4.0325},
		},
		Ratings: []prefs.Rating{
			{TravelerKey: "maya", DestinationID: "louvre", Score: 5},
			{TravelerKey: "maya", DestinationID: "orsay", Score: 4},
			{TravelerKey: "maya", DestinationID: "cathedral", Score: 3},
			{TravelerKey: "maya", DestinationID: "tau", Score: 2},
			{TravelerKey: "ben", DestinationID: "louvre", Score: 3},
			{TravelerKey: "ben", DestinationID: "orsay", Score: 4},
			{TravelerKey: "ben", DestinationID: "cathedral", Score: 5},
			{TravelerKey: "ben", DestinationID: "tau", Score: 4},
		},
		Time: trip.TimeConstraints{Start: start, AutoCalculate: true},
	}

	res, err := planner.Plan(in, seeded())
	require.NoError(t, err)

	assert.Len(t, res.Clusters, 2)
	assert.False(t, res.Budget.Fixed)
	assert.True(t, res.Solution.Feasible)

	// Every destination is visited exactly once across the trip.
	seen := map[string]int{}
	for _, day := range res.Itinerary.Days {
		for _, v := range day.Visits {
			seen[v.Destination.ID]++
		}
	}
	assert.Len(t, seen, 4)
	for id, n := range seen {
		assert.Equal(t, 1, n, "destination %s visited %d times", id, n)
	}
}

// TestPlan_FixedWindowTrims squeezes two long stays into a single 9h day.
// The less desired cluster must be trimmed, with the trim reported.
func TestPlan_FixedWindowTrims(t *testing.T) {
	in := planner.Input{
		Departure: geo.Location{ID: "dep", Lat: 48.8566, Lng: 2.3522},
		Destinations: []geo.Location{
			{ID: "loved", Lat: 48.8606, Lng: 2.3376},
			{ID: "meh", Lat: 50.6292, Lng: 3.0573}, // Lille, well outside the cluster radius
		},
		Ratings: []prefs.Rating{
			{TravelerKey: "t", DestinationID: "loved", Score: 5, DurationHours: 6},
			{TravelerKey: "t", DestinationID: "meh", Score: 3, DurationHours: 6},
		},
		Time: trip.TimeConstraints{Start: start, End: start},
	}

	res, err := planner.Plan(in, seeded())
	require.NoError(t, err)

	require.Len(t, res.Solution.Clusters, 1)
	assert.Equal(t, "loved", res.Solution.Clusters[0].Destinations[0].ID)
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "trimmed")
}

func TestPlan_PropagatesNormalizationWarnings(t *testing.T) {
	in := planner.Input{
		Departure:    geo.Location{ID: "dep", Lat: 48.85, Lng: 2.35},
		Destinations: []geo.Location{{ID: "a", Lat: 48.86, Lng: 2.34}},
		Ratings:      []prefs.Rating{{TravelerKey: "solo", DestinationID: "a", Score: 4}},
		Time:         trip.TimeConstraints{Start: start, AutoCalculate: true},
	}

	res, err := planner.Plan(in, seeded())
	require.NoError(t, err)
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "zero rating variance")
}
