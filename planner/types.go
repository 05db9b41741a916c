package planner

import (
	"fmt"
	"strings"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/itinerary"
	"github.com/roamplan/roamplan/prefs"
	"github.com/roamplan/roamplan/route"
	"github.com/roamplan/roamplan/trip"
)

// Input is everything Plan needs: where the trip starts and ends, what to
// visit, who rated what, and the time frame.
type Input struct {
	Departure    geo.Location
	Return       *geo.Location // nil means round trip back to Departure
	Destinations []geo.Location
	Ratings      []prefs.Rating
	Time         trip.TimeConstraints
}

// ValidationError is one fatal input problem, addressed by field path.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements error.
func (e ValidationError) Error() string {
	return fmt.Sprintf("planner: %s: %s", e.Field, e.Message)
}

// InvalidInputError aggregates every validation failure so callers can
// report them all at once instead of fixing one per round-trip.
type InvalidInputError struct {
	Errors []ValidationError
}

// Error implements error.
func (e *InvalidInputError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, v := range e.Errors {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Options bundles the per-stage knobs. The zero value of each nested
// struct is replaced by that package's defaults.
type Options struct {
	Cluster   cluster.Options
	Route     route.Options
	Itinerary itinerary.Options
}

// DefaultOptions returns every stage's documented defaults.
func DefaultOptions() Options {
	return Options{
		Cluster:   cluster.DefaultOptions(),
		Route:     route.DefaultOptions(),
		Itinerary: itinerary.DefaultOptions(),
	}
}

// Result is the full pipeline output: the scored route, its multi-day
// expansion, and every advisory raised along the way.
type Result struct {
	Clusters  []cluster.Cluster
	Budget    trip.HourBudget
	Solution  route.Solution
	Itinerary itinerary.Plan
	Warnings  []string
}
