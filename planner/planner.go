package planner

import (
	"fmt"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/itinerary"
	"github.com/roamplan/roamplan/prefs"
	"github.com/roamplan/roamplan/route"
	"github.com/roamplan/roamplan/trip"
)

// Plan runs the whole pipeline: validation, preference normalization,
// geographic clustering, budget derivation, route optimization, and
// day-by-day expansion.
//
// A fresh distance cache is created per call; concurrent Plan calls share
// nothing and are safe.
//
// Errors: *InvalidInputError when the input fails validation, otherwise
// the first stage error encountered. Infeasibility is NOT an error: the
// best-effort Result is returned with its issues attached.
func Plan(in Input, opts Options) (Result, error) {
	if errs := Validate(in); len(errs) > 0 {
		return Result{}, &InvalidInputError{Errors: errs}
	}
	cache := geo.NewDistanceCache()

	norm, err := prefs.Normalize(in.Ratings)
	if err != nil {
		return Result{}, err
	}

	clusters, err := cluster.ClusterByRadius(in.Destinations, norm.Prefs, opts.Cluster)
	if err != nil {
		return Result{}, err
	}

	budget, err := trip.Budget(in.Time, clusters)
	if err != nil {
		return Result{}, err
	}

	sol, err := route.Optimize(clusters, norm.Prefs, in.Departure, in.Return, budget, cache, opts.Route)
	if err != nil {
		return Result{}, err
	}

	plan, err := itinerary.Split(sol, in.Departure, in.Time, cache, opts.Itinerary)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Clusters:  clusters,
		Budget:    budget,
		Solution:  sol,
		Itinerary: plan,
	}
	result.Warnings = append(result.Warnings, norm.Warnings...)
	result.Warnings = append(result.Warnings, sol.Issues...)
	result.Warnings = append(result.Warnings, plan.Warnings...)
	return result, nil
}

// Validate checks the input for fatal problems and returns them all.
// An empty slice means the input is plannable.
func Validate(in Input) []ValidationError {
	var errs []ValidationError
	fail := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if err := geo.ValidateCoordinates(in.Departure); err != nil {
		fail("departure", "%v", err)
	}
	if in.Return != nil {
		if err := geo.ValidateCoordinates(*in.Return); err != nil {
			fail("return", "%v", err)
		}
	}

	if len(in.Destinations) == 0 {
		fail("destinations", "at least one destination is required")
	}
	known := make(map[string]bool, len(in.Destinations))
	for i, d := range in.Destinations {
		field := fmt.Sprintf("destinations[%d]", i)
		if d.ID == "" {
			fail(field, "destination id is required")
			continue
		}
		if known[d.ID] {
			fail(field, "duplicate destination id %q", d.ID)
		}
		known[d.ID] = true
		if err := geo.ValidateCoordinates(d); err != nil {
			fail(field, "%v", err)
		}
	}

	for i, r := range in.Ratings {
		field := fmt.Sprintf("ratings[%d]", i)
		if r.TravelerKey == "" {
			fail(field, "traveler key is required")
		}
		if r.DestinationID == "" {
			fail(field, "destination id is required")
		} else if !known[r.DestinationID] {
			fail(field, "rating references unknown destination %q", r.DestinationID)
		}
		if r.Score < 1 || r.Score > 5 {
			fail(field, "score %d outside the 1-5 scale", r.Score)
		}
	}

	if in.Time.Start.IsZero() {
		fail("time.start", "trip start date is required")
	}
	if in.Time.DailyHours < 0 {
		fail("time.dailyHours", "daily hours must not be negative")
	}
	if !in.Time.Auto() && in.Time.End.Before(in.Time.Start) {
		fail("time.end", "end date precedes start date")
	}
	return errs
}
