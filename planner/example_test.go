package planner_test

import (
	"fmt"
	"time"

	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/planner"
	"github.com/roamplan/roamplan/prefs"
	"github.com/roamplan/roamplan/trip"
)

// ExamplePlan plans a one day city trip for two travelers.
func ExamplePlan() {
	in := planner.Input{
		Departure: geo.Location{ID: "hotel", Name: "Hotel", Lat: 48.8566, Lng: 2.3522},
		Destinations: []geo.Location{
			{ID: "louvre", Name: "Louvre", Lat: 48.8606, Lng: 2.3376},
			{ID: "notre-dame", Name: "Notre-Dame", Lat: 48.8530, Lng: 2.3499},
		},
		Ratings: []prefs.Rating{
			{TravelerKey: "maya", DestinationID: "louvre", Score: 5},
			{TravelerKey: "maya", DestinationID: "notre-dame", Score: 3},
			{TravelerKey: "ben", DestinationID: "louvre", Score: 3},
			{TravelerKey: "ben", DestinationID: "notre-dame", Score: 5},
		},
		Time: trip.TimeConstraints{
			Start:         time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			AutoCalculate: true,
		},
	}

	opts := planner.DefaultOptions()
	opts.Route.Seed = 1 // reproducible search

	res, err := planner.Plan(in, opts)
	if err != nil {
		fmt.Println("plan:", err)
		return
	}

	fmt.Printf("feasible: %v\n", res.Solution.Feasible)
	fmt.Printf("days: %d\n", len(res.Itinerary.Days))
	for _, v := range res.Itinerary.Days[0].Visits {
		fmt.Println(v.Destination.Name)
	}
	// Output:
	// feasible: true
	// days: 1
	// Notre-Dame
	// Louvre
}
