package itinerary

import (
	"fmt"

	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/transport"
)

// Hub proximity pricing multipliers.
const (
	capitalRadiusKm  = 50.0
	touristRadiusKm  = 100.0
	standardRadiusKm = 200.0

	capitalMultiplier  = 1.8
	touristMultiplier  = 1.4
	standardMultiplier = 1.0
	ruralMultiplier    = 0.7
)

// attachLodging suggests a nightly search area for every day except the
// last. The anchor sits between today's visit centroid and tomorrow's
// first stop, weighted toward today, so the traveler sleeps near what
// they saw but wakes up closer to what comes next.
func attachLodging(days []Day, opts Options) {
	for i := 0; i < len(days)-1; i++ {
		d := &days[i]
		next := days[i+1]
		if len(d.Visits) == 0 || len(next.Visits) == 0 {
			continue
		}
		d.Lodging = suggestLodging(d.Visits, next.Visits[0].Destination, opts)
	}
}

// suggestLodging builds one lodging suggestion.
func suggestLodging(visits []Visit, nextFirst geo.Location, opts Options) *Lodging {
	locs := make([]geo.Location, len(visits))
	for i, v := range visits {
		locs[i] = v.Destination
	}
	center, err := geo.Centroid(locs)
	if err != nil {
		return nil
	}

	anchor := geo.NewSyntheticLocation("lodging search area",
		0.7*center.Lat+0.3*nextFirst.Lat,
		0.7*center.Lng+0.3*nextFirst.Lng)

	mult, reason := hubMultiplier(anchor, opts.Hubs)
	cost := make(map[Tier]CostBand, len(opts.LodgingBase))
	for tier, base := range opts.LodgingBase {
		nightly := base * mult
		cost[tier] = CostBand{Min: 0.8 * nightly, Max: 1.2 * nightly}
	}

	accessKm := geo.Haversine(anchor, nextFirst)
	_, accessHrs := transport.EstimateLeg(accessKm, opts.Transport)

	return &Lodging{
		Location:         anchor,
		SearchRadiusKm:   opts.LodgingSearchRadiusKm,
		Cost:             cost,
		NextDayAccessKm:  accessKm,
		NextDayAccessHours: accessHrs,
		Reason:           reason,
	}
}

// hubMultiplier grades the anchor by distance to the nearest known hub.
func hubMultiplier(anchor geo.Location, hubs []Hub) (float64, string) {
	nearestKm := -1.0
	nearestName := ""
	for _, h := range hubs {
		km := geo.Haversine(anchor, h.Location)
		if nearestKm < 0 || km < nearestKm {
			nearestKm, nearestName = km, h.Name
		}
	}
	switch {
	case nearestKm < 0:
		return standardMultiplier, "standard pricing, no hub data"
	case nearestKm < capitalRadiusKm:
		return capitalMultiplier, fmt.Sprintf("capital city pricing near %s", nearestName)
	case nearestKm < touristRadiusKm:
		return touristMultiplier, fmt.Sprintf("tourist area pricing near %s", nearestName)
	case nearestKm <= standardRadiusKm:
		return standardMultiplier, fmt.Sprintf("standard pricing, %.0fkm from %s", nearestKm, nearestName)
	default:
		return ruralMultiplier, fmt.Sprintf("rural pricing, %.0fkm from %s", nearestKm, nearestName)
	}
}
