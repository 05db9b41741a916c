package route

import (
	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/transport"
)

// OrderWithin orders the destinations inside one cluster by greedy
// nearest-neighbor from the member closest to the arrival point, and
// returns the ordered members together with the cluster's total time:
// stay-per-destination × count plus intra-cluster walking time.
//
// Keeping destination-level geometry here means the inter-cluster search
// never has to reason about it.
//
// Contracts:
//   - c must have at least one destination (clusters are never empty by
//     the clustering partition invariant).
//   - cache must be non-nil.
//
// Complexity: O(k²) distance lookups for k members.
func OrderWithin(c cluster.Cluster, entry geo.Location, cache *geo.DistanceCache, topts transport.Options) ([]geo.Location, float64) {
	members := c.Destinations
	if len(members) == 0 {
		return nil, 0
	}

	remaining := make([]geo.Location, len(members))
	copy(remaining, members)

	ordered := make([]geo.Location, 0, len(members))
	current := entry
	var walkKm float64

	for len(remaining) > 0 {
		best := 0
		bestDist := cache.Distance(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			d := cache.Distance(current, remaining[i])
			// Smaller ID breaks exact ties for deterministic output.
			if d < bestDist || (d == bestDist && remaining[i].ID < remaining[best].ID) {
				best, bestDist = i, d
			}
		}
		if len(ordered) > 0 {
			// Entry→first is the inter-cluster leg's job; only member-to-
			// member movement counts as intra-cluster walking.
			walkKm += bestDist
		}
		ordered = append(ordered, remaining[best])
		current = remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	o := topts
	if o.WalkingSpeedKmh <= 0 || o.WalkingBuffer <= 0 {
		o = transport.DefaultOptions()
	}
	walkHours := walkKm / o.WalkingSpeedKmh * o.WalkingBuffer
	total := c.TotalStayHours() + walkHours
	return ordered, total
}
