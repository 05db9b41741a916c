package route

import (
	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/geo"
)

// PathDistance returns the total great-circle length of the open path
// departure → order… → ret, including both virtual end edges.
//
// Complexity: O(n) lookups.
func PathDistance(order []cluster.Cluster, departure, ret geo.Location, cache *geo.DistanceCache) float64 {
	if len(order) == 0 {
		return 0
	}
	total := cache.Distance(departure, order[0].Center)
	for i := 0; i+1 < len(order); i++ {
		total += cache.Distance(order[i].Center, order[i+1].Center)
	}
	total += cache.Distance(order[len(order)-1].Center, ret)
	return total
}

// TwoOpt runs first-improvement 2-opt on the open path through order.
//
// The path is departure → order[0..n−1] → ret with both endpoints fixed.
// Reversing the segment [i..k] replaces the boundary edges
// (p[i−1], p[i]) and (p[k], p[k+1]) — where p[−1] is the departure and
// p[n] the return — with (p[i−1], p[k]) and (p[i], p[k+1]). A move is
// accepted only when it strictly (beyond eps) shortens those two edges;
// the scan restarts after every accepted move and stops when a full scan
// finds no improvement.
//
// The returned order is a fresh slice; the input is never mutated. The
// total path distance is monotonically non-increasing by construction.
//
// Complexity: O(iter·n²) distance lookups (cached), O(n) space.
func TwoOpt(order []cluster.Cluster, departure, ret geo.Location, cache *geo.DistanceCache, eps float64, maxIters int) []cluster.Cluster {
	n := len(order)
	if n < 2 {
		return order
	}
	if eps < 0 {
		eps = 0
	}

	cur := make([]cluster.Cluster, n)
	copy(cur, order)

	// point returns the stop at path position i, with the virtual
	// endpoints at −1 and n.
	point := func(i int) geo.Location {
		switch {
		case i < 0:
			return departure
		case i >= n:
			return ret
		default:
			return cur[i].Center
		}
	}

	accepted := 0
	for {
		improved := false
		for i := 0; i < n-1 && !improved; i++ {
			for k := i + 1; k < n; k++ {
				oldEdges := cache.Distance(point(i-1), point(i)) +
					cache.Distance(point(k), point(k+1))
				newEdges := cache.Distance(point(i-1), point(k)) +
					cache.Distance(point(i), point(k+1))

				if newEdges-oldEdges < -eps {
					// Reverse [i..k] in place.
					for l, r := i, k; l < r; l, r = l+1, r-1 {
						cur[l], cur[r] = cur[r], cur[l]
					}
					accepted++
					improved = true
					if maxIters > 0 && accepted >= maxIters {
						return cur
					}
					// First-improvement: restart the scan.
					break
				}
			}
		}
		if !improved {
			return cur
		}
	}
}
