package route

import (
	"fmt"
	"sort"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/fairness"
	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/prefs"
	"github.com/roamplan/roamplan/transport"
	"github.com/roamplan/roamplan/trip"
)

// candidate pairs an ordering with the strategy that produced it and the
// trimming issues collected before materialization.
type candidate struct {
	strategy Strategy
	order    []cluster.Cluster
	issues   []string
}

// Optimize searches for the best cluster ordering between departure and
// ret (nil ret means the trip returns to the departure point).
//
// The returned Solution is always usable: infeasibility and trimming are
// reported through Solution.Issues and the Feasible flag, never as a Go
// error. Errors are reserved for invalid configuration.
//
// Contracts:
//   - cache must be non-nil (construct one per run; see geo.DistanceCache).
//   - clusters must partition the planned destinations (guaranteed by
//     cluster.ClusterByRadius).
//
// Errors: ErrNilCache, ErrBadWeights, ErrBadRestarts.
func Optimize(
	clusters []cluster.Cluster,
	standardized []prefs.Standardized,
	departure geo.Location,
	ret *geo.Location,
	budget trip.HourBudget,
	cache *geo.DistanceCache,
	opts Options,
) (Solution, error) {
	if cache == nil {
		return Solution{}, ErrNilCache
	}
	if err := opts.validate(); err != nil {
		return Solution{}, err
	}

	returnPoint := departure
	if ret != nil {
		returnPoint = *ret
	}

	// Trivial shapes skip the search entirely.
	if len(clusters) == 0 {
		return Solution{
			Fairness:     1,
			Quantity:     0,
			Composite:    opts.FairnessWeight * 1,
			Satisfaction: fairness.Satisfaction(nil, standardized),
			Feasible:     true,
		}, nil
	}
	if len(clusters) == 1 {
		kept, _, warnings := trip.FitToBudget(clusters, budget)
		return materialize(candidate{
			strategy: StrategyNearestNeighbor,
			order:    kept,
			issues:   asWarnings(warnings),
		}, standardized, departure, returnPoint, budget, cache, opts), nil
	}

	// Stage 1: candidate generation across all strategies.
	rng := rngFor(opts.Seed)
	var cands []candidate
	for _, order := range greedyDesirabilityOrderings(clusters, cache) {
		cands = append(cands, candidate{strategy: StrategyGreedyDesirability, order: order})
	}
	cands = append(cands,
		candidate{strategy: StrategyQuantityMax, order: quantityMaxOrdering(clusters, cache)},
		candidate{strategy: StrategyNearestNeighbor, order: nearestNeighborOrdering(clusters, departure, cache)},
	)
	for i := 0; i < opts.RandomRestarts; i++ {
		cands = append(cands, candidate{strategy: StrategyRandom, order: shuffledOrdering(clusters, rng)})
	}

	// Stage 2: trim to budget, materialize, score.
	solutions := make([]Solution, 0, len(cands))
	for _, c := range cands {
		kept, _, warnings := trip.FitToBudget(c.order, budget)
		c.order = kept
		c.issues = append(c.issues, asWarnings(warnings)...)
		solutions = append(solutions, materialize(c, standardized, departure, returnPoint, budget, cache, opts))
	}

	// Stage 3: early termination on an already-fair feasible candidate.
	best := pick(solutions)
	if best.Feasible && best.Fairness >= opts.FairnessEarlyStop {
		return best, nil
	}

	// Stage 4: 2-opt refinement of the top candidates. Prefer feasible
	// ones; when none are feasible, refine everything and hope the shorter
	// paths pull a candidate under the budget.
	refinePool := feasibleOf(solutions)
	if len(refinePool) == 0 {
		refinePool = solutions
	}
	sort.SliceStable(refinePool, func(i, j int) bool {
		return refinePool[i].Composite > refinePool[j].Composite
	})
	topK := opts.TopRefine
	if topK <= 0 || topK > len(refinePool) {
		topK = len(refinePool)
	}
	for _, s := range refinePool[:topK] {
		improved := TwoOpt(s.Clusters, departure, returnPoint, cache, opts.Eps, opts.MaxTwoOptIters)
		solutions = append(solutions, materialize(candidate{
			strategy: s.Strategy,
			order:    improved,
			issues:   s.Issues,
		}, standardized, departure, returnPoint, budget, cache, opts))
	}

	// Stage 5: final selection over generated and refined candidates.
	return pick(solutions), nil
}

// materialize expands an ordering into a fully scored Solution with
// concrete transport legs.
//
// Cluster time is computed through the intra-cluster ordering pass (entry
// point = previous stop), so the totals include destination-level walking.
func materialize(
	c candidate,
	standardized []prefs.Standardized,
	departure, returnPoint geo.Location,
	budget trip.HourBudget,
	cache *geo.DistanceCache,
	opts Options,
) Solution {
	order := c.order
	sol := Solution{
		Clusters: order,
		Strategy: c.strategy,
		Issues:   append([]string(nil), c.issues...),
	}

	if len(order) == 0 {
		sol.Fairness = fairness.Score(fairness.Satisfaction(nil, standardized))
		sol.Satisfaction = fairness.Satisfaction(nil, standardized)
		sol.Composite = opts.FairnessWeight * sol.Fairness
		sol.Feasible = true
		return sol
	}

	// Legs: departure → first, between clusters, last → return.
	prev := departure
	for i := range order {
		seg := buildSegment(prevCluster(order, i), &order[i], prev, order[i].Center, cache, opts.Transport)
		sol.Segments = append(sol.Segments, seg)
		sol.TotalDistanceKm += seg.DistanceKm
		sol.TotalHours += seg.Hours

		_, clusterHours := OrderWithin(order[i], prev, cache, opts.Transport)
		sol.TotalHours += clusterHours
		prev = order[i].Center
	}
	back := buildSegment(&order[len(order)-1], nil, prev, returnPoint, cache, opts.Transport)
	sol.Segments = append(sol.Segments, back)
	sol.TotalDistanceKm += back.DistanceKm
	sol.TotalHours += back.Hours

	// Scores.
	sol.Satisfaction = fairness.Satisfaction(order, standardized)
	sol.Fairness = fairness.Score(sol.Satisfaction)
	sol.Quantity = quantityScore(order, standardized)
	sol.Composite = opts.FairnessWeight*sol.Fairness + opts.QuantityWeight*sol.Quantity

	// Feasibility: binding budgets must hold the computed total.
	sol.Feasible = true
	if budget.Fixed && sol.TotalHours > budget.Hours {
		sol.Feasible = false
		sol.Issues = append(sol.Issues, fmt.Sprintf(
			"error: total time %.1fh exceeds %.1fh budget", sol.TotalHours, budget.Hours))
	}
	return sol
}

// prevCluster returns the cluster preceding position i, nil for the first.
func prevCluster(order []cluster.Cluster, i int) *cluster.Cluster {
	if i == 0 {
		return nil
	}
	return &order[i-1]
}

// buildSegment assembles one leg with mode and time from the cached
// distance, applying the flight-downgrade post-pass.
func buildSegment(from, to *cluster.Cluster, a, b geo.Location, cache *geo.DistanceCache, topts transport.Options) Segment {
	d := cache.Distance(a, b)
	mode, hours := transport.EstimateLeg(d, topts)
	return Segment{From: from, To: to, DistanceKm: d, Mode: mode, Hours: hours}
}

// quantityScore is (clusters included) / (distinct rated destinations),
// floored at 1 rated destination and clamped to [0,1].
func quantityScore(order []cluster.Cluster, standardized []prefs.Standardized) float64 {
	denom := prefs.DistinctDestinations(standardized)
	if denom < 1 {
		denom = 1
	}
	q := float64(len(order)) / float64(denom)
	if q > 1 {
		q = 1
	}
	return q
}

// asWarnings prefixes trim messages for the Issues list.
func asWarnings(msgs []string) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, "warning: "+m)
	}
	return out
}

// feasibleOf filters the feasible solutions (fresh slice).
func feasibleOf(sols []Solution) []Solution {
	var out []Solution
	for _, s := range sols {
		if s.Feasible {
			out = append(out, s)
		}
	}
	return out
}

// pick selects the highest-composite feasible solution, falling back to
// the highest-composite overall when nothing is feasible. Ties keep the
// earlier candidate (stable across runs with fixed seeds).
func pick(sols []Solution) Solution {
	bestAny, bestFeasible := -1, -1
	for i, s := range sols {
		if bestAny < 0 || s.Composite > sols[bestAny].Composite {
			bestAny = i
		}
		if s.Feasible && (bestFeasible < 0 || s.Composite > sols[bestFeasible].Composite) {
			bestFeasible = i
		}
	}
	if bestFeasible >= 0 {
		return sols[bestFeasible]
	}
	return sols[bestAny]
}

// greedyDesirabilityOrderings seeds an ordering at each of the top-3 most
// desirable clusters and nearest-neighbor-appends the rest.
func greedyDesirabilityOrderings(clusters []cluster.Cluster, cache *geo.DistanceCache) [][]cluster.Cluster {
	byDesirability := make([]cluster.Cluster, len(clusters))
	copy(byDesirability, clusters)
	sort.SliceStable(byDesirability, func(i, j int) bool {
		return byDesirability[i].Desirability > byDesirability[j].Desirability
	})

	seeds := 3
	if seeds > len(byDesirability) {
		seeds = len(byDesirability)
	}
	out := make([][]cluster.Cluster, 0, seeds)
	for s := 0; s < seeds; s++ {
		seed := byDesirability[s]
		rest := withoutID(clusters, seed.ID)
		order := append([]cluster.Cluster{seed}, nnAppend(seed.Center, rest, cache)...)
		out = append(out, order)
	}
	return out
}

// quantityMaxOrdering starts from the shortest-average-stay cluster and
// nearest-neighbor-appends the rest, biasing toward many short stops.
func quantityMaxOrdering(clusters []cluster.Cluster, cache *geo.DistanceCache) []cluster.Cluster {
	byStay := make([]cluster.Cluster, len(clusters))
	copy(byStay, clusters)
	sort.SliceStable(byStay, func(i, j int) bool {
		return byStay[i].AvgStayHours < byStay[j].AvgStayHours
	})

	seed := byStay[0]
	rest := withoutID(clusters, seed.ID)
	return append([]cluster.Cluster{seed}, nnAppend(seed.Center, rest, cache)...)
}

// nearestNeighborOrdering is classic greedy nearest-unvisited-next from
// the departure point.
func nearestNeighborOrdering(clusters []cluster.Cluster, departure geo.Location, cache *geo.DistanceCache) []cluster.Cluster {
	return nnAppend(departure, clusters, cache)
}

// nnAppend orders clusters by repeated nearest-neighbor selection from
// start. Exact distance ties break on the smaller cluster ID so the
// deterministic strategies stay deterministic.
//
// Complexity: O(n²) cached lookups.
func nnAppend(start geo.Location, clusters []cluster.Cluster, cache *geo.DistanceCache) []cluster.Cluster {
	remaining := make([]cluster.Cluster, len(clusters))
	copy(remaining, clusters)

	out := make([]cluster.Cluster, 0, len(clusters))
	current := start
	for len(remaining) > 0 {
		best := 0
		bestDist := cache.Distance(current, remaining[0].Center)
		for i := 1; i < len(remaining); i++ {
			d := cache.Distance(current, remaining[i].Center)
			if d < bestDist || (d == bestDist && remaining[i].ID < remaining[best].ID) {
				best, bestDist = i, d
			}
		}
		out = append(out, remaining[best])
		current = remaining[best].Center
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}

// withoutID returns clusters minus the one with the given ID, preserving
// order.
func withoutID(clusters []cluster.Cluster, id string) []cluster.Cluster {
	out := make([]cluster.Cluster, 0, len(clusters)-1)
	for _, c := range clusters {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
