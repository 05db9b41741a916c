package cluster

import (
	"sort"

	"github.com/google/uuid"

	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/prefs"
)

// ClusterByRadius partitions dests into fixed-radius clusters seeded in
// input order (see the package documentation for the exact membership
// rule and its order dependence).
//
// Contracts:
//   - dests must be non-empty with in-range coordinates (validated at the
//     planner boundary).
//   - standardized may be empty; clusters then carry zero desirability
//     and the default stay time.
//
// Errors: ErrNoDestinations, ErrBadRadius, ErrPartitionViolation.
//
// Complexity: O(n²) time, O(n) extra space.
func ClusterByRadius(dests []geo.Location, standardized []prefs.Standardized, opts Options) ([]Cluster, error) {
	if len(dests) == 0 {
		return nil, ErrNoDestinations
	}
	if opts.RadiusKm <= 0 {
		return nil, ErrBadRadius
	}

	// Stage 1: seed-centered grouping over unclustered destinations.
	clustered := make([]bool, len(dests))
	var groups [][]geo.Location
	for i := range dests {
		if clustered[i] {
			continue
		}
		clustered[i] = true
		members := []geo.Location{dests[i]}
		for j := i + 1; j < len(dests); j++ {
			if clustered[j] {
				continue
			}
			// Direct neighbors of the seed only; no chaining via members.
			if geo.Haversine(dests[i], dests[j]) <= opts.RadiusKm {
				clustered[j] = true
				members = append(members, dests[j])
			}
		}
		groups = append(groups, members)
	}

	// Stage 2: aggregate preferences per group.
	byDest := make(map[string][]prefs.Standardized, len(standardized))
	for _, p := range standardized {
		byDest[p.DestinationID] = append(byDest[p.DestinationID], p)
	}

	out := make([]Cluster, 0, len(groups))
	for _, members := range groups {
		c, err := buildCluster(members, byDest)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	// Stage 3: partition post-condition before handing the result out.
	if err := validatePartition(dests, out); err != nil {
		return nil, err
	}

	// Stage 4: highest desirability first; member count breaks ties so the
	// order is stable for equal scores.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Desirability != out[j].Desirability {
			return out[i].Desirability > out[j].Desirability
		}
		return len(out[i].Destinations) > len(out[j].Destinations)
	})

	return out, nil
}

// buildCluster aggregates one member group into a Cluster value.
func buildCluster(members []geo.Location, byDest map[string][]prefs.Standardized) (Cluster, error) {
	center, err := geo.Centroid(members)
	if err != nil {
		return Cluster{}, err
	}

	var (
		scoreSum    float64
		scoreCount  int
		staySum     float64
		stayCount   int
		perTraveler = make(map[string]float64)
	)
	for _, m := range members {
		for _, p := range byDest[m.ID] {
			scoreSum += p.Score
			scoreCount++
			perTraveler[p.TravelerKey] += p.Score
			if p.DurationHours > 0 {
				staySum += p.DurationHours
				stayCount++
			}
		}
	}

	desirability := 0.0
	if scoreCount > 0 {
		desirability = scoreSum / float64(scoreCount)
	}
	stay := DefaultStayHours
	if stayCount > 0 {
		stay = staySum / float64(stayCount)
	}

	return Cluster{
		ID:             uuid.NewString(),
		Destinations:   members,
		Center:         center,
		Desirability:   desirability,
		AvgStayHours:   stay,
		TravelerScores: perTraveler,
	}, nil
}

// validatePartition checks that clusters contain each input destination id
// exactly once — no loss, no duplication.
func validatePartition(dests []geo.Location, clusters []Cluster) error {
	seen := make(map[string]int, len(dests))
	total := 0
	for _, c := range clusters {
		for _, m := range c.Destinations {
			seen[m.ID]++
			total++
		}
	}
	if total != len(dests) {
		return ErrPartitionViolation
	}
	for _, d := range dests {
		if seen[d.ID] != 1 {
			return ErrPartitionViolation
		}
	}
	return nil
}

// DestinationCount returns the total number of destinations across clusters.
func DestinationCount(clusters []Cluster) int {
	n := 0
	for _, c := range clusters {
		n += len(c.Destinations)
	}
	return n
}

// TotalStayHours returns the flat stay-time estimate for one cluster:
// average stay per destination times member count (intra-cluster walking
// is added later by the intra-cluster ordering pass).
func (c Cluster) TotalStayHours() float64 {
	return c.AvgStayHours * float64(len(c.Destinations))
}
