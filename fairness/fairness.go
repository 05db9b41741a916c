// Package fairness scores how evenly a candidate cluster selection
// satisfies the travelers.
//
// Per-traveler satisfaction is the ratio of standardized preference mass
// actually included to the traveler's total rated mass. Satisfaction
// ratios feed a Gini coefficient; the fairness score is 1 − Gini, so
// perfectly equal satisfaction yields 1.0 and maximal inequality 0.0.
//
// Division guards (never an error, never NaN):
//   - A traveler whose total rated mass is ~0 (nothing rated, or z-scores
//     cancelling out) contributes satisfaction 0.
//   - An all-zero satisfaction distribution is perfectly equal: Gini 0,
//     fairness 1.
//
// Complexity: O(p + t·log t) where p = preferences, t = travelers.
package fairness

import (
	"math"
	"sort"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/prefs"
)

// zeroMassEps is the tolerance below which a traveler's total rated mass
// counts as zero.
const zeroMassEps = 1e-9

// Satisfaction computes the per-traveler satisfaction ratios for the
// destinations covered by the given clusters.
//
// Ratios are clamped to [0, 1]: with signed z-scores, excluding a
// negatively rated destination can push the raw ratio past 1, and
// including only disliked ones below 0; neither extreme carries meaning
// for the equality measure downstream.
func Satisfaction(clusters []cluster.Cluster, standardized []prefs.Standardized) map[string]float64 {
	included := make(map[string]struct{})
	for _, c := range clusters {
		for _, d := range c.Destinations {
			included[d.ID] = struct{}{}
		}
	}

	total := make(map[string]float64)
	got := make(map[string]float64)
	for _, p := range standardized {
		total[p.TravelerKey] += p.Score
		if _, ok := included[p.DestinationID]; ok {
			got[p.TravelerKey] += p.Score
		}
	}

	out := make(map[string]float64, len(total))
	for key, sum := range total {
		if math.Abs(sum) < zeroMassEps {
			out[key] = 0
			continue
		}
		ratio := got[key] / sum
		out[key] = math.Max(0, math.Min(1, ratio))
	}
	return out
}

// Score converts a satisfaction distribution into a fairness score,
// 1 − Gini, clamped to [0, 1]. Empty input scores 1 (nothing to be unfair
// about).
func Score(satisfaction map[string]float64) float64 {
	if len(satisfaction) == 0 {
		return 1
	}

	values := make([]float64, 0, len(satisfaction))
	for _, v := range satisfaction {
		values = append(values, v)
	}
	sort.Float64s(values)

	n := float64(len(values))
	var sum, weighted float64
	for i, v := range values {
		sum += v
		weighted += (2*float64(i+1) - n - 1) * v
	}
	if sum < zeroMassEps {
		// All-zero distribution: equally (un)satisfied, hence fair.
		return 1
	}

	gini := weighted / (n * sum)
	fair := 1 - gini
	return math.Max(0, math.Min(1, fair))
}
