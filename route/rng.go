package route

import (
	"math/rand"
	"time"

	"github.com/roamplan/roamplan/cluster"
)

// rngFor returns the RNG for one optimization run.
//
// Policy: a non-zero seed yields a reproducible stream (inject one under
// test); seed==0 draws from the wall clock, the non-deterministic
// production default for random exploration.
func rngFor(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffledOrdering returns a fresh uniformly shuffled copy of clusters
// (Fisher–Yates; the input is never mutated).
//
// Complexity: O(n) time, O(n) space.
func shuffledOrdering(clusters []cluster.Cluster, rng *rand.Rand) []cluster.Cluster {
	out := make([]cluster.Cluster, len(clusters))
	copy(out, clusters)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
