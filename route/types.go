package route

import (
	"errors"
	"fmt"

	"github.com/roamplan/roamplan/cluster"
	"github.com/roamplan/roamplan/transport"
)

// Sentinel errors returned by the route package.
var (
	// ErrNilCache indicates Optimize was called without a distance cache.
	ErrNilCache = errors.New("route: distance cache is nil")

	// ErrBadWeights indicates negative or all-zero composite weights.
	ErrBadWeights = errors.New("route: fairness/quantity weights must be non-negative and not both zero")

	// ErrBadRestarts indicates a negative random-restart count.
	ErrBadRestarts = errors.New("route: RandomRestarts must be non-negative")
)

// Strategy identifies a candidate-generation strategy. The set is closed;
// each member is a pure function from clusters to one or more orderings.
type Strategy int

const (
	StrategyGreedyDesirability Strategy = iota
	StrategyQuantityMax
	StrategyNearestNeighbor
	StrategyRandom
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyGreedyDesirability:
		return "greedy-desirability"
	case StrategyQuantityMax:
		return "quantity-max"
	case StrategyNearestNeighbor:
		return "nearest-neighbor"
	case StrategyRandom:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Segment is one travel hop. A nil From marks the departure leg, a nil To
// the return leg.
type Segment struct {
	From       *cluster.Cluster
	To         *cluster.Cluster
	DistanceKm float64
	Mode       transport.Mode
	Hours      float64
}

// Solution is a fully scored candidate route.
//
// Invariant: for a non-empty cluster sequence,
// len(Segments) == len(Clusters) + 1 (departure leg, inter-cluster legs,
// return leg).
type Solution struct {
	Clusters        []cluster.Cluster
	Segments        []Segment
	Strategy        Strategy
	TotalDistanceKm float64
	TotalHours      float64
	Fairness        float64 // 1 − Gini over traveler satisfaction, [0,1]
	Quantity        float64 // included clusters / rated destinations, [0,1]
	Composite       float64 // weighted blend of Fairness and Quantity
	Satisfaction    map[string]float64
	Feasible        bool
	Issues          []string // "warning: …" / "error: …" entries
}

// Options configures Optimize. DefaultOptions documents every default.
type Options struct {
	FairnessWeight    float64 // composite weight on fairness (default 0.6)
	QuantityWeight    float64 // composite weight on quantity (default 0.4)
	RandomRestarts    int     // shuffled orderings to try (default 15)
	TopRefine         int     // candidates taken into 2-opt (default 5)
	FairnessEarlyStop float64 // skip refinement at this fairness (default 0.95)
	Eps               float64 // strict-improvement tolerance for 2-opt (default 1e-9)
	MaxTwoOptIters    int     // accepted 2-opt moves cap; 0 = until local optimum
	Seed              int64   // RNG seed; 0 = time-based (non-reproducible)

	Transport transport.Options // leg time model
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		FairnessWeight:    0.6,
		QuantityWeight:    0.4,
		RandomRestarts:    15,
		TopRefine:         5,
		FairnessEarlyStop: 0.95,
		Eps:               1e-9,
		MaxTwoOptIters:    0,
		Seed:              0,
		Transport:         transport.DefaultOptions(),
	}
}

// validate checks option consistency; sentinels only.
func (o Options) validate() error {
	if o.FairnessWeight < 0 || o.QuantityWeight < 0 ||
		(o.FairnessWeight == 0 && o.QuantityWeight == 0) {
		return ErrBadWeights
	}
	if o.RandomRestarts < 0 {
		return ErrBadRestarts
	}
	return nil
}
