package cluster

import (
	"errors"

	"github.com/roamplan/roamplan/geo"
)

// Sentinel errors returned by the cluster package.
var (
	// ErrNoDestinations indicates clustering was requested on an empty set.
	ErrNoDestinations = errors.New("cluster: destination list is empty")

	// ErrBadRadius indicates a non-positive clustering radius.
	ErrBadRadius = errors.New("cluster: RadiusKm must be positive")

	// ErrPartitionViolation indicates the produced clusters do not
	// partition the input destinations (internal invariant breach).
	ErrPartitionViolation = errors.New("cluster: result does not partition input destinations")
)

// DefaultRadiusKm is the grouping radius when Options.RadiusKm is unset.
const DefaultRadiusKm = 50.0

// DefaultStayHours is the assumed per-destination stay when no preference
// specifies a duration.
const DefaultStayHours = 2.0

// Cluster is a geographically coherent group of destinations treated as a
// single stop by inter-cluster routing.
type Cluster struct {
	ID             string             // fresh random identity per run
	Destinations   []geo.Location     // members, seed first, then input order
	Center         geo.Location       // spherical centroid (synthetic)
	Desirability   float64            // mean standardized score over member prefs
	AvgStayHours   float64            // mean preferred duration; DefaultStayHours fallback
	TravelerScores map[string]float64 // traveler key -> summed standardized score
}

// Options configures ClusterByRadius.
//
// RadiusKm – maximum seed-to-member great-circle distance (default 50).
type Options struct {
	RadiusKm float64
}

// DefaultOptions returns the documented clustering defaults.
func DefaultOptions() Options {
	return Options{RadiusKm: DefaultRadiusKm}
}
