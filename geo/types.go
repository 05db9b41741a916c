package geo

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by the geo package.
var (
	// ErrNoLocations indicates that an aggregation was requested over an
	// empty location list.
	ErrNoLocations = errors.New("geo: location list is empty")

	// ErrLatOutOfRange indicates a latitude outside [-90, 90].
	ErrLatOutOfRange = errors.New("geo: latitude out of range [-90, 90]")

	// ErrLngOutOfRange indicates a longitude outside [-180, 180].
	ErrLngOutOfRange = errors.New("geo: longitude out of range [-180, 180]")
)

// EarthRadiusKm is the mean Earth radius used by all great-circle math.
const EarthRadiusKm = 6371.0

// Location is an immutable geographic point with an optional identity.
//
// ID is stable for caller-provided destinations and is the caching key for
// pairwise distances. Derived points (centroids, lodging search areas)
// carry a fresh random ID and must not be assumed stable across runs.
type Location struct {
	ID      string  // stable identifier; empty for throwaway points
	Name    string  // display name
	Address string  // optional human-readable address
	Lat     float64 // degrees, [-90, 90]
	Lng     float64 // degrees, [-180, 180]
}

// NewSyntheticLocation returns a derived Location with a fresh random ID.
// Use for computed points (cluster centers, lodging anchors) so that cache
// entries for distinct computations never collide.
func NewSyntheticLocation(name string, lat, lng float64) Location {
	return Location{
		ID:   uuid.NewString(),
		Name: name,
		Lat:  lat,
		Lng:  lng,
	}
}

// ValidateCoordinates checks that loc carries in-range coordinates.
// Returns ErrLatOutOfRange or ErrLngOutOfRange on violation.
func ValidateCoordinates(loc Location) error {
	if loc.Lat < -90 || loc.Lat > 90 {
		return ErrLatOutOfRange
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return ErrLngOutOfRange
	}
	return nil
}
