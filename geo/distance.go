package geo

import "math"

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// Haversine returns the great-circle distance between a and b in
// kilometers on a sphere of radius EarthRadiusKm.
//
// Contracts:
//   - Coordinates are assumed in-range; callers validate at the input
//     boundary (planner.Validate), not per lookup.
//
// Complexity: O(1), no allocations.
func Haversine(a, b Location) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Centroid returns the spherical centroid of locs as a synthetic Location.
//
// Each point is mapped to its 3D unit vector (cosφ·cosλ, cosφ·sinλ, sinφ),
// the vectors are averaged, and the mean is converted back to lat/lng via
// atan2. This is correct across the antimeridian, where an arithmetic mean
// of longitudes is not.
//
// Errors: ErrNoLocations when locs is empty.
//
// Complexity: O(n) time, O(1) extra space.
func Centroid(locs []Location) (Location, error) {
	if len(locs) == 0 {
		return Location{}, ErrNoLocations
	}

	var x, y, z float64
	for _, loc := range locs {
		lat := degToRad(loc.Lat)
		lng := degToRad(loc.Lng)
		x += math.Cos(lat) * math.Cos(lng)
		y += math.Cos(lat) * math.Sin(lng)
		z += math.Sin(lat)
	}

	n := float64(len(locs))
	x /= n
	y /= n
	z /= n

	lng := math.Atan2(y, x)
	hyp := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, hyp)

	return NewSyntheticLocation("cluster center", lat*180/math.Pi, lng*180/math.Pi), nil
}
