// Package geo provides the geometric primitives shared by every planning
// stage: the Location value type, great-circle (haversine) distance,
// spherical centroid aggregation, and a memoizing pairwise distance cache.
//
// Design principles:
//   - Value semantics: Locations are immutable snapshots; aggregation
//     functions take location lists in and return fresh values out.
//     No stage mutates a shared Location.
//   - Synthetic identity: centroids and other derived points receive a
//     fresh random ID per computation (no stable identity across runs).
//   - Explicit state: DistanceCache is constructed and passed by the
//     caller; the package holds no process-wide singleton, so independent
//     optimization runs never share stale entries.
//
// Accuracy model:
//   - Distances are geometric approximations on a sphere of mean radius
//     6371 km. No routing-engine queries are performed.
//   - Centroids use 3D Cartesian unit-vector averaging, which is correct
//     across the antimeridian; a naive lat/lng arithmetic mean is not.
//
// Complexity:
//   - Haversine: O(1).
//   - Centroid:  O(n) over the input locations.
//   - DistanceCache.Distance: O(1) amortized (map-backed store).
package geo
