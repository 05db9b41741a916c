// Package cluster groups destinations into geographically coherent
// clusters with a fixed-radius, seed-centered rule.
//
// Algorithm Outline:
//  1. Walk the destinations in input order. Skip any already clustered.
//  2. The first unclustered destination becomes a seed; every other
//     unclustered destination within RadiusKm of the *seed* joins its
//     cluster. Membership is decided against the seed only — there is no
//     transitive chaining through a second hop.
//  3. Each cluster gets a spherical centroid (3D Cartesian averaging),
//     an aggregate desirability (mean standardized score over member
//     preferences), an average stay time (default 2h when no preference
//     carries a duration), and per-traveler score sums.
//  4. Clusters are sorted descending by desirability.
//
// Order dependence:
//
//	Because membership is evaluated around seeds taken in input order,
//	the resulting partition depends on that order. This matches the
//	behavior of the scheme this package mirrors and is kept on purpose;
//	a true single-linkage (transitive) variant would yield different,
//	often larger clusters. Callers needing stable output must feed a
//	stable destination order.
//
// Post-condition:
//
//	The clusters always partition the input: every destination appears in
//	exactly one cluster. This is validated before returning and a
//	violation is a bug, surfaced as ErrPartitionViolation.
//
// Complexity: O(n²) distance checks worst case, O(n + p) aggregation.
package cluster
