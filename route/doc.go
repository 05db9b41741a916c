// Package route searches for a fair, time-feasible ordering of destination
// clusters between a departure and a return point.
//
// Algorithm Outline:
//  1. Candidate generation. Four strategies each propose one or more full
//     orderings of the clusters:
//     - desirability-greedy: start from each of the top-3 most desirable
//       clusters, nearest-neighbor-append the rest;
//     - quantity-maximizing: shortest average stay first, then
//       nearest-neighbor from that seed (biases toward more, shorter stops);
//     - nearest-neighbor: classic greedy from the departure point;
//     - random exploration: a bounded number of uniform shuffles.
//  2. Each ordering is trimmed to the hour budget (lowest desirability
//     first, reported, never silent) and materialized into a Solution with
//     concrete transport legs, fairness/quantity scores, and a composite.
//  3. Early termination: if the best feasible candidate's fairness already
//     meets FairnessEarlyStop, refinement is skipped.
//  4. Otherwise the top TopRefine feasible candidates (all candidates when
//     none are feasible) are locally improved with first-improvement 2-opt
//     over the open departure→…→return path, including the two virtual end
//     edges. A reversal is accepted only when it strictly shortens the two
//     boundary edges; the scan restarts after every accepted move and
//     stops at a local optimum.
//  5. Selection: highest composite among feasible candidates; if none are
//     feasible, the best infeasible one is returned with its issues.
//
// Determinism:
//
//	All randomness flows through Options.Seed. A non-zero seed yields
//	reproducible candidate sets; the zero seed draws a time-based source
//	(production default). Nearest-neighbor ties break on the smaller
//	cluster ID, so the deterministic strategies are stable regardless.
//
// Edge cases:
//   - zero clusters  → trivially feasible empty Solution (fairness 1).
//   - one cluster    → search skipped, the only ordering is scored directly.
//
// The package never aborts on infeasibility: the best-effort Solution is
// returned with machine-readable Issues, per the error-handling policy.
//
// Complexity: O(s·n²) distance lookups for candidate generation plus
// O(iter·n²) per 2-opt pass; all lookups go through the shared
// geo.DistanceCache, so repeated pairs cost O(1).
package route
