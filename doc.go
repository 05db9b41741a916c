// Package roamplan turns a pile of traveler ratings and map pins into a
// fair, feasible, day-by-day travel itinerary.
//
// 🚀 What is roamplan?
//
//	A pure-computation planning library that brings together:
//		• Preference normalization: per-traveler z-scores over raw ratings
//		• Geographic clustering: radius-based grouping of nearby stops
//		• Fairness scoring: 1 − Gini over traveler satisfaction
//		• Time budgeting: fixed date windows or auto-sized trips
//		• Route search: multi-strategy candidates refined with 2-opt
//		• Transport model: walk / drive / fly by distance thresholds
//		• Day splitting: clock times, meal breaks, lodging suggestions
//
// ✨ Why choose roamplan?
//
//   - Group-first – optimizes for every traveler, not the loudest one
//   - Best-effort – infeasible trips return a graded plan, never a panic
//   - Deterministic – seedable search for reproducible results
//   - Composable – each stage is a standalone package with its own API
//
// Under the hood, the pipeline is organized as:
//
//	prefs/     — rating normalization (z-scores, degenerate-stat warnings)
//	geo/       — haversine distances, centroids, shared distance cache
//	cluster/   — radius clustering with preference aggregation
//	fairness/  — satisfaction ratios and the Gini-based fairness score
//	trip/      — hour budgets and lowest-desirability-first trimming
//	transport/ — distance-threshold mode choice and leg time estimates
//	route/     — candidate generation, scoring, 2-opt refinement
//	itinerary/ — day packing, merging, meals, lodging, statistics
//	planner/   — one-call façade wiring every stage together
//
// Start with planner.Plan for the whole pipeline, or compose the stage
// packages directly when you only need one step.
//
//	go get github.com/roamplan/roamplan
package roamplan
