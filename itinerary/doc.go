// Package itinerary expands an optimized route into a concrete multi-day
// schedule with clock times, meal breaks, and nightly lodging suggestions.
//
// Algorithm Outline:
//  1. Expansion. Clusters are flattened into destination-level stops, each
//     cluster ordered internally from wherever the previous stop left off.
//  2. Day packing. Stops are consumed chronologically; a new day opens when
//     the next stop would overflow the daily activity budget, end past the
//     end-of-day hour, or arrive over a leg long enough to force an
//     overnight. Each visit is followed by a fixed slack buffer.
//  3. Day merging. Adjacent days that are both underutilized, and whose
//     combined load still fits the daily budget, collapse into one; later
//     days move a calendar day earlier.
//  4. Meals. A lunch block is inserted where the schedule naturally crosses
//     the lunch window, displacing every later visit by its duration; a
//     dinner block is appended to days that run into the evening.
//  5. Lodging. Every night gets a search-area suggestion anchored between
//     today's visit centroid and tomorrow's first stop, priced by distance
//     to the nearest major hub.
//  6. Statistics. Per-day stats (activity, travel, walking, utilization,
//     pace) and trip-level aggregates are computed, and each day is graded
//     against the scheduling thresholds.
//
// Validation findings are advisory: only EXCEEDS_DAILY_LIMIT is an error
// grade, and even that never aborts the build. Callers inspect
// Day.Validation and Plan.Warnings.
//
// Complexity: O(n) over destinations for packing, meals, and statistics;
// O(d·h) over days and hubs for lodging. Distance lookups go through the
// shared geo.DistanceCache.
//
// Errors: ErrNilCache, ErrNoStartDate.
package itinerary
