// Package planner is the façade over the whole pipeline. One call to Plan
// takes raw traveler ratings plus a destination list and returns a scored
// route expanded into a day-by-day itinerary.
//
// Pipeline:
//  1. Validate   – every fatal input problem collected and returned at once.
//  2. prefs      – per-traveler z-score normalization of raw ratings.
//  3. cluster    – radius-based grouping of nearby destinations.
//  4. trip       – hour budget from the time constraints (fixed or auto).
//  5. route      – multi-strategy search for a fair, feasible ordering.
//  6. itinerary  – calendar days with clock times, meals, and lodging.
//
// Each Plan call builds its own distance cache; no state is shared between
// calls, so Plan is safe for concurrent use.
//
// Advisory findings from every stage (degenerate rating distributions,
// budget trims, schedule overloads) surface in Result.Warnings; only
// invalid input or malformed options produce an error.
package planner
