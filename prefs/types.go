// Package prefs converts raw 1–5 interest ratings into per-traveler
// standardized (z-score) desirability scores.
//
// Each traveler's scores are centered on that traveler's own mean and
// scaled by their population standard deviation, so a traveler who rates
// everything "5" contributes exactly as much signal as one who rates
// selectively.
//
// Degenerate statistics policy (never an error):
//   - A traveler with a single rating, or identical ratings everywhere,
//     has zero variance; all their standardized scores default to 0
//     (neutral) and a warning is recorded on the Result.
//
// Complexity: O(n) over the input ratings (two passes per traveler).
package prefs

import "errors"

// Sentinel errors returned by Normalize.
var (
	// ErrScoreOutOfRange indicates a raw score outside the 1–5 scale.
	ErrScoreOutOfRange = errors.New("prefs: raw score out of range [1, 5]")

	// ErrEmptyTravelerKey indicates a rating without a traveler key.
	ErrEmptyTravelerKey = errors.New("prefs: traveler key is empty")

	// ErrEmptyDestinationID indicates a rating without a destination id.
	ErrEmptyDestinationID = errors.New("prefs: destination id is empty")
)

// Rating is one raw (traveler, destination) preference as supplied by the
// input boundary. Score is an integer on the 1–5 scale. DurationHours is
// the traveler's preferred visit length; 0 means unspecified.
type Rating struct {
	TravelerKey   string  // user id or guest-session id
	DestinationID string  // destination identity
	Score         int     // raw rating, 1–5
	DurationHours float64 // preferred stay, hours; 0 = unspecified
	DisplayName   string  // traveler display name (pass-through)
	Color         string  // traveler display color (pass-through)
}

// Standardized is one normalized preference. Score is the z-score of Raw
// within the traveler's own rating distribution; consumed read-only by
// every later stage.
type Standardized struct {
	TravelerKey   string
	DestinationID string
	Raw           int     // original 1–5 score
	Score         float64 // z-score within the traveler's ratings
	DurationHours float64 // preferred stay, hours; 0 = unspecified
	DisplayName   string
	Color         string
}

// Result bundles the standardized preferences with warnings for travelers
// whose statistics were degenerate.
type Result struct {
	Prefs    []Standardized
	Warnings []string
}
