package prefs

import (
	"fmt"
	"math"
	"sort"
)

// zeroVarianceEps treats a spread below this as no spread at all; the raw
// scores are small integers, so anything smaller is floating-point noise.
const zeroVarianceEps = 1e-9

// Normalize converts raw ratings into per-traveler z-scores.
//
// For each distinct traveler: mean and population standard deviation of
// their raw scores are computed, and every rating becomes
// (raw − mean) / stddev. A zero stddev (single rating, or all identical)
// yields 0 for every entry plus a Result warning, never a division error.
//
// The output preserves input order. Warnings are sorted by traveler key
// for deterministic output regardless of map iteration order.
//
// Errors: ErrEmptyTravelerKey, ErrEmptyDestinationID, ErrScoreOutOfRange.
//
// Complexity: O(n + t·log t) where n = ratings, t = travelers with
// degenerate statistics.
func Normalize(ratings []Rating) (Result, error) {
	// Stage 1: shape validation (fatal; optimization must not start on bad input).
	for _, r := range ratings {
		if r.TravelerKey == "" {
			return Result{}, ErrEmptyTravelerKey
		}
		if r.DestinationID == "" {
			return Result{}, ErrEmptyDestinationID
		}
		if r.Score < 1 || r.Score > 5 {
			return Result{}, ErrScoreOutOfRange
		}
	}

	// Stage 2: per-traveler sums for mean and population variance.
	type stats struct {
		n     int
		sum   float64
		sumSq float64
	}
	byTraveler := make(map[string]*stats)
	for _, r := range ratings {
		s := byTraveler[r.TravelerKey]
		if s == nil {
			s = &stats{}
			byTraveler[r.TravelerKey] = s
		}
		s.n++
		s.sum += float64(r.Score)
		s.sumSq += float64(r.Score) * float64(r.Score)
	}

	mean := make(map[string]float64, len(byTraveler))
	stddev := make(map[string]float64, len(byTraveler))
	var degenerate []string
	for key, s := range byTraveler {
		m := s.sum / float64(s.n)
		variance := s.sumSq/float64(s.n) - m*m
		if variance < 0 {
			variance = 0 // floating-point guard for identical scores
		}
		sd := math.Sqrt(variance)
		mean[key] = m
		stddev[key] = sd
		if sd < zeroVarianceEps {
			degenerate = append(degenerate, key)
		}
	}
	sort.Strings(degenerate)

	// Stage 3: emit standardized preferences in input order.
	out := make([]Standardized, 0, len(ratings))
	for _, r := range ratings {
		z := 0.0
		if sd := stddev[r.TravelerKey]; sd >= zeroVarianceEps {
			z = (float64(r.Score) - mean[r.TravelerKey]) / sd
		}
		out = append(out, Standardized{
			TravelerKey:   r.TravelerKey,
			DestinationID: r.DestinationID,
			Raw:           r.Score,
			Score:         z,
			DurationHours: r.DurationHours,
			DisplayName:   r.DisplayName,
			Color:         r.Color,
		})
	}

	warnings := make([]string, 0, len(degenerate))
	for _, key := range degenerate {
		warnings = append(warnings,
			fmt.Sprintf("traveler %s: zero rating variance, scores neutralized", key))
	}

	return Result{Prefs: out, Warnings: warnings}, nil
}

// DistinctDestinations returns the number of distinct destination ids that
// carry at least one preference. Used as the quantity-score denominator.
//
// Complexity: O(n).
func DistinctDestinations(prefs []Standardized) int {
	seen := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		seen[p.DestinationID] = struct{}{}
	}
	return len(seen)
}
