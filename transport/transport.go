// Package transport assigns travel modes and leg times as a pure function
// of great-circle distance.
//
// Thresholds (inclusive upper bounds):
//   - ≤ 2 km   → walking at 5 km/h with a ×1.1 buffer
//   - ≤ 300 km → driving at 60 km/h with a ×1.2 buffer
//   - beyond   → flying at 500 km/h plus a flat 3h airport overhead
//
// A post-pass may downgrade a flight to a drive when the drive stays under
// 5h and within 1.5× the flight's door-to-door time; short hops rarely
// justify airports.
//
// All functions are stateless and O(1).
package transport

import "fmt"

// Mode is the transport mode of one leg.
type Mode int

const (
	Walking Mode = iota
	Driving
	Flying
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Walking:
		return "walking"
	case Driving:
		return "driving"
	case Flying:
		return "flying"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options holds the distance thresholds and speed model.
//
// Defaults are those documented in the package comment; zero-value fields
// are replaced by DefaultOptions values via normalized().
type Options struct {
	WalkingMaxKm        float64 // ≤ this distance walks (default 2)
	DrivingMaxKm        float64 // ≤ this distance drives (default 300)
	WalkingSpeedKmh     float64 // default 5
	DrivingSpeedKmh     float64 // default 60
	FlightSpeedKmh      float64 // effective cruise speed (default 500)
	WalkingBuffer       float64 // multiplicative pace buffer (default 1.1)
	DrivingBuffer       float64 // multiplicative traffic buffer (default 1.2)
	FlightOverheadHours float64 // airport overhead per flight (default 3)

	// Flight-downgrade heuristic.
	MaxDriveDowngradeHours float64 // drive must stay under this (default 5)
	DowngradeRatio         float64 // drive ≤ ratio × flight time (default 1.5)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		WalkingMaxKm:           2,
		DrivingMaxKm:           300,
		WalkingSpeedKmh:        5,
		DrivingSpeedKmh:        60,
		FlightSpeedKmh:         500,
		WalkingBuffer:          1.1,
		DrivingBuffer:          1.2,
		FlightOverheadHours:    3,
		MaxDriveDowngradeHours: 5,
		DowngradeRatio:         1.5,
	}
}

// normalized fills zero-value fields with defaults so partially-populated
// option structs behave predictably.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.WalkingMaxKm <= 0 {
		o.WalkingMaxKm = d.WalkingMaxKm
	}
	if o.DrivingMaxKm <= 0 {
		o.DrivingMaxKm = d.DrivingMaxKm
	}
	if o.WalkingSpeedKmh <= 0 {
		o.WalkingSpeedKmh = d.WalkingSpeedKmh
	}
	if o.DrivingSpeedKmh <= 0 {
		o.DrivingSpeedKmh = d.DrivingSpeedKmh
	}
	if o.FlightSpeedKmh <= 0 {
		o.FlightSpeedKmh = d.FlightSpeedKmh
	}
	if o.WalkingBuffer <= 0 {
		o.WalkingBuffer = d.WalkingBuffer
	}
	if o.DrivingBuffer <= 0 {
		o.DrivingBuffer = d.DrivingBuffer
	}
	if o.FlightOverheadHours <= 0 {
		o.FlightOverheadHours = d.FlightOverheadHours
	}
	if o.MaxDriveDowngradeHours <= 0 {
		o.MaxDriveDowngradeHours = d.MaxDriveDowngradeHours
	}
	if o.DowngradeRatio <= 0 {
		o.DowngradeRatio = d.DowngradeRatio
	}
	return o
}

// ModeFor returns the transport mode for a leg of distKm kilometers.
// Boundaries are inclusive: exactly WalkingMaxKm walks, exactly
// DrivingMaxKm drives.
func ModeFor(distKm float64, opts Options) Mode {
	o := opts.normalized()
	switch {
	case distKm <= o.WalkingMaxKm:
		return Walking
	case distKm <= o.DrivingMaxKm:
		return Driving
	default:
		return Flying
	}
}

// TravelHours returns the mode and the estimated door-to-door hours for a
// leg of distKm kilometers.
func TravelHours(distKm float64, opts Options) (Mode, float64) {
	o := opts.normalized()
	switch ModeFor(distKm, o) {
	case Walking:
		return Walking, distKm / o.WalkingSpeedKmh * o.WalkingBuffer
	case Driving:
		return Driving, distKm / o.DrivingSpeedKmh * o.DrivingBuffer
	default:
		return Flying, distKm/o.FlightSpeedKmh + o.FlightOverheadHours
	}
}

// EstimateLeg returns the final mode and hours for a leg, applying the
// flight-to-drive downgrade: a flight becomes a drive when the drive takes
// under MaxDriveDowngradeHours and at most DowngradeRatio times the
// flight's door-to-door time.
func EstimateLeg(distKm float64, opts Options) (Mode, float64) {
	o := opts.normalized()
	mode, hours := TravelHours(distKm, o)
	if mode != Flying {
		return mode, hours
	}

	driveHours := distKm / o.DrivingSpeedKmh * o.DrivingBuffer
	if driveHours < o.MaxDriveDowngradeHours && driveHours <= o.DowngradeRatio*hours {
		return Driving, driveHours
	}
	return Flying, hours
}
