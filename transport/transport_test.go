// Package transport_test pins the threshold boundaries and the
// flight-to-drive downgrade heuristic.
package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamplan/roamplan/transport"
)

func TestModeFor_BoundariesAreInclusive(t *testing.T) {
	opts := transport.DefaultOptions()

	// Exactly at the walking bound walks; one meter above drives.
	assert.Equal(t, transport.Walking, transport.ModeFor(2.0, opts))
	assert.Equal(t, transport.Driving, transport.ModeFor(2.001, opts))

	// Exactly at the driving bound drives; above flies.
	assert.Equal(t, transport.Driving, transport.ModeFor(300.0, opts))
	assert.Equal(t, transport.Flying, transport.ModeFor(300.001, opts))
}

func TestTravelHours_SpeedModel(t *testing.T) {
	opts := transport.DefaultOptions()

	mode, h := transport.TravelHours(1.0, opts)
	assert.Equal(t, transport.Walking, mode)
	assert.InDelta(t, 1.0/5*1.1, h, 1e-9)

	mode, h = transport.TravelHours(120, opts)
	assert.Equal(t, transport.Driving, mode)
	assert.InDelta(t, 120.0/60*1.2, h, 1e-9)

	mode, h = transport.TravelHours(1000, opts)
	assert.Equal(t, transport.Flying, mode)
	assert.InDelta(t, 1000.0/500+3, h, 1e-9)
}

func TestEstimateLeg_DowngradesShortFlight(t *testing.T) {
	opts := transport.DefaultOptions()

	// 320 km: nominally a flight (3.64h door to door); driving takes 6.4h,
	// which breaks the 5h cap, so the flight is kept.
	mode, _ := transport.EstimateLeg(320, opts)
	assert.Equal(t, transport.Flying, mode)

	// 210 km with a lowered driving bound: flight time 3.42h, drive 4.2h.
	// Drive is under the 5h cap and 4.2 ≤ 1.5×3.42 → downgrade.
	tight := opts
	tight.DrivingMaxKm = 200
	mode, h := transport.EstimateLeg(210, tight)
	assert.Equal(t, transport.Driving, mode)
	assert.InDelta(t, 210.0/60*1.2, h, 1e-9)
}

func TestEstimateLeg_KeepsLongFlight(t *testing.T) {
	mode, h := transport.EstimateLeg(1500, transport.DefaultOptions())
	assert.Equal(t, transport.Flying, mode)
	assert.InDelta(t, 1500.0/500+3, h, 1e-9)
}

func TestOptions_ZeroValueFallsBackToDefaults(t *testing.T) {
	// A zero Options behaves as DefaultOptions.
	assert.Equal(t, transport.Walking, transport.ModeFor(2.0, transport.Options{}))
	assert.Equal(t, transport.Driving, transport.ModeFor(100, transport.Options{}))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "walking", transport.Walking.String())
	assert.Equal(t, "driving", transport.Driving.String())
	assert.Equal(t, "flying", transport.Flying.String())
}
