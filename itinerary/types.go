package itinerary

import (
	"errors"
	"time"

	"github.com/roamplan/roamplan/geo"
	"github.com/roamplan/roamplan/transport"
)

// Sentinel errors returned by the itinerary package.
var (
	// ErrNoStartDate indicates the time constraints carry no start date.
	ErrNoStartDate = errors.New("itinerary: trip start date is required")

	// ErrNilCache indicates Split was called without a distance cache.
	ErrNilCache = errors.New("itinerary: distance cache is nil")
)

// EnergyPeriod is the coarse time-of-day bucket of a visit, derived from
// hours elapsed since the day start. It biases demanding activities toward
// the morning.
type EnergyPeriod int

const (
	Morning   EnergyPeriod = iota // first 4 elapsed hours
	Afternoon                     // elapsed hours 4–8
	Evening                       // beyond 8 elapsed hours
)

// String implements fmt.Stringer.
func (p EnergyPeriod) String() string {
	switch p {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	default:
		return "evening"
	}
}

// Visit is one destination with concrete arrival and departure instants.
type Visit struct {
	Destination geo.Location
	Arrive      time.Time
	Depart      time.Time
	StayHours   float64
	Period      EnergyPeriod
	Rushed      bool // stay under 1h
	Extended    bool // stay over 4h
}

// Leg is one concrete transport movement between scheduled points.
type Leg struct {
	From       geo.Location
	To         geo.Location
	DistanceKm float64
	Mode       transport.Mode
	Depart     time.Time
	Arrive     time.Time
	Hours      float64
}

// MealType distinguishes the two inserted meal breaks.
type MealType int

const (
	Lunch MealType = iota
	Dinner
)

// String implements fmt.Stringer.
func (m MealType) String() string {
	if m == Lunch {
		return "lunch"
	}
	return "dinner"
}

// Meal is one scheduled meal break.
type Meal struct {
	Type      MealType
	Start     time.Time
	End       time.Time
	Location  geo.Location
	NearLabel string // display name of the adjacent destination
}

// Tier is a lodging quality tier.
type Tier int

const (
	Budget Tier = iota
	Standard
	Premium
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case Budget:
		return "budget"
	case Standard:
		return "standard"
	default:
		return "premium"
	}
}

// CostBand is an estimated nightly price range in the caller's currency.
type CostBand struct {
	Min float64
	Max float64
}

// Lodging suggests where to search for a night's accommodation.
type Lodging struct {
	Location           geo.Location // weighted anchor between today and tomorrow
	SearchRadiusKm     float64
	Cost               map[Tier]CostBand
	NextDayAccessKm    float64 // anchor → next day's first stop
	NextDayAccessHours float64
	Reason             string
}

// Severity grades a day validation issue.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityError
)

// Day validation codes.
const (
	CodeExceedsDailyLimit   = "EXCEEDS_DAILY_LIMIT"
	CodeTooManyDestinations = "TOO_MANY_DESTINATIONS"
	CodeExcessiveWalking    = "EXCESSIVE_WALKING"
	CodeLateFinish          = "LATE_FINISH"
	CodePackedSchedule      = "PACKED_SCHEDULE"
)

// DayIssue is one non-fatal validation finding on a finalized day.
// Only CodeExceedsDailyLimit carries SeverityError.
type DayIssue struct {
	Code     string
	Severity Severity
	Message  string
}

// DayStats summarizes a finalized day.
type DayStats struct {
	ActiveHours float64 // time spent at destinations
	TravelHours float64 // time spent moving
	WalkingKm   float64 // cumulative walking distance
	Utilization float64 // (active+travel) / daily budget
	Pace        string  // "relaxed" (<60%), "moderate", "packed" (≥85%)
}

// Day is one scheduled calendar day. It is filled incrementally by the
// splitter and becomes immutable once finalized; only the merge pass may
// replace finalized days (by constructing new ones).
type Day struct {
	Number     int
	Date       time.Time
	Start      time.Time
	End        time.Time
	Visits     []Visit
	Legs       []Leg
	Meals      []Meal
	Lodging    *Lodging
	Stats      DayStats
	Validation []DayIssue

	finalized bool
}

// Finalized reports whether the day has been closed.
func (d *Day) Finalized() bool { return d.finalized }

// TripStats aggregates the whole plan.
type TripStats struct {
	TotalDays         int
	TotalDestinations int
	TotalDistanceKm   float64
	TotalTravelHours  float64
	TotalActiveHours  float64
	AvgUtilization    float64
}

// Plan is the multi-day expansion of a route solution.
type Plan struct {
	Days     []Day
	Stats    TripStats
	Warnings []string
}

// Hub is a known major city used by the lodging cost model.
type Hub struct {
	Name     string
	Location geo.Location
}

// Options configures the day splitter and its insertion passes.
// DefaultOptions documents every default.
type Options struct {
	DailyHours         float64 // activity+travel cap per day (default 9)
	DayStartHour       int     // local start-of-day hour (default 9)
	DayEndHour         int     // local end-of-day hour (default 18)
	VisitBufferHours   float64 // slack after each visit (default 0.25)
	LongTransportHours float64 // a longer leg forces an overnight (default 4)
	MaxDailyWalkKm     float64 // walking warning threshold (default 10)
	MaxDayVisits       int     // destination-count warning threshold (default 6)

	LunchStartHour  float64 // lunch window start (default 12.0)
	LunchHours      float64 // lunch duration (default 1.0)
	DinnerHours     float64 // dinner duration (default 1.5)
	DinnerAfterHour int     // dinner only when the day ends at/after (default 18)

	MergeUtilization float64 // both-days merge threshold (default 0.5)

	LodgingSearchRadiusKm float64           // default 5
	LodgingBase           map[Tier]float64  // nightly base cost per tier
	Hubs                  []Hub             // major hubs for the cost model
	Transport             transport.Options // leg time model
}

// DefaultOptions returns the documented defaults. The built-in hub list is
// a coarse world-city table; callers with real POI data should inject
// their own.
func DefaultOptions() Options {
	return Options{
		DailyHours:            9,
		DayStartHour:          9,
		DayEndHour:            18,
		VisitBufferHours:      0.25,
		LongTransportHours:    4,
		MaxDailyWalkKm:        10,
		MaxDayVisits:          6,
		LunchStartHour:        12.0,
		LunchHours:            1.0,
		DinnerHours:           1.5,
		DinnerAfterHour:       18,
		MergeUtilization:      0.5,
		LodgingSearchRadiusKm: 5,
		LodgingBase: map[Tier]float64{
			Budget:   65,
			Standard: 115,
			Premium:  200,
		},
		Hubs:      defaultHubs(),
		Transport: transport.DefaultOptions(),
	}
}

// defaultHubs returns the built-in major-hub table.
func defaultHubs() []Hub {
	return []Hub{
		{Name: "Paris", Location: geo.Location{Lat: 48.8566, Lng: 2.3522}},
		{Name: "London", Location: geo.Location{Lat: 51.5074, Lng: -0.1278}},
		{Name: "Berlin", Location: geo.Location{Lat: 52.5200, Lng: 13.4050}},
		{Name: "Madrid", Location: geo.Location{Lat: 40.4168, Lng: -3.7038}},
		{Name: "Rome", Location: geo.Location{Lat: 41.9028, Lng: 12.4964}},
		{Name: "New York", Location: geo.Location{Lat: 40.7128, Lng: -74.0060}},
		{Name: "Los Angeles", Location: geo.Location{Lat: 34.0522, Lng: -118.2437}},
		{Name: "Tokyo", Location: geo.Location{Lat: 35.6762, Lng: 139.6503}},
		{Name: "Beijing", Location: geo.Location{Lat: 39.9042, Lng: 116.4074}},
		{Name: "Singapore", Location: geo.Location{Lat: 1.3521, Lng: 103.8198}},
		{Name: "Sydney", Location: geo.Location{Lat: -33.8688, Lng: 151.2093}},
		{Name: "Dubai", Location: geo.Location{Lat: 25.2048, Lng: 55.2708}},
	}
}
