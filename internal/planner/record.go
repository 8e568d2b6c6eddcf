// README: Planning record threaded through the trip-planning stages.
package planner

import (
	"strings"

	"tripcraft/internal/search"
)

// Request carries the caller-supplied inputs for one planning run.
type Request struct {
	Destination  string  `json:"destination"`
	Budget       float64 `json:"budget"`
	DurationDays int     `json:"duration_days"`
}

// Breakdown splits the total budget across the four spending categories.
// The four amounts always sum to the total budget rounded to cents.
type Breakdown struct {
	Flights       float64 `json:"flights"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Food          float64 `json:"food"`
}

// Total returns the sum of the four category amounts.
func (b Breakdown) Total() float64 {
	return b.Flights + b.Accommodation + b.Activities + b.Food
}

// Record is the single state object for one planning run. Stages receive a
// Record by value and return an extended copy; input fields set at creation
// are never revised. Exactly one of Itinerary, Alternatives, and Err is
// non-empty once the run reaches Done.
type Record struct {
	Destination  string  `json:"destination"`
	DurationDays int     `json:"duration_days"`
	Budget       float64 `json:"total_budget"`

	Region          string    `json:"region,omitempty"`
	PerDayMinimum   float64   `json:"per_day_minimum,omitempty"`
	MinimumRequired float64   `json:"minimum_required,omitempty"`
	Feasible        bool      `json:"feasible"`
	Breakdown       Breakdown `json:"breakdown"`

	FlightCandidates []search.Flight `json:"flight_candidates,omitempty"`
	SelectedFlight   *search.Flight  `json:"selected_flight,omitempty"`
	// FlightNote explains a missing flight selection (e.g. nothing affordable).
	FlightNote string `json:"flight_note,omitempty"`

	HotelCandidates []search.Hotel `json:"hotel_candidates,omitempty"`
	SelectedHotel   *search.Hotel  `json:"selected_hotel,omitempty"`
	HotelNote       string         `json:"hotel_note,omitempty"`

	ActivityCandidates []search.Activity `json:"activity_candidates,omitempty"`

	Itinerary    string `json:"itinerary,omitempty"`
	Alternatives string `json:"alternatives,omitempty"`
	Err          string `json:"error,omitempty"`
}

// newRecord creates the initial record for a validated request.
func newRecord(req Request) Record {
	return Record{
		Destination:  strings.TrimSpace(req.Destination),
		DurationDays: req.DurationDays,
		Budget:       req.Budget,
	}
}
