// README: Workflow driver; owns the stage graph and the routing table.
package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripcraft/internal/ai"
	"tripcraft/internal/search"
)

// State identifies a stage in the planning workflow.
type State string

const (
	StateBudgetAnalysis    State = "budget_analysis"
	StateFlightSearch      State = "flight_search"
	StateHotelSearch       State = "hotel_search"
	StateActivitySearch    State = "activity_search"
	StateItineraryAssembly State = "itinerary_assembly"
	StateAlternativeAdvice State = "alternative_advice"
	StateErrorHandling     State = "error_handling"
	StateDone              State = "done"
)

// transition is one routing rule: when `when` matches the record after a
// stage completes, the workflow moves to `to`.
type transition struct {
	when func(Record) bool
	to   State
}

func hasError(rec Record) bool { return rec.Err != "" }
func always(Record) bool       { return true }

// transitions holds every routing decision in one place. Rules are evaluated
// in order and the first match wins, so the hasError rule at the head of each
// list takes priority over the normal forward transition.
var transitions = map[State][]transition{
	StateBudgetAnalysis: {
		{when: hasError, to: StateErrorHandling},
		{when: func(r Record) bool { return r.Feasible }, to: StateFlightSearch},
		{when: always, to: StateAlternativeAdvice},
	},
	StateFlightSearch: {
		{when: hasError, to: StateErrorHandling},
		// an unselected flight is recorded but does not halt the pipeline
		{when: always, to: StateHotelSearch},
	},
	StateHotelSearch: {
		{when: hasError, to: StateErrorHandling},
		{when: func(r Record) bool { return r.SelectedHotel != nil }, to: StateActivitySearch},
		// itinerary assembly tolerates a missing hotel
		{when: always, to: StateItineraryAssembly},
	},
	StateActivitySearch: {
		{when: hasError, to: StateErrorHandling},
		{when: always, to: StateItineraryAssembly},
	},
	StateItineraryAssembly: {
		{when: always, to: StateDone},
	},
	StateAlternativeAdvice: {
		{when: always, to: StateDone},
	},
	StateErrorHandling: {
		{when: always, to: StateDone},
	},
}

// Next returns the state that follows s given the current record.
func Next(s State, rec Record) State {
	for _, t := range transitions[s] {
		if t.when(rec) {
			return t.to
		}
	}
	return StateDone
}

// defaultGenTimeout bounds a generation call when no timeout is configured.
const defaultGenTimeout = 15 * time.Second

// Driver executes planning runs. Each run is strictly sequential and owns its
// record exclusively; a Driver is safe for concurrent use across runs.
type Driver struct {
	flights    search.FlightSource
	hotels     search.HotelSource
	activities search.ActivitySource
	gen        ai.Generator
	usage      UsageSink
	genTimeout time.Duration
}

// DriverDeps lists the collaborators a Driver needs. Gen and Usage may be nil:
// without a generator every run uses the templated fallback texts.
type DriverDeps struct {
	Flights    search.FlightSource
	Hotels     search.HotelSource
	Activities search.ActivitySource
	Gen        ai.Generator
	Usage      UsageSink
	GenTimeout time.Duration
}

func NewDriver(deps DriverDeps) *Driver {
	timeout := deps.GenTimeout
	if timeout <= 0 {
		timeout = defaultGenTimeout
	}
	return &Driver{
		flights:    deps.Flights,
		hotels:     deps.Hotels,
		activities: deps.Activities,
		gen:        deps.Gen,
		usage:      deps.Usage,
		genTimeout: timeout,
	}
}

// Run validates the request and walks the stage graph until Done, returning
// the completed record. Exactly one of Itinerary, Alternatives, and Err is
// populated on the returned record. Invalid input is reported as an error
// before any stage executes.
func (d *Driver) Run(ctx context.Context, req Request) (Record, error) {
	if err := ValidateRequest(req); err != nil {
		return Record{}, err
	}

	rec := newRecord(req)
	for state := StateBudgetAnalysis; state != StateDone; {
		rec = d.runStage(ctx, state, rec)
		state = Next(state, rec)
	}
	return rec, nil
}

// runStage executes one stage and returns the extended record. A panic inside
// a stage is converted into the record's error signal so the router can send
// the run to ErrorHandling instead of unwinding past the driver.
func (d *Driver) runStage(ctx context.Context, state State, rec Record) (out Record) {
	defer func() {
		if p := recover(); p != nil {
			out = rec
			out.Err = fmt.Sprintf("stage %s failed: %v", state, p)
		}
	}()

	switch state {
	case StateBudgetAnalysis:
		return analyzeBudget(rec)
	case StateFlightSearch:
		return d.searchFlights(ctx, rec)
	case StateHotelSearch:
		return d.searchHotels(ctx, rec)
	case StateActivitySearch:
		return d.searchActivities(ctx, rec)
	case StateItineraryAssembly:
		return d.assembleItinerary(ctx, rec)
	case StateAlternativeAdvice:
		return d.adviseAlternatives(ctx, rec)
	case StateErrorHandling:
		return handleError(rec)
	}
	rec.Err = fmt.Sprintf("unknown workflow state %q", state)
	return rec
}

// searchFlights fetches flight candidates and picks the best affordable one.
// A provider error degrades to an empty candidate list.
func (d *Driver) searchFlights(ctx context.Context, rec Record) Record {
	var flights []search.Flight
	if d.flights != nil {
		var err error
		flights, err = d.flights.SearchFlights(ctx, rec.Destination, rec.DurationDays)
		if err != nil {
			log.Printf("flight search failed for %s: %v", rec.Destination, err)
			flights = nil
		}
	}
	rec.FlightCandidates = flights
	rec.SelectedFlight, rec.FlightNote = selectFlight(flights, rec.Breakdown.Flights)
	return rec
}

func (d *Driver) searchHotels(ctx context.Context, rec Record) Record {
	var hotels []search.Hotel
	if d.hotels != nil {
		var err error
		hotels, err = d.hotels.SearchHotels(ctx, rec.Destination, rec.DurationDays)
		if err != nil {
			log.Printf("hotel search failed for %s: %v", rec.Destination, err)
			hotels = nil
		}
	}
	rec.HotelCandidates = hotels
	rec.SelectedHotel, rec.HotelNote = selectHotel(hotels, rec.Breakdown.Accommodation, rec.DurationDays)
	return rec
}

// searchActivities is an optional enrichment stage: it records the activities
// that fit the activities budget individually but selects nothing.
func (d *Driver) searchActivities(ctx context.Context, rec Record) Record {
	if d.activities == nil {
		return rec
	}
	activities, err := d.activities.SearchActivities(ctx, rec.Destination, rec.DurationDays)
	if err != nil {
		log.Printf("activity search failed for %s: %v", rec.Destination, err)
		return rec
	}
	var affordable []search.Activity
	for _, a := range activities {
		if a.Price <= rec.Breakdown.Activities {
			affordable = append(affordable, a)
		}
	}
	rec.ActivityCandidates = affordable
	return rec
}
