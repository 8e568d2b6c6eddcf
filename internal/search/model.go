// README: Candidate types and source contracts for the external search collaborators.
package search

import (
	"context"

	"tripcraft/internal/types"
)

// Flight is a priced flight option. Price is the total round-trip fare.
type Flight struct {
	ID      types.ID `json:"id"`
	Airline string   `json:"airline"`
	Price   float64  `json:"price"`
	Stops   int      `json:"stops"`
}

// Hotel is a priced hotel option. Nightly is the per-night rate.
type Hotel struct {
	ID      types.ID `json:"id"`
	Name    string   `json:"name"`
	Nightly float64  `json:"nightly_price"`
	Rating  float64  `json:"rating"`
}

// Activity is a bookable activity option.
type Activity struct {
	ID     types.ID `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Rating float64  `json:"rating"`
}

// FlightSource returns flight candidates for a destination.
// An empty slice is a valid response, not an error.
type FlightSource interface {
	SearchFlights(ctx context.Context, destination string, durationDays int) ([]Flight, error)
}

// HotelSource returns hotel candidates for a destination.
type HotelSource interface {
	SearchHotels(ctx context.Context, destination string, durationDays int) ([]Hotel, error)
}

// ActivitySource returns activity candidates for a destination.
type ActivitySource interface {
	SearchActivities(ctx context.Context, destination string, durationDays int) ([]Activity, error)
}
