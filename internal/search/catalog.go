// README: Static in-memory search provider with deterministic fixtures.
package search

import (
	"context"
	"fmt"
	"strings"
)

// Catalog serves fixed candidate lists. It stands in for a live inventory
// provider and keeps demo runs and tests fully deterministic: the same
// destination always yields the same candidates in the same order.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) SearchFlights(ctx context.Context, destination string, durationDays int) ([]Flight, error) {
	code := destinationCode(destination)
	return []Flight{
		{ID: "FL-100", Airline: "SkyBridge", Price: 850, Stops: 0},
		{ID: "FL-200", Airline: "Meridian Air", Price: 620, Stops: 1},
		{ID: "FL-300", Airline: fmt.Sprintf("TransGlobal via %s", code), Price: 480, Stops: 2},
	}, nil
}

func (c *Catalog) SearchHotels(ctx context.Context, destination string, durationDays int) ([]Hotel, error) {
	code := destinationCode(destination)
	return []Hotel{
		{ID: "HT-100", Name: fmt.Sprintf("Grand %s Palace", code), Nightly: 220, Rating: 4.8},
		{ID: "HT-200", Name: fmt.Sprintf("%s Central Inn", code), Nightly: 120, Rating: 4.2},
		{ID: "HT-300", Name: fmt.Sprintf("Backpacker %s Lodge", code), Nightly: 45, Rating: 3.6},
	}, nil
}

func (c *Catalog) SearchActivities(ctx context.Context, destination string, durationDays int) ([]Activity, error) {
	code := destinationCode(destination)
	return []Activity{
		{ID: "AC-100", Name: fmt.Sprintf("%s Old Town Walking Tour", code), Price: 35, Rating: 4.7},
		{ID: "AC-200", Name: "Museum Day Pass", Price: 28, Rating: 4.5},
		{ID: "AC-300", Name: "Regional Food Tasting", Price: 65, Rating: 4.6},
		{ID: "AC-400", Name: "Day Trip to the Coast", Price: 90, Rating: 4.4},
	}, nil
}

// destinationCode extracts the city part of a "City, Country" destination
// for use in fixture names.
func destinationCode(destination string) string {
	city := destination
	if i := strings.IndexByte(destination, ','); i >= 0 {
		city = destination[:i]
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return "Destination"
	}
	return city
}
