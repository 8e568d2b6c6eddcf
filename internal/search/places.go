// README: Activity source backed by the Google Places Text Search API.
package search

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripcraft/internal/types"
)

// minPlaceRating filters out poorly reviewed attractions.
const minPlaceRating = 4.0

// priceLevelEstimates maps the Places API price level (0-4) to an
// approximate per-person price in USD. The API does not expose real
// prices, so these are deliberately coarse.
var priceLevelEstimates = [5]float64{0, 20, 45, 85, 150}

// PlacesSource finds tourist activities near the destination via Google Places.
type PlacesSource struct {
	client *maps.Client
}

// NewPlacesSource creates a PlacesSource with the given API key.
func NewPlacesSource(apiKey string) (*PlacesSource, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesSource{client: client}, nil
}

// SearchActivities queries the Text Search endpoint for attractions in the
// destination and converts results into Activity candidates.
func (s *PlacesSource) SearchActivities(ctx context.Context, destination string, durationDays int) ([]Activity, error) {
	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("tourist attractions in %s", destination),
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Activity
	for _, result := range resp.Results {
		if float64(result.Rating) < minPlaceRating {
			continue
		}
		level := result.PriceLevel
		if level < 0 || level > 4 {
			level = 1
		}
		results = append(results, Activity{
			ID:     types.ID(result.PlaceID),
			Name:   result.Name,
			Price:  priceLevelEstimates[level],
			Rating: float64(result.Rating),
		})
	}
	return results, nil
}
