// README: Itinerary assembly via the generation service with a templated fallback.
package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripcraft/internal/ai"
)

// UsageSink records approximate token consumption for observability.
// Implementations must never fail the planning run.
type UsageSink interface {
	RecordUsage(ctx context.Context, stage string, usage ai.Usage)
}

// assembleItinerary produces the itinerary text. Live generation is attempted
// first when a provider is configured; any failure, timeout, or missing
// provider degrades to the deterministic template. Generation problems are
// never surfaced as run errors.
func (d *Driver) assembleItinerary(ctx context.Context, rec Record) Record {
	if d.gen != nil {
		genCtx, cancel := context.WithTimeout(ctx, d.genTimeout)
		defer cancel()

		result, err := d.gen.Generate(genCtx, buildItineraryPrompt(rec))
		if err == nil && strings.TrimSpace(result.Text) != "" {
			if d.usage != nil {
				d.usage.RecordUsage(ctx, "itinerary", result.Usage)
			}
			rec.Itinerary = strings.TrimSpace(result.Text)
			return rec
		}
		log.Printf("itinerary generation failed, using template: %v", err)
	}

	rec.Itinerary = fallbackItinerary(rec)
	return rec
}

// buildItineraryPrompt describes the selected trip to the generation service.
func buildItineraryPrompt(rec Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a day-by-day itinerary for a %d-day trip to %s.\n", rec.DurationDays, rec.Destination)
	fmt.Fprintf(&b, "Budget: $%.2f total (flights $%.2f, accommodation $%.2f, activities $%.2f, food $%.2f).\n",
		rec.Budget, rec.Breakdown.Flights, rec.Breakdown.Accommodation, rec.Breakdown.Activities, rec.Breakdown.Food)

	if f := rec.SelectedFlight; f != nil {
		fmt.Fprintf(&b, "Booked flight: %s, $%.2f, %d stop(s).\n", f.Airline, f.Price, f.Stops)
	} else {
		b.WriteString("No flight is booked yet; the traveller will arrange transport separately.\n")
	}
	if h := rec.SelectedHotel; h != nil {
		fmt.Fprintf(&b, "Booked hotel: %s, $%.2f/night, rated %.1f.\n", h.Name, h.Nightly, h.Rating)
	} else {
		b.WriteString("No hotel is booked yet; suggest neighbourhoods to stay in.\n")
	}
	if len(rec.ActivityCandidates) > 0 {
		b.WriteString("Candidate activities: ")
		for i, a := range rec.ActivityCandidates {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s ($%.0f)", a.Name, a.Price)
		}
		b.WriteString(".\n")
	}
	b.WriteString("Keep each day to two or three short bullet points and stay within the stated budget.")
	return b.String()
}

// fallbackItinerary builds a deterministic day-by-day plan from record fields
// alone. It needs no external calls so it works offline and in tests.
func fallbackItinerary(rec Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-day trip to %s\n", rec.DurationDays, rec.Destination)
	fmt.Fprintf(&b, "Budget: $%.2f (flights $%.2f, accommodation $%.2f, activities $%.2f, food $%.2f)\n\n",
		rec.Budget, rec.Breakdown.Flights, rec.Breakdown.Accommodation, rec.Breakdown.Activities, rec.Breakdown.Food)

	for day := 1; day <= rec.DurationDays; day++ {
		switch {
		case day == 1:
			fmt.Fprintf(&b, "Day 1: Arrive in %s", rec.Destination)
			if rec.SelectedFlight != nil {
				fmt.Fprintf(&b, " with %s", rec.SelectedFlight.Airline)
			}
			if rec.SelectedHotel != nil {
				fmt.Fprintf(&b, ", check in at %s", rec.SelectedHotel.Name)
			}
			b.WriteString(" and settle in with an evening walk nearby.\n")
		case day == rec.DurationDays && rec.DurationDays > 1:
			fmt.Fprintf(&b, "Day %d: Pack up, pick up last souvenirs, and depart %s.\n", day, rec.Destination)
		default:
			activity := "explore the city at your own pace"
			if n := len(rec.ActivityCandidates); n > 0 {
				activity = rec.ActivityCandidates[(day-2)%n].Name
			}
			fmt.Fprintf(&b, "Day %d: %s, then a local dinner within the food budget.\n", day, activity)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
