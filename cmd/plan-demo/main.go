package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"tripcraft/internal/ai"
	"tripcraft/internal/planner"
	"tripcraft/internal/search"
)

func main() {
	destination := flag.String("destination", "Paris, France", "trip destination")
	budget := flag.Float64("budget", 3000, "total budget in USD")
	days := flag.Int("days", 10, "trip duration in days")
	flag.Parse()

	ctx := context.Background()

	var generator ai.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, apiKey)
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}
		defer provider.Close()
		generator = provider
	}

	catalog := search.NewCatalog()
	driver := planner.NewDriver(planner.DriverDeps{
		Flights:    catalog,
		Hotels:     catalog,
		Activities: catalog,
		Gen:        generator,
	})

	rec, err := driver.Run(ctx, planner.Request{
		Destination:  *destination,
		Budget:       *budget,
		DurationDays: *days,
	})
	if err != nil {
		log.Fatalf("invalid request: %v", err)
	}

	fmt.Printf("Destination: %s (%s, $%.0f/day minimum)\n", rec.Destination, rec.Region, rec.PerDayMinimum)
	fmt.Printf("Budget: $%.2f for %d days (minimum required $%.2f, feasible: %v)\n",
		rec.Budget, rec.DurationDays, rec.MinimumRequired, rec.Feasible)
	fmt.Printf("Breakdown: flights $%.2f | accommodation $%.2f | activities $%.2f | food $%.2f\n\n",
		rec.Breakdown.Flights, rec.Breakdown.Accommodation, rec.Breakdown.Activities, rec.Breakdown.Food)

	if f := rec.SelectedFlight; f != nil {
		fmt.Printf("Flight: %s, $%.2f, %d stop(s)\n", f.Airline, f.Price, f.Stops)
	} else if rec.FlightNote != "" {
		fmt.Printf("Flight: %s\n", rec.FlightNote)
	}
	if h := rec.SelectedHotel; h != nil {
		fmt.Printf("Hotel: %s, $%.2f/night, rated %.1f\n", h.Name, h.Nightly, h.Rating)
	} else if rec.HotelNote != "" {
		fmt.Printf("Hotel: %s\n", rec.HotelNote)
	}

	fmt.Println()
	switch {
	case rec.Itinerary != "":
		fmt.Println(rec.Itinerary)
	case rec.Alternatives != "":
		fmt.Println(rec.Alternatives)
	case rec.Err != "":
		fmt.Println(rec.Err)
	}
}
