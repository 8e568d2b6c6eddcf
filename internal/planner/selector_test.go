// README: Candidate selection tests (scoring, ceilings, tie-breaking, no-affordable outcome).
package planner

import (
	"strings"
	"testing"

	"tripcraft/internal/search"
)

func TestSelectFlightScoring(t *testing.T) {
	// scores: 500*0.7+0 = 350 vs 450*0.7+100 = 415 → the nonstop wins
	flights := []search.Flight{
		{ID: "FL-1", Price: 500, Stops: 0},
		{ID: "FL-2", Price: 450, Stops: 1},
	}
	picked, note := selectFlight(flights, 600)
	if picked == nil {
		t.Fatalf("expected a selection, got note %q", note)
	}
	if picked.ID != "FL-1" {
		t.Errorf("selected %s, want FL-1 (price 500, 0 stops)", picked.ID)
	}
}

// TestSelectFlightDeterministic runs the same selection repeatedly; the result
// must never vary for a fixed candidate list and ceiling.
func TestSelectFlightDeterministic(t *testing.T) {
	flights := []search.Flight{
		{ID: "FL-3", Price: 480, Stops: 2},
		{ID: "FL-1", Price: 500, Stops: 0},
		{ID: "FL-2", Price: 450, Stops: 1},
	}
	first, _ := selectFlight(flights, 600)
	for i := 0; i < 50; i++ {
		again, _ := selectFlight(flights, 600)
		if again == nil || again.ID != first.ID {
			t.Fatalf("run %d selected %v, first run selected %v", i, again, first)
		}
	}
}

func TestSelectFlightNeverExceedsCeiling(t *testing.T) {
	flights := []search.Flight{
		{ID: "FL-1", Price: 700, Stops: 0},
		{ID: "FL-2", Price: 450, Stops: 1},
		{ID: "FL-3", Price: 300, Stops: 3},
	}
	picked, _ := selectFlight(flights, 500)
	if picked == nil {
		t.Fatal("expected a selection")
	}
	if picked.Price > 500 {
		t.Errorf("selected fare %v exceeds ceiling 500", picked.Price)
	}
}

// TestSelectFlightNothingAffordable checks the structured no-selection
// outcome: no pick, a note naming the cheapest fare against the ceiling.
func TestSelectFlightNothingAffordable(t *testing.T) {
	flights := []search.Flight{
		{ID: "FL-1", Price: 900, Stops: 0},
		{ID: "FL-2", Price: 750, Stops: 1},
	}
	picked, note := selectFlight(flights, 500)
	if picked != nil {
		t.Fatalf("expected no selection, got %s", picked.ID)
	}
	if !strings.Contains(note, "750.00") || !strings.Contains(note, "500.00") {
		t.Errorf("note should name the cheapest fare and the ceiling, got %q", note)
	}
}

func TestSelectFlightEmptyList(t *testing.T) {
	picked, note := selectFlight(nil, 500)
	if picked != nil {
		t.Fatal("expected no selection from an empty list")
	}
	if note == "" {
		t.Error("expected an explanatory note for an empty list")
	}
}

// TestSelectFlightTieBreak pins the documented tie-break: identical scores
// resolve to the lexicographically lowest candidate ID.
func TestSelectFlightTieBreak(t *testing.T) {
	// identical price and stops → identical scores
	flights := []search.Flight{
		{ID: "FL-B", Price: 500, Stops: 0},
		{ID: "FL-A", Price: 500, Stops: 0},
	}
	picked, _ := selectFlight(flights, 600)
	if picked == nil || picked.ID != "FL-A" {
		t.Fatalf("tie must break to the lowest ID, got %v", picked)
	}
}

func TestSelectHotelRatingDominates(t *testing.T) {
	// scores: 4.5*-100+150 = -300 vs 4.0*-100+80 = -320 → lower nightly with
	// the lower rating still loses because a half star outweighs $70/night
	hotels := []search.Hotel{
		{ID: "HT-1", Nightly: 150, Rating: 4.5},
		{ID: "HT-2", Nightly: 80, Rating: 4.0},
	}
	picked, _ := selectHotel(hotels, 2000, 7)
	if picked == nil || picked.ID != "HT-2" {
		t.Fatalf("expected HT-2 (score -320), got %v", picked)
	}

	// at equal ratings the cheaper hotel wins
	hotels = []search.Hotel{
		{ID: "HT-1", Nightly: 150, Rating: 4.5},
		{ID: "HT-2", Nightly: 120, Rating: 4.5},
	}
	picked, _ = selectHotel(hotels, 2000, 7)
	if picked == nil || picked.ID != "HT-2" {
		t.Fatalf("expected the cheaper hotel at equal rating, got %v", picked)
	}
}

// TestSelectHotelCostIsNightlyTimesDuration verifies affordability is judged
// on the whole stay, not the nightly rate.
func TestSelectHotelCostIsNightlyTimesDuration(t *testing.T) {
	hotels := []search.Hotel{
		{ID: "HT-1", Nightly: 120, Rating: 4.8},
	}
	// 120 * 10 = 1200 > 1000 → unaffordable despite nightly < ceiling
	picked, note := selectHotel(hotels, 1000, 10)
	if picked != nil {
		t.Fatalf("expected no selection, got %s", picked.ID)
	}
	if !strings.Contains(note, "1200.00") {
		t.Errorf("note should name the full-stay cost, got %q", note)
	}

	// the same hotel fits a shorter stay
	picked, _ = selectHotel(hotels, 1000, 8)
	if picked == nil {
		t.Fatal("expected a selection for the shorter stay")
	}
}
