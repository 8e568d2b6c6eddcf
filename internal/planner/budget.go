// README: Budget feasibility analysis and category breakdown.
package planner

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrNegativeBudget  = errors.New("budget must not be negative")
	ErrInvalidDuration = errors.New("duration must be at least 1 day")
	ErrNoDestination   = errors.New("destination is required")
)

// Budget split percentages across the four categories.
const (
	flightsShare       = 0.40
	accommodationShare = 0.35
	activitiesShare    = 0.15
	foodShare          = 0.10
)

// ValidateRequest rejects invalid input before any stage runs.
func ValidateRequest(req Request) error {
	if trimmedEmpty(req.Destination) {
		return ErrNoDestination
	}
	if req.Budget < 0 {
		return ErrNegativeBudget
	}
	if req.DurationDays < 1 {
		return ErrInvalidDuration
	}
	return nil
}

// analyzeBudget classifies the destination, computes the minimum spend the
// region demands for the requested duration, and splits the budget across
// categories. A budget exactly equal to the minimum is feasible.
func analyzeBudget(rec Record) Record {
	region := LookupRegion(rec.Destination)
	rec.Region = region.Tag
	rec.PerDayMinimum = region.PerDay
	rec.MinimumRequired = round2(region.PerDay * float64(rec.DurationDays))
	rec.Feasible = rec.Budget >= rec.MinimumRequired
	rec.Breakdown = splitBudget(rec.Budget)
	return rec
}

// splitBudget allocates the total across categories, rounding each amount to
// cents. The rounding remainder is absorbed into flights (the largest share)
// so the four amounts sum to round2(total) exactly.
func splitBudget(total float64) Breakdown {
	b := Breakdown{
		Accommodation: round2(total * accommodationShare),
		Activities:    round2(total * activitiesShare),
		Food:          round2(total * foodShare),
	}
	b.Flights = round2(round2(total) - b.Accommodation - b.Activities - b.Food)
	return b
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func trimmedEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
