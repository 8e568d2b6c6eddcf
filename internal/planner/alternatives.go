// README: Alternative suggestions for infeasible budgets, with a templated fallback.
package planner

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// adviseAlternatives runs when the budget cannot cover the destination's
// minimum. It asks the generation service for suggestions seeded with the
// deficit and falls back to a deterministic list on any failure.
func (d *Driver) adviseAlternatives(ctx context.Context, rec Record) Record {
	if d.gen != nil {
		genCtx, cancel := context.WithTimeout(ctx, d.genTimeout)
		defer cancel()

		result, err := d.gen.Generate(genCtx, buildAlternativesPrompt(rec))
		if err == nil && strings.TrimSpace(result.Text) != "" {
			if d.usage != nil {
				d.usage.RecordUsage(ctx, "alternatives", result.Usage)
			}
			rec.Alternatives = strings.TrimSpace(result.Text)
			return rec
		}
		log.Printf("alternatives generation failed, using template: %v", err)
	}

	rec.Alternatives = fallbackAlternatives(rec)
	return rec
}

func buildAlternativesPrompt(rec Record) string {
	deficit := round2(rec.MinimumRequired - rec.Budget)
	var b strings.Builder
	fmt.Fprintf(&b, "A traveller wants %d days in %s with a $%.2f budget, but that region needs at least $%.2f per day ($%.2f total), a shortfall of $%.2f.\n",
		rec.DurationDays, rec.Destination, rec.Budget, rec.PerDayMinimum, rec.MinimumRequired, deficit)
	b.WriteString("Suggest, as three short sections: cheaper comparable destinations, a shorter trip to the same destination that the budget covers, and practical ways to cut the cost of the original plan.")
	return b.String()
}

// fallbackAlternatives covers the same three sections as the generated text
// using only numbers already on the record.
func fallbackAlternatives(rec Record) string {
	deficit := round2(rec.MinimumRequired - rec.Budget)

	var b strings.Builder
	fmt.Fprintf(&b, "Your $%.2f budget is $%.2f short of the $%.2f a %d-day trip to %s typically needs.\n\n",
		rec.Budget, deficit, rec.MinimumRequired, rec.DurationDays, rec.Destination)

	b.WriteString("Cheaper destinations:\n")
	cheaper := cheaperRegions(rec.PerDayMinimum)
	if len(cheaper) == 0 {
		b.WriteString("- You are already targeting the cheapest region; consider smaller cities away from the capital.\n")
	} else {
		for _, r := range cheaper {
			fmt.Fprintf(&b, "- %s (from $%.0f/day; %d days would need about $%.2f)\n",
				regionLabel(r.Tag), r.PerDay, rec.DurationDays, round2(r.PerDay*float64(rec.DurationDays)))
		}
	}

	b.WriteString("\nShorter trip:\n")
	if days := int(rec.Budget / rec.PerDayMinimum); days >= 1 {
		fmt.Fprintf(&b, "- Your budget covers about %d day(s) in %s ($%.0f/day).\n", days, rec.Destination, rec.PerDayMinimum)
	} else {
		fmt.Fprintf(&b, "- Even a single day in %s needs about $%.0f; consider saving toward $%.2f first.\n",
			rec.Destination, rec.PerDayMinimum, rec.MinimumRequired)
	}

	b.WriteString("\nWays to cut costs:\n")
	b.WriteString("- Travel in shoulder season when flights and rooms are cheaper.\n")
	b.WriteString("- Book hostels or apartments with a kitchen and cook some meals.\n")
	b.WriteString("- Use budget airlines and accept one stopover.\n")
	b.WriteString("- Favour free walking tours, parks, and markets over paid attractions.")
	return b.String()
}

// regionLabel turns a region tag into display text ("south_america" → "South America").
func regionLabel(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
