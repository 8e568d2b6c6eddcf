// README: Keyword-based region classification with per-day minimum costs.
package planner

import "strings"

// Region is a destination cost class.
type Region struct {
	Tag    string
	PerDay float64
}

type regionRule struct {
	keywords []string
	region   Region
}

// regionRules is evaluated top to bottom; the first rule with a keyword that
// appears in the lowercased destination wins. The final rule has no keywords
// and acts as the explicit default, so a lookup never fails.
var regionRules = []regionRule{
	{
		keywords: []string{"paris", "france", "london", "uk", "england", "rome", "italy", "barcelona", "madrid", "spain", "berlin", "germany", "amsterdam", "netherlands", "vienna", "austria", "prague", "lisbon", "portugal", "europe"},
		region:   Region{Tag: "europe", PerDay: 150},
	},
	{
		keywords: []string{"tokyo", "japan", "bangkok", "thailand", "bali", "indonesia", "seoul", "korea", "singapore", "hanoi", "vietnam", "delhi", "mumbai", "india", "beijing", "shanghai", "china", "taipei", "taiwan", "asia"},
		region:   Region{Tag: "asia", PerDay: 100},
	},
	{
		keywords: []string{"new york", "los angeles", "chicago", "miami", "usa", "united states", "toronto", "vancouver", "canada", "mexico"},
		region:   Region{Tag: "north_america", PerDay: 130},
	},
	{
		keywords: []string{"rio", "brazil", "buenos aires", "argentina", "lima", "peru", "bogota", "colombia", "santiago", "chile"},
		region:   Region{Tag: "south_america", PerDay: 80},
	},
	{
		keywords: []string{"cairo", "egypt", "marrakech", "morocco", "cape town", "south africa", "nairobi", "kenya"},
		region:   Region{Tag: "africa", PerDay: 90},
	},
	{
		keywords: []string{"sydney", "melbourne", "australia", "auckland", "new zealand", "fiji"},
		region:   Region{Tag: "oceania", PerDay: 140},
	},
	// default: matches everything
	{
		region: Region{Tag: "other", PerDay: 120},
	},
}

// LookupRegion classifies a destination by case-insensitive substring match.
// Unrecognized destinations fall back to the default region.
func LookupRegion(destination string) Region {
	needle := strings.ToLower(destination)
	for _, rule := range regionRules {
		if len(rule.keywords) == 0 {
			return rule.region
		}
		for _, kw := range rule.keywords {
			if strings.Contains(needle, kw) {
				return rule.region
			}
		}
	}
	// unreachable: the default rule always matches
	return Region{Tag: "other", PerDay: 120}
}

// cheaperRegions returns the distinct regions whose per-day minimum is below
// the given amount, in table order. Used by the alternatives fallback.
func cheaperRegions(perDay float64) []Region {
	var out []Region
	for _, rule := range regionRules {
		if len(rule.keywords) == 0 {
			continue
		}
		if rule.region.PerDay < perDay {
			out = append(out, rule.region)
		}
	}
	return out
}
