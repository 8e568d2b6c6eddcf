// README: Affordability filtering and deterministic best-candidate selection.
package planner

import (
	"fmt"

	"tripcraft/internal/search"
)

// scoredCandidate is the shared shape both selectors reduce their inputs to.
type scoredCandidate struct {
	id    string
	cost  float64
	score float64
}

// pickBest filters candidates whose cost fits the ceiling and returns the id
// of the lowest-scoring one. Score ties break on the lexicographically lowest
// id so repeated runs always agree. The second return is false when nothing
// is affordable; cheapest then carries the lowest cost seen overall.
func pickBest(cands []scoredCandidate, ceiling float64) (bestID string, ok bool, cheapest float64) {
	var best scoredCandidate
	for i, c := range cands {
		if i == 0 || c.cost < cheapest {
			cheapest = c.cost
		}
		if c.cost > ceiling {
			continue
		}
		if !ok || c.score < best.score || (c.score == best.score && c.id < best.id) {
			best = c
			ok = true
		}
	}
	return best.id, ok, cheapest
}

// flightScore ranks flights: lower price and fewer stops both lower the score.
func flightScore(f search.Flight) float64 {
	return f.Price*0.7 + float64(f.Stops)*100
}

// hotelScore ranks hotels: a higher rating dominates, nightly price breaks
// ties among similar ratings.
func hotelScore(h search.Hotel) float64 {
	return h.Rating*(-100) + h.Nightly
}

// selectFlight picks the best affordable flight against the ceiling.
// When nothing is affordable it returns a nil selection and a note naming
// the cheapest fare versus the ceiling.
func selectFlight(flights []search.Flight, ceiling float64) (*search.Flight, string) {
	if len(flights) == 0 {
		return nil, "no flight options were returned for this destination"
	}
	cands := make([]scoredCandidate, len(flights))
	for i, f := range flights {
		cands[i] = scoredCandidate{id: string(f.ID), cost: f.Price, score: flightScore(f)}
	}
	bestID, ok, cheapest := pickBest(cands, ceiling)
	if !ok {
		return nil, fmt.Sprintf("no affordable flight: the cheapest fare is $%.2f against a flight budget of $%.2f", cheapest, ceiling)
	}
	for i := range flights {
		if string(flights[i].ID) == bestID {
			picked := flights[i]
			return &picked, ""
		}
	}
	return nil, ""
}

// selectHotel picks the best affordable hotel; cost is nightly price times
// the stay length.
func selectHotel(hotels []search.Hotel, ceiling float64, nights int) (*search.Hotel, string) {
	if len(hotels) == 0 {
		return nil, "no hotel options were returned for this destination"
	}
	cands := make([]scoredCandidate, len(hotels))
	for i, h := range hotels {
		cands[i] = scoredCandidate{id: string(h.ID), cost: h.Nightly * float64(nights), score: hotelScore(h)}
	}
	bestID, ok, cheapest := pickBest(cands, ceiling)
	if !ok {
		return nil, fmt.Sprintf("no affordable hotel: the cheapest stay costs $%.2f against an accommodation budget of $%.2f", cheapest, ceiling)
	}
	for i := range hotels {
		if string(hotels[i].ID) == bestID {
			picked := hotels[i]
			return &picked, ""
		}
	}
	return nil, ""
}
