package rating

import "math"

// Elo is a parameterized Elo updater. MinRating replaces the library-style
// hardcoded floor: the update never returns a rating below it.
type Elo struct {
	K         float64
	MinRating float64
}

// Expected returns the expected score of a player rated r against opp.
func (e Elo) Expected(r, opp float64) float64 {
	return 1 / (1 + math.Pow(10, (opp-r)/400))
}

// Update applies one game result and returns the new rating.
func (e Elo) Update(r, opp float64, o Outcome) float64 {
	next := r + e.K*(o.score()-e.Expected(r, opp))
	if next < e.MinRating {
		return e.MinRating
	}
	return next
}
