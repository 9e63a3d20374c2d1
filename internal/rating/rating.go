// Package rating implements the composite true-rating update plus the three
// reference systems (Elo, Glicko, TrueSkill) kept for comparison.
package rating

// The rating scale tops out at 3000; the auxiliary systems' spread
// parameters are derived from that so 3 standard deviations cover it.
const (
	MaxRating = 3000.0

	GlickoMaxRD = 350.0
	GlickoMinRD = 50.0

	TSMaxSigma = MaxRating / 6
	TSMinSigma = MaxRating / 60
	TSBeta     = TSMaxSigma / 2
	TSTau      = TSMaxSigma / 100

	EloKFactor = 20.0
)

// Outcome is a placement comparison against one opposing team.
type Outcome int

const (
	Lost Outcome = iota
	Tied
	Won
)

func (o Outcome) score() float64 {
	switch o {
	case Won:
		return 1
	case Tied:
		return 0.5
	default:
		return 0
	}
}

// Compare derives the outcome from two placements (1 = best).
func Compare(placement, oppPlacement int) Outcome {
	switch {
	case placement < oppPlacement:
		return Won
	case placement == oppPlacement:
		return Tied
	default:
		return Lost
	}
}
