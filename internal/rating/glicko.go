package rating

import (
	"math"
	"time"
)

// glickoQ is the Glicko scale constant ln(10)/400.
var glickoQ = math.Ln10 / 400

// Glicko is a parameterized Glicko-1 updater with time-based rating
// deviation inflation. MinRating floors the returned rating; RD is kept in
// [MinRD, MaxRD].
type Glicko struct {
	MinRating float64
	MinRD     float64
	MaxRD     float64

	// C is the daily RD inflation constant. The zero value picks a rate
	// that grows MinRD back to MaxRD over roughly one year idle.
	C float64
}

func (g Glicko) c() float64 {
	if g.C > 0 {
		return g.C
	}
	return math.Sqrt((g.MaxRD*g.MaxRD - g.MinRD*g.MinRD) / 365)
}

// InflateRD widens a rating deviation for time spent not playing.
func (g Glicko) InflateRD(rd float64, idle time.Duration) float64 {
	days := idle.Hours() / 24
	if days < 0 {
		days = 0
	}
	c := g.c()
	inflated := math.Sqrt(rd*rd + c*c*days)
	return clamp(inflated, g.MinRD, g.MaxRD)
}

// Update applies one game result against a single opponent and returns the
// new rating and rating deviation. Callers inflate both RDs first.
func (g Glicko) Update(r, rd, oppR, oppRD float64, o Outcome) (float64, float64) {
	rd = clamp(rd, g.MinRD, g.MaxRD)
	oppRD = clamp(oppRD, g.MinRD, g.MaxRD)

	gOpp := 1 / math.Sqrt(1+3*glickoQ*glickoQ*oppRD*oppRD/(math.Pi*math.Pi))
	e := 1 / (1 + math.Pow(10, -gOpp*(r-oppR)/400))
	d2 := 1 / (glickoQ * glickoQ * gOpp * gOpp * e * (1 - e))

	denom := 1/(rd*rd) + 1/d2
	next := r + glickoQ/denom*gOpp*(o.score()-e)
	nextRD := math.Sqrt(1 / denom)

	if next < g.MinRating {
		next = g.MinRating
	}
	return next, clamp(nextRD, g.MinRD, g.MaxRD)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
