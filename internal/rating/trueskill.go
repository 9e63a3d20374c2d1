package rating

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TrueSkill performs a two-team mean/deviation update. A player's skill is
// (Mu, Sigma); each opposing team is summarized by its average Mu/Sigma.
type TrueSkill struct {
	Beta     float64
	Tau      float64
	DrawProb float64
}

var unitNormal = distuv.UnitNormal

// DrawMargin returns the performance margin inside which a game counts as a
// draw, for teams of the given sizes.
func (t TrueSkill) DrawMargin(size1, size2 int) float64 {
	if t.DrawProb <= 0 {
		return 0
	}
	return unitNormal.Quantile((t.DrawProb+1)/2) * math.Sqrt(float64(size1+size2)) * t.Beta
}

// InflateSigma widens a skill deviation for days spent idle, mirroring the
// per-period dynamics factor.
func (t TrueSkill) InflateSigma(sigma float64, idleDays int) float64 {
	if idleDays < 0 {
		idleDays = 0
	}
	return math.Sqrt(sigma*sigma + float64(idleDays)*t.Tau*t.Tau)
}

// Update applies one placement comparison against an opposing team and
// returns the new (mu, sigma).
func (t TrueSkill) Update(mu, sigma, oppMu, oppSigma float64, size1, size2 int, o Outcome) (float64, float64) {
	sigma2 := sigma*sigma + t.Tau*t.Tau
	c := math.Sqrt(2*t.Beta*t.Beta + sigma2 + oppSigma*oppSigma)
	eps := t.DrawMargin(size1, size2) / c

	diff := (mu - oppMu) / c
	if o == Lost {
		diff = -diff
	}

	var v, w float64
	if o == Tied {
		v, w = vwDraw(diff, eps)
	} else {
		v, w = vwWin(diff, eps)
	}

	delta := sigma2 / c * v
	if o == Lost {
		delta = -delta
	}

	newMu := mu + delta
	newSigma2 := sigma2 * (1 - sigma2/(c*c)*w)
	if newSigma2 < TSMinSigma*TSMinSigma {
		newSigma2 = TSMinSigma * TSMinSigma
	}
	return newMu, math.Sqrt(newSigma2)
}

// vwWin are the additive/multiplicative truncated-Gaussian correction terms
// for a decisive result.
func vwWin(diff, eps float64) (float64, float64) {
	x := diff - eps
	denom := unitNormal.CDF(x)
	if denom < 1e-10 {
		v := -x
		return v, v * (v + x)
	}
	v := unitNormal.Prob(x) / denom
	return v, v * (v + x)
}

// vwDraw are the correction terms for a drawn result.
func vwDraw(diff, eps float64) (float64, float64) {
	absDiff := math.Abs(diff)
	a := eps - absDiff
	b := -eps - absDiff
	denom := unitNormal.CDF(a) - unitNormal.CDF(b)
	if denom < 1e-10 {
		v := a
		if diff < 0 {
			v = -v
		}
		return v, 1
	}
	v := (unitNormal.Prob(b) - unitNormal.Prob(a)) / denom
	if diff < 0 {
		v = -v
	}
	w := v*v + (a*unitNormal.Prob(a)-b*unitNormal.Prob(b))/denom
	return v, w
}
