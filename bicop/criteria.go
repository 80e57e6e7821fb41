package bicop

import "math"

// LogLikelihood sums log c(u,v) over the given pseudo-observations.
func (b *Bicop) LogLikelihood(data [][2]float64) float64 {
	ll := 0.0
	for _, u := range data {
		d := b.PDF(u)
		if d <= 0 {
			continue
		}
		ll += math.Log(d)
	}
	return ll
}

// AIC returns -2*loglik + 2*npars.
func (b *Bicop) AIC(data [][2]float64) float64 {
	return -2*b.LogLikelihood(data) + 2*b.npars
}

// BIC returns -2*loglik + npars*ln(n).
func (b *Bicop) BIC(data [][2]float64) float64 {
	n := float64(len(data))
	return -2*b.LogLikelihood(data) + b.npars*math.Log(n)
}

// MBIC returns the modified BIC that penalizes non-independence
// families by a prior probability psi0 the structure-selection step
// assigns to a non-independence copula; psi0=0.5 recovers ordinary BIC
// behavior for the comparison between independence and one
// alternative.
func (b *Bicop) MBIC(data [][2]float64, psi0 float64) float64 {
	bic := b.BIC(data)
	if b.family == Indep {
		return bic - 2*math.Log(1-psi0)
	}
	return bic - 2*math.Log(psi0)
}
