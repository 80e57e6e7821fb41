package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// bb7Engine is the two-parameter BB7 (Joe-Clayton) family, generator
// phi(t) = p(t)^-delta - 1 where p(t) = 1-(1-t)^theta. It nests Joe at
// delta->0 and Clayton-like tail behavior as delta grows.
type bb7Engine struct{}

func (bb7Engine) family() Family { return BB7 }

func bb7P(t, th float64) (p, pPrime, pDoublePrime float64) {
	p = 1 - math.Pow(1-t, th)
	pPrime = th * math.Pow(1-t, th-1)
	pDoublePrime = -th * (th - 1) * math.Pow(1-t, th-2)
	return
}

func (bb7Engine) phi(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	p, _, _ := bb7P(t, th)
	return math.Pow(p, -de) - 1
}

func (bb7Engine) phiInv(s float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	p := math.Pow(1+s, -1/de)
	return 1 - math.Pow(1-p, 1/th)
}

func (bb7Engine) phiPrime(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	p, pPrime, _ := bb7P(t, th)
	return -de * math.Pow(p, -de-1) * pPrime
}

func (bb7Engine) phiDoublePrime(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	p, pPrime, pDoublePrime := bb7P(t, th)
	return de*(de+1)*math.Pow(p, -de-2)*pPrime*pPrime - de*math.Pow(p, -de-1)*pDoublePrime
}

func (e bb7Engine) cdf(u [2]float64, theta []float64) float64 { return archCDF(e, u, theta) }
func (e bb7Engine) pdf(u [2]float64, theta []float64) float64 { return archPDF(e, u, theta) }
func (e bb7Engine) h1(u [2]float64, theta []float64) float64  { return archH1(e, u, theta) }
func (e bb7Engine) h2(u [2]float64, theta []float64) float64  { return archH2(e, u, theta) }

func (e bb7Engine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(e, u1, q, theta)
}

func (e bb7Engine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(e, u1, q, theta)
}

func (bb7Engine) bounds() (lower, upper []float64) {
	return []float64{1 + 1e-4, 1e-4}, []float64{6, 7}
}

func (e bb7Engine) startingValues(tau float64) []float64 {
	theta, _ := e.tauToParameters(math.Abs(tau))
	return theta
}

func (bb7Engine) npars(theta []float64) float64 { return 2 }

func (e bb7Engine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	de := 1.0
	g := func(th float64) float64 { return archTauFromGenerator(e, []float64{th, de}) }
	th := numeric.BisectMonotone(g, tau, 1+1e-4, 6, 50)
	return []float64{th, de}, nil
}

func (e bb7Engine) parametersToTau(theta []float64) (float64, error) {
	return archTauFromGenerator(e, theta), nil
}
