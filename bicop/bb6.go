package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// bb6Engine is the two-parameter BB6 family, generator
// phi(t) = m(t)^delta where m is the Joe generator with parameter
// theta. It nests Joe at delta=1.
type bb6Engine struct{}

func (bb6Engine) family() Family { return BB6 }

func bb6Inner(t float64, th float64) (m, mPrime, mDoublePrime float64) {
	j := joeEngine{}
	return j.phi(t, []float64{th}), j.phiPrime(t, []float64{th}), j.phiDoublePrime(t, []float64{th})
}

func (bb6Engine) phi(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	m, _, _ := bb6Inner(t, th)
	return math.Pow(m, de)
}

func (bb6Engine) phiInv(s float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	j := joeEngine{}
	return j.phiInv(math.Pow(s, 1/de), []float64{th})
}

func (bb6Engine) phiPrime(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	m, mPrime, _ := bb6Inner(t, th)
	return de * math.Pow(m, de-1) * mPrime
}

func (bb6Engine) phiDoublePrime(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	m, mPrime, mDoublePrime := bb6Inner(t, th)
	return de*(de-1)*math.Pow(m, de-2)*mPrime*mPrime + de*math.Pow(m, de-1)*mDoublePrime
}

func (e bb6Engine) cdf(u [2]float64, theta []float64) float64 { return archCDF(e, u, theta) }
func (e bb6Engine) pdf(u [2]float64, theta []float64) float64 { return archPDF(e, u, theta) }
func (e bb6Engine) h1(u [2]float64, theta []float64) float64  { return archH1(e, u, theta) }
func (e bb6Engine) h2(u [2]float64, theta []float64) float64  { return archH2(e, u, theta) }

func (e bb6Engine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(e, u1, q, theta)
}

func (e bb6Engine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(e, u1, q, theta)
}

func (bb6Engine) bounds() (lower, upper []float64) {
	return []float64{1 + 1e-4, 1}, []float64{6, 6}
}

func (e bb6Engine) startingValues(tau float64) []float64 {
	theta, _ := e.tauToParameters(math.Abs(tau))
	return theta
}

func (bb6Engine) npars(theta []float64) float64 { return 2 }

// tauToParameters fixes delta at a conventional starting value and
// solves theta from the generic Archimedean tau identity, matching the
// Joe starting point BB6 nests at delta=1.
func (e bb6Engine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	de := 1.2
	g := func(th float64) float64 { return archTauFromGenerator(e, []float64{th, de}) }
	th := numeric.BisectMonotone(g, tau, 1+1e-4, 6, 50)
	return []float64{th, de}, nil
}

func (e bb6Engine) parametersToTau(theta []float64) (float64, error) {
	return archTauFromGenerator(e, theta), nil
}
