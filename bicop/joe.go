package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// joeEngine is the Joe copula, generator phi(t) = -ln(1-(1-t)^theta),
// theta >= 1. Joe has no closed form for tau, so tau is obtained from
// the generic Archimedean quadrature identity and inverted by
// bisection, same as the BB families.
type joeEngine struct{}

func (joeEngine) family() Family { return Joe }

func (joeEngine) phi(t float64, theta []float64) float64 {
	th := theta[0]
	return -math.Log(1 - math.Pow(1-t, th))
}

func (joeEngine) phiInv(s float64, theta []float64) float64 {
	th := theta[0]
	return 1 - math.Pow(1-math.Exp(-s), 1/th)
}

func (joeEngine) phiPrime(t float64, theta []float64) float64 {
	th := theta[0]
	n := th * math.Pow(1-t, th-1)
	d := 1 - math.Pow(1-t, th)
	return -n / d
}

func (joeEngine) phiDoublePrime(t float64, theta []float64) float64 {
	th := theta[0]
	n := th * math.Pow(1-t, th-1)
	d := 1 - math.Pow(1-t, th)
	nPrime := -th * (th - 1) * math.Pow(1-t, th-2)
	dPrime := n
	return (n*dPrime - nPrime*d) / (d * d)
}

func (e joeEngine) cdf(u [2]float64, theta []float64) float64 { return archCDF(e, u, theta) }
func (e joeEngine) pdf(u [2]float64, theta []float64) float64 { return archPDF(e, u, theta) }
func (e joeEngine) h1(u [2]float64, theta []float64) float64  { return archH1(e, u, theta) }
func (e joeEngine) h2(u [2]float64, theta []float64) float64  { return archH2(e, u, theta) }

func (e joeEngine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(e, u1, q, theta)
}

func (e joeEngine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(e, u1, q, theta)
}

func (joeEngine) bounds() (lower, upper []float64) {
	return []float64{1 + 1e-6}, []float64{50}
}

func (e joeEngine) startingValues(tau float64) []float64 {
	theta, _ := e.tauToParameters(math.Abs(tau))
	return theta
}

func (joeEngine) npars(theta []float64) float64 { return 1 }

func (e joeEngine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	g := func(th float64) float64 { return archTauFromGenerator(e, []float64{th}) }
	th := numeric.BisectMonotone(g, tau, 1+1e-6, 50, 60)
	return []float64{th}, nil
}

func (e joeEngine) parametersToTau(theta []float64) (float64, error) {
	return archTauFromGenerator(e, theta), nil
}
