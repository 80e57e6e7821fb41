package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// bb8Engine is the two-parameter BB8 (Joe copula with a mixing
// parameter) family, generator
// phi(t) = -ln[(1-(1-eta*t)^theta) / (1-(1-eta)^theta)],
// eta = 1-(1-delta)^theta, theta >= 1, delta in (0,1].
type bb8Engine struct{}

func (bb8Engine) family() Family { return BB8 }

func bb8Eta(theta []float64) float64 {
	th, de := theta[0], theta[1]
	return 1 - math.Pow(1-de, th)
}

func (bb8Engine) phi(t float64, theta []float64) float64 {
	th := theta[0]
	eta := bb8Eta(theta)
	g := 1 - eta*t
	num := 1 - math.Pow(g, th)
	den := 1 - math.Pow(1-eta, th)
	return -math.Log(num / den)
}

func (bb8Engine) phiInv(s float64, theta []float64) float64 {
	th := theta[0]
	eta := bb8Eta(theta)
	den := 1 - math.Pow(1-eta, th)
	g := math.Pow(1-den*math.Exp(-s), 1/th)
	return (1 - g) / eta
}

func (bb8Engine) phiPrime(t float64, theta []float64) float64 {
	th := theta[0]
	eta := bb8Eta(theta)
	g := 1 - eta*t
	n := -th * eta * math.Pow(g, th-1)
	d := 1 - math.Pow(g, th)
	return n / d
}

func (bb8Engine) phiDoublePrime(t float64, theta []float64) float64 {
	th := theta[0]
	eta := bb8Eta(theta)
	g := 1 - eta*t
	n := -th * eta * math.Pow(g, th-1)
	d := 1 - math.Pow(g, th)
	nPrime := th * eta * eta * (th - 1) * math.Pow(g, th-2)
	dPrime := -n
	return (nPrime*d - n*dPrime) / (d * d)
}

func (e bb8Engine) cdf(u [2]float64, theta []float64) float64 { return archCDF(e, u, theta) }
func (e bb8Engine) pdf(u [2]float64, theta []float64) float64 { return archPDF(e, u, theta) }
func (e bb8Engine) h1(u [2]float64, theta []float64) float64  { return archH1(e, u, theta) }
func (e bb8Engine) h2(u [2]float64, theta []float64) float64  { return archH2(e, u, theta) }

func (e bb8Engine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(e, u1, q, theta)
}

func (e bb8Engine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(e, u1, q, theta)
}

func (bb8Engine) bounds() (lower, upper []float64) {
	return []float64{1 + 1e-4, 1e-4}, []float64{6, 1}
}

func (e bb8Engine) startingValues(tau float64) []float64 {
	theta, _ := e.tauToParameters(math.Abs(tau))
	return theta
}

func (bb8Engine) npars(theta []float64) float64 { return 2 }

func (e bb8Engine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	de := 0.8
	g := func(th float64) float64 { return archTauFromGenerator(e, []float64{th, de}) }
	th := numeric.BisectMonotone(g, tau, 1+1e-4, 6, 50)
	return []float64{th, de}, nil
}

func (e bb8Engine) parametersToTau(theta []float64) (float64, error) {
	return archTauFromGenerator(e, theta), nil
}
