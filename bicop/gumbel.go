package bicop

import "math"

// gumbelEngine is the Gumbel copula, generator phi(t) = (-ln t)^theta.
// pdf/cdf/h1/h2 use the closed forms below rather than the generic
// archPDF/archH1/archH2 helpers (faster, and avoids cancellation in the
// generic second-derivative identity for this family); hinv has no
// closed form and falls back to the generic bisection in archimedean.go.
type gumbelEngine struct{}

func (gumbelEngine) family() Family { return Gumbel }

func (gumbelEngine) phi(t float64, theta []float64) float64 {
	return math.Pow(-math.Log(t), theta[0])
}

func (gumbelEngine) phiInv(s float64, theta []float64) float64 {
	return math.Exp(-math.Pow(s, 1/theta[0]))
}

func (gumbelEngine) phiPrime(t float64, theta []float64) float64 {
	th := theta[0]
	return -th * math.Pow(-math.Log(t), th-1) / t
}

func (gumbelEngine) phiDoublePrime(t float64, theta []float64) float64 {
	th := theta[0]
	lt := -math.Log(t)
	return th*(th-1)*math.Pow(lt, th-2)/(t*t) + th*math.Pow(lt, th-1)/(t*t)
}

func gumbelA(u [2]float64, th float64) float64 {
	return math.Pow(-math.Log(u[0]), th) + math.Pow(-math.Log(u[1]), th)
}

func (gumbelEngine) cdf(u [2]float64, theta []float64) float64 {
	th := theta[0]
	a := gumbelA(u, th)
	return clampUnit(math.Exp(-math.Pow(a, 1/th)))
}

func (gumbelEngine) pdf(u [2]float64, theta []float64) float64 {
	th := theta[0]
	a := gumbelA(u, th)
	c := math.Exp(-math.Pow(a, 1/th))
	lnu, lnv := -math.Log(u[0]), -math.Log(u[1])
	d := c / (u[0] * u[1]) * math.Pow(lnu*lnv, th-1) * math.Pow(a, 1/th-2) * (math.Pow(a, 1/th) + th - 1)
	return capDensity(d)
}

func (gumbelEngine) h1(u [2]float64, theta []float64) float64 {
	th := theta[0]
	a := gumbelA(u, th)
	c := math.Exp(-math.Pow(a, 1/th))
	lnu := -math.Log(u[0])
	v := c / u[0] * math.Pow(lnu, th-1) * math.Pow(a, 1/th-1)
	return clampUnit(v)
}

func (gumbelEngine) h2(u [2]float64, theta []float64) float64 {
	return gumbelEngine{}.h1([2]float64{u[1], u[0]}, theta)
}

func (gumbelEngine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(gumbelEngine{}, u1, q, theta)
}

func (gumbelEngine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(gumbelEngine{}, u1, q, theta)
}

func (gumbelEngine) bounds() (lower, upper []float64) {
	return []float64{1 + 1e-6}, []float64{50}
}

func (gumbelEngine) startingValues(tau float64) []float64 {
	theta, _ := gumbelEngine{}.tauToParameters(math.Abs(tau))
	return theta
}

func (gumbelEngine) npars(theta []float64) float64 { return 1 }

func (gumbelEngine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	return []float64{1 / (1 - tau)}, nil
}

func (gumbelEngine) parametersToTau(theta []float64) (float64, error) {
	th := theta[0]
	return (th - 1) / th, nil
}
