package bicop

import "math"

// bb1Engine is the two-parameter BB1 family, generator
// phi(t) = (t^-theta - 1)^delta, theta > 0, delta >= 1. It nests
// Clayton at delta=1.
type bb1Engine struct{}

func (bb1Engine) family() Family { return BB1 }

func (bb1Engine) phi(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	return math.Pow(math.Pow(t, -th)-1, de)
}

func (bb1Engine) phiInv(s float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	return math.Pow(1+math.Pow(s, 1/de), -1/th)
}

func (bb1Engine) phiPrime(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	a := math.Pow(t, -th) - 1
	return -th * de * math.Pow(t, -th-1) * math.Pow(a, de-1)
}

func (bb1Engine) phiDoublePrime(t float64, theta []float64) float64 {
	th, de := theta[0], theta[1]
	a := math.Pow(t, -th) - 1
	term1 := th * de * (th + 1) * math.Pow(t, -th-2) * math.Pow(a, de-1)
	term2 := th * th * de * (de - 1) * math.Pow(t, -2*th-2) * math.Pow(a, de-2)
	return term1 + term2
}

func (e bb1Engine) cdf(u [2]float64, theta []float64) float64 { return archCDF(e, u, theta) }
func (e bb1Engine) pdf(u [2]float64, theta []float64) float64 { return archPDF(e, u, theta) }
func (e bb1Engine) h1(u [2]float64, theta []float64) float64  { return archH1(e, u, theta) }
func (e bb1Engine) h2(u [2]float64, theta []float64) float64  { return archH2(e, u, theta) }

func (e bb1Engine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(e, u1, q, theta)
}

func (e bb1Engine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(e, u1, q, theta)
}

func (bb1Engine) bounds() (lower, upper []float64) {
	return []float64{1e-4, 1}, []float64{7, 7}
}

func (e bb1Engine) startingValues(tau float64) []float64 {
	theta, _ := e.tauToParameters(math.Abs(tau))
	return theta
}

func (bb1Engine) npars(theta []float64) float64 { return 2 }

// tauToParameters fixes delta at a conventional starting value (1.2)
// and solves theta from BB1's tau identity
// tau = 1 - 2/(delta*(theta+2)) at that delta.
func (e bb1Engine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	de := 1.2
	th := 2 / (de * (1 - tau)) - 2
	th = math.Max(th, 1e-3)
	return []float64{th, de}, nil
}

func (e bb1Engine) parametersToTau(theta []float64) (float64, error) {
	th, de := theta[0], theta[1]
	return 1 - 2/(de*(th+2)), nil
}
