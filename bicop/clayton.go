package bicop

import "math"

// claytonEngine is the Clayton copula, generator phi(t) = t^-theta - 1.
type claytonEngine struct{}

func (claytonEngine) family() Family { return Clayton }

func (claytonEngine) phi(t float64, theta []float64) float64 {
	return math.Pow(t, -theta[0]) - 1
}

func (claytonEngine) phiInv(s float64, theta []float64) float64 {
	return math.Pow(1+s, -1/theta[0])
}

func (claytonEngine) phiPrime(t float64, theta []float64) float64 {
	return -theta[0] * math.Pow(t, -theta[0]-1)
}

func (claytonEngine) phiDoublePrime(t float64, theta []float64) float64 {
	th := theta[0]
	return th * (th + 1) * math.Pow(t, -th-2)
}

func (claytonEngine) pdf(u [2]float64, theta []float64) float64 {
	th := theta[0]
	d := (1 + th) * math.Pow(u[0]*u[1], -th-1) * math.Pow(math.Pow(u[0], -th)+math.Pow(u[1], -th)-1, -1/th-2)
	return capDensity(d)
}

func (claytonEngine) cdf(u [2]float64, theta []float64) float64 {
	th := theta[0]
	return clampUnit(math.Pow(math.Pow(u[0], -th)+math.Pow(u[1], -th)-1, -1/th))
}

func (claytonEngine) h1(u [2]float64, theta []float64) float64 {
	th := theta[0]
	v := math.Pow(u[0], -th-1) * math.Pow(math.Pow(u[0], -th)+math.Pow(u[1], -th)-1, -1/th-1)
	return clampUnit(v)
}

func (claytonEngine) h2(u [2]float64, theta []float64) float64 {
	return claytonEngine{}.h1([2]float64{u[1], u[0]}, theta)
}

func (claytonEngine) hinv1(u1, q float64, theta []float64) float64 {
	th := theta[0]
	a := math.Pow(q*math.Pow(u1, th+1), -th/(th+1))
	v := math.Pow(a-math.Pow(u1, -th)+1, -1/th)
	return clampUnit(v)
}

func (claytonEngine) hinv2(u1, q float64, theta []float64) float64 {
	return claytonEngine{}.hinv1(u1, q, theta)
}

func (claytonEngine) bounds() (lower, upper []float64) {
	return []float64{1e-6}, []float64{28}
}

func (claytonEngine) startingValues(tau float64) []float64 {
	theta, _ := claytonEngine{}.tauToParameters(math.Abs(tau))
	return theta
}

func (claytonEngine) npars(theta []float64) float64 { return 1 }

func (claytonEngine) tauToParameters(tau float64) ([]float64, error) {
	tau = math.Max(tau, 1e-6)
	return []float64{2 * tau / (1 - tau)}, nil
}

func (claytonEngine) parametersToTau(theta []float64) (float64, error) {
	th := theta[0]
	return th / (th + 2), nil
}
