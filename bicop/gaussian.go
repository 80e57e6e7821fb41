package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// gaussianEngine is the Gaussian copula with correlation parameter rho.
type gaussianEngine struct{}

func (gaussianEngine) family() Family { return Gaussian }

func (gaussianEngine) pdf(u [2]float64, theta []float64) float64 {
	rho := theta[0]
	x, y := numeric.NormalQuantile(u[0]), numeric.NormalQuantile(u[1])
	r2 := 1 - rho*rho
	d := math.Exp((2*rho*x*y-rho*rho*(x*x+y*y))/(2*r2)) / math.Sqrt(r2)
	return capDensity(d)
}

func (gaussianEngine) cdf(u [2]float64, theta []float64) float64 {
	rho := theta[0]
	x, y := numeric.NormalQuantile(u[0]), numeric.NormalQuantile(u[1])
	return numeric.BivariateNormalCDF(x, y, rho)
}

func (gaussianEngine) h1(u [2]float64, theta []float64) float64 {
	rho := theta[0]
	x, y := numeric.NormalQuantile(u[0]), numeric.NormalQuantile(u[1])
	return clampUnit(numeric.NormalCDF((y - rho*x) / math.Sqrt(1-rho*rho)))
}

func (gaussianEngine) h2(u [2]float64, theta []float64) float64 {
	rho := theta[0]
	x, y := numeric.NormalQuantile(u[0]), numeric.NormalQuantile(u[1])
	return clampUnit(numeric.NormalCDF((x - rho*y) / math.Sqrt(1-rho*rho)))
}

func (gaussianEngine) hinv1(u1, q float64, theta []float64) float64 {
	rho := theta[0]
	x := numeric.NormalQuantile(u1)
	z := numeric.NormalQuantile(q)
	return clampUnit(numeric.NormalCDF(rho*x + math.Sqrt(1-rho*rho)*z))
}

func (gaussianEngine) hinv2(u1, q float64, theta []float64) float64 {
	// h2 conditions on the second argument, so hinv2 inverts treating u1
	// (here playing the role of u2 in h2's signature) symmetrically.
	rho := theta[0]
	y := numeric.NormalQuantile(u1)
	z := numeric.NormalQuantile(q)
	return clampUnit(numeric.NormalCDF(rho*y + math.Sqrt(1-rho*rho)*z))
}

func (gaussianEngine) bounds() (lower, upper []float64) {
	return []float64{-1 + 1e-6}, []float64{1 - 1e-6}
}

func (gaussianEngine) startingValues(tau float64) []float64 {
	theta, _ := gaussianEngine{}.tauToParameters(tau)
	return theta
}

func (gaussianEngine) npars(theta []float64) float64 { return 1 }

func (gaussianEngine) tauToParameters(tau float64) ([]float64, error) {
	rho := math.Sin(math.Pi / 2 * tau)
	return []float64{rho}, nil
}

func (gaussianEngine) parametersToTau(theta []float64) (float64, error) {
	return 2 / math.Pi * math.Asin(theta[0]), nil
}
