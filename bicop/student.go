package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// studentEngine is the bivariate Student t copula with parameters
// [rho, nu]. nu is fit by profile likelihood in fit.go (fix rho at its
// tau-based value, optimize nu in (2,50]) since tau carries no
// information about the degrees of freedom.
type studentEngine struct{}

func (studentEngine) family() Family { return Student }

func tQuantiles(u [2]float64, nu float64) (x, y float64) {
	return numeric.StudentTQuantile(u[0], nu), numeric.StudentTQuantile(u[1], nu)
}

func (studentEngine) pdf(u [2]float64, theta []float64) float64 {
	rho, nu := theta[0], theta[1]
	x, y := tQuantiles(u, nu)
	r2 := 1 - rho*rho
	logNum := lgammaHalf(nu+2) + lgammaHalf(nu) - 2*lgammaHalf(nu+1)
	quad := 1 + (x*x+y*y-2*rho*x*y)/(nu*r2)
	logDensity := logNum - 0.5*math.Log(r2) - (nu+2)/2*math.Log(quad) +
		(nu+1)/2*math.Log(1+x*x/nu) + (nu+1)/2*math.Log(1+y*y/nu)
	return capDensity(math.Exp(logDensity))
}

func lgammaHalf(nu float64) float64 {
	v, _ := math.Lgamma(nu / 2)
	return v
}

func (studentEngine) cdf(u [2]float64, theta []float64) float64 {
	rho, nu := theta[0], theta[1]
	x, y := tQuantiles(u, nu)
	return numeric.BivariateStudentTCDF(x, y, rho, nu)
}

func (studentEngine) h1(u [2]float64, theta []float64) float64 {
	rho, nu := theta[0], theta[1]
	x, y := tQuantiles(u, nu)
	scale := math.Sqrt((nu + x*x) * (1 - rho*rho) / (nu + 1))
	return clampUnit(numeric.StudentTCDF((y-rho*x)/scale, nu+1))
}

func (studentEngine) h2(u [2]float64, theta []float64) float64 {
	rho, nu := theta[0], theta[1]
	x, y := tQuantiles(u, nu)
	scale := math.Sqrt((nu + y*y) * (1 - rho*rho) / (nu + 1))
	return clampUnit(numeric.StudentTCDF((x-rho*y)/scale, nu+1))
}

func (studentEngine) hinv1(u1, q float64, theta []float64) float64 {
	rho, nu := theta[0], theta[1]
	x := numeric.StudentTQuantile(u1, nu)
	z := numeric.StudentTQuantile(q, nu+1)
	scale := math.Sqrt((nu + x*x) * (1 - rho*rho) / (nu + 1))
	return clampUnit(numeric.StudentTCDF(rho*x+z*scale, nu))
}

func (studentEngine) hinv2(u1, q float64, theta []float64) float64 {
	rho, nu := theta[0], theta[1]
	y := numeric.StudentTQuantile(u1, nu)
	z := numeric.StudentTQuantile(q, nu+1)
	scale := math.Sqrt((nu + y*y) * (1 - rho*rho) / (nu + 1))
	return clampUnit(numeric.StudentTCDF(rho*y+z*scale, nu))
}

func (studentEngine) bounds() (lower, upper []float64) {
	return []float64{-1 + 1e-6, 2 + 1e-6}, []float64{1 - 1e-6, 50}
}

func (studentEngine) startingValues(tau float64) []float64 {
	rho := math.Sin(math.Pi / 2 * tau)
	return []float64{rho, 4}
}

func (studentEngine) npars(theta []float64) float64 { return 2 }

func (studentEngine) tauToParameters(tau float64) ([]float64, error) {
	return []float64{math.Sin(math.Pi / 2 * tau), 4}, nil
}

func (studentEngine) parametersToTau(theta []float64) (float64, error) {
	return 2 / math.Pi * math.Asin(theta[0]), nil
}
