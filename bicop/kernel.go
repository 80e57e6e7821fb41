package bicop

import (
	"vinecop/internal/interpgrid"
	"vinecop/internal/numeric"
)

// kernelEngine is the nonparametric pair-copula family: a copula
// density estimated on a fixed-resolution grid (internal/interpgrid)
// rather than described by a closed-form parameter vector. It carries
// no theta; fit.go populates grid by calling setGrid after running the
// transformation kernel density estimate. serialize.go does not persist
// the grid: a Kernel pair copula cannot be restored from a named node.
type kernelEngine struct {
	grid *interpgrid.Grid
}

func (e *kernelEngine) family() Family { return Kernel }

func (e *kernelEngine) setGrid(g *interpgrid.Grid) { e.grid = g }

func (e *kernelEngine) pdf(u [2]float64, theta []float64) float64 {
	if e.grid == nil {
		return 1
	}
	return capDensity(e.grid.Density(u[0], u[1]))
}

func (e *kernelEngine) cdf(u [2]float64, theta []float64) float64 {
	if e.grid == nil {
		return u[0] * u[1]
	}
	return e.grid.CDF(u[0], u[1])
}

func (e *kernelEngine) h1(u [2]float64, theta []float64) float64 {
	if e.grid == nil {
		return u[1]
	}
	return clampUnit(e.grid.H1(u[0], u[1]))
}

func (e *kernelEngine) h2(u [2]float64, theta []float64) float64 {
	if e.grid == nil {
		return u[0]
	}
	return clampUnit(e.grid.H2(u[0], u[1]))
}

// hinv1/hinv2 invert the interpolated h-functions by bisection; the
// grid has no closed-form inverse.
func (e *kernelEngine) hinv1(u1, q float64, theta []float64) float64 {
	if e.grid == nil {
		return q
	}
	f := func(v float64) float64 { return e.h1([2]float64{u1, v}, nil) - q }
	return clampUnit(numeric.Bisect(f, 1e-10, 1-1e-10, 40))
}

func (e *kernelEngine) hinv2(u1, q float64, theta []float64) float64 {
	if e.grid == nil {
		return q
	}
	f := func(v float64) float64 { return e.h2([2]float64{v, u1}, nil) - q }
	return clampUnit(numeric.Bisect(f, 1e-10, 1-1e-10, 40))
}

func (e *kernelEngine) bounds() (lower, upper []float64) { return nil, nil }

func (e *kernelEngine) startingValues(tau float64) []float64 { return nil }

// npars approximates the effective degrees of freedom of the grid
// estimate for AIC/BIC bookkeeping; a kernel fit is always charged the
// same nominal complexity regardless of grid resolution; vinecopulib's
// TLL estimator does the analogous thing via the kernel's effective
// trace, which this approximates with a fixed constant.
func (e *kernelEngine) npars(theta []float64) float64 { return 6 }
