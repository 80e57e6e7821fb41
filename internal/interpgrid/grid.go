// Package interpgrid implements the fixed-resolution interpolation grid
// backing the nonparametric (kernel) pair-copula family: a copula
// density sampled on a regular grid over [0,1]^2, together with the
// cumulative integrals needed to evaluate the copula CDF and both
// h-functions by interpolation instead of re-integrating on every
// call.
package interpgrid

import "vinecop/internal/numeric"

// Grid holds a density sampled at the centers of an n x n regular
// partition of [0,1]^2, plus the row/column/joint cumulative integrals
// of that density used to answer CDF and h-function queries.
type Grid struct {
	n        int
	density  [][]float64 // density[i][j] = c(x_i, y_j)
	rowCum   [][]float64 // rowCum[i][j] = integral_0^{y_j} c(x_i, t) dt
	colCumT  [][]float64 // colCumT[i][j] = integral_0^{x_i} c(s, y_j) ds
	jointCum [][]float64 // jointCum[i][j] = C(x_i, y_j)
	centers  []float64
}

// New builds a Grid from a density sampled at n x n cell centers,
// density[i][j] corresponding to (centers[i], centers[j]).
func New(density [][]float64) *Grid {
	n := len(density)
	centers := make([]float64, n)
	for i := 0; i < n; i++ {
		centers[i] = (float64(i) + 0.5) / float64(n)
	}
	g := &Grid{n: n, density: density, centers: centers}
	g.rowCum = make([][]float64, n)
	for i := 0; i < n; i++ {
		g.rowCum[i] = cumulativeTrapezoid(centers, density[i])
	}
	colCum := make([][]float64, n)
	for j := 0; j < n; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = density[i][j]
		}
		colCum[j] = cumulativeTrapezoid(centers, col)
	}
	g.colCumT = make([][]float64, n)
	for i := 0; i < n; i++ {
		g.colCumT[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			g.colCumT[i][j] = colCum[j][i]
		}
	}
	g.jointCum = make([][]float64, n)
	for i := 0; i < n; i++ {
		g.jointCum[i] = make([]float64, n)
	}
	colMarginal := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			colMarginal[i] = g.rowCum[i][j]
		}
		cum := cumulativeTrapezoid(centers, colMarginal)
		for i := 0; i < n; i++ {
			g.jointCum[i][j] = cum[i]
		}
	}
	return g
}

// cumulativeTrapezoid returns, for each index k, the trapezoidal
// integral of y over x[0..k], prefixed with a virtual zero at x=0 and
// extrapolated so the returned integral is exact at x[0] under a
// constant-extension assumption outside the sampled range.
func cumulativeTrapezoid(x, y []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	// mass from 0 to x[0], assuming density holds at y[0] over [0,x[0]].
	acc := x[0] * y[0]
	out[0] = acc
	for k := 1; k < n; k++ {
		acc += (x[k] - x[k-1]) * (y[k] + y[k-1]) / 2
		out[k] = acc
	}
	return out
}

// Density returns the bicubic-interpolated density at (u,v).
func (g *Grid) Density(u, v float64) float64 {
	return bicubicInterp(g.centers, g.density, u, v)
}

// CDF returns the bicubic-interpolated copula CDF at (u,v), clamped to
// [0,1] and monotone boundary conditions C(u,0)=C(0,v)=0.
func (g *Grid) CDF(u, v float64) float64 {
	if u <= 0 || v <= 0 {
		return 0
	}
	val := bicubicInterp(g.centers, g.jointCum, u, v)
	return numeric.Clamp01(val)
}

// H1 returns the interpolated h-function P(V<=v | U=u) = integral_0^v
// c(u,t) dt.
func (g *Grid) H1(u, v float64) float64 {
	if v <= 0 {
		return 0
	}
	val := bicubicInterp(g.centers, g.rowCum, u, v)
	return numeric.Clamp01(val)
}

// H2 returns the interpolated h-function P(U<=u | V=v) = integral_0^u
// c(s,v) ds.
func (g *Grid) H2(u, v float64) float64 {
	if u <= 0 {
		return 0
	}
	val := bicubicInterp(g.centers, g.colCumT, u, v)
	return numeric.Clamp01(val)
}
