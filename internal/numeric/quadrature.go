package numeric

import "gonum.org/v1/gonum/integrate/quad"

// GaussLegendre integrates f over [a, b] with an n-point Gauss-Legendre
// rule. n is expected to be one of the adaptive degrees the bivariate
// Student CDF and the Archimedean generator quadratures use (3, 6, 10),
// but any n >= 1 is accepted.
func GaussLegendre(f func(x float64) float64, a, b float64, n int) float64 {
	return quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
}

// GaussLegendreDegree picks the adaptive node count the Student bivariate
// CDF uses: coarser rules suffice away from strong correlation.
func GaussLegendreDegree(absRho float64) int {
	switch {
	case absRho < 0.3:
		return 3
	case absRho < 0.75:
		return 6
	default:
		return 10
	}
}
