// Package numeric collects the scalar numerical black boxes the vine
// machinery treats as external collaborators: univariate normal and
// Student distributions, Gauss-Legendre quadrature, the Debye function,
// a bounded bisection root finder, and a box-constrained derivative-free
// optimizer. Nothing here knows about copulas; it is the numerical
// substrate bicop and internal/interpgrid are built on.
package numeric

import "gonum.org/v1/gonum/stat/distuv"

// NormalCDF is the standard normal distribution function.
func NormalCDF(x float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.CDF(x)
}

// NormalQuantile is the inverse standard normal CDF.
func NormalQuantile(p float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Quantile(p)
}

// NormalPDF is the standard normal density, used by the kernel family's
// transform-back step.
func NormalPDF(x float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Prob(x)
}

// StudentTCDF is the univariate Student's t distribution function with nu
// degrees of freedom.
func StudentTCDF(x, nu float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}.CDF(x)
}

// StudentTQuantile is the inverse univariate Student's t CDF.
func StudentTQuantile(p, nu float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}.Quantile(p)
}

// StudentTPDF is the univariate Student's t density.
func StudentTPDF(x, nu float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}.Prob(x)
}
