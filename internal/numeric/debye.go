package numeric

import "math"

// Debye1 evaluates the order-1 Debye function
//
//	D1(x) = (1/x) * integral_0^x t/(e^t - 1) dt
//
// used by Frank's closed-form tau(theta) = 1 - 4/theta + 4/theta*D1(theta).
// Negative x uses the identity D1(x) = D1(-x) - x/2.
// No Debye-function implementation was found anywhere in the example
// corpus, so this follows the textbook series-for-small-x /
// quadrature-for-large-x split directly.
func Debye1(x float64) float64 {
	if x == 0 {
		return 1
	}
	if x < 0 {
		return Debye1(-x) - x/2
	}
	ax := math.Abs(x)
	if ax < 1e-4 {
		return 1 - ax/4 + ax*ax/36
	}
	integrand := func(t float64) float64 {
		if t == 0 {
			return 1 // limit of t/(e^t-1) as t->0
		}
		return t / math.Expm1(t)
	}
	n := 10
	if ax > 10 {
		n = 20
	}
	integral := GaussLegendre(integrand, 0, ax, n)
	return integral / ax
}
