package numeric

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// BoxOptimize maximizes objective over the closed box [lower, upper] using
// gonum's derivative-free Nelder-Mead method, capped at 1000 function
// evaluations; no x or f tolerance is set, so gonum's default
// convergence checks apply. Box constraints are
// enforced by reparameterizing each coordinate through a logistic map from
// the real line onto its bound interval, which keeps Nelder-Mead's simplex
// unconstrained while guaranteeing every evaluated point is feasible.
//
// start must lie strictly inside the box.
func BoxOptimize(objective func(theta []float64) float64, start, lower, upper []float64) ([]float64, float64, error) {
	n := len(start)
	z0 := make([]float64, n)
	for i := range z0 {
		z0[i] = toUnconstrained(start[i], lower[i], upper[i])
	}
	negObjective := func(z []float64) float64 {
		theta := make([]float64, n)
		for i := range z {
			theta[i] = toBox(z[i], lower[i], upper[i])
		}
		return -objective(theta)
	}
	problem := optimize.Problem{Func: negObjective}
	settings := &optimize.Settings{
		FuncEvaluations: 1000,
	}
	result, err := optimize.Minimize(problem, z0, settings, &optimize.NelderMead{})
	if err != nil && result == nil {
		return nil, 0, err
	}
	theta := make([]float64, n)
	for i := range result.X {
		theta[i] = toBox(result.X[i], lower[i], upper[i])
	}
	return theta, -result.F, nil
}

// toBox maps z in (-inf, inf) onto (lower, upper) via a logistic curve.
func toBox(z, lower, upper float64) float64 {
	return lower + (upper-lower)/(1+math.Exp(-z))
}

// toUnconstrained is the inverse of toBox, used to seed the optimizer from
// a feasible starting parameter vector.
func toUnconstrained(x, lower, upper float64) float64 {
	p := (x - lower) / (upper - lower)
	p = math.Min(math.Max(p, 1e-9), 1-1e-9)
	return math.Log(p / (1 - p))
}
