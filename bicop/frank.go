package bicop

import (
	"math"

	"vinecop/internal/numeric"
)

// frankEngine is the Frank copula, generator
// phi(t) = -ln((exp(-theta*t)-1)/(exp(-theta)-1)), theta != 0. Frank is
// symmetric under reflection so it takes no rotation (see
// Family.IsRotationless). pdf/cdf/h1/h2/hinv all go through the generic
// Archimedean helpers; only tau has a closed form, via the Debye
// function of order 1.
type frankEngine struct{}

func (frankEngine) family() Family { return Frank }

func (frankEngine) phi(t float64, theta []float64) float64 {
	th := theta[0]
	return -math.Log((math.Exp(-th*t) - 1) / (math.Exp(-th) - 1))
}

func (frankEngine) phiInv(s float64, theta []float64) float64 {
	th := theta[0]
	return -math.Log(1+(math.Exp(-th)-1)*math.Exp(-s)) / th
}

func (frankEngine) phiPrime(t float64, theta []float64) float64 {
	th := theta[0]
	n := math.Exp(-th * t)
	return th * n / (n - 1)
}

func (frankEngine) phiDoublePrime(t float64, theta []float64) float64 {
	th := theta[0]
	n := math.Exp(-th * t)
	d := n - 1
	return th * th * n / (d * d)
}

func (e frankEngine) cdf(u [2]float64, theta []float64) float64 { return archCDF(e, u, theta) }
func (e frankEngine) pdf(u [2]float64, theta []float64) float64 { return archPDF(e, u, theta) }
func (e frankEngine) h1(u [2]float64, theta []float64) float64  { return archH1(e, u, theta) }
func (e frankEngine) h2(u [2]float64, theta []float64) float64  { return archH2(e, u, theta) }

func (e frankEngine) hinv1(u1, q float64, theta []float64) float64 {
	return archHinv1(e, u1, q, theta)
}

func (e frankEngine) hinv2(u1, q float64, theta []float64) float64 {
	return archHinv2(e, u1, q, theta)
}

func (frankEngine) bounds() (lower, upper []float64) {
	return []float64{-35}, []float64{35}
}

func (e frankEngine) startingValues(tau float64) []float64 {
	theta, _ := e.tauToParameters(tau)
	return theta
}

func (frankEngine) npars(theta []float64) float64 { return 1 }

func frankTau(theta float64) float64 {
	if math.Abs(theta) < 1e-8 {
		return theta / 9
	}
	return 1 + 4/theta*(numeric.Debye1(theta)-1)
}

func (e frankEngine) tauToParameters(tau float64) ([]float64, error) {
	if math.Abs(tau) < 1e-6 {
		return []float64{1e-6}, nil
	}
	sign := 1.0
	if tau < 0 {
		sign = -1.0
	}
	lo, hi := 1e-6, 35.0
	g := func(th float64) float64 { return frankTau(th) }
	th := numeric.BisectMonotone(g, math.Abs(tau), lo, hi, 60)
	return []float64{sign * th}, nil
}

func (frankEngine) parametersToTau(theta []float64) (float64, error) {
	return frankTau(theta[0]), nil
}
