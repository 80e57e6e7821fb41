package bicop

import (
	"vinecop/depmeasures"
	"vinecop/internal/interpgrid"
	"vinecop/internal/numeric"
	"vinecop/internal/vineerr"
)

// Fit estimates a single pair copula of the given family and rotation
// from pseudo-observations data[i] = [u1,u2].
func Fit(data [][2]float64, family Family, rotation Rotation, controls ControlsBicop) (*Bicop, error) {
	if len(data) == 0 {
		return nil, vineerr.Domain("Fit", "no observations")
	}
	if !rotation.valid() {
		return nil, vineerr.Parameter("Fit", "invalid rotation %d", rotation)
	}
	eng := newEngine(family)

	if family == Kernel {
		u, v := split(data)
		gridSize := controls.KernelGridSize
		if gridSize <= 0 {
			gridSize = 30
		}
		grid := interpgrid.Estimate(reflectForRotation(u, rotation, true), reflectForRotation(v, rotation, false), gridSize, controls.KernelBandwidth)
		k := eng.(*kernelEngine)
		k.setGrid(grid)
		b := &Bicop{family: family, rotation: rotation, theta: nil, eng: eng, fitted: true}
		b.npars = eng.npars(nil)
		b.nobs = len(data)
		b.loglik = b.LogLikelihood(data)
		b.kernelSrc = k
		return b, nil
	}

	if family == Indep {
		b := &Bicop{family: family, rotation: Rotate0, theta: nil, eng: eng, fitted: true}
		b.nobs = len(data)
		b.loglik = b.LogLikelihood(data)
		return b, nil
	}

	te, ok := eng.(tauEngine)
	if !ok {
		return nil, vineerr.State("Fit", "family %s cannot be fit", family)
	}

	rawTau := rawTauOf(data)
	rotTau := rawTau
	if rotation == Rotate90 || rotation == Rotate270 {
		rotTau = -rawTau
	}

	theta0, err := te.tauToParameters(rotTau)
	if err != nil {
		return nil, err
	}
	if len(theta0) == 0 {
		theta0 = te.startingValues(rotTau)
	}

	theta := theta0
	if controls.ParametricMethod == MLE && len(theta0) > 0 {
		lower, upper := eng.bounds()
		objective := func(p []float64) float64 {
			b := &Bicop{family: family, rotation: rotation, theta: p, eng: eng}
			return b.LogLikelihood(data)
		}
		start := theta0
		if family == Student {
			// Profile likelihood: rho stays at its tau-based value and
			// only nu is optimized.
			rho, full := theta0[0], objective
			objective = func(p []float64) float64 { return full([]float64{rho, p[0]}) }
			start, lower, upper = theta0[1:], lower[1:], upper[1:]
		}
		fitted, _, err := numeric.BoxOptimize(objective, start, lower, upper)
		if err == nil {
			theta = fitted
			if family == Student {
				theta = []float64{theta0[0], fitted[0]}
			}
		}
	}

	b := &Bicop{family: family, rotation: rotation, theta: theta, eng: eng, fitted: true}
	b.npars = eng.npars(theta)
	b.nobs = len(data)
	b.loglik = b.LogLikelihood(data)
	return b, nil
}

func split(data [][2]float64) (u, v []float64) {
	u = make([]float64, len(data))
	v = make([]float64, len(data))
	for i, d := range data {
		u[i], v[i] = d[0], d[1]
	}
	return
}

func rawTauOf(data [][2]float64) float64 {
	u, v := split(data)
	return depmeasures.Tau(u, v)
}

// reflectForRotation mirrors one margin of the data the way rotatedPDF
// mirrors its arguments, so the kernel density is estimated on the
// rotation-0 scale the generic engine contract expects.
func reflectForRotation(x []float64, r Rotation, isFirst bool) []float64 {
	flip := false
	switch r {
	case Rotate90:
		flip = isFirst
	case Rotate180:
		flip = true
	case Rotate270:
		flip = !isFirst
	}
	if !flip {
		return x
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = 1 - v
	}
	return out
}
