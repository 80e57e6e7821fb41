package bicop

// engine is the contract every family implements at rotation 0, over
// u in [0,1]^2. The facade (Bicop) is the only place that knows about
// rotation -- see rotate.go -- which keeps every engine monotone in its
// own parameters, a property the box optimizer in fit.go relies on.
type engine interface {
	family() Family
	pdf(u [2]float64, theta []float64) float64
	cdf(u [2]float64, theta []float64) float64
	h1(u [2]float64, theta []float64) float64
	h2(u [2]float64, theta []float64) float64
	hinv1(u1, q float64, theta []float64) float64
	hinv2(u1, q float64, theta []float64) float64
	bounds() (lower, upper []float64)
	startingValues(tau float64) []float64
	npars(theta []float64) float64
}

// tauEngine is implemented by every family for which a tau <-> parameter
// conversion exists (every family except Kernel, per Family.ItauAdmissible).
type tauEngine interface {
	engine
	tauToParameters(tau float64) ([]float64, error)
	parametersToTau(theta []float64) (float64, error)
}

// clip restricts u to the numerically safe square the spec mandates:
// every engine call clips inputs to [1e-10, 1-1e-10] before evaluation,
// except NaN, which is left alone so it can propagate.
func clip(u float64) float64 {
	if isNaN(u) {
		return u
	}
	switch {
	case u < 1e-10:
		return 1e-10
	case u > 1-1e-10:
		return 1 - 1e-10
	default:
		return u
	}
}

func clipPair(u [2]float64) [2]float64 {
	return [2]float64{clip(u[0]), clip(u[1])}
}

func isNaN(x float64) bool { return x != x }

// capDensity enforces the overflow cap on pdf results the spec requires.
func capDensity(x float64) float64 {
	const maxDensity = 1e16
	if isNaN(x) {
		return x
	}
	if x > maxDensity {
		return maxDensity
	}
	if x < 0 {
		return 0
	}
	return x
}

// clampUnit clamps an h-function/cdf result into [1e-10, 1-1e-10],
// matching the spec's underflow convention, but again leaves NaN alone.
func clampUnit(x float64) float64 {
	if isNaN(x) {
		return x
	}
	switch {
	case x < 1e-10:
		return 1e-10
	case x > 1-1e-10:
		return 1 - 1e-10
	default:
		return x
	}
}

func newEngine(f Family) engine {
	switch f {
	case Indep:
		return indepEngine{}
	case Gaussian:
		return gaussianEngine{}
	case Student:
		return studentEngine{}
	case Clayton:
		return claytonEngine{}
	case Gumbel:
		return gumbelEngine{}
	case Frank:
		return frankEngine{}
	case Joe:
		return joeEngine{}
	case BB1:
		return bb1Engine{}
	case BB6:
		return bb6Engine{}
	case BB7:
		return bb7Engine{}
	case BB8:
		return bb8Engine{}
	case Kernel:
		return &kernelEngine{}
	default:
		panic("bicop: unknown family in newEngine")
	}
}
