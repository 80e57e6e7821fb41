// Package bicop implements the pair-copula families and the fitted
// bivariate-copula facade (Bicop) that the rest of the module builds
// R-vines out of: parametric families (Gaussian, Student t, the
// Archimedean families and their two-parameter BB extensions) plus a
// grid-based nonparametric family, each invertible in both arguments
// and each able to convert Kendall's tau to and from its own
// parameterization.
package bicop

import (
	"fmt"

	"vinecop/internal/qmc"
	"vinecop/internal/vineerr"
)

// Bicop is a fitted (or manually constructed) pair copula: a family, a
// rotation, and the parameter vector that family needs at rotation 0.
type Bicop struct {
	family   Family
	rotation Rotation
	theta    []float64
	eng      engine

	fitted    bool
	nobs      int
	loglik    float64
	npars     float64
	kernelSrc *kernelEngine
}

// New returns the independence copula, the identity element vines
// fall back to when no dependence is detected.
func New() *Bicop {
	return &Bicop{family: Indep, rotation: Rotate0, eng: newEngine(Indep)}
}

// NewBicop constructs a pair copula from an explicit family, rotation
// and parameter vector, validating both against the family's bounds.
func NewBicop(family Family, rotation Rotation, theta []float64) (*Bicop, error) {
	if !rotation.valid() {
		return nil, vineerr.Parameter("NewBicop", "invalid rotation %d", rotation)
	}
	if family.IsRotationless() && rotation != Rotate0 {
		return nil, vineerr.Parameter("NewBicop", "family %s takes no rotation", family)
	}
	eng := newEngine(family)
	if err := validateTheta(eng, theta); err != nil {
		return nil, err
	}
	b := &Bicop{family: family, rotation: rotation, theta: theta, eng: eng}
	b.npars = eng.npars(theta)
	if k, ok := eng.(*kernelEngine); ok {
		b.kernelSrc = k
	}
	return b, nil
}

func validateTheta(eng engine, theta []float64) error {
	lower, upper := eng.bounds()
	if len(lower) == 0 {
		return nil
	}
	if len(theta) != len(lower) {
		return vineerr.Parameter("NewBicop", "expected %d parameters, got %d", len(lower), len(theta))
	}
	for i, v := range theta {
		if v < lower[i] || v > upper[i] {
			return vineerr.Parameter("NewBicop", "parameter %d = %v out of bounds [%v, %v]", i, v, lower[i], upper[i])
		}
	}
	return nil
}

func (b *Bicop) Family() Family       { return b.family }
func (b *Bicop) Rotation() Rotation   { return b.rotation }
func (b *Bicop) Parameters() []float64 {
	out := make([]float64, len(b.theta))
	copy(out, b.theta)
	return out
}
func (b *Bicop) Nobs() int        { return b.nobs }
func (b *Bicop) LogLik() float64  { return b.loglik }
func (b *Bicop) NumParams() float64 { return b.npars }
func (b *Bicop) Fitted() bool     { return b.fitted }

func (b *Bicop) String() string {
	if b.family.IsRotationless() {
		return fmt.Sprintf("%s(%v)", b.family, b.theta)
	}
	return fmt.Sprintf("%s(rot=%d, %v)", b.family, b.rotation, b.theta)
}

// PDF evaluates the copula density at u, clipped into the numerically
// safe square.
func (b *Bicop) PDF(u [2]float64) float64 {
	return rotatedPDF(b.eng, b.rotation, clipPair(u), b.theta)
}

// CDF evaluates the copula distribution function at u.
func (b *Bicop) CDF(u [2]float64) float64 {
	return rotatedCDF(b.eng, b.rotation, clipPair(u), b.theta)
}

// HFunc1 returns P(U2<=u2 | U1=u1).
func (b *Bicop) HFunc1(u [2]float64) float64 {
	return rotatedH1(b.eng, b.rotation, clipPair(u), b.theta)
}

// HFunc2 returns P(U1<=u1 | U2=u2).
func (b *Bicop) HFunc2(u [2]float64) float64 {
	return rotatedH2(b.eng, b.rotation, clipPair(u), b.theta)
}

// HInv1 inverts HFunc1 in its second argument: HInv1(u1, HFunc1(u1,v)) == v.
func (b *Bicop) HInv1(u1, q float64) float64 {
	return rotatedHinv1(b.eng, b.rotation, clip(u1), clip(q), b.theta)
}

// HInv2 inverts HFunc2 in its first argument.
func (b *Bicop) HInv2(u1, q float64) float64 {
	return rotatedHinv2(b.eng, b.rotation, clip(u1), clip(q), b.theta)
}

// Tau returns Kendall's tau implied by the fitted parameters, flipping
// sign for the 90/270 rotations the way the spec's rotation convention
// requires.
func (b *Bicop) Tau() (float64, error) {
	te, ok := b.eng.(tauEngine)
	if !ok {
		return 0, vineerr.State("Tau", "family %s has no tau conversion", b.family)
	}
	tau, err := te.parametersToTau(b.theta)
	if err != nil {
		return 0, err
	}
	if b.rotation == Rotate90 || b.rotation == Rotate270 {
		tau = -tau
	}
	return tau, nil
}

// Simulate draws n pseudo-observation pairs from the fitted copula via
// the inverse Rosenblat transform applied to uniforms drawn from src.
func (b *Bicop) Simulate(n int, src *qmc.Source) [][2]float64 {
	w := src.UniformMatrix(n, 2)
	out := make([][2]float64, n)
	for i, pair := range w {
		u1 := pair[0]
		u2 := b.HInv1(u1, pair[1])
		out[i] = [2]float64{u1, u2}
	}
	return out
}
