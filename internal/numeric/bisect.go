package numeric

import "math"

// Bisect finds a root of f on [lo, hi] assuming f(lo) and f(hi) have
// opposite signs, stopping after iters halvings. The vine spec calls for
// an explicit iteration cap rather than a tolerance-driven stop so that
// hinv/quantile routines are reproducible across platforms; iters=35 is
// the convention used by the Archimedean hinv fallback, iters=40 by the
// Kernel family's hinv.
func Bisect(f func(float64) float64, lo, hi float64, iters int) float64 {
	flo := f(lo)
	for i := 0; i < iters; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if fmid == 0 || math.IsNaN(fmid) {
			return mid
		}
		if sameSign(flo, fmid) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

// BisectMonotone finds theta such that g(theta) == target, where g is
// monotone increasing on [lo, hi]. Used by tau_to_parameters inversions
// that have no closed form (Frank, the BB family).
func BisectMonotone(g func(float64) float64, target, lo, hi float64, iters int) float64 {
	return Bisect(func(theta float64) float64 { return g(theta) - target }, lo, hi, iters)
}
