package interpgrid

import "testing"

func uniformDensity(n int) [][]float64 {
	density := make([][]float64, n)
	for i := range density {
		density[i] = make([]float64, n)
		for j := range density[i] {
			density[i][j] = 1
		}
	}
	return density
}

// A constant density of 1 is the independence copula: C(u,v) = u*v,
// H1(u,v) = v, H2(u,v) = u, c(u,v) = 1 everywhere. Interior points
// (away from the grid's edge cells, where Catmull-Rom clamping
// evaluates at the nearest cell center rather than the true boundary)
// should recover this to the grid's own interpolation accuracy.
func TestGridNormalizesToIndependence(t *testing.T) {
	g := New(uniformDensity(40))
	if got, want := g.CDF(0.5, 0.5), 0.25; absDiff(got, want) > 1e-2 {
		t.Fatalf("CDF(0.5,0.5) = %v, want ~%v", got, want)
	}
	if got, want := g.CDF(0.3, 0.7), 0.21; absDiff(got, want) > 1e-2 {
		t.Fatalf("CDF(0.3,0.7) = %v, want ~%v", got, want)
	}
	if got, want := g.Density(0.5, 0.5), 1.0; absDiff(got, want) > 1e-6 {
		t.Fatalf("Density(0.5,0.5) = %v, want %v", got, want)
	}
}

func TestGridBoundaryConditions(t *testing.T) {
	g := New(uniformDensity(10))
	if got := g.CDF(0, 0.5); got != 0 {
		t.Fatalf("CDF(0,v) = %v, want 0", got)
	}
	if got := g.CDF(0.5, 0); got != 0 {
		t.Fatalf("CDF(u,0) = %v, want 0", got)
	}
	if got := g.H1(0.5, 0); got != 0 {
		t.Fatalf("H1(u,0) = %v, want 0", got)
	}
	if got := g.H2(0, 0.5); got != 0 {
		t.Fatalf("H2(0,v) = %v, want 0", got)
	}
}

// H1(u,v) = P(V<=v|U=u); under independence this is v regardless of
// u, and H2 is u regardless of v.
func TestGridHFuncsRecoverIndependenceSlope(t *testing.T) {
	g := New(uniformDensity(40))
	if got, want := g.H1(0.4, 0.6), 0.6; absDiff(got, want) > 1e-2 {
		t.Fatalf("H1(u,0.6) = %v, want ~%v (independent of u)", got, want)
	}
	if got, want := g.H1(0.9, 0.6), 0.6; absDiff(got, want) > 1e-2 {
		t.Fatalf("H1(u,0.6) = %v, want ~%v (independent of u)", got, want)
	}
	if got, want := g.H2(0.6, 0.4), 0.6; absDiff(got, want) > 1e-2 {
		t.Fatalf("H2(0.6,v) = %v, want ~%v (independent of v)", got, want)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
