package vinecop

import (
	"context"
	"math"
	"testing"

	"vinecop/bicop"
	"vinecop/internal/qmc"
	"vinecop/rvine"
)

// claytonDVine builds a d-dimensional D-vine with every pair copula a
// Clayton(rotation 0, theta) copula, the simplest fixture with known
// nonzero dependence at every tree.
func claytonDVine(t *testing.T, d int, theta float64) *Vinecop {
	t.Helper()
	order := make([]int, d)
	for i := range order {
		order[i] = i + 1
	}
	mat, err := rvine.NewDVine(order)
	if err != nil {
		t.Fatalf("NewDVine: %v", err)
	}
	pcs := make([][]*bicop.Bicop, d-1)
	for tr := range pcs {
		row := make([]*bicop.Bicop, d-1-tr)
		for j := range row {
			bc, err := bicop.NewBicop(bicop.Clayton, bicop.Rotate0, []float64{theta})
			if err != nil {
				t.Fatalf("NewBicop: %v", err)
			}
			row[j] = bc
		}
		pcs[tr] = row
	}
	vc, err := NewFromFit(mat, pcs)
	if err != nil {
		t.Fatalf("NewFromFit: %v", err)
	}
	return vc
}

// TestDensityFactorizationMatchesManualCascade checks that PDF's
// tree-by-tree cascade over a 3-dimensional vine agrees with a
// hand-written factorization built directly from the two pair
// copulas and their h-functions, for several rows.
func TestDensityFactorizationMatchesManualCascade(t *testing.T) {
	vc := claytonDVine(t, 3, 2.0)
	rows := [][]float64{
		{0.2, 0.5, 0.7},
		{0.6, 0.3, 0.9},
		{0.1, 0.8, 0.4},
	}
	got, err := vc.PDF(context.Background(), rows, 1, nil)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	bc01 := vc.PairCopula(0, 0)
	bc12 := vc.PairCopula(0, 1)
	bc02g1 := vc.PairCopula(1, 0)
	for i, row := range rows {
		u1, u2, u3 := row[0], row[1], row[2]
		want := bc01.PDF([2]float64{u1, u2}) * bc12.PDF([2]float64{u2, u3})
		h1 := bc01.HFunc2([2]float64{u1, u2}) // F(1|2)
		h2 := bc12.HFunc1([2]float64{u2, u3}) // F(3|2)
		want *= bc02g1.PDF([2]float64{h1, h2})
		if math.Abs(got[i]-want) > 1e-9 {
			t.Fatalf("row %d: PDF = %v, manual factorization = %v", i, got[i], want)
		}
	}
}

// TestInverseRosenblattRecoversTau draws a large sample via
// InverseRosenblatt from a 2-dimensional Clayton vine and checks the
// sample's empirical Kendall's tau matches the copula's analytical tau.
func TestInverseRosenblattRecoversTau(t *testing.T) {
	vc := claytonDVine(t, 2, 3.0)
	src := qmc.NewSource([2]uint64{11, 29})
	n := 4000
	draws, err := vc.Simulate(context.Background(), n, src, 1)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i, row := range draws {
		x[i], y[i] = row[0], row[1]
	}
	tau := empiricalTau(x, y)
	wantTau, err := vc.PairCopula(0, 0).Tau()
	if err != nil {
		t.Fatalf("Tau: %v", err)
	}
	if math.Abs(tau-wantTau) > 0.05 {
		t.Fatalf("empirical tau = %v, want ~%v", tau, wantTau)
	}
}

func empiricalTau(x, y []float64) float64 {
	n := len(x)
	var concordant, discordant int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx, dy := x[i]-x[j], y[i]-y[j]
			switch {
			case dx*dy > 0:
				concordant++
			case dx*dy < 0:
				discordant++
			}
		}
	}
	total := concordant + discordant
	if total == 0 {
		return 0
	}
	return float64(concordant-discordant) / float64(total)
}

// TestCDFMarginalsRecoverIndependence checks that a freshly constructed
// independence vine's CDF agrees with the product-of-marginals formula
// within Monte Carlo noise.
func TestCDFMarginalsRecoverIndependence(t *testing.T) {
	vc, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := vc.CDF(context.Background(), [][]float64{{0.4, 0.6}}, 20000, 1)
	if err != nil {
		t.Fatalf("CDF: %v", err)
	}
	want := 0.4 * 0.6
	if math.Abs(got[0]-want) > 0.02 {
		t.Fatalf("CDF(0.4,0.6) = %v, want ~%v", got[0], want)
	}
}
