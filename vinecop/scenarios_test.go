package vinecop

import (
	"context"
	"math"
	"testing"

	"vinecop/bicop"
	"vinecop/internal/dissmann"
	"vinecop/internal/qmc"
	"vinecop/rvine"
)

// fixedClayton7 is a fixed 7-dimensional R-vine matrix (a D-vine over
// the natural order 1..7) with every pair copula a Clayton, rotation
// 270, parameter 3.0. It stands in for vinecopulib's own reference
// test fixture, which the retrieved original source did not carry
// (only its headers and implementation files were kept, no test
// fixtures) -- this is an equally valid 7x7 R-vine matrix fixed here as
// the scenarios' own testdata.
func fixedClayton7(t *testing.T) (*rvine.Matrix, [][]*bicop.Bicop) {
	t.Helper()
	const d = 7
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
			bc, err := bicop.NewBicop(bicop.Clayton, bicop.Rotate270, []float64{3.0})
			if err != nil {
				t.Fatalf("NewBicop: %v", err)
			}
			row[j] = bc
		}
		pcs[tr] = row
	}
	return mat, pcs
}

// S1: independence recovery. On i.i.d. uniform data, select_all
// restricted to {indep, gaussian} under BIC must choose independence
// at every edge -- BIC's complexity penalty should always beat a
// spurious Gaussian fit on data with no real dependence.
func TestS1IndependenceRecovery(t *testing.T) {
	const d = 3
	src := qmc.NewSource([2]uint64{1, 2})
	data := src.UniformMatrix(5000, d)

	ctrl := dissmann.DefaultControls()
	ctrl.Bicop.FamilySet = []bicop.Family{bicop.Indep, bicop.Gaussian}
	ctrl.Bicop.SelectionCriterion = bicop.CriterionBIC

	vc, err := Select(context.Background(), data, ctrl)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for tr, row := range vc.pcs {
		for j, bc := range row {
			if bc.Family() != bicop.Indep {
				t.Fatalf("tree %d column %d: family = %s, want indep", tr, j, bc.Family())
			}
		}
	}
}

// S2: Clayton 270 recovery. Simulate from the fixed 7-dim Clayton(270,
// 3.0) vine and refit its families (structure held fixed) restricted
// to {clayton} with itau starting values. The first d-2 trees should
// recover rotation 270 with parameter within +/-0.3 of the truth; the
// deepest tree carries too little data to hold the same guarantee.
func TestS2Clayton270Recovery(t *testing.T) {
	mat, pcs := fixedClayton7(t)
	truth, err := NewFromFit(mat, pcs)
	if err != nil {
		t.Fatalf("NewFromFit: %v", err)
	}

	src := qmc.NewSource([2]uint64{7, 11})
	sim, err := truth.Simulate(context.Background(), 2000, src, 1)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	ctrl := dissmann.DefaultControls()
	ctrl.Bicop.FamilySet = []bicop.Family{bicop.Clayton}
	ctrl.Bicop.ParametricMethod = bicop.ITau

	fitted, err := SelectFamilies(context.Background(), sim, mat, ctrl)
	if err != nil {
		t.Fatalf("SelectFamilies: %v", err)
	}

	const d = 7
	for tr := 0; tr < d-2; tr++ {
		row := fitted.pcs[tr]
		for j, bc := range row {
			if bc.Family() != bicop.Clayton {
				t.Fatalf("tree %d column %d: family = %s, want clayton", tr, j, bc.Family())
			}
			if bc.Rotation() != bicop.Rotate270 {
				t.Fatalf("tree %d column %d: rotation = %d, want 270", tr, j, bc.Rotation())
			}
			theta := bc.Parameters()[0]
			if math.Abs(theta-3.0) > 0.3 {
				t.Fatalf("tree %d column %d: theta = %v, want ~3.0", tr, j, theta)
			}
		}
	}
}

// S3: Gaussian tau invariance. rho=0.5's analytical tau matches
// (2/pi)*asin(rho); fit-by-BIC on samples from that Gaussian copula
// picks gaussian over independence on a fixed seed.
func TestS3GaussianTauInvariance(t *testing.T) {
	bc, err := bicop.NewBicop(bicop.Gaussian, bicop.Rotate0, []float64{0.5})
	if err != nil {
		t.Fatalf("NewBicop: %v", err)
	}
	tau, err := bc.Tau()
	if err != nil {
		t.Fatalf("Tau: %v", err)
	}
	want := (2 / math.Pi) * math.Asin(0.5)
	if math.Abs(tau-want) > 1e-10 {
		t.Fatalf("tau = %v, want %v", tau, want)
	}

	src := qmc.NewSource([2]uint64{3, 5})
	sample := bc.Simulate(500, src)

	ctrl := bicop.DefaultControls()
	ctrl.FamilySet = []bicop.Family{bicop.Indep, bicop.Gaussian}
	ctrl.SelectionCriterion = bicop.CriterionBIC
	fitted, err := bicop.Select(sample, ctrl)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if fitted.Family() != bicop.Gaussian {
		t.Fatalf("selected family = %s, want gaussian", fitted.Family())
	}
}

// S4: BB1 inverse round trip. HInv1 undoes HFunc1 in its second
// argument across a grid of conditioning values.
func TestS4BB1InverseRoundTrip(t *testing.T) {
	bc, err := bicop.NewBicop(bicop.BB1, bicop.Rotate0, []float64{1.2, 1.5})
	if err != nil {
		t.Fatalf("NewBicop: %v", err)
	}
	const n = 100
	for i := 1; i < n; i++ {
		u1 := float64(i) / float64(n)
		u2 := 0.5
		h := bc.HFunc1([2]float64{u1, u2})
		back := bc.HInv1(u1, h)
		if math.Abs(back-u2) > 1e-6 {
			t.Fatalf("u1=%v: HInv1(u1,HFunc1(u1,u2)) = %v, want %v", u1, back, u2)
		}
	}
}

// S5: inverse Rosenblatt vs. factorization. Draws from the fixed
// 7-dim Clayton(270, 3.0) vine via InverseRosenblatt must have
// strictly positive density everywhere, and their log-density should
// be consistent with an independent, larger Monte Carlo estimate of
// the same model's entropy.
func TestS5InverseRosenblattConsistentWithFactorization(t *testing.T) {
	mat, pcs := fixedClayton7(t)
	vc, err := NewFromFit(mat, pcs)
	if err != nil {
		t.Fatalf("NewFromFit: %v", err)
	}

	src := qmc.NewSource([2]uint64{13, 17})
	draws, err := vc.Simulate(context.Background(), 500, src, 1)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	dens, err := vc.PDF(context.Background(), draws, 1, nil)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	logs := make([]float64, len(dens))
	for i, p := range dens {
		if p <= 0 {
			t.Fatalf("row %d: density = %v, want strictly positive", i, p)
		}
		logs[i] = math.Log(p)
	}
	mean, sd := meanStd(logs)

	srcB := qmc.NewSource([2]uint64{23, 29})
	drawsB, err := vc.Simulate(context.Background(), 4000, srcB, 1)
	if err != nil {
		t.Fatalf("Simulate (reference): %v", err)
	}
	densB, err := vc.PDF(context.Background(), drawsB, 1, nil)
	if err != nil {
		t.Fatalf("PDF (reference): %v", err)
	}
	logsB := make([]float64, len(densB))
	for i, p := range densB {
		logsB[i] = math.Log(p)
	}
	entropyEstimate, _ := meanStd(logsB)

	se := sd / math.Sqrt(float64(len(logs)))
	if math.Abs(mean-entropyEstimate) > 3*se {
		t.Fatalf("sample log-density mean = %v (se %v), reference estimate = %v: not within 3 s.e.", mean, se, entropyEstimate)
	}
}

func meanStd(xs []float64) (mean, sd float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	sd = math.Sqrt(ss / n)
	return mean, sd
}

// S6: serialization round trip. A vine fitted to 1000 samples, run
// through ToNamedNode/FromNamedNode, must come back with a bit-equal
// structure matrix, family tags, rotations, and parameter vectors.
func TestS6SerializationRoundTrip(t *testing.T) {
	const d = 4
	src := qmc.NewSource([2]uint64{41, 43})
	data := src.UniformMatrix(1000, d)

	ctrl := dissmann.DefaultControls()
	vc, err := Select(context.Background(), data, ctrl)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	node := vc.ToNamedNode()
	back, err := FromNamedNode(node)
	if err != nil {
		t.Fatalf("FromNamedNode: %v", err)
	}

	origOrder, backOrder := vc.Order(), back.Order()
	if len(origOrder) != len(backOrder) {
		t.Fatalf("order length mismatch: %d vs %d", len(origOrder), len(backOrder))
	}
	for i := range origOrder {
		if origOrder[i] != backOrder[i] {
			t.Fatalf("order[%d] = %d, want %d", i, backOrder[i], origOrder[i])
		}
	}

	for tr, row := range vc.pcs {
		for j, bc := range row {
			bc2 := back.pcs[tr][j]
			if bc.Family() != bc2.Family() {
				t.Fatalf("tree %d column %d: family = %s, want %s", tr, j, bc2.Family(), bc.Family())
			}
			if bc.Rotation() != bc2.Rotation() {
				t.Fatalf("tree %d column %d: rotation = %d, want %d", tr, j, bc2.Rotation(), bc.Rotation())
			}
			p1, p2 := bc.Parameters(), bc2.Parameters()
			if len(p1) != len(p2) {
				t.Fatalf("tree %d column %d: parameter count = %d, want %d", tr, j, len(p2), len(p1))
			}
			for k := range p1 {
				if p1[k] != p2[k] {
					t.Fatalf("tree %d column %d: parameter %d = %v, want %v (bit-exact)", tr, j, k, p2[k], p1[k])
				}
			}
		}
	}
}
