package depmeasures

import (
	"context"
	"math"
	"testing"
)

func TestPseudoObs(t *testing.T) {
	testCases := []struct {
		name string
		data [][]float64
		col  int
		want []float64
	}{
		{
			name: "ascending column has evenly spaced pseudo-obs",
			data: [][]float64{{1}, {2}, {3}, {4}},
			col:  0,
			want: []float64{0.2, 0.4, 0.6, 0.8},
		},
		{
			name: "ties share average rank",
			data: [][]float64{{1}, {1}, {3}},
			col:  0,
			want: []float64{0.375, 0.375, 0.75},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PseudoObs(tc.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := range tc.want {
				if math.Abs(got[i][tc.col]-tc.want[i]) > 1e-9 {
					t.Errorf("row %d: got %v want %v", i, got[i][tc.col], tc.want[i])
				}
			}
		})
	}
}

func TestPseudoObsRejectsRaggedMatrix(t *testing.T) {
	_, err := PseudoObs([][]float64{{1, 2}, {3}})
	if err == nil {
		t.Fatal("expected error for ragged matrix")
	}
}

func TestTauPerfectConcordance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 2, 3, 4, 5}
	if got := Tau(x, y); math.Abs(got-1) > 1e-9 {
		t.Errorf("Tau = %v, want 1", got)
	}
	yRev := []float64{5, 4, 3, 2, 1}
	if got := Tau(x, yRev); math.Abs(got+1) > 1e-9 {
		t.Errorf("Tau = %v, want -1", got)
	}
}

func TestRhoStrongConcordance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 1, 4, 3, 6, 5}
	got := Rho(x, y)
	if got <= 0.7 || got >= 1 {
		t.Errorf("Rho = %v, want in (0.7, 1)", got)
	}
}

func TestHoeffdingIndependentIsSmall(t *testing.T) {
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = vdcSeq(i, 2)
		y[i] = vdcSeq(i, 3)
	}
	d := Hoeffding(x, y)
	if d < 0 || d > 0.05 {
		t.Errorf("Hoeffding = %v, want in [0, 0.05]", d)
	}
}

func vdcSeq(i, base int) float64 {
	f, result := 1.0/float64(base), 0.0
	n := i + 1
	for n > 0 {
		result += f * float64(n%base)
		n /= base
		f /= float64(base)
	}
	return result
}

func TestDependenceMatrixDiagonalZero(t *testing.T) {
	data := [][]float64{{1, 2}, {2, 1}, {3, 4}, {4, 3}, {5, 6}}
	m, err := DependenceMatrix(context.Background(), data, Tau, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range m {
		if m[i][i] != 0 {
			t.Errorf("diagonal %d should be zero, got %v", i, m[i][i])
		}
	}
}
