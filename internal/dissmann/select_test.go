package dissmann

import (
	"context"
	"testing"

	"vinecop/bicop"
	"vinecop/internal/numeric"
	"vinecop/internal/qmc"
)

// chainData builds n observations of a d-variable Gaussian Markov
// chain X[0] -> X[1] -> ... -> X[d-1] with AR(1) correlation rho
// between neighbors, then probability-integral-transforms every
// column to Uniform(0,1) margins. This gives genuine, known vine
// dependence: tree 0 should pick the adjacent pairs, and the deeper
// trees should see near-independence since a Gaussian Markov chain has
// zero partial correlation beyond its neighbors.
func chainData(n, d int, rho float64) [][]float64 {
	src := qmc.NewSource([2]uint64{7, 13})
	z := make([][]float64, n)
	for i := range z {
		z[i] = make([]float64, d)
	}
	for j := 0; j < d; j++ {
		noise := src.Uniform(n)
		for i := 0; i < n; i++ {
			eps := numeric.NormalQuantile(noise[i])
			if j == 0 {
				z[i][j] = eps
			} else {
				z[i][j] = rho*z[i][j-1] + eps
			}
		}
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			out[i][j] = numeric.NormalCDF(z[i][j])
		}
	}
	return out
}

func TestSelectRecoversChainStructure(t *testing.T) {
	data := chainData(600, 4, 0.7)
	ctrl := DefaultControls()
	res, err := Select(context.Background(), data, ctrl)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if res.Matrix.Dim() != 4 {
		t.Fatalf("expected dim 4, got %d", res.Matrix.Dim())
	}
	if err := res.Matrix.Validate(); err != nil {
		t.Fatalf("selected matrix fails to validate: %v", err)
	}
	if len(res.Pcs) != 3 {
		t.Fatalf("expected 3 trees of pair copulas, got %d", len(res.Pcs))
	}
	for t0, row := range res.Pcs {
		want := 3 - t0
		if len(row) != want {
			t.Fatalf("tree %d: expected %d fitted copulas, got %d", t0, want, len(row))
		}
		for _, bc := range row {
			if bc == nil {
				t.Fatalf("tree %d: nil pair copula", t0)
			}
		}
	}
}

func TestSelectTruncatesStructureFamiliesOnly(t *testing.T) {
	data := chainData(400, 4, 0.7)
	ctrl := DefaultControls()
	ctrl.TruncationLevel = 1
	res, err := Select(context.Background(), data, ctrl)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := res.Matrix.Validate(); err != nil {
		t.Fatalf("truncated matrix fails to validate: %v", err)
	}
	for _, bc := range res.Pcs[1] {
		if bc.Family() != bicop.Indep {
			t.Fatalf("tree 1 should be forced to independence past truncation level, got family %v", bc.Family())
		}
	}
}

func TestSelectRejectsTooFewVariables(t *testing.T) {
	_, err := Select(context.Background(), [][]float64{{0.5}}, DefaultControls())
	if err == nil {
		t.Fatal("expected error for single-variable data")
	}
}

func TestSelectRejectsRaggedData(t *testing.T) {
	_, err := Select(context.Background(), [][]float64{{0.1, 0.2}, {0.3}}, DefaultControls())
	if err == nil {
		t.Fatal("expected error for ragged data matrix")
	}
}
