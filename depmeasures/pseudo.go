// Package depmeasures implements the dependence and statistics helpers
// consumed by bicop (fitting and family pre-selection) and by the
// structure-selection algorithm: pseudo-observations, pairwise Kendall's
// tau, Spearman's rho, Pearson correlation, and Hoeffding's D, plus a
// dependence-matrix helper that scores every pair of columns in
// parallel. These are rank-based statistics with no analogue in the
// example corpus's own domains, so they are implemented directly against
// the stdlib (sort, math) rather than against a third-party stats
// package -- the one ecosystem candidate, gonum/stat, does not expose
// Kendall's tau or Hoeffding's D.
package depmeasures

import (
	"context"
	"sort"

	"vinecop/internal/pool"
	"vinecop/internal/vineerr"
)

// PseudoObs converts an n x d data matrix into pseudo-observations on
// (0,1): each column is replaced by its normalized average rank,
// r_i/(n+1), matching the "helper is provided" convention of the data
// contract in spec.md section 6. NaNs keep their row's rank undefined and
// propagate as NaN.
func PseudoObs(data [][]float64) ([][]float64, error) {
	if len(data) == 0 {
		return nil, vineerr.Domain("PseudoObs", "empty data matrix")
	}
	n := len(data)
	d := len(data[0])
	for _, row := range data {
		if len(row) != d {
			return nil, vineerr.Domain("PseudoObs", "ragged matrix: expected %d columns", d)
		}
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
	}
	for j := 0; j < d; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = data[i][j]
		}
		ranks := averageRanks(col)
		for i := 0; i < n; i++ {
			out[i][j] = ranks[i] / float64(n+1)
		}
	}
	return out, nil
}

// averageRanks returns the 1-based average rank of each element of x,
// with ties receiving the mean rank of the tied block. NaNs sort after
// every finite value, so finite values keep their ranks among
// themselves, and each NaN element gets rank NaN.
func averageRanks(x []float64) []float64 {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return lessOrNaNLast(x[idx[a]], x[idx[b]])
	})
	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && x[idx[j+1]] == x[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			if isNaN(x[idx[k]]) {
				ranks[idx[k]] = x[idx[k]] // NaN
			} else {
				ranks[idx[k]] = avg
			}
		}
		i = j + 1
	}
	return ranks
}

func lessOrNaNLast(a, b float64) bool {
	if isNaN(a) {
		return false
	}
	if isNaN(b) {
		return true
	}
	return a < b
}

func isNaN(x float64) bool { return x != x }

// DependenceMatrix scores every pair of columns of data using criterion
// (one of Tau, Rho, Pearson, Hoeffding) in parallel over nprocs workers,
// following the teacher's CalculateEdgeScores idiom: a dense n x n output
// table built by an internal/pool.Map over rows, each worker filling one
// row independently.
func DependenceMatrix(ctx context.Context, data [][]float64, criterion func(x, y []float64) float64, nprocs int) ([][]float64, error) {
	if len(data) == 0 {
		return nil, vineerr.Domain("DependenceMatrix", "empty data matrix")
	}
	d := len(data[0])
	columns := make([][]float64, d)
	for j := 0; j < d; j++ {
		columns[j] = make([]float64, len(data))
		for i, row := range data {
			columns[j][i] = row[j]
		}
	}
	out := make([][]float64, d)
	for i := range out {
		out[i] = make([]float64, d)
	}
	rows := make([]int, d)
	for i := range rows {
		rows[i] = i
	}
	err := pool.Map(ctx, nprocs, rows, func(_ int, i int) error {
		for j := 0; j < d; j++ {
			if i == j {
				continue
			}
			out[i][j] = criterion(columns[i], columns[j])
		}
		return nil
	})
	return out, err
}
