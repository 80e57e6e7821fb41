package vinecop

import (
	"context"

	"vinecop/bicop"
	"vinecop/internal/dissmann"
	"vinecop/internal/pool"
	"vinecop/internal/vineerr"
	"vinecop/rvine"
)

// Select runs Dißmann's structure-and-family selection on an n x d
// pseudo-observation matrix and returns the fitted vine, with fit
// diagnostics (nobs, log-likelihood) already populated from the
// selection's own fitted pair copulas.
func Select(ctx context.Context, data [][]float64, ctrl dissmann.Controls) (*Vinecop, error) {
	res, err := dissmann.Select(ctx, data, ctrl)
	if err != nil {
		return nil, err
	}
	vc, err := NewFromFit(res.Matrix, res.Pcs)
	if err != nil {
		return nil, err
	}
	if err := vc.Fit(ctx, data, ctrl.Nprocs); err != nil {
		return nil, err
	}
	return vc, nil
}

// SelectFamilies is the "family selection" variant of Dißmann's
// algorithm (spec step (e) only): the structure matrix mat is held
// fixed, and a pair copula is fitted at every one of its positions by
// walking the same tree-by-tree edge order PDF's cascade uses (tree 0
// first), so each deeper tree sees the pseudo-observations the
// previous tree's fit produced. Per-row pseudo-observations are kept
// in a map keyed by (variable, conditioning set), the same keying
// cascadeRow and simulateRow use, since the column holding a variable's
// diagonal is not in general the column that produces its conditional
// data at a given tree.
func SelectFamilies(ctx context.Context, data [][]float64, mat *rvine.Matrix, ctrl dissmann.Controls) (*Vinecop, error) {
	d := mat.Dim()
	for _, row := range data {
		if len(row) != d {
			return nil, vineerr.Domain("SelectFamilies", "expected %d columns, got %d", d, len(row))
		}
	}
	n := len(data)

	vals := make([]map[pseudoKey]float64, n)
	for i, row := range data {
		m := make(map[pseudoKey]float64, d*d)
		for v := 1; v <= d; v++ {
			m[pseudoKey{v, ""}] = row[v-1]
		}
		vals[i] = m
	}

	nprocs := ctrl.Nprocs
	if nprocs <= 0 {
		nprocs = 1
	}

	trees := make([][]edgeSpec, d-1)
	for j := 0; j < d-1; j++ {
		for _, e := range mat.Column(j) {
			trees[e.Tree] = append(trees[e.Tree], edgeSpec{var1: e.Var1, var2: e.Var2, condSet: e.CondSet})
		}
	}

	pcs := make([][]*bicop.Bicop, d-1)
	for t, edges := range trees {
		row := make([]*bicop.Bicop, len(edges))
		allPairs := make([][][2]float64, len(edges))

		err := pool.Map(ctx, pool.Clamp(nprocs, len(edges)), edges, func(j int, e edgeSpec) error {
			// Each column only reads vals here, so concurrent workers
			// within a tree never write the same shared per-row maps;
			// the h-function updates those maps are applied serially
			// below, once every column in this tree has fitted.
			ck := condKey(e.condSet)
			pairs := make([][2]float64, n)
			for i := 0; i < n; i++ {
				pairs[i] = [2]float64{vals[i][pseudoKey{e.var1, ck}], vals[i][pseudoKey{e.var2, ck}]}
			}
			fitAll := ctrl.TruncationLevel <= 0 || t < ctrl.TruncationLevel
			var bc *bicop.Bicop
			if fitAll {
				fitted, err := bicop.Select(pairs, ctrl.Bicop)
				if err != nil {
					return vineerr.Numeric("SelectFamilies", "tree %d column %d: %v", t, j, err)
				}
				bc = fitted
			} else {
				bc = bicop.New()
			}
			row[j] = bc
			allPairs[j] = pairs
			return nil
		})
		if err != nil {
			return nil, err
		}

		for j, e := range edges {
			bc := row[j]
			pairs := allPairs[j]
			nc1 := condKey(append(append([]int(nil), e.condSet...), e.var2))
			nc2 := condKey(append(append([]int(nil), e.condSet...), e.var1))
			for i, p := range pairs {
				vals[i][pseudoKey{e.var1, nc1}] = clampH(bc.HFunc2(p))
				vals[i][pseudoKey{e.var2, nc2}] = clampH(bc.HFunc1(p))
			}
		}
		pcs[t] = row
	}

	vc, err := NewFromFit(mat, pcs)
	if err != nil {
		return nil, err
	}
	if err := vc.Fit(ctx, data, nprocs); err != nil {
		return nil, err
	}
	return vc, nil
}
