// Package dissmann implements Dißmann's greedy structure-and-family
// selection algorithm: build tree 0 as a maximum-spanning-tree over the
// raw pairwise dependence of the variables, then repeatedly treat the
// previous tree's fitted edges as the next tree's vertices, restricting
// candidate edges to those the proximity condition allows and scoring
// them by the dependence of their h-function-transformed pseudo
// observations.
package dissmann

import (
	"context"
	"fmt"
	"math"
	"sort"

	"vinecop/bicop"
	"vinecop/depmeasures"
	"vinecop/internal/pool"
	"vinecop/internal/vineerr"
	"vinecop/rvine"
)

// Controls configures Dißmann's structure and family selection.
type Controls struct {
	Bicop bicop.ControlsBicop
	// Criterion scores a candidate edge from its two pseudo-observation
	// columns; larger magnitude means stronger dependence. Defaults to
	// Kendall's tau.
	Criterion func(x, y []float64) float64
	// TruncationLevel stops fitting non-independence pair copulas past
	// this many trees (0 disables truncation, fitting all d-1 trees).
	TruncationLevel int
	// Threshold forces an edge to the independence copula when its
	// criterion magnitude falls below it (0 disables thresholding).
	Threshold float64
	Nprocs    int
}

// DefaultControls returns Kendall's tau as the edge criterion with no
// truncation or thresholding.
func DefaultControls() Controls {
	return Controls{
		Bicop:     bicop.DefaultControls(),
		Criterion: depmeasures.Tau,
		Nprocs:    1,
	}
}

// Result is what Select returns: the chosen R-vine matrix and the
// fitted pair-copula staircase in the matrix's column order (pcs[t]
// has length d-1-t), ready to hand to a Vinecop constructor.
type Result struct {
	Matrix *rvine.Matrix
	Pcs    [][]*bicop.Bicop
}

// Select runs Dißmann's algorithm on an n x d pseudo-observation
// matrix and returns the selected R-vine structure with a fitted pair
// copula at every position.
func Select(ctx context.Context, data [][]float64, ctrl Controls) (*Result, error) {
	if len(data) == 0 {
		return nil, vineerr.Domain("Select", "empty data matrix")
	}
	d := len(data[0])
	if d < 2 {
		return nil, vineerr.Domain("Select", "need at least 2 variables, got %d", d)
	}
	for _, row := range data {
		if len(row) != d {
			return nil, vineerr.Domain("Select", "ragged data matrix: expected %d columns", d)
		}
	}
	criterion := ctrl.Criterion
	if criterion == nil {
		criterion = depmeasures.Tau
	}
	nprocs := ctrl.Nprocs
	if nprocs <= 0 {
		nprocs = 1
	}

	width := uint(d + 1)
	verts := make([]workVertex, d)
	for j := 0; j < d; j++ {
		col := make([]float64, len(data))
		for i, row := range data {
			col[i] = row[j]
		}
		v := j + 1
		verts[j] = workVertex{fullSet: newFullSet(width, v), a: v, b: v, dataA: col, dataB: col}
	}

	trees := make([][]edgeInfo, 0, d-1)
	for t := 0; t < d-1; t++ {
		n := len(verts)
		pairs := candidatePairs(verts)
		weights := make(map[[2]int]float64, len(pairs))
		type weighResult struct {
			key [2]int
			w   float64
		}
		results := make([]weighResult, len(pairs))
		err := pool.Map(ctx, pool.Clamp(nprocs, len(pairs)), pairs, func(idx int, p [2]int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, _, _, data1, data2, ok := deriveEdge(verts[p[0]], verts[p[1]])
			if !ok {
				return nil
			}
			results[idx] = weighResult{key: p, w: math.Abs(criterion(data1, data2))}
			return nil
		})
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			weights[r.key] = r.w
		}

		picks, err := primMST(n, func(i, j int) (float64, bool) {
			key := [2]int{i, j}
			if i > j {
				key = [2]int{j, i}
			}
			w, ok := weights[key]
			return w, ok
		})
		if err != nil {
			return nil, vineerr.Structure("Select", "tree %d: %v", t, err)
		}

		fitAll := ctrl.TruncationLevel <= 0 || t < ctrl.TruncationLevel
		edges := make([]edgeInfo, 0, len(picks))
		nextVerts := make([]workVertex, 0, len(picks))
		for _, pk := range picks {
			var1, var2, condSet, data1, data2, ok := deriveEdge(verts[pk.i], verts[pk.j])
			if !ok {
				return nil, vineerr.Structure("Select", "tree %d: MST picked an invalid edge", t)
			}
			id := fitID(t, var1, var2, condSet)
			var bc *bicop.Bicop
			if fitAll && !(ctrl.Threshold > 0 && pk.weight < ctrl.Threshold) {
				fitted, err := bicop.Select(toPairs(data1, data2), ctrl.Bicop)
				if err != nil {
					return nil, vineerr.Numeric("Select", "tree %d edge (%d,%d): %v", t, var1, var2, err)
				}
				bc = fitted
			} else {
				bc = bicop.New()
			}
			edges = append(edges, edgeInfo{
				tree: t, var1: var1, var2: var2, condSet: condSet,
				data1: data1, data2: data2, weight: pk.weight, fitID: id, bc: bc,
			})

			full := newFullSet(width, condSet...)
			full.Set(uint(var1))
			full.Set(uint(var2))
			h1, h2 := transform(bc, data1, data2)
			nextVerts = append(nextVerts, workVertex{fullSet: full, a: var1, b: var2, dataA: h1, dataB: h2})
		}
		trees = append(trees, edges)
		verts = nextVerts
		if len(verts) < 2 {
			break
		}
	}

	mat, pcs, err := assembleMatrix(d, trees)
	if err != nil {
		return nil, err
	}
	return &Result{Matrix: mat, Pcs: pcs}, nil
}

// candidatePairs lists every pair of vertex indices whose working
// vertices satisfy the proximity condition.
func candidatePairs(verts []workVertex) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if _, _, _, _, _, ok := deriveEdge(verts[i], verts[j]); ok {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// transform returns the h-function pseudo-observations that feed the
// next tree level: hdata1 is F(var1 | var2, condSet), hdata2 is
// F(var2 | var1, condSet).
func transform(bc *bicop.Bicop, data1, data2 []float64) (hdata1, hdata2 []float64) {
	n := len(data1)
	hdata1 = make([]float64, n)
	hdata2 = make([]float64, n)
	for i := range data1 {
		u := [2]float64{data1[i], data2[i]}
		hdata1[i] = bc.HFunc2(u)
		hdata2[i] = bc.HFunc1(u)
	}
	return hdata1, hdata2
}

func toPairs(data1, data2 []float64) [][2]float64 {
	out := make([][2]float64, len(data1))
	for i := range data1 {
		out[i] = [2]float64{data1[i], data2[i]}
	}
	return out
}

func fitID(tree, var1, var2 int, condSet []int) string {
	cs := append([]int(nil), condSet...)
	sort.Ints(cs)
	return fmt.Sprintf("t%d:%d,%d|%v", tree, var1, var2, cs)
}
