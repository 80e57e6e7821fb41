package vinecop

import (
	"context"

	"vinecop/internal/pool"
	"vinecop/internal/qmc"
	"vinecop/internal/vineerr"
)

// InverseRosenblatt maps independent Uniform(0,1) rows w (n x d,
// column-indexed by variable label like every other public matrix
// here) through the vine's inverse Rosenblatt transform, producing a
// sample from the fitted vine distribution.
func (vc *Vinecop) InverseRosenblatt(ctx context.Context, w [][]float64, nprocs int) ([][]float64, error) {
	if err := vc.checkData(w); err != nil {
		return nil, err
	}
	n := len(w)
	out := make([][]float64, n)

	batches := rowBatches(n, pool.Clamp(nprocs, n))
	err := pool.Map(ctx, len(batches), batches, func(_ int, b [2]int) error {
		for i := b[0]; i < b[1]; i++ {
			if (i-b[0])%100 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			out[i] = vc.simulateRow(w[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// simulateRow inverts one row of independent uniforms into one draw
// from the vine, indexed by variable label.
//
// Columns are processed in decreasing index order (shallowest chain
// first). The R-vine proximity condition guarantees that any variable
// a column's edge names as its conditioned partner sits at a higher
// column index, so by the time a column is inverted, every
// pseudo-observation its own chain needs has already been produced by
// an earlier iteration -- either the column-less last diagonal entry's
// raw draw, or a shallower column's forward replay below. Once a
// column's own value is recovered (inverting from its deepest tree
// down to tree 0 via HInv2), it is replayed forward through HFunc2 and
// HFunc1 to populate, on both sides of each of its edges, every
// intermediate conditional value a later (smaller-index) column's own
// inversion may reference.
func (vc *Vinecop) simulateRow(w []float64) []float64 {
	d := vc.dim
	order := vc.matrix.Order()
	val := make(map[pseudoKey]float64, d*d)

	raw := make([]float64, d)
	raw[d-1] = w[order[d-1]-1]
	val[pseudoKey{order[d-1], ""}] = raw[d-1]

	for j := d - 2; j >= 0; j-- {
		col := vc.matrix.Column(j)
		depth := len(col)

		v := w[order[j]-1]
		for t := depth - 1; t >= 0; t-- {
			e := col[t]
			ck := condKey(e.CondSet)
			right := val[pseudoKey{e.Var2, ck}]
			bc := vc.pcs[t][j]
			v = clampH(bc.HInv2(right, v))
		}
		raw[j] = v
		val[pseudoKey{order[j], ""}] = v

		cur := v
		for t := 0; t < depth; t++ {
			e := col[t]
			ck := condKey(e.CondSet)
			right := val[pseudoKey{e.Var2, ck}]
			bc := vc.pcs[t][j]
			pair := [2]float64{cur, right}
			cur = clampH(bc.HFunc2(pair))
			nc := condKey(append(append([]int(nil), e.CondSet...), e.Var2))
			val[pseudoKey{order[j], nc}] = cur
			nc2 := condKey(append(append([]int(nil), e.CondSet...), order[j]))
			val[pseudoKey{e.Var2, nc2}] = clampH(bc.HFunc1(pair))
		}
	}

	out := make([]float64, d)
	for j, v := range order {
		out[v-1] = raw[j]
	}
	return out
}

// Simulate draws n independent rows from the vine via
// InverseRosenblatt, using src for the underlying uniforms.
func (vc *Vinecop) Simulate(ctx context.Context, n int, src *qmc.Source, nprocs int) ([][]float64, error) {
	if n <= 0 {
		return nil, vineerr.Domain("Simulate", "n must be positive, got %d", n)
	}
	w := src.UniformMatrix(n, vc.dim)
	return vc.InverseRosenblatt(ctx, w, nprocs)
}
