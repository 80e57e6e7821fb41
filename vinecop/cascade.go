package vinecop

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"vinecop/internal/pool"
	"vinecop/internal/vineerr"
)

// densityCap and the h/cdf clamp bounds mirror the failure model's
// numerical-overflow and underflow handling: the density is capped at
// 1e16, and any h-function output is clamped into [1e-10, 1-1e-10]
// before it feeds the next tree.
const (
	densityCap = 1e16
	hfloor     = 1e-10
	hceil      = 1 - 1e-10
)

func clampH(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < hfloor:
		return hfloor
	case x > hceil:
		return hceil
	default:
		return x
	}
}

// condKey builds a canonical map key for a conditioning set: sorted,
// comma-joined indices. The empty set keys to "".
func condKey(cond []int) string {
	if len(cond) == 0 {
		return ""
	}
	cp := append([]int(nil), cond...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, v := range cp {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// pseudoKey addresses one conditional pseudo-observation: variable v
// conditioned on the set cond.
type pseudoKey struct {
	v    int
	cond string
}

// cascadeRow runs the vine's pair-copula cascade on one observation
// row, walking the structure matrix's edges tree by tree (tree 0
// first) and building every pseudo-observation the deeper trees need
// in a map keyed by (variable, conditioning set) -- the same
// recursive construction internal/dissmann uses forward while fitting,
// replayed here against fixed copulas. This sidesteps needing a
// variable-to-column index translation: an edge's conditioned pair and
// conditioning set, once known, identify its operands unambiguously
// regardless of which column produced them.
func (vc *Vinecop) cascadeRow(u []float64, trees [][]edgeSpec) float64 {
	d := vc.dim
	val := make(map[pseudoKey]float64, d*d)
	for v := 1; v <= d; v++ {
		val[pseudoKey{v, ""}] = u[v-1]
	}

	density := 1.0
	for t, edges := range trees {
		for j, e := range edges {
			ck := condKey(e.condSet)
			d1 := val[pseudoKey{e.var1, ck}]
			d2 := val[pseudoKey{e.var2, ck}]
			bc := vc.pcs[t][j]
			pair := [2]float64{d1, d2}
			density *= bc.PDF(pair)

			nc1 := condKey(append(append([]int(nil), e.condSet...), e.var2))
			nc2 := condKey(append(append([]int(nil), e.condSet...), e.var1))
			val[pseudoKey{e.var1, nc1}] = clampH(bc.HFunc2(pair))
			val[pseudoKey{e.var2, nc2}] = clampH(bc.HFunc1(pair))
		}
	}
	if density > densityCap {
		return densityCap
	}
	return density
}

// edgeSpec is the plain (non-rvine-package) edge shape the cascade
// walks, mirroring rvine.Edge without importing it into the hot path.
type edgeSpec struct {
	var1, var2 int
	condSet    []int
}

func (vc *Vinecop) edgesByTree() [][]edgeSpec {
	raw := vc.matrix.Edges()
	out := make([][]edgeSpec, len(raw))
	for t, row := range raw {
		es := make([]edgeSpec, len(row))
		for j, e := range row {
			es[j] = edgeSpec{var1: e.Var1, var2: e.Var2, condSet: e.CondSet}
		}
		out[t] = es
	}
	return out
}

// PDF evaluates the vine density at every row of u, an n x d matrix of
// pseudo-observations in [0,1] indexed by original variable label.
// Rows are batched across nprocs workers; ctx is checked at every
// batch boundary and interrupt is polled every 100 rows, matching the
// cascade's interrupt contract.
func (vc *Vinecop) PDF(ctx context.Context, u [][]float64, nprocs int, interrupt func() bool) ([]float64, error) {
	if err := vc.checkData(u); err != nil {
		return nil, err
	}
	n := len(u)
	out := make([]float64, n)
	trees := vc.edgesByTree()

	batches := rowBatches(n, pool.Clamp(nprocs, n))
	err := pool.Map(ctx, len(batches), batches, func(_ int, b [2]int) error {
		for i := b[0]; i < b[1]; i++ {
			if (i-b[0])%100 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
				if interrupt != nil && interrupt() {
					return vineerr.Cancelled("PDF")
				}
			}
			out[i] = vc.cascadeRow(u[i], trees)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LogLikRows returns the per-row log-density, used both by LogLik and
// by Dißmann-style criteria that need per-edge likelihood.
func (vc *Vinecop) LogLikRows(ctx context.Context, u [][]float64, nprocs int) ([]float64, error) {
	dens, err := vc.PDF(ctx, u, nprocs, nil)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(dens))
	for i, p := range dens {
		out[i] = math.Log(p)
	}
	return out, nil
}

// Fit sets the vine's fit diagnostics (nobs, total log-likelihood)
// from a batch of observations it was fitted to, for later AIC/BIC
// queries. It does not refit any pair copula.
func (vc *Vinecop) Fit(ctx context.Context, data [][]float64, nprocs int) error {
	lls, err := vc.LogLikRows(ctx, data, nprocs)
	if err != nil {
		return err
	}
	var sum float64
	for _, ll := range lls {
		sum += ll
	}
	vc.fitted = true
	vc.nobs = len(data)
	vc.loglik = sum
	return nil
}

func (vc *Vinecop) checkData(u [][]float64) error {
	for _, row := range u {
		if len(row) != vc.dim {
			return vineerr.Domain("checkData", "expected %d columns, got %d", vc.dim, len(row))
		}
	}
	return nil
}

// rowBatches splits [0,n) into at most nb contiguous batches of
// roughly equal size.
func rowBatches(n, nb int) [][2]int {
	if nb < 1 {
		nb = 1
	}
	if nb > n {
		nb = n
	}
	if nb == 0 {
		return nil
	}
	base := n / nb
	rem := n % nb
	batches := make([][2]int, 0, nb)
	start := 0
	for i := 0; i < nb; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		batches = append(batches, [2]int{start, start + size})
		start += size
	}
	return batches
}
