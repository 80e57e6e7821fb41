package vinecop

import (
	"context"

	"vinecop/internal/pool"
	"vinecop/internal/qmc"
)

// minCDFSamples is the spec's floor on the quasi-Monte-Carlo sample
// size CDF draws from the vine before counting empirical coverage.
const minCDFSamples = 10_000

// CDF evaluates the vine's distribution function at every row of
// queries by drawing n (at least minCDFSamples) quasi-random points
// from the vine via InverseRosenblatt and returning, for each query
// row, the empirical proportion of draws dominated by it
// coordinatewise.
func (vc *Vinecop) CDF(ctx context.Context, queries [][]float64, n, nprocs int) ([]float64, error) {
	if err := vc.checkData(queries); err != nil {
		return nil, err
	}
	if n < minCDFSamples {
		n = minCDFSamples
	}
	halton := qmc.Halton(n, vc.dim, 0)
	draws, err := vc.InverseRosenblatt(ctx, halton, nprocs)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(queries))
	batches := rowBatches(len(queries), pool.Clamp(nprocs, len(queries)))
	err = pool.Map(ctx, len(batches), batches, func(_ int, b [2]int) error {
		for qi := b[0]; qi < b[1]; qi++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			q := queries[qi]
			count := 0
			for _, x := range draws {
				if dominates(q, x) {
					count++
				}
			}
			out[qi] = float64(count) / float64(n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func dominates(q, x []float64) bool {
	for i := range q {
		if x[i] > q[i] {
			return false
		}
	}
	return true
}
