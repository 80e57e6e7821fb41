package dissmann

import (
	"context"
	"math"

	"vinecop/depmeasures"
	"vinecop/internal/vineerr"
)

// SelectThreshold automates choosing Controls.Threshold: it starts at
// the strongest pairwise dependence in the data (no edge could ever
// survive a stricter cut) and geometrically relaxes it by
// learningRate each round, re-running Select at each candidate down to
// the smallest threshold tried, and keeps the threshold that yields the
// best fitted log-likelihood; it does not stop early when a relaxation
// fails to improve it. This mirrors vinecopulib's
// learning-rate threshold search, compressed out of the prose
// description but present in the original sources.
func SelectThreshold(ctx context.Context, data [][]float64, ctrl Controls, learningRate float64) (float64, error) {
	if learningRate <= 0 || learningRate >= 1 {
		return 0, vineerr.Domain("SelectThreshold", "learning rate must be in (0,1), got %g", learningRate)
	}
	if len(data) == 0 {
		return 0, vineerr.Domain("SelectThreshold", "empty data matrix")
	}
	d := len(data[0])
	criterion := ctrl.Criterion
	if criterion == nil {
		criterion = depmeasures.Tau
	}

	start := 0.0
	for j := 0; j < d; j++ {
		for k := j + 1; k < d; k++ {
			x := column(data, j)
			y := column(data, k)
			if v := math.Abs(criterion(x, y)); v > start {
				start = v
			}
		}
	}
	if start == 0 {
		return 0, nil
	}

	bestThreshold := 0.0
	bestLL := math.Inf(-1)
	for thr := start; thr > 1e-4; thr *= learningRate {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		trial := ctrl
		trial.Threshold = thr
		res, err := Select(ctx, data, trial)
		if err != nil {
			return 0, err
		}
		ll := logLikSum(res)
		if ll > bestLL {
			bestLL = ll
			bestThreshold = thr
		}
	}
	return bestThreshold, nil
}

func column(data [][]float64, j int) []float64 {
	out := make([]float64, len(data))
	for i, row := range data {
		out[i] = row[j]
	}
	return out
}

// logLikSum adds up every fitted pair copula's log-likelihood over its
// own fitting data, the per-edge criterion SelectThreshold maximizes.
func logLikSum(res *Result) float64 {
	total := 0.0
	for _, tree := range res.Pcs {
		for _, bc := range tree {
			if bc == nil {
				continue
			}
			total += bc.LogLik()
		}
	}
	return total
}
