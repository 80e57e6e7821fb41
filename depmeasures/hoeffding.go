package depmeasures

// Hoeffding computes Hoeffding's D statistic, a rank-based measure of
// departure from independence that (unlike tau and rho) detects
// non-monotone dependence, scaled to [0,1] for use as a Dißmann
// tree-edge weight alongside tau and rho. This follows the classic
// Hoeffding (1948) formula without the tie-correction terms used by
// implementations aimed at heavily discretized data -- pseudo-
// observations are effectively continuous, so ties are rare and the
// uncorrected formula is stable.
func Hoeffding(x, y []float64) float64 {
	n := len(x)
	if n < 5 {
		return 0
	}
	rx := averageRanks(x)
	ry := averageRanks(y)
	q := bivariateRanks(x, y)

	var d1, d2, d3 float64
	for i := 0; i < n; i++ {
		d1 += (rx[i] - 1) * (rx[i] - 2) * (ry[i] - 1) * (ry[i] - 2)
		d2 += (rx[i] - 2) * (ry[i] - 2) * (q[i] - 1)
		d3 += (q[i] - 1) * (q[i] - 2)
	}
	nf := float64(n)
	numerator := (nf-2)*(nf-3)*d3 + d1 - 2*(nf-2)*d2
	denominator := nf * (nf - 1) * (nf - 2) * (nf - 3) * (nf - 4)
	if denominator == 0 {
		return 0
	}
	d := 30 * numerator / denominator
	return clamp01(d)
}

// bivariateRanks returns, for each point i, Q_i = 1 + the number of other
// points strictly below-and-left of (x_i, y_i).
func bivariateRanks(x, y []float64) []float64 {
	n := len(x)
	q := make([]float64, n)
	for i := 0; i < n; i++ {
		count := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if x[j] < x[i] && y[j] < y[i] {
				count++
			}
		}
		q[i] = 1 + count
	}
	return q
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
