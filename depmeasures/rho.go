package depmeasures

// Rho computes Spearman's rank correlation: the Pearson correlation of
// the average ranks of x and y.
func Rho(x, y []float64) float64 {
	rx := averageRanks(x)
	ry := averageRanks(y)
	return Pearson(rx, ry)
}
