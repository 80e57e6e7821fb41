package depmeasures

import "math"

// Tau computes Kendall's tau-b between x and y, the rank correlation
// used throughout bicop fitting (itau parameter seeding,
// tau_to_parameters) and as the default Dißmann tree-edge weight.
func Tau(x, y []float64) float64 {
	n := len(x)
	var concordant, discordant, tiesX, tiesY int64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			switch {
			case dx == 0 && dy == 0:
				tiesX++
				tiesY++
			case dx == 0:
				tiesX++
			case dy == 0:
				tiesY++
			case (dx > 0) == (dy > 0):
				concordant++
			default:
				discordant++
			}
		}
	}
	n0 := float64(n) * float64(n-1) / 2
	denom := math.Sqrt(math.Max(n0-float64(tiesX), 0)) * math.Sqrt(math.Max(n0-float64(tiesY), 0))
	if denom == 0 {
		return 0
	}
	return float64(concordant-discordant) / denom
}
