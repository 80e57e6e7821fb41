package interpgrid

// bicubicInterp evaluates a bicubic (Catmull-Rom) interpolant of grid
// values sampled at centers x centers, clamping the query point to the
// sampled range. The interpolant's overshoot is not clamped. Grid
// resolution is expected to be coarse (tens of points), so this runs
// per call rather than precomputing spline coefficients.
func bicubicInterp(centers []float64, grid [][]float64, u, v float64) float64 {
	n := len(centers)
	u = clampToRange(u, centers[0], centers[n-1])
	v = clampToRange(v, centers[0], centers[n-1])

	i := locate(centers, u)
	j := locate(centers, v)

	var rows [4]float64
	for k := -1; k <= 2; k++ {
		row := grid[clampIndex(i+k, n)]
		rows[k+1] = cubicInterp(centers, row, j, v)
	}
	t := paramT(centers, i, u)
	return catmullRom(rows[0], rows[1], rows[2], rows[3], t)
}

// cubicInterp interpolates row values at centers[j0-1..j0+2] to the
// query point q, using Catmull-Rom tangents.
func cubicInterp(centers []float64, row []float64, j0 int, q float64) float64 {
	n := len(centers)
	p0 := row[clampIndex(j0-1, n)]
	p1 := row[clampIndex(j0, n)]
	p2 := row[clampIndex(j0+1, n)]
	p3 := row[clampIndex(j0+2, n)]
	t := paramT(centers, j0, q)
	return catmullRom(p0, p1, p2, p3, t)
}

// catmullRom evaluates the Catmull-Rom cubic through p1,p2 with
// tangents derived from p0,p3, at parameter t in [0,1] between p1 and
// p2.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// paramT returns the fractional position of q between centers[i] and
// centers[i+1], clamped to [0,1].
func paramT(centers []float64, i int, q float64) float64 {
	n := len(centers)
	lo := i
	hi := i + 1
	if hi >= n {
		hi = n - 1
	}
	if centers[hi] == centers[lo] {
		return 0
	}
	t := (q - centers[lo]) / (centers[hi] - centers[lo])
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// locate returns the largest index i < len(centers)-1 such that
// centers[i] <= q, or 0.
func locate(centers []float64, q float64) int {
	lo, hi := 0, len(centers)-1
	if q <= centers[lo] {
		return lo
	}
	if q >= centers[hi] {
		return hi - 1
	}
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if centers[mid] <= q {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clampToRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
