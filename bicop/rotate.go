package bicop

// Rotation is one of the four pair-copula rotations measured in
// degrees clockwise. Every engine above is written at rotation 0; the
// facade applies the coordinate reflections below rather than asking
// each family to know about rotation, which keeps newEngine's
// implementations monotone in theta (see engine.go).
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

func (r Rotation) valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	default:
		return false
	}
}

// rotatedPDF/CDF/H1/H2/Hinv1/Hinv2 implement the standard rotation
// identities: a rotation reflects one or both arguments of the
// rotation-0 copula and, for the h-functions, complements the result
// when the free (non-conditioning) argument was reflected.
func rotatedPDF(e engine, r Rotation, u [2]float64, theta []float64) float64 {
	switch r {
	case Rotate90:
		return e.pdf([2]float64{1 - u[0], u[1]}, theta)
	case Rotate180:
		return e.pdf([2]float64{1 - u[0], 1 - u[1]}, theta)
	case Rotate270:
		return e.pdf([2]float64{u[0], 1 - u[1]}, theta)
	default:
		return e.pdf(u, theta)
	}
}

func rotatedCDF(e engine, r Rotation, u [2]float64, theta []float64) float64 {
	switch r {
	case Rotate90:
		return u[1] - e.cdf([2]float64{1 - u[0], u[1]}, theta)
	case Rotate180:
		return u[0] + u[1] - 1 + e.cdf([2]float64{1 - u[0], 1 - u[1]}, theta)
	case Rotate270:
		return u[0] - e.cdf([2]float64{u[0], 1 - u[1]}, theta)
	default:
		return e.cdf(u, theta)
	}
}

func rotatedH1(e engine, r Rotation, u [2]float64, theta []float64) float64 {
	switch r {
	case Rotate90:
		return e.h1([2]float64{1 - u[0], u[1]}, theta)
	case Rotate180:
		return 1 - e.h1([2]float64{1 - u[0], 1 - u[1]}, theta)
	case Rotate270:
		return 1 - e.h1([2]float64{u[0], 1 - u[1]}, theta)
	default:
		return e.h1(u, theta)
	}
}

func rotatedH2(e engine, r Rotation, u [2]float64, theta []float64) float64 {
	switch r {
	case Rotate90:
		return 1 - e.h2([2]float64{1 - u[0], u[1]}, theta)
	case Rotate180:
		return 1 - e.h2([2]float64{1 - u[0], 1 - u[1]}, theta)
	case Rotate270:
		return e.h2([2]float64{u[0], 1 - u[1]}, theta)
	default:
		return e.h2(u, theta)
	}
}

func rotatedHinv1(e engine, r Rotation, u1, q float64, theta []float64) float64 {
	switch r {
	case Rotate90:
		return e.hinv1(1-u1, q, theta)
	case Rotate180:
		return 1 - e.hinv1(1-u1, 1-q, theta)
	case Rotate270:
		return 1 - e.hinv1(u1, 1-q, theta)
	default:
		return e.hinv1(u1, q, theta)
	}
}

func rotatedHinv2(e engine, r Rotation, u1, q float64, theta []float64) float64 {
	switch r {
	case Rotate90:
		return 1 - e.hinv2(u1, 1-q, theta)
	case Rotate180:
		return 1 - e.hinv2(1-u1, 1-q, theta)
	case Rotate270:
		return e.hinv2(1-u1, q, theta)
	default:
		return e.hinv2(u1, q, theta)
	}
}
