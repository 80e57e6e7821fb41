// Package vinecop implements the R-vine copula facade: a fitted
// structure matrix plus its pair-copula staircase, evaluated through a
// row-batched cascade (density, CDF by quasi-Monte-Carlo, simulation
// by the inverse Rosenblatt transform) and fit by Dißmann's greedy
// tree-by-tree selection.
package vinecop

import (
	"math"

	"vinecop/bicop"
	"vinecop/internal/vineerr"
	"vinecop/rvine"
)

// Vinecop is a fitted (or manually assembled) regular vine: a
// structure matrix and, for every matrix position, the pair copula
// that sits there. Pcs is tree-major: Pcs[t] holds column 0..d-2-t's
// tree-t copula, matching rvine.Matrix.Edges and
// internal/dissmann.Result.Pcs exactly, so a selection result can be
// handed to NewFromFit without reshaping.
type Vinecop struct {
	dim    int
	matrix *rvine.Matrix
	pcs    [][]*bicop.Bicop

	fitted bool
	nobs   int
	loglik float64
}

// New returns the trivial d-dimensional vine with every pair copula
// set to independence over the canonical D-vine order 1..d. It is the
// identity element further family/structure selection starts from.
func New(d int) (*Vinecop, error) {
	if d < 1 {
		return nil, vineerr.Domain("New", "dimension must be positive, got %d", d)
	}
	order := make([]int, d)
	for i := range order {
		order[i] = i + 1
	}
	mat, err := rvine.NewDVine(order)
	if err != nil {
		return nil, err
	}
	pcs := make([][]*bicop.Bicop, d-1)
	for t := range pcs {
		row := make([]*bicop.Bicop, d-1-t)
		for j := range row {
			row[j] = bicop.New()
		}
		pcs[t] = row
	}
	return &Vinecop{dim: d, matrix: mat, pcs: pcs}, nil
}

// NewFromMatrix builds a vine over an existing structure with every
// pair copula set to independence, the starting point for a
// fixed-structure family-selection pass.
func NewFromMatrix(mat *rvine.Matrix) (*Vinecop, error) {
	d := mat.Dim()
	pcs := make([][]*bicop.Bicop, d-1)
	for t := range pcs {
		row := make([]*bicop.Bicop, d-1-t)
		for j := range row {
			row[j] = bicop.New()
		}
		pcs[t] = row
	}
	return &Vinecop{dim: d, matrix: mat, pcs: pcs}, nil
}

// NewFromFit assembles a vine from a structure matrix and a matching
// pair-copula staircase, validating the staircase shape against the
// matrix dimension.
func NewFromFit(mat *rvine.Matrix, pcs [][]*bicop.Bicop) (*Vinecop, error) {
	d := mat.Dim()
	if len(pcs) != d-1 {
		return nil, vineerr.Structure("NewFromFit", "expected %d tree rows of pair copulas, got %d", d-1, len(pcs))
	}
	for t, row := range pcs {
		if len(row) != d-1-t {
			return nil, vineerr.Structure("NewFromFit", "tree %d: expected %d pair copulas, got %d", t, d-1-t, len(row))
		}
		for j, bc := range row {
			if bc == nil {
				return nil, vineerr.Structure("NewFromFit", "tree %d column %d: nil pair copula", t, j)
			}
		}
	}
	return &Vinecop{dim: d, matrix: mat, pcs: pcs}, nil
}

// Dim returns the vine's dimension.
func (vc *Vinecop) Dim() int { return vc.dim }

// Matrix returns the underlying structure matrix.
func (vc *Vinecop) Matrix() *rvine.Matrix { return vc.matrix }

// Order returns the structure matrix's natural order.
func (vc *Vinecop) Order() []int { return vc.matrix.Order() }

// PairCopula returns the pair copula fitted at tree t, column j, or
// nil if out of range.
func (vc *Vinecop) PairCopula(tree, col int) *bicop.Bicop {
	if tree < 0 || tree >= len(vc.pcs) || col < 0 || col >= len(vc.pcs[tree]) {
		return nil
	}
	return vc.pcs[tree][col]
}

// Nobs returns the number of observations the vine was fitted to, or
// 0 if it was never fitted.
func (vc *Vinecop) Nobs() int { return vc.nobs }

// LogLik returns the cached log-likelihood of the last fit, or an
// error if the vine was never fitted.
func (vc *Vinecop) LogLik() (float64, error) {
	if !vc.fitted {
		return 0, vineerr.State("LogLik", "vine has never been fitted to data")
	}
	return vc.loglik, nil
}

// AIC returns Akaike's information criterion of the last fit.
func (vc *Vinecop) AIC() (float64, error) {
	ll, err := vc.LogLik()
	if err != nil {
		return 0, err
	}
	return -2*ll + 2*vc.numParams(), nil
}

// BIC returns the Bayesian information criterion of the last fit.
func (vc *Vinecop) BIC() (float64, error) {
	ll, err := vc.LogLik()
	if err != nil {
		return 0, err
	}
	n := float64(vc.nobs)
	return -2*ll + vc.numParams()*math.Log(n), nil
}

func (vc *Vinecop) numParams() float64 {
	var total float64
	for _, row := range vc.pcs {
		for _, bc := range row {
			total += bc.NumParams()
		}
	}
	return total
}
