// Package rvine implements the R-vine matrix: the triangular array
// that records, for a d-dimensional regular vine, which pair copula
// sits at every tree/edge position and what it conditions on.
package rvine

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"vinecop/internal/vineerr"
)

// Matrix is a natural-order R-vine structure matrix: an n x n
// triangular array (only entries with row >= column are meaningful,
// 0-indexed), where column j's diagonal entry m[j][j] is the variable
// "order[j]" and the entries below it in the same column, read
// top-to-bottom from the diagonal, are that variable's partners at
// increasing tree depth -- m[j+1+k][j] is the conditioned partner of
// order[j] at tree k, conditioned on the partners at trees 0..k-1 of
// that same column. See Column for the typed accessor most callers
// want instead of raw matrix indices.
type Matrix struct {
	d        int
	m        [][]int // m[i][j] valid for i >= j, d x d
	order    []int   // order[j] = m[j][j], natural order of the vine
	maxArray [][]int // maxArray[i][j] = max(m[j..i][j]), running column maximum -- see MaxArray
}

// Edge describes one pair-copula position: the conditioned variable
// pair and the (possibly empty) conditioning set, listed in the
// column's partner order (tree 0's partner first), not sorted.
type Edge struct {
	Tree     int // 0 = unconditional tree
	Var1     int
	Var2     int
	CondSet  []int
}

// NewMatrix builds a Matrix from an explicit diagonal (the natural
// order) and, for each non-last column j, the chain of partner
// variables at increasing tree depth (partners[j][k] is the partner at
// tree k, for k = 0..d-2-j). It validates the R-vine axioms before
// returning.
func NewMatrix(order []int, partners [][]int) (*Matrix, error) {
	d := len(order)
	if d == 0 {
		return nil, vineerr.Structure("NewMatrix", "empty order")
	}
	if len(partners) != d-1 && d > 1 {
		return nil, vineerr.Structure("NewMatrix", "expected %d partner columns, got %d", d-1, len(partners))
	}
	m := make([][]int, d)
	for i := range m {
		m[i] = make([]int, d)
	}
	for j := 0; j < d; j++ {
		m[j][j] = order[j]
	}
	for j := 0; j < d-1; j++ {
		col := partners[j]
		if len(col) != d-1-j {
			return nil, vineerr.Structure("NewMatrix", "column %d: expected %d partners, got %d", j, d-1-j, len(col))
		}
		// col[k] (tree k, k=0 nearest diagonal) sits at row j+1+k,
		// so reading the column top to bottom from the diagonal gives
		// increasing tree depth, matching the type doc above.
		for k, v := range col {
			m[j+1+k][j] = v
		}
	}
	mat := &Matrix{d: d, m: m, order: append([]int(nil), order...)}
	mat.maxArray = computeMaxArray(mat)
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	return mat, nil
}

// Dim returns the vine's dimension.
func (mat *Matrix) Dim() int { return mat.d }

// Order returns the natural order (diagonal), a copy the caller may
// mutate freely.
func (mat *Matrix) Order() []int {
	return append([]int(nil), mat.order...)
}

// At returns the raw matrix entry at (row, col), 0-indexed, valid only
// for row >= col.
func (mat *Matrix) At(row, col int) int { return mat.m[row][col] }

// Column returns, for column j (0 <= j < d-1), every edge in that
// column in increasing tree order: tree 0's edge first, down to the
// most deeply conditioned edge last.
func (mat *Matrix) Column(j int) []Edge {
	if j < 0 || j >= mat.d-1 {
		return nil
	}
	v1 := mat.order[j]
	edges := make([]Edge, mat.d-1-j)
	var cond []int
	for k := 0; k < mat.d-1-j; k++ {
		v2 := mat.m[j+1+k][j]
		edges[k] = Edge{Tree: k, Var1: v1, Var2: v2, CondSet: append([]int(nil), cond...)}
		cond = append(cond, v2)
	}
	return edges
}

// Edges returns every edge of every column, grouped by tree: result[t]
// is the list of tree-t edges across all columns.
func (mat *Matrix) Edges() [][]Edge {
	trees := make([][]Edge, mat.d-1)
	for j := 0; j < mat.d-1; j++ {
		for _, e := range mat.Column(j) {
			trees[e.Tree] = append(trees[e.Tree], e)
		}
	}
	return trees
}

// computeMaxArray fills maxArray[i][j] = the maximum matrix value in
// column j between the diagonal (row j) and row i, inclusive -- the
// standard running-maximum table used to decide whether an edge's
// needed h-function is h1 or h2 (see NeededH1/NeededH2).
func computeMaxArray(mat *Matrix) [][]int {
	d := mat.d
	out := make([][]int, d)
	for i := range out {
		out[i] = make([]int, d)
	}
	for j := 0; j < d; j++ {
		running := mat.m[j][j]
		out[j][j] = running
		for i := j + 1; i < d; i++ {
			if mat.m[i][j] > running {
				running = mat.m[i][j]
			}
			out[i][j] = running
		}
	}
	return out
}

// MaxArray returns the precomputed running-column-maximum table.
func (mat *Matrix) MaxArray() [][]int { return mat.maxArray }

// NeededH1 reports whether the edge at (row, col) -- row > col -- needs
// the h1 output (conditional CDF of the second conditioned variable)
// from the tree below it to be retained, vs. being derivable purely
// from the h2 side. An entry needs h1 precisely when it is not itself
// the new running maximum of its column, i.e. its conditioned partner
// was already the largest variable seen in that column.
func (mat *Matrix) NeededH1(row, col int) bool {
	if row <= col {
		return false
	}
	return mat.maxArray[row][col] != mat.m[row][col]
}

// NeededH2 is the complement of NeededH1 for this entry: every edge
// needs exactly one of the two h-function directions from its
// predecessor tree under a natural-order matrix, so this is simply
// !NeededH1 here, kept as a named accessor for symmetry with the
// spec's component table.
func (mat *Matrix) NeededH2(row, col int) bool {
	if row <= col {
		return false
	}
	return !mat.NeededH1(row, col)
}

// fullIndexSet returns the bitset of all variables touched by an edge:
// its conditioned pair plus its conditioning set.
func fullIndexSet(e Edge, d int) *bitset.BitSet {
	bs := bitset.New(uint(d + 1))
	bs.Set(uint(e.Var1))
	bs.Set(uint(e.Var2))
	for _, c := range e.CondSet {
		bs.Set(uint(c))
	}
	return bs
}

// Validate checks the defining axioms of a natural-order R-vine
// matrix: the diagonal is a permutation of 1..d, each column's entries
// are a subset of (and together with the diagonal, exactly) the
// diagonal's suffix from that column onward, and the proximity
// condition holds -- every tree-(t>0) edge's full index set differs
// from two distinct tree-(t-1) edges' full index sets by exactly one
// variable each.
func (mat *Matrix) Validate() error {
	d := mat.d
	seen := make(map[int]bool, d)
	for _, v := range mat.order {
		if v < 1 || v > d {
			return vineerr.Structure("Validate", "order value %d out of range [1,%d]", v, d)
		}
		if seen[v] {
			return vineerr.Structure("Validate", "order value %d repeated", v)
		}
		seen[v] = true
	}

	for j := 0; j < d-1; j++ {
		suffix := make(map[int]bool, d-j)
		for _, v := range mat.order[j:] {
			suffix[v] = true
		}
		colSeen := make(map[int]bool, d-j)
		colSeen[mat.order[j]] = true
		for i := j + 1; i < d; i++ {
			v := mat.m[i][j]
			if !suffix[v] {
				return vineerr.Structure("Validate", "column %d entry %d not in diagonal suffix", j, v)
			}
			if colSeen[v] {
				return vineerr.Structure("Validate", "column %d repeats value %d", j, v)
			}
			colSeen[v] = true
		}
	}

	trees := mat.Edges()
	if len(trees) == 0 {
		return nil
	}
	prevFIS := make([]*bitset.BitSet, 0, len(trees[0]))
	for _, e := range trees[0] {
		if e.Var1 == e.Var2 {
			return vineerr.Structure("Validate", "tree 0 edge has equal conditioned variables %d", e.Var1)
		}
		prevFIS = append(prevFIS, fullIndexSet(e, d))
	}
	for t := 1; t < len(trees); t++ {
		curFIS := make([]*bitset.BitSet, 0, len(trees[t]))
		for _, e := range trees[t] {
			target := fullIndexSet(e, d)
			matches := 0
			for _, pf := range prevFIS {
				diff := target.SymmetricDifference(pf)
				if diff.Count() == 1 {
					matches++
				}
			}
			if matches < 2 {
				return vineerr.Structure("Validate", "proximity condition fails at tree %d, pair (%d,%d)", t, e.Var1, e.Var2)
			}
			curFIS = append(curFIS, target)
		}
		prevFIS = curFIS
	}
	return nil
}

func (mat *Matrix) String() string {
	return fmt.Sprintf("rvine.Matrix{d=%d, order=%v}", mat.d, mat.order)
}
