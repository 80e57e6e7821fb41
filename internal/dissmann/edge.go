package dissmann

import (
	"github.com/bits-and-blooms/bitset"

	"vinecop/bicop"
)

// workVertex is one vertex of the working graph at the tree level
// currently being built: at tree 0 an original variable, at tree t>0
// an edge chosen in tree t-1. fullSet is the conditioned pair unioned
// with the conditioning set, reused from the teacher's leafset bitset
// idiom for fast overlap tests (internal/graphs.TreeData.leafsets).
type workVertex struct {
	fullSet *bitset.BitSet
	a, b    int // the two conditioned variables; a==b==itself at tree 0
	dataA   []float64
	dataB   []float64
}

// edgeInfo is a per-edge selection-time record: a candidate or
// selected pair-copula position in the tree sequence being built.
type edgeInfo struct {
	tree         int
	var1, var2   int
	condSet      []int // sorted ascending
	data1, data2 []float64
	weight       float64
	fitID        string
	bc           *bicop.Bicop
}

// deriveEdge checks whether two working vertices satisfy the
// proximity condition (their full index sets overlap in exactly one
// fewer variable than either set holds) and, if so, returns the new
// edge's conditioned pair, conditioning set, and the pseudo-observation
// columns that feed it.
func deriveEdge(u, w workVertex) (var1, var2 int, condSet []int, data1, data2 []float64, ok bool) {
	inter := u.fullSet.Intersection(w.fullSet)
	diffU := u.fullSet.Difference(inter)
	diffW := w.fullSet.Difference(inter)
	if diffU.Count() != 1 || diffW.Count() != 1 {
		return 0, 0, nil, nil, nil, false
	}
	v1, _ := diffU.NextSet(0)
	v2, _ := diffW.NextSet(0)
	var1, var2 = int(v1), int(v2)
	condSet = bitsToSlice(inter)
	data1 = pickData(u, var1)
	data2 = pickData(w, var2)
	return var1, var2, condSet, data1, data2, true
}

func pickData(v workVertex, variable int) []float64 {
	if v.a == variable {
		return v.dataA
	}
	return v.dataB
}

func bitsToSlice(bs *bitset.BitSet) []int {
	out := make([]int, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func newFullSet(width uint, vars ...int) *bitset.BitSet {
	bs := bitset.New(width)
	for _, v := range vars {
		bs.Set(uint(v))
	}
	return bs
}
