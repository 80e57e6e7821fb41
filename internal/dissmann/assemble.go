package dissmann

import (
	"vinecop/bicop"
	"vinecop/internal/vineerr"
	"vinecop/rvine"
)

// assembleMatrix turns a completed Dißmann tree sequence into a
// natural-order R-vine matrix plus its matching pair-copula staircase.
//
// Tree 0's edges form a spanning tree on the original d variables.
// Peeling its leaves one at a time, smallest index first, gives each
// peeled variable the single tree-0 neighbor it peels away from -- an
// unambiguous claim, since peeling removes that edge from the
// neighbor's adjacency. One vertex is left unpeeled; it gets no
// column and sits alone at the diagonal's last entry.
//
// Every other variable needs a full chain of partners, one per tree,
// down to the depth its own column requires. A variable that sits
// next to a high-degree ("hub") tree-0 vertex can appear as the
// conditioned variable of more than one same-level edge, so which
// edge belongs to which column is not decided by the edges alone --
// it falls out of processing columns from the longest chain (column
// 0) down to the shortest, each column greedily claiming (consuming)
// the edges its chain needs before the next, shallower column looks.
// This mirrors the tree-0 peeling order itself: satisfy the most
// constrained requirement first.
func assembleMatrix(d int, trees [][]edgeInfo) (*rvine.Matrix, [][]*bicop.Bicop, error) {
	if d == 1 {
		mat, err := rvine.NewMatrix([]int{1}, nil)
		return mat, nil, err
	}
	if len(trees) != d-1 {
		return nil, nil, vineerr.Structure("assembleMatrix", "expected %d trees, got %d", d-1, len(trees))
	}

	order := make([]int, d)
	firstPartner, firstBc, lastVar, err := peelTree0(d, trees[0])
	if err != nil {
		return nil, nil, err
	}
	order[d-1] = lastVar

	pools := make([]*edgePool, len(trees))
	for t, edges := range trees {
		pools[t] = newEdgePool(edges)
	}

	assigned := make(map[int]bool, d)
	assigned[lastVar] = true

	partners := make([][]int, d-1)
	pcsByCol := make([][]*bicop.Bicop, d-1)
	for j := 0; j < d-1; j++ {
		depth := d - 1 - j
		v, chain, pcs, err := claimColumn(depth, firstPartner, firstBc, pools, assigned)
		if err != nil {
			return nil, nil, vineerr.Structure("assembleMatrix", "column %d (depth %d): %v", j, depth, err)
		}
		order[j] = v
		assigned[v] = true
		partners[j] = chain
		pcsByCol[j] = pcs
	}

	mat, err := rvine.NewMatrix(order, partners)
	if err != nil {
		return nil, nil, err
	}

	pcsByTree := make([][]*bicop.Bicop, d-1)
	for t := 0; t < d-1; t++ {
		row := make([]*bicop.Bicop, d-1-t)
		for j := range row {
			row[j] = pcsByCol[j][t]
		}
		pcsByTree[t] = row
	}
	return mat, pcsByTree, nil
}

// claimColumn finds the lowest-indexed unassigned variable that can
// still build a full chain of the given depth from the tree-0 partner
// onward, consuming every edge that chain uses from pools so deeper
// columns already processed keep priority over shallower ones still
// to come.
func claimColumn(depth int, firstPartner map[int]int, firstBc map[int]*bicop.Bicop, pools []*edgePool, assigned map[int]bool) (v int, chain []int, pcs []*bicop.Bicop, err error) {
	candidates := make([]int, 0, len(firstPartner))
	for cand := range firstPartner {
		if !assigned[cand] {
			candidates = append(candidates, cand)
		}
	}
	sortInts(candidates)

	for _, cand := range candidates {
		chain := make([]int, depth)
		pcs := make([]*bicop.Bicop, depth)
		chain[0] = firstPartner[cand]
		pcs[0] = firstBc[cand]
		claims := make([]*claimedEdge, 0, depth-1)
		ok := true
		for k := 1; k < depth; k++ {
			other, bc, claim, found := pools[k].claim(cand, chain[:k])
			if !found {
				ok = false
				break
			}
			chain[k] = other
			pcs[k] = bc
			claims = append(claims, claim)
		}
		if ok {
			return cand, chain, pcs, nil
		}
		for _, c := range claims {
			c.release()
		}
	}
	return 0, nil, nil, vineerr.Structure("claimColumn", "no remaining variable can reach depth %d", depth)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// peelTree0 repeatedly removes degree-1 vertices from tree 0's
// adjacency graph, breaking ties by smallest variable index, to
// produce each peeled variable's sole remaining neighbor at the time
// it is peeled, plus the one vertex left unpeeled (which gets no
// column -- it is the natural order's last, trivial entry).
func peelTree0(d int, edges []edgeInfo) (firstPartner map[int]int, firstBc map[int]*bicop.Bicop, lastVar int, err error) {
	neigh := make(map[int]map[int]bool, d)
	bcOf := make(map[[2]int]*bicop.Bicop, len(edges))
	for v := 1; v <= d; v++ {
		neigh[v] = make(map[int]bool)
	}
	for _, e := range edges {
		neigh[e.var1][e.var2] = true
		neigh[e.var2][e.var1] = true
		bcOf[[2]int{e.var1, e.var2}] = e.bc
		bcOf[[2]int{e.var2, e.var1}] = e.bc.Flip()
	}

	firstPartner = make(map[int]int, d-1)
	firstBc = make(map[int]*bicop.Bicop, d-1)
	alive := make(map[int]bool, d)
	for v := 1; v <= d; v++ {
		alive[v] = true
	}

	peeled := 0
	for peeled < d-1 {
		leaf := -1
		for v := 1; v <= d; v++ {
			if !alive[v] || len(neigh[v]) != 1 {
				continue
			}
			if leaf < 0 || v < leaf {
				leaf = v
			}
		}
		if leaf < 0 {
			return nil, nil, 0, vineerr.Structure("peelTree0", "tree 0 is not a single connected tree on %d variables", d)
		}
		var partner int
		for p := range neigh[leaf] {
			partner = p
		}
		firstPartner[leaf] = partner
		firstBc[leaf] = bcOf[[2]int{leaf, partner}]
		alive[leaf] = false
		delete(neigh[partner], leaf)
		peeled++
	}
	for v := 1; v <= d; v++ {
		if alive[v] {
			return firstPartner, firstBc, v, nil
		}
	}
	return nil, nil, 0, vineerr.Structure("peelTree0", "tree 0 leaf-peeling left no vertex unplaced")
}

// edgePool tracks which edges of one tree level are still available
// to extend a column's chain, so a column processed earlier (deeper
// chain requirement) claims edges before a later, shallower column
// can take them.
type edgePool struct {
	edges    []edgeInfo
	consumed []bool
}

func newEdgePool(edges []edgeInfo) *edgePool {
	return &edgePool{edges: edges, consumed: make([]bool, len(edges))}
}

// claimedEdge lets a failed column attempt undo the claims it made
// before trying the next candidate variable.
type claimedEdge struct {
	pool *edgePool
	idx  int
}

func (c *claimedEdge) release() { c.pool.consumed[c.idx] = false }

// claim finds an unconsumed edge of this tree conditioned on v with
// conditioning set cond, marks it consumed, and returns the other
// conditioned variable and its fitted copula.
func (p *edgePool) claim(v int, cond []int) (other int, bc *bicop.Bicop, claim *claimedEdge, ok bool) {
	for i, e := range p.edges {
		if p.consumed[i] {
			continue
		}
		if !sameSet(e.condSet, cond) {
			continue
		}
		switch v {
		case e.var1:
			p.consumed[i] = true
			return e.var2, e.bc, &claimedEdge{pool: p, idx: i}, true
		case e.var2:
			p.consumed[i] = true
			return e.var1, e.bc.Flip(), &claimedEdge{pool: p, idx: i}, true
		}
	}
	return 0, nil, nil, false
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			return false
		}
	}
	return true
}
