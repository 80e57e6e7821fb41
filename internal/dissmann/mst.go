package dissmann

import (
	"math"

	"vinecop/internal/vineerr"
)

// edgePick is one edge of a maximum-weight spanning tree: the two
// endpoint vertex indices and the weight Prim's algorithm selected it
// under.
type edgePick struct {
	i, j   int
	weight float64
}

// primMST runs Prim's algorithm over n vertices to find a maximum-
// weight spanning tree. weight(i, j) reports whether an edge is even a
// candidate (the proximity condition restricts which vertex pairs may
// connect once past tree 0) alongside its dependence weight. Ties are
// broken by the lower vertex index, mirroring the teacher's stable
// tie-break in its CycleLength/quartetsTotal comparisons.
func primMST(n int, weight func(i, j int) (w float64, ok bool)) ([]edgePick, error) {
	if n < 2 {
		return nil, nil
	}
	inTree := make([]bool, n)
	bestW := make([]float64, n)
	bestFrom := make([]int, n)
	for i := range bestW {
		bestW[i] = math.Inf(-1)
		bestFrom[i] = -1
	}
	inTree[0] = true
	for j := 1; j < n; j++ {
		if w, ok := weight(0, j); ok && w > bestW[j] {
			bestW[j] = w
			bestFrom[j] = 0
		}
	}
	picks := make([]edgePick, 0, n-1)
	for len(picks) < n-1 {
		next := -1
		for v := 0; v < n; v++ {
			if inTree[v] || bestFrom[v] < 0 {
				continue
			}
			if next < 0 || bestW[v] > bestW[next] {
				next = v
			}
		}
		if next < 0 {
			return nil, vineerr.Structure("primMST", "working graph is disconnected")
		}
		inTree[next] = true
		picks = append(picks, edgePick{i: bestFrom[next], j: next, weight: bestW[next]})
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w, ok := weight(next, v); ok && w > bestW[v] {
				bestW[v] = w
				bestFrom[v] = next
			}
		}
	}
	return picks, nil
}
