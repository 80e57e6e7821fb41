package dissmann

import (
	"reflect"
	"testing"

	"vinecop/bicop"
	"vinecop/rvine"
)

func edge(tree, v1, v2 int, cond []int) edgeInfo {
	return edgeInfo{tree: tree, var1: v1, var2: v2, condSet: cond, bc: bicop.New()}
}

// TestAssembleMatrixPathTree0 feeds assembleMatrix the tree sequence of
// a standard D-vine built from a path tree 0 (1-2-3-4) and checks the
// assembled matrix matches rvine.NewDVine's own construction exactly.
func TestAssembleMatrixPathTree0(t *testing.T) {
	trees := [][]edgeInfo{
		{edge(0, 1, 2, nil), edge(0, 2, 3, nil), edge(0, 3, 4, nil)},
		{edge(1, 1, 3, []int{2}), edge(1, 2, 4, []int{3})},
		{edge(2, 1, 4, []int{2, 3})},
	}
	mat, pcs, err := assembleMatrix(4, trees)
	if err != nil {
		t.Fatalf("assembleMatrix failed: %v", err)
	}
	want, err := rvine.NewDVine([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("reference D-vine failed: %v", err)
	}
	if !reflect.DeepEqual(mat.Order(), want.Order()) {
		t.Fatalf("order mismatch: got %v, want %v", mat.Order(), want.Order())
	}
	for j := 0; j < 3; j++ {
		gotCol, wantCol := mat.Column(j), want.Column(j)
		if len(gotCol) != len(wantCol) {
			t.Fatalf("column %d: edge count mismatch", j)
		}
		for k := range gotCol {
			if gotCol[k].Var1 != wantCol[k].Var1 || gotCol[k].Var2 != wantCol[k].Var2 {
				t.Fatalf("column %d tree %d: got (%d,%d), want (%d,%d)", j, k,
					gotCol[k].Var1, gotCol[k].Var2, wantCol[k].Var1, wantCol[k].Var2)
			}
			if !reflect.DeepEqual(gotCol[k].CondSet, wantCol[k].CondSet) {
				t.Fatalf("column %d tree %d: cond set mismatch got %v want %v", j, k, gotCol[k].CondSet, wantCol[k].CondSet)
			}
		}
	}
	if len(pcs) != 3 {
		t.Fatalf("expected 3 tree rows of pair copulas, got %d", len(pcs))
	}
	for t0, row := range pcs {
		for j, bc := range row {
			if bc == nil {
				t.Fatalf("tree %d column %d: nil pair copula", t0, j)
			}
		}
	}
}

func TestAssembleMatrixStarTree0(t *testing.T) {
	// Tree 0 is a star centered on 2 (1-2, 2-3, 2-4). Variable 2 moves
	// entirely into conditioning sets from tree 1 onward, so it can only
	// fill the shortest column; variables 1, 3, and 4 are the only ones
	// that keep appearing as a conditioned variable deep enough to reach
	// tree 2, and the peeling graph leaves 4 as the single unclaimed
	// vertex regardless of how the columns are filled.
	trees := [][]edgeInfo{
		{edge(0, 1, 2, nil), edge(0, 2, 3, nil), edge(0, 2, 4, nil)},
		{edge(1, 1, 3, []int{2}), edge(1, 1, 4, []int{2})},
		{edge(2, 3, 4, []int{1, 2})},
	}
	mat, _, err := assembleMatrix(4, trees)
	if err != nil {
		t.Fatalf("assembleMatrix failed: %v", err)
	}
	order := mat.Order()
	if order[len(order)-1] != 4 {
		t.Fatalf("expected variable 4 to be the unclaimed last entry, got order %v", order)
	}
	if err := mat.Validate(); err != nil {
		t.Fatalf("assembled star matrix fails to validate: %v", err)
	}
}

func TestAssembleMatrixRejectsWrongTreeCount(t *testing.T) {
	_, _, err := assembleMatrix(4, [][]edgeInfo{{edge(0, 1, 2, nil)}})
	if err == nil {
		t.Fatal("expected error for wrong number of trees")
	}
}
