package rvine

import "testing"

func TestDVineValidates(t *testing.T) {
	m, err := NewDVine([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("D-vine failed to validate: %v", err)
	}
	if m.Dim() != 5 {
		t.Fatalf("expected dim 5, got %d", m.Dim())
	}
	trees := m.Edges()
	if len(trees) != 4 {
		t.Fatalf("expected 4 trees, got %d", len(trees))
	}
	for t0, tree := range trees {
		want := 5 - 1 - t0
		if len(tree) != want {
			t.Fatalf("tree %d: expected %d edges, got %d", t0, want, len(tree))
		}
	}
}

func TestDVineSingleVariable(t *testing.T) {
	m, err := NewDVine([]int{1})
	if err != nil {
		t.Fatalf("trivial D-vine failed: %v", err)
	}
	if m.Dim() != 1 {
		t.Fatalf("expected dim 1, got %d", m.Dim())
	}
}

func TestNewMatrixRejectsBadOrder(t *testing.T) {
	_, err := NewMatrix([]int{1, 2, 2, 4}, [][]int{{2, 2, 4}, {3, 4}, {4}})
	if err == nil {
		t.Fatal("expected error for repeated order value")
	}
}

func TestNewMatrixRejectsColumnOutsideSuffix(t *testing.T) {
	// column 2 (variable 3, suffix {3,4}) may not reference variable 1.
	_, err := NewMatrix([]int{1, 2, 3, 4}, [][]int{{2, 3, 4}, {3, 4}, {1}})
	if err == nil {
		t.Fatal("expected error for column entry outside diagonal suffix")
	}
}

func TestNewMatrixRejectsProximityViolation(t *testing.T) {
	// Tree-0 edges (1,2),(2,3),(3,4) form a path, not a star, so no
	// tree-1 edge can condition variable 1 against variable 4 directly.
	_, err := NewMatrix([]int{1, 2, 3, 4}, [][]int{{2, 4, 3}, {3, 4}, {4}})
	if err == nil {
		t.Fatal("expected proximity condition violation")
	}
}

func TestMaxArrayMonotoneDownColumn(t *testing.T) {
	m, err := NewDVine([]int{3, 1, 4, 2, 5})
	if err != nil {
		t.Fatalf("D-vine failed to validate: %v", err)
	}
	ma := m.MaxArray()
	for j := 0; j < m.Dim(); j++ {
		running := ma[j][j]
		for i := j + 1; i < m.Dim(); i++ {
			if ma[i][j] < running {
				t.Fatalf("maxArray not monotone at col %d row %d", j, i)
			}
			running = ma[i][j]
		}
	}
}

func TestNeededH1H2Complementary(t *testing.T) {
	m, err := NewDVine([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("D-vine failed to validate: %v", err)
	}
	for j := 0; j < m.Dim()-1; j++ {
		for i := j + 1; i < m.Dim(); i++ {
			if m.NeededH1(i, j) == m.NeededH2(i, j) {
				t.Fatalf("col %d row %d: needed h1/h2 not complementary", j, i)
			}
		}
	}
}

func TestColumnCondSetsGrowByOne(t *testing.T) {
	m, err := NewDVine([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("D-vine failed to validate: %v", err)
	}
	for _, e := range m.Column(0) {
		if len(e.CondSet) != e.Tree {
			t.Fatalf("tree %d: expected conditioning set of size %d, got %d", e.Tree, e.Tree, len(e.CondSet))
		}
	}
}
