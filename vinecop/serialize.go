package vinecop

import (
	"strconv"

	"vinecop/bicop"
	"vinecop/internal/ntree"
	"vinecop/internal/vineerr"
	"vinecop/rvine"
)

// ToNamedNode renders the vine into the shared named-node tree format:
// a root carrying the natural order and dimension, with one "tree"
// child per level and one "pc" grandchild per pair copula, each a
// Bicop.ToNamedNode() node plus its conditioned/conditioning indices.
func (vc *Vinecop) ToNamedNode() *ntree.Node {
	root := ntree.New("vinecop")
	root.Set("dim", strconv.Itoa(vc.dim))
	root.Set("order", joinInts(vc.matrix.Order()))

	for t, row := range vc.pcs {
		treeNode := ntree.New("tree")
		treeNode.Set("level", strconv.Itoa(t))
		for j, bc := range row {
			edge := vc.matrix.Column(j)[t]
			pc := bc.ToNamedNode()
			pc.Set("var1", strconv.Itoa(edge.Var1))
			pc.Set("var2", strconv.Itoa(edge.Var2))
			pc.Set("condset", joinInts(edge.CondSet))
			treeNode.Add(pc)
		}
		root.Add(treeNode)
	}
	return root
}

// FromNamedNode reconstructs a vine from a node produced by
// ToNamedNode. The structure matrix is rebuilt from the recorded order
// and each pair copula's recorded var1/var2 (var1 picks the column,
// var2 is the partner at the node's tree level); rvine.NewMatrix then
// validates the rebuilt matrix.
func FromNamedNode(n *ntree.Node) (*Vinecop, error) {
	dimStr, ok := n.Get("dim")
	if !ok {
		return nil, vineerr.Structure("FromNamedNode", "missing dim attribute")
	}
	d, err := strconv.Atoi(dimStr)
	if err != nil {
		return nil, vineerr.Structure("FromNamedNode", "invalid dim %q", dimStr)
	}
	orderStr, _ := n.Get("order")
	order, err := parseInts(orderStr)
	if err != nil {
		return nil, err
	}
	if len(order) != d {
		return nil, vineerr.Structure("FromNamedNode", "order length %d disagrees with dim %d", len(order), d)
	}

	pos := make(map[int]int, d)
	for j, v := range order {
		pos[v] = j
	}
	partners := make([][]int, d-1)
	for j := range partners {
		partners[j] = make([]int, d-1-j)
	}
	pcs := make([][]*bicop.Bicop, d-1)

	for _, treeNode := range n.Children {
		level, err := strconv.Atoi(mustGet(treeNode, "level"))
		if err != nil {
			return nil, vineerr.Structure("FromNamedNode", "invalid tree level %q", mustGet(treeNode, "level"))
		}
		if level < 0 || level >= d-1 {
			return nil, vineerr.Structure("FromNamedNode", "tree level %d out of range", level)
		}
		row := make([]*bicop.Bicop, d-1-level)
		for _, pcNode := range treeNode.Children {
			bc, err := bicop.FromNamedNode(pcNode)
			if err != nil {
				return nil, err
			}
			v1, err := strconv.Atoi(mustGet(pcNode, "var1"))
			if err != nil {
				return nil, vineerr.Structure("FromNamedNode", "invalid var1")
			}
			v2, err := strconv.Atoi(mustGet(pcNode, "var2"))
			if err != nil {
				return nil, vineerr.Structure("FromNamedNode", "invalid var2")
			}
			j, jOK := pos[v1]
			if !jOK || order[j] != v1 {
				return nil, vineerr.Structure("FromNamedNode", "var1 %d is not a diagonal entry", v1)
			}
			if j < 0 || j >= d-1-level {
				return nil, vineerr.Structure("FromNamedNode", "tree %d column %d out of range", level, j)
			}
			partners[j][level] = v2
			row[j] = bc
		}
		pcs[level] = row
	}

	mat, err := rvine.NewMatrix(order, partners)
	if err != nil {
		return nil, err
	}
	return NewFromFit(mat, pcs)
}

func mustGet(n *ntree.Node, key string) string {
	v, _ := n.Get(key)
	return v
}

func joinInts(xs []int) string {
	s := ""
	for i, x := range xs {
		if i > 0 {
			s += ","
		}
		s += strconv.Itoa(x)
	}
	return s
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			v, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, vineerr.Structure("parseInts", "invalid integer in %q", s)
			}
			out = append(out, v)
			start = i + 1
		}
	}
	return out, nil
}
