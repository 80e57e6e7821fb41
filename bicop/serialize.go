package bicop

import (
	"strconv"
	"strings"

	"vinecop/internal/ntree"
	"vinecop/internal/vineerr"
)

// ToNamedNode renders a fitted pair copula into the named-node tree
// format vinecop and rvine use for on-disk representation: one node
// per pair copula, attributes carrying family, rotation and theta as
// strings.
func (b *Bicop) ToNamedNode() *ntree.Node {
	n := ntree.New("bicop")
	n.Set("family", b.family.String())
	n.Set("rotation", strconv.Itoa(int(b.rotation)))
	n.Set("theta", joinFloats(b.theta))
	return n
}

// FromNamedNode reconstructs a pair copula from a node produced by
// ToNamedNode. The Kernel family's grid is not round-tripped through
// this format (see DESIGN.md); refitting from data is required to
// recover a kernel pair copula.
func FromNamedNode(n *ntree.Node) (*Bicop, error) {
	familyStr, ok := n.Get("family")
	if !ok {
		return nil, vineerr.Structure("FromNamedNode", "missing family attribute")
	}
	family, err := ParseFamily(familyStr)
	if err != nil {
		return nil, err
	}
	if family == Kernel {
		return nil, vineerr.State("FromNamedNode", "kernel family cannot be deserialized without refitting")
	}
	rotStr, _ := n.Get("rotation")
	rot, err := strconv.Atoi(rotStr)
	if err != nil {
		return nil, vineerr.Structure("FromNamedNode", "invalid rotation %q", rotStr)
	}
	thetaStr, _ := n.Get("theta")
	theta, err := parseFloats(thetaStr)
	if err != nil {
		return nil, err
	}
	return NewBicop(family, Rotation(rot), theta)
}

func joinFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func parseFloats(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, vineerr.Structure("parseFloats", "invalid float %q", p)
		}
		out[i] = v
	}
	return out, nil
}
