// Package ntree implements the generic named-node tree the spec uses as
// the persistent representation for Bicop and Vinecop: a node with a
// name, a flat string-keyed attribute map, and an ordered list of
// children, round-tripped through JSON. A phylogenetic tree library
// (gotree) was considered and rejected here: its node model is Newick-shaped
// (taxon names, branch lengths, a single rooted topology) and cannot
// carry arbitrary typed attributes -- such as a parameter vector or a
// rotation -- without abusing branch lengths or tip labels. encoding/json
// is the stdlib fallback for this one concern.
package ntree

import (
	"encoding/json"
	"fmt"
)

// Node is one node of a named-node tree.
type Node struct {
	Name     string            `json:"name"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// New creates a named, attribute-less leaf node.
func New(name string) *Node {
	return &Node{Name: name, Attrs: map[string]string{}}
}

// Set stores a string-valued attribute and returns the node for chaining.
func (n *Node) Set(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
	return n
}

// Get returns an attribute and whether it was present.
func (n *Node) Get(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// Add appends a child node and returns it.
func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Marshal serializes the tree to JSON bytes.
func Marshal(n *Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// Unmarshal parses JSON bytes into a named-node tree.
func Unmarshal(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("ntree: %w", err)
	}
	return &n, nil
}
