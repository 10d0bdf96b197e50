// Package path defines the path values produced by graph search.
package path

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Path is a walk through a graph from a start node, along with the
// total cost of the edges walked.
//
// A Path is immutable. Append returns a new Path that shares the
// receiver as its prefix, so any number of paths may extend the same
// prefix without affecting one another.
type Path[Node comparable] struct {
	// prev holds the path without its last node,
	// or nil if the path holds only the start node.
	prev *Path[Node]
	node Node
	cost float64
	len  int
}

// New returns a path holding only start, with zero cost.
func New[Node comparable](start Node) *Path[Node] {
	return &Path[Node]{
		node: start,
		len:  1,
	}
}

// Append returns p extended by an edge of the given cost to n.
// It does not modify p.
func (p *Path[Node]) Append(n Node, cost float64) *Path[Node] {
	return &Path[Node]{
		prev: p,
		node: n,
		cost: p.cost + cost,
		len:  p.len + 1,
	}
}

// End returns the last node of the path.
func (p *Path[Node]) End() Node {
	return p.node
}

// Start returns the first node of the path.
func (p *Path[Node]) Start() Node {
	for p.prev != nil {
		p = p.prev
	}
	return p.node
}

// Cost returns the sum of the costs of the edges in the path.
func (p *Path[Node]) Cost() float64 {
	return p.cost
}

// Len returns the number of nodes in the path.
func (p *Path[Node]) Len() int {
	return p.len
}

// Nodes returns the nodes of the path from start to end
// in a newly allocated slice.
func (p *Path[Node]) Nodes() []Node {
	nodes := make([]Node, p.len)
	for q, i := p, p.len-1; q != nil; q, i = q.prev, i-1 {
		nodes[i] = q.node
	}
	return nodes
}

// All returns an iterator over the nodes of the path from start to end.
func (p *Path[Node]) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range p.Nodes() {
			if !yield(n) {
				return
			}
		}
	}
}

// String returns the path in the form
//
//	Arad -> Sibiu -> Fagaras (cost:239, length:3)
func (p *Path[Node]) String() string {
	var buf strings.Builder
	for i, n := range p.Nodes() {
		if i > 0 {
			buf.WriteString(" -> ")
		}
		fmt.Fprint(&buf, n)
	}
	fmt.Fprintf(&buf, " (cost:%s, length:%d)", FormatCost(p.cost), p.len)
	return buf.String()
}

// FormatCost formats a path cost using the fewest digits
// that represent it exactly, so 418 prints as "418" and
// 2.5 as "2.5".
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
