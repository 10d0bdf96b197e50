// Package graph holds the graph representation searched by
// [github.com/aiclass/generic/graph/search].
package graph

import "iter"

// Graph is the view of a graph needed to search it: the nodes
// adjacent to a node along with the cost of moving to each of them.
//
// Neighbors must enumerate in the same order every time it is called
// for a given node, because that order decides which of several
// equally good paths breadth-first and depth-first search report.
type Graph[Node comparable] interface {
	Neighbors(n Node) iter.Seq2[Node, float64]
}
