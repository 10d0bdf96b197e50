package graph

import "errors"

// ErrInvalidEdge is returned when an edge is rejected at insertion
// time: it has more than one cost, or its cost is negative or NaN.
var ErrInvalidEdge = errors.New("invalid edge")

// Edge is an undirected edge between two nodes.
type Edge[Node comparable] struct {
	From Node
	To   Node
	Cost float64
}

// Unweighted returns an edge between from and to with cost 1.
func Unweighted[Node comparable](from, to Node) Edge[Node] {
	return Edge[Node]{From: from, To: to, Cost: 1}
}

// Weighted returns an edge between from and to with the given cost.
func Weighted[Node comparable](from, to Node, cost float64) Edge[Node] {
	return Edge[Node]{From: from, To: to, Cost: cost}
}
