package graph

import (
	"fmt"
	"iter"
	"math"
)

// Undirected is an undirected graph with non-negative edge costs.
//
// Nodes and edges are kept in the order they were first added and
// [Undirected.Neighbors] reports them in that order. Re-adding an
// existing edge changes its cost but not its position.
//
// The zero value is an empty graph ready to use. An Undirected is
// not safe for concurrent modification, but once it is built any
// number of goroutines may read from it.
type Undirected[Node comparable] struct {
	// index maps each node to its position in nodes and adj.
	index map[Node]int
	nodes []Node

	// adj holds the neighbors of nodes[i] in insertion order.
	adj [][]neighbor[Node]

	// slot maps a directed pair to its position in adj[from].
	slot map[pair[Node]]int

	// edges holds each undirected edge once, as first added.
	edges []pair[Node]
}

type neighbor[Node comparable] struct {
	node Node
	cost float64
}

type pair[Node comparable] struct {
	from, to Node
}

// NewUndirected returns a graph holding the given edges.
// It is a shorthand for AddEdges on an empty graph.
func NewUndirected[Node comparable](edges ...Edge[Node]) (*Undirected[Node], error) {
	g := new(Undirected[Node])
	if err := g.AddEdges(edges...); err != nil {
		return nil, err
	}
	return g, nil
}

// AddNode adds a node. Typically this is only used to add
// nodes with no edges; AddEdge adds its nodes implicitly.
func (g *Undirected[Node]) AddNode(n Node) {
	g.addNode(n)
}

// AddEdge adds an edge between from and to, in both directions.
// The cost is 1 when omitted. Passing more than one cost, or a
// negative or NaN cost, returns an error wrapping [ErrInvalidEdge]
// and leaves the graph unchanged.
//
// Adding an edge that already exists replaces its cost.
func (g *Undirected[Node]) AddEdge(from, to Node, cost ...float64) error {
	c := 1.0
	switch len(cost) {
	case 0:
	case 1:
		c = cost[0]
	default:
		return fmt.Errorf("%w: %v-%v: got %d costs, want at most 1", ErrInvalidEdge, from, to, len(cost))
	}
	if c < 0 || math.IsNaN(c) {
		return fmt.Errorf("%w: %v-%v: cost %v is not a non-negative number", ErrInvalidEdge, from, to, c)
	}
	if g.set(from, to, c) {
		g.edges = append(g.edges, pair[Node]{from, to})
	}
	if from != to {
		g.set(to, from, c)
	}
	return nil
}

// AddEdges adds all the given edges in order. It stops at the
// first invalid edge, reporting its index; edges before it
// remain in the graph.
func (g *Undirected[Node]) AddEdges(edges ...Edge[Node]) error {
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return nil
}

// Neighbors implements [Graph.Neighbors]. It yields the nodes
// adjacent to n with the cost of each edge, in the order the edges
// were added. It yields nothing if n is not in the graph.
func (g *Undirected[Node]) Neighbors(n Node) iter.Seq2[Node, float64] {
	return func(yield func(Node, float64) bool) {
		i, ok := g.index[n]
		if !ok {
			return
		}
		for _, nb := range g.adj[i] {
			if !yield(nb.node, nb.cost) {
				return
			}
		}
	}
}

// Nodes returns an iterator over all the nodes in the order
// they were added.
func (g *Undirected[Node]) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges returns an iterator over every edge, each reported once
// in the direction and order it was first added, with its
// current cost.
func (g *Undirected[Node]) Edges() iter.Seq[Edge[Node]] {
	return func(yield func(Edge[Node]) bool) {
		for _, p := range g.edges {
			c, _ := g.Cost(p.from, p.to)
			if !yield(Edge[Node]{From: p.from, To: p.to, Cost: c}) {
				return
			}
		}
	}
}

// HasNode reports whether n is in the graph.
func (g *Undirected[Node]) HasNode(n Node) bool {
	_, ok := g.index[n]
	return ok
}

// Len returns the number of nodes in the graph.
func (g *Undirected[Node]) Len() int {
	return len(g.nodes)
}

// Cost returns the cost of the edge between from and to
// and reports whether there is such an edge.
func (g *Undirected[Node]) Cost(from, to Node) (float64, bool) {
	i, ok := g.index[from]
	if !ok {
		return 0, false
	}
	j, ok := g.slot[pair[Node]{from, to}]
	if !ok {
		return 0, false
	}
	return g.adj[i][j].cost, true
}

// set records the directed half of an edge and reports
// whether it was new.
func (g *Undirected[Node]) set(from, to Node, cost float64) bool {
	i := g.addNode(from)
	g.addNode(to)
	if g.slot == nil {
		g.slot = make(map[pair[Node]]int)
	}
	k := pair[Node]{from, to}
	if j, ok := g.slot[k]; ok {
		g.adj[i][j].cost = cost
		return false
	}
	g.slot[k] = len(g.adj[i])
	g.adj[i] = append(g.adj[i], neighbor[Node]{to, cost})
	return true
}

func (g *Undirected[Node]) addNode(n Node) int {
	if g.index == nil {
		g.index = make(map[Node]int)
	}
	if i, ok := g.index[n]; ok {
		return i
	}
	i := len(g.nodes)
	g.index[n] = i
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)
	return i
}
