package graph_test

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/aiclass/generic/graph"
)

var _ graph.Graph[string] = (*graph.Undirected[string])(nil)

type neighbor struct {
	Node string
	Cost float64
}

func neighbors(g graph.Graph[string], n string) []neighbor {
	var got []neighbor
	for m, c := range g.Neighbors(n) {
		got = append(got, neighbor{m, c})
	}
	return got
}

func TestAddEdgeIsSymmetric(t *testing.T) {
	var g graph.Undirected[string]
	qt.Assert(t, qt.IsNil(g.AddEdge("A", "B", 3)))
	qt.Assert(t, qt.DeepEquals(neighbors(&g, "A"), []neighbor{{"B", 3}}))
	qt.Assert(t, qt.DeepEquals(neighbors(&g, "B"), []neighbor{{"A", 3}}))

	c, ok := g.Cost("B", "A")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, 3.0))
}

func TestAddEdgeDefaultCost(t *testing.T) {
	var g graph.Undirected[int]
	qt.Assert(t, qt.IsNil(g.AddEdge(1, 2)))
	c, ok := g.Cost(1, 2)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, 1.0))
}

func TestNeighborsInInsertionOrder(t *testing.T) {
	var g graph.Undirected[string]
	for _, e := range []graph.Edge[string]{
		graph.Weighted("Arad", "Zerind", 75),
		graph.Weighted("Arad", "Timisoara", 118),
		graph.Weighted("Oradea", "Sibiu", 151),
		graph.Weighted("Arad", "Sibiu", 140),
	} {
		qt.Assert(t, qt.IsNil(g.AddEdge(e.From, e.To, e.Cost)))
	}
	qt.Assert(t, qt.DeepEquals(neighbors(&g, "Arad"), []neighbor{
		{"Zerind", 75},
		{"Timisoara", 118},
		{"Sibiu", 140},
	}))
	qt.Assert(t, qt.DeepEquals(neighbors(&g, "Sibiu"), []neighbor{
		{"Oradea", 151},
		{"Arad", 140},
	}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(g.Nodes()), []string{
		"Arad", "Zerind", "Timisoara", "Oradea", "Sibiu",
	}))
}

func TestDuplicateEdgeLastWriteWins(t *testing.T) {
	var g graph.Undirected[string]
	qt.Assert(t, qt.IsNil(g.AddEdge("A", "B", 5)))
	qt.Assert(t, qt.IsNil(g.AddEdge("A", "C", 2)))
	// Re-adding in the opposite direction updates both halves
	// without moving the edge.
	qt.Assert(t, qt.IsNil(g.AddEdge("B", "A", 7)))

	qt.Assert(t, qt.DeepEquals(neighbors(&g, "A"), []neighbor{{"B", 7}, {"C", 2}}))
	qt.Assert(t, qt.DeepEquals(neighbors(&g, "B"), []neighbor{{"A", 7}}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(g.Edges()), []graph.Edge[string]{
		{From: "A", To: "B", Cost: 7},
		{From: "A", To: "C", Cost: 2},
	}))
}

func TestSelfLoop(t *testing.T) {
	var g graph.Undirected[string]
	qt.Assert(t, qt.IsNil(g.AddEdge("A", "A", 4)))
	qt.Assert(t, qt.DeepEquals(neighbors(&g, "A"), []neighbor{{"A", 4}}))
	qt.Assert(t, qt.Equals(g.Len(), 1))
	qt.Assert(t, qt.HasLen(slices.Collect(g.Edges()), 1))
}

func TestAddNode(t *testing.T) {
	var g graph.Undirected[string]
	g.AddNode("Isolated")
	g.AddNode("Isolated")
	qt.Assert(t, qt.IsTrue(g.HasNode("Isolated")))
	qt.Assert(t, qt.Equals(g.Len(), 1))
	qt.Assert(t, qt.HasLen(neighbors(&g, "Isolated"), 0))

	// Adding an edge later keeps the node's original position.
	qt.Assert(t, qt.IsNil(g.AddEdge("A", "Isolated")))
	qt.Assert(t, qt.DeepEquals(slices.Collect(g.Nodes()), []string{"Isolated", "A"}))
}

func TestUnknownNode(t *testing.T) {
	var g graph.Undirected[string]
	qt.Assert(t, qt.HasLen(neighbors(&g, "nowhere"), 0))
	qt.Assert(t, qt.IsFalse(g.HasNode("nowhere")))
	_, ok := g.Cost("nowhere", "else")
	qt.Assert(t, qt.IsFalse(ok))
}

var invalidEdgeTests = []struct {
	testName string
	cost     []float64
	wantErr  string
}{{
	testName: "too many costs",
	cost:     []float64{1, 2},
	wantErr:  `invalid edge: A-B: got 2 costs, want at most 1`,
}, {
	testName: "negative cost",
	cost:     []float64{-1},
	wantErr:  `invalid edge: A-B: cost -1 is not a non-negative number`,
}, {
	testName: "NaN cost",
	cost:     []float64{math.NaN()},
	wantErr:  `invalid edge: A-B: cost NaN is not a non-negative number`,
}}

func TestInvalidEdge(t *testing.T) {
	for _, test := range invalidEdgeTests {
		t.Run(test.testName, func(t *testing.T) {
			var g graph.Undirected[string]
			err := g.AddEdge("A", "B", test.cost...)
			qt.Assert(t, qt.ErrorIs(err, graph.ErrInvalidEdge))
			qt.Assert(t, qt.ErrorMatches(err, test.wantErr))
			qt.Assert(t, qt.Equals(g.Len(), 0))
		})
	}
}

func TestAddEdgesStopsAtInvalid(t *testing.T) {
	var g graph.Undirected[string]
	err := g.AddEdges(
		graph.Unweighted("A", "B"),
		graph.Weighted("B", "C", 2),
		graph.Weighted("C", "D", -4),
		graph.Weighted("D", "E", 1),
	)
	qt.Assert(t, qt.ErrorIs(err, graph.ErrInvalidEdge))
	qt.Assert(t, qt.ErrorMatches(err, `edge 2: invalid edge: C-D: .*`))
	qt.Assert(t, qt.DeepEquals(slices.Collect(g.Nodes()), []string{"A", "B", "C"}))
}

func TestNewUndirected(t *testing.T) {
	g, err := graph.NewUndirected(
		graph.Unweighted(1, 2),
		graph.Weighted(2, 3, 0.5),
	)
	qt.Assert(t, qt.IsNil(err))
	got := maps.Collect(g.Neighbors(2))
	qt.Assert(t, qt.DeepEquals(got, map[int]float64{1: 1, 3: 0.5}))

	_, err = graph.NewUndirected(graph.Weighted(1, 2, math.Inf(-1)))
	qt.Assert(t, qt.IsTrue(errors.Is(err, graph.ErrInvalidEdge)))
}

func TestNeighborsStopsEarly(t *testing.T) {
	var g graph.Undirected[int]
	for i := range 10 {
		qt.Assert(t, qt.IsNil(g.AddEdge(0, i+1, float64(i))))
	}
	var seen []int
	for n := range g.Neighbors(0) {
		if n > 3 {
			break
		}
		seen = append(seen, n)
	}
	qt.Assert(t, qt.DeepEquals(seen, []int{1, 2, 3}))
}

func ExampleUndirected_Neighbors() {
	var g graph.Undirected[string]
	g.AddEdge("Sibiu", "Fagaras", 99)
	g.AddEdge("Sibiu", "Rimnicu Vilcea", 80)
	g.AddEdge("Arad", "Sibiu", 140)
	for n, cost := range g.Neighbors("Sibiu") {
		fmt.Println(n, cost)
	}
	// Output:
	// Fagaras 99
	// Rimnicu Vilcea 80
	// Arad 140
}
