// Package mermaid renders weighted undirected graphs, and optionally
// a path through them, in Mermaid flowchart syntax. Mermaid is a
// text-based diagramming tool that generates diagrams from
// markdown-like syntax.
package mermaid

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"

	"github.com/aiclass/generic/graph"
	"github.com/aiclass/generic/graph/path"
)

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	// It returns an error if the marshaling fails.
	MarshalMermaid() ([]byte, error)
}

// Graph defines what a graph must provide to be rendered.
// [graph.Undirected] implements it.
type Graph[Node comparable] interface {
	// Nodes returns all nodes in the graph.
	Nodes() iter.Seq[Node]
	// Edges returns every edge once.
	Edges() iter.Seq[graph.Edge[Node]]
}

// Styles used to highlight a path.
const (
	PathNodeStyle = "fill:#f96,stroke:#333,stroke-width:2px"
	PathEdgeStyle = "stroke:#f60,stroke-width:3px"
)

// NodeInfo contains metadata about a graph node for Mermaid rendering.
type NodeInfo struct {
	// ID is the unique identifier for the node in the Mermaid diagram.
	ID string
	// Text is the display text for the node.
	Text string
}

// NewGraph returns a Marshaler that renders g with the nodes and
// edges of highlight, which may be nil, picked out.
func NewGraph[Node comparable](g Graph[Node], highlight *path.Path[Node]) Marshaler {
	return &graphImpl[Node]{g, highlight}
}

// Render is a shorthand for NewGraph(g, highlight).MarshalMermaid.
func Render[Node comparable](g Graph[Node], highlight *path.Path[Node]) []byte {
	data, _ := NewGraph(g, highlight).MarshalMermaid()
	return data
}

type graphImpl[Node comparable] struct {
	g         Graph[Node]
	highlight *path.Path[Node]
}

// MarshalMermaid writes a left-to-right flowchart. Nodes whose ID
// differs from their name, and nodes with no edges, are declared
// first; then come the edges, labelled with their cost, then the
// highlight styles.
func (g *graphImpl[Node]) MarshalMermaid() ([]byte, error) {
	var nodes []Node
	for n := range g.g.Nodes() {
		nodes = append(nodes, n)
	}
	var edges []graph.Edge[Node]
	connected := make(map[Node]bool)
	for e := range g.g.Edges() {
		edges = append(edges, e)
		connected[e.From] = true
		connected[e.To] = true
	}
	info := nodeInfo(nodes)
	onPath := make(map[Node]bool)
	pathEdges := make(map[[2]Node]bool)
	if g.highlight != nil {
		var prev Node
		for i, n := range g.highlight.Nodes() {
			onPath[n] = true
			if i > 0 {
				pathEdges[[2]Node{prev, n}] = true
				pathEdges[[2]Node{n, prev}] = true
			}
			prev = n
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph LR\n")
	for _, n := range nodes {
		ni := info[n]
		switch {
		case ni.ID != ni.Text:
			fmt.Fprintf(&buf, "  %s[%s]\n", ni.ID, quote(ni.Text))
		case !connected[n]:
			fmt.Fprintf(&buf, "  %s\n", ni.ID)
		}
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s ---|%s| %s\n", info[e.From].ID, path.FormatCost(e.Cost), info[e.To].ID)
	}
	for _, n := range nodes {
		if onPath[n] {
			fmt.Fprintf(&buf, "  style %s %s\n", info[n].ID, PathNodeStyle)
		}
	}
	for i, e := range edges {
		if pathEdges[[2]Node{e.From, e.To}] {
			fmt.Fprintf(&buf, "  linkStyle %d %s\n", i, PathEdgeStyle)
		}
	}
	return buf.Bytes(), nil
}

// nodeInfo assigns each node a distinct Mermaid ID derived
// from its name.
func nodeInfo[Node comparable](nodes []Node) map[Node]NodeInfo {
	info := make(map[Node]NodeInfo, len(nodes))
	used := make(map[string]bool)
	for _, n := range nodes {
		text := fmt.Sprint(n)
		id := ID(text)
		for i := 2; used[id]; i++ {
			id = ID(text) + "_" + strconv.Itoa(i)
		}
		used[id] = true
		info[n] = NodeInfo{ID: id, Text: text}
	}
	return info
}

// ID returns a Mermaid node identifier for the given name: every
// character other than a letter, digit or underscore is replaced
// with an underscore. The empty name and "end", which Mermaid
// reserves, get an underscore appended.
func ID(name string) string {
	id := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return r
		}
		return '_'
	}, name)
	if id == "" || id == "end" {
		id += "_"
	}
	return id
}

// quote returns text as a node label, quoting it
// when it holds characters that Mermaid would misread.
func quote(text string) string {
	if !strings.ContainsAny(text, "[](){}<>|\"#;") {
		return text
	}
	return `"` + strings.ReplaceAll(text, `"`, "#quot;") + `"`
}
