// Package problem loads search problems described in YAML: a graph,
// a default start and goal, and an optional table of heuristic
// estimates.
//
// A problem file looks like this:
//
//	name: romania
//	start: Arad
//	goal: Bucharest
//	nodes: [Isolated]
//	edges:
//	  - [Arad, Zerind, 75]
//	  - [Sibiu, Fagaras]
//	heuristic:
//	  goal: Bucharest
//	  estimates: {Arad: 336, Bucharest: 0}
//
// Each edge is a list of two node names and an optional cost,
// which defaults to 1.
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aiclass/generic/graph"
	"github.com/aiclass/generic/graph/search"
)

// ErrInvalidHeuristic is returned, wrapped, when a heuristic
// table holds an estimate that is negative or not a number.
var ErrInvalidHeuristic = errors.New("invalid heuristic")

// Problem holds a graph to search along with its default
// start and goal nodes.
type Problem struct {
	Name  string
	Start string
	Goal  string

	// Graph holds all the nodes and edges of the problem,
	// in the order they appear in the file.
	Graph *graph.Undirected[string]

	// Estimates holds the heuristic table, if any.
	Estimates *Estimates
}

// Estimates holds estimated costs from each node to a single goal.
type Estimates struct {
	Goal  string
	Costs map[string]float64
}

type problemDoc struct {
	Name      string       `yaml:"name"`
	Start     string       `yaml:"start"`
	Goal      string       `yaml:"goal"`
	Nodes     []string     `yaml:"nodes"`
	Edges     []yaml.Node  `yaml:"edges"`
	Heuristic *estimateDoc `yaml:"heuristic"`
}

type estimateDoc struct {
	Goal      string             `yaml:"goal"`
	Estimates map[string]float64 `yaml:"estimates"`
}

// Parse parses a problem from YAML data.
func Parse(data []byte) (*Problem, error) {
	return Load(bytes.NewReader(data))
}

// ParseFile reads and parses the problem in the named file.
func ParseFile(name string) (*Problem, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// Load reads a problem from r. Unknown fields are an error.
// An edge that is malformed or has a negative cost results in
// an error wrapping [graph.ErrInvalidEdge] that names the
// position of the edge in the list.
func Load(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc problemDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty problem document")
		}
		return nil, fmt.Errorf("cannot parse problem: %w", err)
	}
	p := &Problem{
		Name:  doc.Name,
		Start: doc.Start,
		Goal:  doc.Goal,
		Graph: new(graph.Undirected[string]),
	}
	for _, n := range doc.Nodes {
		p.Graph.AddNode(n)
	}
	for i := range doc.Edges {
		e, err := decodeEdge(&doc.Edges[i])
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if err := p.Graph.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	if h := doc.Heuristic; h != nil {
		for n, c := range h.Estimates {
			if c < 0 || math.IsNaN(c) {
				return nil, fmt.Errorf("%w: estimate for %q is %v", ErrInvalidHeuristic, n, c)
			}
		}
		p.Estimates = &Estimates{
			Goal:  h.Goal,
			Costs: h.Estimates,
		}
	}
	return p, nil
}

func decodeEdge(n *yaml.Node) (graph.Edge[string], error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) < 2 || len(n.Content) > 3 {
		return graph.Edge[string]{}, fmt.Errorf("%w: line %d: want a list of 2 or 3 elements", graph.ErrInvalidEdge, n.Line)
	}
	e := graph.Edge[string]{Cost: 1}
	if err := n.Content[0].Decode(&e.From); err != nil {
		return graph.Edge[string]{}, fmt.Errorf("%w: line %d: bad node: %v", graph.ErrInvalidEdge, n.Line, err)
	}
	if err := n.Content[1].Decode(&e.To); err != nil {
		return graph.Edge[string]{}, fmt.Errorf("%w: line %d: bad node: %v", graph.ErrInvalidEdge, n.Line, err)
	}
	if len(n.Content) == 3 {
		if err := n.Content[2].Decode(&e.Cost); err != nil {
			return graph.Edge[string]{}, fmt.Errorf("%w: line %d: bad cost %q", graph.ErrInvalidEdge, n.Line, n.Content[2].Value)
		}
	}
	return e, nil
}

// Heuristic returns a heuristic that looks up estimates in p's table.
// It returns 0 for nodes missing from the table, for any goal other
// than the one the table was built for, and when p has no table,
// so it never overestimates more than the table itself does.
func (p *Problem) Heuristic() search.Heuristic[string] {
	est := p.Estimates
	return func(n, goal string) float64 {
		if est == nil || goal != est.Goal {
			return 0
		}
		return est.Costs[n]
	}
}

// HasHeuristic reports whether p holds a heuristic table for goal.
func (p *Problem) HasHeuristic(goal string) bool {
	return p.Estimates != nil && p.Estimates.Goal == goal
}
