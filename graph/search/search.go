package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/aiclass/generic/graph"
	"github.com/aiclass/generic/graph/path"
)

// Kind names one of the built-in strategies.
type Kind int

const (
	BreadthFirst Kind = iota + 1
	DepthFirst
	UniformCost
	AStar
)

var kindNames = map[Kind]string{
	BreadthFirst: "breadth-first",
	DepthFirst:   "depth-first",
	UniformCost:  "uniform-cost",
	AStar:        "a-star",
}

var kindAliases = map[string]Kind{
	"bfs":           BreadthFirst,
	"breadth-first": BreadthFirst,
	"breadthfirst":  BreadthFirst,
	"dfs":           DepthFirst,
	"depth-first":   DepthFirst,
	"depthfirst":    DepthFirst,
	"ucs":           UniformCost,
	"uniform-cost":  UniformCost,
	"uniformcost":   UniformCost,
	"a-star":        AStar,
	"astar":         AStar,
	"a*":            AStar,
}

// Kinds returns all the built-in strategy kinds in a fixed order.
func Kinds() []Kind {
	return []Kind{BreadthFirst, DepthFirst, UniformCost, AStar}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind named by s, ignoring case.
// Both the names returned by [Kind.String] and the short
// forms bfs, dfs, ucs, astar and a* are accepted.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrConfiguration, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrConfiguration, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseKind].
func (k *Kind) UnmarshalText(data []byte) error {
	kind, err := ParseKind(string(data))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Result holds the outcome of a search.
type Result[Node comparable] struct {
	// Path holds the path found from start to goal.
	// It is nil when Found is false.
	Path *path.Path[Node]

	// Found reports whether the goal was reached.
	Found bool

	// Iterations holds the number of times the search loop ran,
	// including the final iteration that found the goal or
	// discovered that no paths were left.
	Iterations int
}

// Option configures a search.
type Option[Node comparable] func(*options[Node])

type options[Node comparable] struct {
	heuristic Heuristic[Node]
	trace     func(iteration int, p *path.Path[Node])
}

// WithHeuristic sets the heuristic used by an [AStar] search.
// Other kinds ignore it.
func WithHeuristic[Node comparable](h Heuristic[Node]) Option[Node] {
	return func(o *options[Node]) {
		o.heuristic = h
	}
}

// WithTrace arranges for f to be called with every path selected
// for expansion, before it is checked against the explored set.
// Iterations are numbered from 1.
func WithTrace[Node comparable](f func(iteration int, p *path.Path[Node])) Option[Node] {
	return func(o *options[Node]) {
		o.trace = f
	}
}

// NewStrategy returns a new instance of the built-in strategy named
// by kind. The heuristic is only used by [AStar], which requires it.
func NewStrategy[Node comparable](kind Kind, goal Node, h Heuristic[Node]) (Strategy[Node], error) {
	switch kind {
	case BreadthFirst:
		return NewBreadthFirst[Node](), nil
	case DepthFirst:
		return NewDepthFirst[Node](), nil
	case UniformCost:
		return NewUniformCost[Node](), nil
	case AStar:
		if h == nil {
			return nil, fmt.Errorf("%w: %v search requires a heuristic", ErrConfiguration, kind)
		}
		return NewAStar(h, goal), nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %v", ErrConfiguration, kind)
}

// Search looks for a path from start to goal in g using the built-in
// strategy named by kind.
//
// Not finding a path is not an error: the returned Result has Found
// set to false. An error is returned when the search is misconfigured
// (wrapping [ErrConfiguration]) or when ctx is done.
func Search[Node comparable](ctx context.Context, g graph.Graph[Node], start, goal Node, kind Kind, opts ...Option[Node]) (Result[Node], error) {
	var o options[Node]
	for _, opt := range opts {
		opt(&o)
	}
	s, err := NewStrategy(kind, goal, o.heuristic)
	if err != nil {
		return Result[Node]{}, err
	}
	return run(ctx, g, start, goal, s, &o)
}

// Run looks for a path from start to goal in g, expanding paths in
// the order chosen by s. The strategy should be freshly created:
// any paths it already holds take part in the search.
//
// The heuristic option is ignored; a strategy that needs one must
// be created with it.
func Run[Node comparable](ctx context.Context, g graph.Graph[Node], start, goal Node, s Strategy[Node], opts ...Option[Node]) (Result[Node], error) {
	if s == nil {
		return Result[Node]{}, fmt.Errorf("%w: nil strategy", ErrConfiguration)
	}
	var o options[Node]
	for _, opt := range opts {
		opt(&o)
	}
	return run(ctx, g, start, goal, s, &o)
}

func run[Node comparable](ctx context.Context, g graph.Graph[Node], start, goal Node, s Strategy[Node], o *options[Node]) (Result[Node], error) {
	// frontier holds the best known pending path to each node
	// that has been reached but not yet expanded.
	first := path.New(start)
	frontier := map[Node]*path.Path[Node]{start: first}
	explored := make(map[Node]bool)
	s.Insert(first)

	iterations := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result[Node]{Iterations: iterations}, err
		}
		iterations++
		p, ok := s.SelectNext()
		if !ok {
			return Result[Node]{Iterations: iterations}, nil
		}
		if o.trace != nil {
			o.trace(iterations, p)
		}
		n := p.End()
		if explored[n] {
			// A path that was replaced by a better one.
			continue
		}
		explored[n] = true
		delete(frontier, n)
		if n == goal {
			return Result[Node]{
				Path:       p,
				Found:      true,
				Iterations: iterations,
			}, nil
		}
		for m, cost := range g.Neighbors(n) {
			if explored[m] {
				continue
			}
			candidate := p.Append(m, cost)
			existing, ok := frontier[m]
			if ok && !s.ResolveConflict(candidate, existing) {
				continue
			}
			frontier[m] = candidate
			s.Insert(candidate)
		}
	}
}
