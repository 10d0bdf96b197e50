package search

import (
	"github.com/aiclass/generic/graph/path"
	"github.com/aiclass/generic/heap"
	"github.com/aiclass/generic/ring"
)

// Strategy holds the paths waiting to be expanded by [Run] and decides
// which one comes next.
//
// Run inserts a path the first time it reaches a node. When it reaches
// a node that is already on the frontier, it calls ResolveConflict with
// the new path and the frontier's current path to that node; if that
// returns true, the new path replaces the old one on the frontier and
// is inserted too. The replaced path may stay in the strategy: Run
// discards any selected path whose end node has already been expanded.
type Strategy[Node comparable] interface {
	// Insert adds a path to the pending paths.
	Insert(p *path.Path[Node])

	// SelectNext removes and returns the next path to expand.
	// It returns false when no paths are pending.
	SelectNext() (*path.Path[Node], bool)

	// ResolveConflict reports whether candidate should replace
	// existing, a pending path that ends at the same node.
	ResolveConflict(candidate, existing *path.Path[Node]) bool
}

// Heuristic estimates the cost of the cheapest path from n to goal.
// The estimate must never be negative.
type Heuristic[Node comparable] func(n, goal Node) float64

// NullHeuristic is a consistent heuristic that gives no guidance;
// A* with NullHeuristic expands paths in uniform-cost order.
func NullHeuristic[Node comparable](_, _ Node) float64 {
	return 0
}

// Queue is a Strategy that expands paths in the order they were
// inserted, or in reverse order. The first path found to a node is
// kept; later paths to a node on the frontier are ignored.
type Queue[Node comparable] struct {
	pending ring.Buffer[*path.Path[Node]]
	lifo    bool
}

// NewBreadthFirst returns a strategy that expands the oldest pending
// path first. On a graph whose edges all cost the same it finds a path
// with the fewest edges.
func NewBreadthFirst[Node comparable]() *Queue[Node] {
	return &Queue[Node]{}
}

// NewDepthFirst returns a strategy that expands the newest pending
// path first.
func NewDepthFirst[Node comparable]() *Queue[Node] {
	return &Queue[Node]{lifo: true}
}

// Insert implements [Strategy.Insert].
func (q *Queue[Node]) Insert(p *path.Path[Node]) {
	q.pending.PushEnd(p)
}

// SelectNext implements [Strategy.SelectNext].
func (q *Queue[Node]) SelectNext() (*path.Path[Node], bool) {
	if q.pending.Len() == 0 {
		return nil, false
	}
	if q.lifo {
		return q.pending.PopEnd(), true
	}
	return q.pending.PopStart(), true
}

// ResolveConflict implements [Strategy.ResolveConflict]
// by always keeping the existing path.
func (q *Queue[Node]) ResolveConflict(candidate, existing *path.Path[Node]) bool {
	return false
}

// Priority is a Strategy that expands the pending path with the
// lowest key first. Paths with equal keys are expanded in the order
// they were inserted. A path to a frontier node replaces the existing
// one only when its key is strictly lower.
type Priority[Node comparable] struct {
	pending heap.Queue[*path.Path[Node]]
	key     func(p *path.Path[Node]) float64
}

// NewPriority returns a strategy ordered by the given key function.
// Lower keys are expanded first.
func NewPriority[Node comparable](key func(p *path.Path[Node]) float64) *Priority[Node] {
	return &Priority[Node]{key: key}
}

// NewUniformCost returns a strategy that expands the cheapest pending
// path first. With non-negative edge costs the path it finds to the
// goal is a cheapest one.
func NewUniformCost[Node comparable]() *Priority[Node] {
	return NewPriority(func(p *path.Path[Node]) float64 {
		return p.Cost()
	})
}

// NewAStar returns a strategy that expands first the pending path
// with the lowest cost plus h's estimate of the cost from the path's
// end to goal. h must not be nil.
//
// Run never expands a node twice, so the path found to goal is a
// cheapest one only if h is consistent: h(goal) is zero and for every
// edge n-m, h(n) is at most the edge's cost plus h(m). A heuristic
// that merely never overestimates can give a more expensive path.
// Neither property is checked.
func NewAStar[Node comparable](h Heuristic[Node], goal Node) *Priority[Node] {
	return NewPriority(func(p *path.Path[Node]) float64 {
		return p.Cost() + h(p.End(), goal)
	})
}

// Insert implements [Strategy.Insert].
func (s *Priority[Node]) Insert(p *path.Path[Node]) {
	s.pending.Push(p, s.key(p))
}

// SelectNext implements [Strategy.SelectNext].
func (s *Priority[Node]) SelectNext() (*path.Path[Node], bool) {
	if s.pending.Len() == 0 {
		return nil, false
	}
	p, _ := s.pending.Pop()
	return p, true
}

// ResolveConflict implements [Strategy.ResolveConflict]. It reports
// whether candidate's key is strictly lower than existing's.
func (s *Priority[Node]) ResolveConflict(candidate, existing *path.Path[Node]) bool {
	return s.key(candidate) < s.key(existing)
}
