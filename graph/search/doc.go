// Package search finds paths through a [graph.Graph] using one control
// loop and a pluggable [Strategy] that decides the order in which
// partial paths are expanded.
//
// Four strategies are provided:
//
//   - breadth-first ([NewBreadthFirst]): expands the oldest pending path.
//   - depth-first ([NewDepthFirst]): expands the newest pending path.
//   - uniform-cost ([NewUniformCost]): expands the cheapest pending path.
//   - A* ([NewAStar]): expands the pending path with the lowest cost plus
//     heuristic estimate of the remaining cost.
//
// [Search] picks a strategy by [Kind]; [Run] accepts any Strategy, so
// a new expansion order needs no change to the loop itself.
//
// Every call owns its own frontier and explored set. A graph that is
// no longer being modified may be searched by several goroutines at once.
package search
