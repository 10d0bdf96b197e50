package search

import "errors"

// ErrConfiguration is returned, wrapped, when a search cannot start
// because it was set up wrongly: an unknown [Kind], a missing strategy,
// or an A* search without a heuristic.
//
// Failing to find a path is not an error; see [Result.Found].
var ErrConfiguration = errors.New("invalid search configuration")
