package pt

import "errors"

// ErrNoTopologicalOrder is returned if the precedence graph backing a
// completed solution cannot be linearised — it would indicate a cycle
// slipped past the availability check, an accounting bug.
var ErrNoTopologicalOrder = errors.New("pt: precedence graph has no topological order")
