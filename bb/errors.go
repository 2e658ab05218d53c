package bb

import "errors"

// ErrInvariantViolation is returned when cost_lb drops below the global
// relaxation cost_relax_all — a lower bound can never fall below the
// bound on the empty prefix. Seeing this means the accumulator
// bookkeeping has gone out of sync with the enumerator.
var ErrInvariantViolation = errors.New("bb: cost_lb < cost_relax_all")
