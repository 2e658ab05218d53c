// Package orderedset: sentinel error set.
package orderedset

import "errors"

// ErrDuplicateKey is returned by AddStrict when a key is already present.
// The unchecked Add is idempotent (re-adding an existing key is a no-op);
// AddStrict exists for call sites that must detect the "already present"
// case as a bug.
var ErrDuplicateKey = errors.New("orderedset: key already present")
