package cli

import "errors"

// ErrUnknownAlgo is returned when -algo names a search strategy other
// than "bb" or "pt".
var ErrUnknownAlgo = errors.New("cli: unknown -algo, want \"bb\" or \"pt\"")
