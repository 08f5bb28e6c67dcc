package reactive

import "errors"

// ErrCorruptedSignal is returned when a signal's internal watcher state
// is invalid. This only happens for signals not built by a constructor
// (a zero-value Signal). The notify path fails fast with this error
// instead of silently dropping updates, so corruption is observable at
// the point it first matters rather than as missing UI updates later.
var ErrCorruptedSignal = errors.New("lumen: signal watcher state corrupted")
