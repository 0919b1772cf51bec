package store

import "errors"

// ErrNotFound is returned when a point lookup matches no row. Every other
// failure is a storage fault and is surfaced wrapped but otherwise unchanged.
var ErrNotFound = errors.New("not found")
