package netfetch

import "errors"

// Sentinel errors for stream operations.
var (
	// ErrUnknownBackend indicates a selection policy that names no
	// configured backend. Returned by Open before any process exists.
	ErrUnknownBackend = errors.New("netfetch: unknown backend")
)
