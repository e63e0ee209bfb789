package editor

import "errors"

// Errors returned by sessions.
var (
	// ErrReadOnly indicates a mutating call on a read-only session.
	ErrReadOnly = errors.New("editor: session is read-only")
)
