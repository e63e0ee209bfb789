package command

import "errors"

// Errors returned by command engine operations.
var (
	// ErrInvalidSelection indicates a selection whose path or offset does
	// not resolve to a real tree location. The document is left unmodified.
	ErrInvalidSelection = errors.New("command: invalid selection")

	// ErrInvalidInput indicates an empty or missing URL, formula or mark
	// name passed to an operation. The document is left unmodified.
	ErrInvalidInput = errors.New("command: invalid input")
)
