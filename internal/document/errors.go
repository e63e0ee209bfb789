package document

import "errors"

// Errors returned by document operations.
var (
	// ErrPathNotFound indicates a path does not resolve to a tree entry.
	ErrPathNotFound = errors.New("document: path not found")

	// ErrDecode indicates persisted document JSON that cannot be parsed.
	ErrDecode = errors.New("document: malformed document JSON")

	// ErrInvariant indicates a structural invariant violation, such as a
	// branch node with zero children or a list containing non-list-items.
	ErrInvariant = errors.New("document: structural invariant violation")
)
