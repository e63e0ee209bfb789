// Package format answers the read-only formatting queries toolbars make
// against the current document and selection: is a mark active, is a block
// type active, is an alignment active. Queries touch only the nodes the
// selection covers, never mutate, and are cheap enough to run on every
// selection change.
//
// The package also holds Pending, the set of marks that apply to the next
// insertion at a collapsed selection. Pending state is owned by the editor
// session and survives until the selection moves.
package format
