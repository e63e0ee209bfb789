// Package document provides the typed document tree for the rich-text core.
//
// A document is an ordered sequence of block Nodes. Each Node carries a
// NodeType tag, an optional alignment, and a children list whose members are
// either nested *Node values or terminal *Leaf text runs. Leaves carry
// independent formatting marks (bold, link, inline math, ...).
//
// # Structure
//
// The package is organized around a few value types:
//
//   - Document: the tree root, an ordered slice of top-level Nodes
//   - Node: a branch element (paragraph, heading, list, image, math block)
//   - Leaf: a terminal text run with Marks
//   - Child: the closed union of *Node and *Leaf
//   - Path: child indices from the root down to an entry
//
// # Invariants
//
// Every branch node holds at least one child; intentionally empty content is
// represented by a single Leaf with empty text. List containers hold only
// list-item children. Validate reports violations, Normalize repairs them.
//
// # Addressing
//
// Entries are addressed by Path, the sequence of child indices from the
// document root. Get resolves a path or fails with ErrPathNotFound. Entries
// returns a lazy pre-order iteration in document order, optionally restricted
// to a path span.
//
// # Persistence
//
// Documents round-trip through the JSON shape used by the surrounding
// application: a top-level array of node objects, where leaves serialize as
// {"text": ..., ...marks} and nodes as {"type": ..., "children": [...]}.
// Decode is tolerant: unknown node types fall back to paragraph and missing
// children are replaced with an empty leaf, so stored content never fails to
// load.
package document
