// Package command implements the mutating operations of the editor core.
//
// Every operation is a pure function over an explicit document and
// selection:
//
//	func Op(doc *document.Document, sel selection.Selection, ...) (*document.Document, selection.Selection, error)
//
// Operations validate the selection first, clone the document, and mutate
// only the clone, so a failed operation never leaves a partially applied
// edit behind: callers either get the new tree or keep the old one
// untouched. "Nothing to do" cases return the input document unchanged
// with a nil error.
//
// # Operations
//
//   - ToggleMark: flip a formatting mark across the selection, splitting
//     boundary leaves so marks apply to exactly the selected text
//   - ToggleBlock: convert block types, wrapping and unwrapping list
//     containers as needed
//   - SetAlign: set alignment on every block the selection touches
//   - InsertLink, InsertInlineFormula: insert a marked leaf at a caret or
//     apply the mark across a range
//   - InsertBlockFormula, InsertImage: insert an embedded block after the
//     current one
//   - DeleteSelection: remove the selected content and merge the boundary
//     blocks
//
// Pending marks for collapsed selections are session state and live in the
// editor package; ToggleMark on a caret is deliberately a no-op here.
package command
