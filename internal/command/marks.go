package command

import (
	"fmt"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/format"
	"github.com/scribekit/richtext/internal/selection"
)

// ToggleMark flips the named mark across the selection: if every touched
// leaf already carries it, the mark is removed, otherwise it is added.
// Boundary leaves are split first so the mark applies to exactly the
// selected text, and identical neighbors are merged afterwards, which makes
// the operation involutive.
//
// A collapsed selection returns the document unchanged; pending-mark state
// for carets belongs to the editor session.
func ToggleMark(doc *document.Document, sel selection.Selection, mark string) (*document.Document, selection.Selection, error) {
	if !document.ValidMark(mark) {
		return doc, sel, fmt.Errorf("%w: unknown mark %q", ErrInvalidInput, mark)
	}
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}
	if sel.Collapsed() {
		return doc, sel, nil
	}

	active := format.MarkActive(doc, sel, mark)
	next := doc.Clone()
	r, err := splitBoundaries(next, sel.Normalize())
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	span := r.Span()
	for p, leaf := range next.Leaves(&span) {
		if !r.FullyCovers(p, leaf.Len()) {
			continue
		}
		if active {
			leaf.Marks = leaf.Marks.Without(mark)
		} else {
			leaf.Marks = leaf.Marks.With(mark, "")
		}
	}

	out := reorient(sel, r)
	mergeLeaves(next, &out.Anchor, &out.Focus)
	return next, out, nil
}

// applyMarkRange unconditionally applies a valued mark across the range
// selection. Shared by link and inline-formula insertion; never toggles
// off.
func applyMarkRange(doc *document.Document, sel selection.Selection, mark, value string) (*document.Document, selection.Selection, error) {
	next := doc.Clone()
	r, err := splitBoundaries(next, sel.Normalize())
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	span := r.Span()
	for p, leaf := range next.Leaves(&span) {
		if !r.FullyCovers(p, leaf.Len()) {
			continue
		}
		leaf.Marks = leaf.Marks.With(mark, value)
	}

	out := reorient(sel, r)
	mergeLeaves(next, &out.Anchor, &out.Focus)
	return next, out, nil
}
