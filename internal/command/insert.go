package command

import (
	"fmt"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/selection"
)

// InsertLink links the selected text to the given URL. A collapsed
// selection inserts a new linked leaf at the caret, using displayText (or
// the URL itself) as the visible text. A range selection applies the link
// mark to every leaf in the range; unlike ToggleMark this is never toggled
// off. Fails with ErrInvalidInput before mutating when the URL is empty.
func InsertLink(doc *document.Document, sel selection.Selection, url, displayText string) (*document.Document, selection.Selection, error) {
	if url == "" {
		return doc, sel, fmt.Errorf("%w: empty link URL", ErrInvalidInput)
	}
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}
	if !sel.Collapsed() {
		return applyMarkRange(doc, sel, document.MarkLink, url)
	}
	text := displayText
	if text == "" {
		text = url
	}
	leaf := &document.Leaf{Text: text, Marks: document.Marks{Link: url}}
	return insertLeafAtCaret(doc, sel, leaf)
}

// InsertInlineFormula embeds inline math. A collapsed selection inserts a
// new leaf carrying the formula; a range selection sets the inline-math
// mark on every leaf in the range, hiding their text behind the rendered
// formula until the mark is cleared. Fails with ErrInvalidInput before
// mutating when the formula is empty.
func InsertInlineFormula(doc *document.Document, sel selection.Selection, latex string) (*document.Document, selection.Selection, error) {
	if latex == "" {
		return doc, sel, fmt.Errorf("%w: empty formula", ErrInvalidInput)
	}
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}
	if !sel.Collapsed() {
		return applyMarkRange(doc, sel, document.MarkInlineMath, latex)
	}
	leaf := &document.Leaf{Marks: document.Marks{InlineMath: latex}}
	return insertLeafAtCaret(doc, sel, leaf)
}

// InsertBlockFormula inserts a math-block node immediately after the block
// containing the selection. The formula's syntactic validity is a
// render-time concern: malformed LaTeX is stored as-is and surfaces as an
// inline error when rendered, never as a lost edit.
func InsertBlockFormula(doc *document.Document, sel selection.Selection, latex string) (*document.Document, selection.Selection, error) {
	if latex == "" {
		return doc, sel, fmt.Errorf("%w: empty formula", ErrInvalidInput)
	}
	return insertBlockAfter(doc, sel, document.NewMathBlock(latex))
}

// InsertImage inserts an image node immediately after the block containing
// the selection. The URL is not fetched or checked for reachability here;
// that is a rendering-time concern.
func InsertImage(doc *document.Document, sel selection.Selection, url, alt string, align document.Alignment) (*document.Document, selection.Selection, error) {
	if url == "" {
		return doc, sel, fmt.Errorf("%w: empty image URL", ErrInvalidInput)
	}
	return insertBlockAfter(doc, sel, document.NewImage(url, alt, align))
}

// insertLeafAtCaret splits the caret leaf and splices the new leaf in
// between the halves. The returned selection is a caret at the end of the
// inserted leaf.
func insertLeafAtCaret(doc *document.Document, sel selection.Selection, leaf *document.Leaf) (*document.Document, selection.Selection, error) {
	next := doc.Clone()
	pt := sel.Focus
	caretLeaf, err := next.LeafAt(pt.Path)
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	left, right := document.SplitLeaf(caretLeaf, pt.Offset)
	var pieces []document.Child
	if left != nil {
		pieces = append(pieces, left)
	}
	pieces = append(pieces, leaf)
	if right != nil {
		pieces = append(pieces, right)
	}
	if err := replaceChild(next, pt.Path, pieces...); err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	idx := pt.Path.Last()
	if left != nil {
		idx++
	}
	caret := selection.Caret(selection.NewPoint(pt.Path.Parent().Child(idx), leaf.Len()))
	mergeLeaves(next, &caret.Anchor, &caret.Focus)
	return next, caret, nil
}

// insertBlockAfter validates the selection and splices a new top-level
// block after the one containing the selection's end. Paths at or before
// the insertion point are unaffected, so the selection carries over.
func insertBlockAfter(doc *document.Document, sel selection.Selection, block *document.Node) (*document.Document, selection.Selection, error) {
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}
	next := doc.Clone()
	at := topIndex(sel.Normalize().End.Path) + 1
	nodes := make([]*document.Node, 0, len(next.Nodes)+1)
	nodes = append(nodes, next.Nodes[:at]...)
	nodes = append(nodes, block)
	nodes = append(nodes, next.Nodes[at:]...)
	next.Nodes = nodes
	return next, sel, nil
}
