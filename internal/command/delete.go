package command

import (
	"fmt"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/selection"
)

// DeleteSelection removes everything inside a non-collapsed selection and
// merges the blocks at the boundary, returning a collapsed selection at
// the deletion point. Embedded blocks (images, math blocks) strictly
// inside the range are removed with it. A collapsed selection is a no-op.
func DeleteSelection(doc *document.Document, sel selection.Selection) (*document.Document, selection.Selection, error) {
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}
	if sel.Collapsed() {
		return doc, sel, nil
	}

	next := doc.Clone()
	r := sel.Normalize()

	startLeaf, err := next.LeafAt(r.Start.Path)
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	if r.Start.Path.Equal(r.End.Path) {
		from := document.RuneIndex(startLeaf.Text, r.Start.Offset)
		to := document.RuneIndex(startLeaf.Text, r.End.Offset)
		startLeaf.Text = startLeaf.Text[:from] + startLeaf.Text[to:]
		caret := selection.Caret(selection.NewPoint(r.Start.Path, r.Start.Offset))
		return next, caret, nil
	}

	endLeaf, err := next.LeafAt(r.End.Path)
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	// Trim the boundary leaves and collect everything strictly inside.
	startLeaf.Text = startLeaf.Text[:document.RuneIndex(startLeaf.Text, r.Start.Offset)]
	endLeaf.Text = endLeaf.Text[document.RuneIndex(endLeaf.Text, r.End.Offset):]

	remove := make(map[*document.Leaf]bool)
	span := r.Span()
	for p, leaf := range next.Leaves(&span) {
		if leaf == startLeaf || leaf == endLeaf {
			continue
		}
		if r.FullyCovers(p, leaf.Len()) {
			remove[leaf] = true
		}
	}

	// Merge the boundary blocks: the end leaf's remaining siblings move
	// into the node holding the start leaf, then emptied nodes fall away.
	startParent, err := next.NodeAt(r.Start.Path.Parent())
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	endParent, err := next.NodeAt(r.End.Path.Parent())
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	if startParent != endParent {
		startParent.Children = append(startParent.Children, endParent.Children...)
		endParent.Children = nil
	}

	pruneRemoved(next, remove)

	caretPath, ok := next.PathOf(startLeaf)
	if !ok {
		return doc, sel, fmt.Errorf("%w: selection leaf lost during delete", ErrInvalidSelection)
	}
	caret := selection.Caret(selection.NewPoint(caretPath, startLeaf.Len()))
	mergeLeaves(next, &caret.Anchor, &caret.Focus)
	return next, caret, nil
}

// pruneRemoved drops the given leaves from the tree along with any branch
// node emptied by their removal. A document emptied entirely collapses to
// the default empty paragraph.
func pruneRemoved(d *document.Document, remove map[*document.Leaf]bool) {
	var nodes []*document.Node
	for _, n := range d.Nodes {
		if pruneNode(n, remove) {
			nodes = append(nodes, n)
		}
	}
	d.Nodes = nodes
	if len(d.Nodes) == 0 {
		d.Nodes = []*document.Node{document.NewParagraph("")}
	}
}

func pruneNode(n *document.Node, remove map[*document.Leaf]bool) bool {
	var out []document.Child
	for _, c := range n.Children {
		switch v := c.(type) {
		case *document.Leaf:
			if !remove[v] {
				out = append(out, v)
			}
		case *document.Node:
			if pruneNode(v, remove) {
				out = append(out, v)
			}
		}
	}
	n.Children = out
	return len(out) > 0
}
