package command

import (
	"fmt"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/format"
	"github.com/scribekit/richtext/internal/selection"
)

// ToggleBlock converts the blocks covered by the selection to the given
// type. Any list container overlapping the selection is unwrapped first,
// splitting it at the selection boundaries, so list wrappers never nest or
// duplicate. Then:
//
//   - list target, not active: covered blocks become list-items wrapped in
//     a fresh container of the target type
//   - already active: covered blocks return to paragraph (toggle off)
//   - otherwise: covered blocks take the target type directly
//
// Applying the same toggle twice returns the covered blocks to paragraph.
// Embedded block types (image, math-block) are not toggle targets; use the
// insert operations instead.
func ToggleBlock(doc *document.Document, sel selection.Selection, t document.NodeType) (*document.Document, selection.Selection, error) {
	if !t.Valid() || t == document.Image || t == document.MathBlock {
		return doc, sel, fmt.Errorf("%w: %q is not a toggleable block type", ErrInvalidInput, t)
	}
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}

	active := format.BlockActive(doc, sel, t)
	next := doc.Clone()

	// The anchor and focus leaves survive all structural moves below;
	// their identity recovers the selection afterwards.
	anchorLeaf, err := next.LeafAt(sel.Anchor.Path)
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	focusLeaf, err := next.LeafAt(sel.Focus.Path)
	if err != nil {
		return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	unwrapListsInRange(next, sel.Normalize())

	lo, hi, err := coveredTopRange(next, anchorLeaf, focusLeaf)
	if err != nil {
		return doc, sel, err
	}

	switch {
	case t.IsList() && !active:
		items := next.Nodes[lo : hi+1]
		children := make([]document.Child, len(items))
		for i, block := range items {
			block.Type = document.ListItem
			children[i] = block
		}
		list := &document.Node{Type: t, Children: children}
		nodes := make([]*document.Node, 0, len(next.Nodes)-(hi-lo))
		nodes = append(nodes, next.Nodes[:lo]...)
		nodes = append(nodes, list)
		nodes = append(nodes, next.Nodes[hi+1:]...)
		next.Nodes = nodes
	case active:
		for _, block := range next.Nodes[lo : hi+1] {
			block.Type = document.Paragraph
		}
	default:
		for _, block := range next.Nodes[lo : hi+1] {
			block.Type = t
		}
	}

	out, err := recoverSelection(next, sel, anchorLeaf, focusLeaf)
	if err != nil {
		return doc, sel, err
	}
	return next, out, nil
}

// SetAlign sets the alignment on the nearest block ancestor of every leaf
// the selection touches. Repeating the same alignment is a no-op; a
// different one overwrites.
func SetAlign(doc *document.Document, sel selection.Selection, align document.Alignment) (*document.Document, selection.Selection, error) {
	if !align.Valid() {
		return doc, sel, fmt.Errorf("%w: unknown alignment %q", ErrInvalidInput, align)
	}
	if err := validate(doc, sel); err != nil {
		return doc, sel, err
	}

	next := doc.Clone()
	r := sel.Normalize()
	span := r.Span()
	for p, leaf := range next.Leaves(&span) {
		if !sel.Collapsed() && !r.Touches(p, leaf.Len()) {
			continue
		}
		parent, err := next.NodeAt(p.Parent())
		if err != nil {
			return doc, sel, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		parent.Align = align
	}
	return next, sel, nil
}

// unwrapListsInRange lifts the list-items a range covers out of their
// top-level list containers. Items outside the range keep a container of
// the original type on their side of the split, so unwrapping in the
// middle of a list produces list / lifted items / list.
func unwrapListsInRange(d *document.Document, r selection.Range) {
	span := document.Span{Start: r.Start.Path, End: r.End.Path}
	var out []*document.Node
	for i, n := range d.Nodes {
		if !n.Type.IsList() || !span.Overlaps(document.Path{i}) {
			out = append(out, n)
			continue
		}
		var before, after []document.Child
		var lifted []*document.Node
		seenCovered := false
		for j, child := range n.Children {
			item, ok := child.(*document.Node)
			if ok && span.Overlaps(document.Path{i, j}) {
				lifted = append(lifted, item)
				seenCovered = true
			} else if !seenCovered {
				before = append(before, child)
			} else {
				after = append(after, child)
			}
		}
		if len(before) > 0 {
			out = append(out, &document.Node{Type: n.Type, Align: n.Align, Children: before})
		}
		out = append(out, lifted...)
		if len(after) > 0 {
			out = append(out, &document.Node{Type: n.Type, Align: n.Align, Children: after})
		}
	}
	d.Nodes = out
}

// coveredTopRange returns the top-level block index range spanned by the
// two boundary leaves, located by identity.
func coveredTopRange(d *document.Document, a, b *document.Leaf) (lo, hi int, err error) {
	ap, ok := d.PathOf(a)
	if !ok {
		return 0, 0, fmt.Errorf("%w: selection leaf lost during restructure", ErrInvalidSelection)
	}
	bp, ok := d.PathOf(b)
	if !ok {
		return 0, 0, fmt.Errorf("%w: selection leaf lost during restructure", ErrInvalidSelection)
	}
	lo, hi = topIndex(ap), topIndex(bp)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// recoverSelection re-derives the selection after a structural edit by
// locating the anchor and focus leaves by identity. Offsets are preserved;
// structural edits never change leaf text.
func recoverSelection(d *document.Document, sel selection.Selection, anchorLeaf, focusLeaf *document.Leaf) (selection.Selection, error) {
	ap, ok := d.PathOf(anchorLeaf)
	if !ok {
		return sel, fmt.Errorf("%w: selection leaf lost during restructure", ErrInvalidSelection)
	}
	fp, ok := d.PathOf(focusLeaf)
	if !ok {
		return sel, fmt.Errorf("%w: selection leaf lost during restructure", ErrInvalidSelection)
	}
	return selection.New(
		selection.NewPoint(ap, sel.Anchor.Offset),
		selection.NewPoint(fp, sel.Focus.Offset),
	), nil
}
