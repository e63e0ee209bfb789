package command

import (
	"fmt"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/selection"
)

// Validate checks a selection against a document without mutating
// anything. Hosts use it to vet selections coming from the UI before
// adopting them.
func Validate(doc *document.Document, sel selection.Selection) error {
	return validate(doc, sel)
}

// validate checks that both selection points resolve to real leaves with
// in-range offsets. Operations call this before touching the document.
func validate(doc *document.Document, sel selection.Selection) error {
	for _, pt := range []selection.Point{sel.Anchor, sel.Focus} {
		leaf, err := doc.LeafAt(pt.Path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		if pt.Offset < 0 || pt.Offset > leaf.Len() {
			return fmt.Errorf("%w: offset %d out of range at %s", ErrInvalidSelection, pt.Offset, pt.Path)
		}
	}
	return nil
}

// replaceChild replaces the entry at path p within its parent with the
// given replacements.
func replaceChild(d *document.Document, p document.Path, repl ...document.Child) error {
	parent, err := d.NodeAt(p.Parent())
	if err != nil {
		return err
	}
	i := p.Last()
	children := make([]document.Child, 0, len(parent.Children)+len(repl)-1)
	children = append(children, parent.Children[:i]...)
	children = append(children, repl...)
	children = append(children, parent.Children[i+1:]...)
	parent.Children = children
	return nil
}

// splitBoundaries splits the leaves at the range boundaries in place so
// that afterwards every leaf is either fully inside or fully outside the
// range, and returns the adjusted range. Split offsets are clamped to
// grapheme boundaries, so the adjusted range may differ slightly from the
// requested one. The end boundary is split first so the start-side split
// cannot shift its path.
func splitBoundaries(d *document.Document, r selection.Range) (selection.Range, error) {
	start, end := r.Start.Clone(), r.End.Clone()

	endLeaf, err := d.LeafAt(end.Path)
	if err != nil {
		return r, err
	}
	if left, right := document.SplitLeaf(endLeaf, end.Offset); left != nil && right != nil {
		if err := replaceChild(d, end.Path, left, right); err != nil {
			return r, err
		}
		end.Offset = left.Len()
	}

	startLeaf, err := d.LeafAt(start.Path)
	if err != nil {
		return r, err
	}
	if left, right := document.SplitLeaf(startLeaf, start.Offset); left != nil && right != nil {
		if err := replaceChild(d, start.Path, left, right); err != nil {
			return r, err
		}
		depth := len(start.Path) - 1
		switch {
		case end.Path.Equal(start.Path):
			// Both boundaries were in the same leaf; the covered piece is
			// now the right half.
			end.Path = start.Path.Parent().Child(start.Path.Last() + 1)
			end.Offset -= left.Len()
		case len(end.Path) > depth && start.Path[:depth].Equal(end.Path[:depth]) && end.Path[depth] > start.Path[depth]:
			end.Path = end.Path.Clone()
			end.Path[depth]++
		}
		start.Path = start.Path.Parent().Child(start.Path.Last() + 1)
		start.Offset = 0
	}

	return selection.Range{Start: start, End: end}, nil
}

// reorient rebuilds a selection from an adjusted range, preserving the
// original anchor/focus direction.
func reorient(sel selection.Selection, r selection.Range) selection.Selection {
	if sel.IsForward() {
		return selection.New(r.Start, r.End)
	}
	return selection.New(r.End, r.Start)
}

// mergeLeaves merges adjacent sibling leaves with identical marks across
// the whole tree, remapping the given selection points through the merge.
// Mark edits split leaves at selection boundaries; merging afterwards keeps
// toggles involutive, so toggling a mark on and off restores the original
// tree shape.
func mergeLeaves(d *document.Document, pts ...*selection.Point) {
	for i, n := range d.Nodes {
		mergeNodeLeaves(document.Path{i}, n, pts)
	}
}

func mergeNodeLeaves(p document.Path, n *document.Node, pts []*selection.Point) {
	// Depth first, so child merges use stable paths before this level
	// reindexes anything.
	for i, child := range n.Children {
		if node, ok := child.(*document.Node); ok {
			mergeNodeLeaves(p.Child(i), node, pts)
		}
	}

	out := make([]document.Child, 0, len(n.Children))
	newIdx := make([]int, len(n.Children))
	delta := make([]int, len(n.Children))
	merged := false
	for i, child := range n.Children {
		if leaf, ok := child.(*document.Leaf); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*document.Leaf); ok && prev.Marks == leaf.Marks {
				newIdx[i] = len(out) - 1
				delta[i] = prev.Len()
				prev.Text += leaf.Text
				merged = true
				continue
			}
		}
		newIdx[i] = len(out)
		out = append(out, child)
	}
	if !merged {
		return
	}
	n.Children = out

	depth := len(p)
	for _, pt := range pts {
		if pt == nil || len(pt.Path) <= depth || !p.Equal(pt.Path[:depth]) {
			continue
		}
		old := pt.Path[depth]
		if old >= len(newIdx) {
			continue
		}
		pt.Path = pt.Path.Clone()
		pt.Path[depth] = newIdx[old]
		if len(pt.Path) == depth+1 {
			pt.Offset += delta[old]
		}
	}
}

// topIndex returns the top-level block index containing the given path.
func topIndex(p document.Path) int {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}
