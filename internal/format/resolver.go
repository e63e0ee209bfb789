package format

import (
	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/selection"
)

// MarkActive returns true if the named mark is active across the whole
// selection: every leaf the range touches carries the mark. For a collapsed
// selection it reports the mark state of the leaf at the caret. Invalid
// selections simply report false; resolvers never fail.
func MarkActive(doc *document.Document, sel selection.Selection, mark string) bool {
	r := sel.Normalize()
	if sel.Collapsed() {
		leaf, err := doc.LeafAt(r.Start.Path)
		if err != nil {
			return false
		}
		return leaf.Marks.Active(mark)
	}
	span := r.Span()
	touched := false
	for p, leaf := range doc.Leaves(&span) {
		if !r.Touches(p, leaf.Len()) {
			continue
		}
		touched = true
		if !leaf.Marks.Active(mark) {
			return false
		}
	}
	return touched
}

// MarkActiveWithPending is MarkActive with the session's pending marks
// taken into account: at a collapsed selection an explicit pending entry
// wins over the caret leaf's state.
func MarkActiveWithPending(doc *document.Document, sel selection.Selection, mark string, pending *Pending) bool {
	if sel.Collapsed() && pending != nil {
		if state, ok := pending.Lookup(mark); ok {
			return state
		}
	}
	return MarkActive(doc, sel, mark)
}

// BlockActive returns true if any ancestor block of the selection's anchor
// has the given type. Checking the full ancestor chain (not just the
// nearest block) is what makes list state visible from inside a list item.
func BlockActive(doc *document.Document, sel selection.Selection, t document.NodeType) bool {
	for _, node := range ancestorNodes(doc, sel.Anchor.Path) {
		if node.Type == t {
			return true
		}
	}
	return false
}

// AlignActive returns true if the nearest ancestor block of the selection's
// anchor has the given alignment.
func AlignActive(doc *document.Document, sel selection.Selection, align document.Alignment) bool {
	ancestors := ancestorNodes(doc, sel.Anchor.Path)
	if len(ancestors) == 0 {
		return false
	}
	return ancestors[len(ancestors)-1].Align == align
}

// ancestorNodes returns the chain of branch nodes containing the entry at
// the given path, outermost first. An unresolvable path yields nil.
func ancestorNodes(doc *document.Document, p document.Path) []*document.Node {
	var chain []*document.Node
	for i := 1; i < len(p); i++ {
		node, err := doc.NodeAt(p[:i])
		if err != nil {
			return nil
		}
		chain = append(chain, node)
	}
	return chain
}
