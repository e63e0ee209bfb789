package document

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the document's structural invariants and returns every
// violation found, combined with multierr. All reported errors wrap
// ErrInvariant. A nil result means the tree is well formed:
//
//   - every node has a known type
//   - every branch node has at least one child
//   - list containers hold only list-item children
//   - list-item children are leaves or nested lists
func (d *Document) Validate() error {
	var err error
	if len(d.Nodes) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: document has no blocks", ErrInvariant))
	}
	for p, c := range d.Entries(nil, nil) {
		node, ok := c.(*Node)
		if !ok {
			continue
		}
		if !node.Type.Valid() {
			err = multierr.Append(err, fmt.Errorf("%w: unknown node type %q at %s", ErrInvariant, node.Type, p))
		}
		if len(node.Children) == 0 {
			err = multierr.Append(err, fmt.Errorf("%w: node %s at %s has no children", ErrInvariant, node.Type, p))
			continue
		}
		switch {
		case node.Type.IsList():
			for i, child := range node.Children {
				item, ok := child.(*Node)
				if !ok || item.Type != ListItem {
					err = multierr.Append(err, fmt.Errorf("%w: %s at %s contains a non-list-item child at index %d", ErrInvariant, node.Type, p, i))
				}
			}
		case node.Type == ListItem:
			for i, child := range node.Children {
				if nested, ok := child.(*Node); ok && !nested.Type.IsList() {
					err = multierr.Append(err, fmt.Errorf("%w: list-item at %s contains a non-list node child at index %d", ErrInvariant, p, i))
				}
			}
		}
	}
	return err
}

// Normalize repairs structural invariant violations in place and returns
// the document. Branch nodes left without children get a placeholder empty
// leaf, unknown node types become paragraphs, and an empty document becomes
// the default empty paragraph. This is the recovery path for trees that
// reached an invalid state through external data.
func (d *Document) Normalize() *Document {
	if len(d.Nodes) == 0 {
		d.Nodes = []*Node{NewParagraph("")}
		return d
	}
	for _, n := range d.Nodes {
		normalizeNode(n)
	}
	return d
}

func normalizeNode(n *Node) {
	if !n.Type.Valid() {
		n.Type = Paragraph
	}
	for _, child := range n.Children {
		if node, ok := child.(*Node); ok {
			normalizeNode(node)
		}
	}
	if len(n.Children) == 0 {
		n.Children = []Child{NewLeaf("")}
	}
}
