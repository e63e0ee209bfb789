package document

import (
	"fmt"
	"iter"
)

// Get resolves a path to the entry it addresses.
// Fails with ErrPathNotFound if any index is out of range or the path
// descends into a leaf.
func (d *Document) Get(p Path) (Child, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPathNotFound)
	}
	if p[0] < 0 || p[0] >= len(d.Nodes) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
	}
	var current Child = d.Nodes[p[0]]
	for _, idx := range p[1:] {
		node, ok := current.(*Node)
		if !ok {
			return nil, fmt.Errorf("%w: %s descends into a leaf", ErrPathNotFound, p)
		}
		if idx < 0 || idx >= len(node.Children) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
		}
		current = node.Children[idx]
	}
	return current, nil
}

// NodeAt resolves a path to a branch node.
func (d *Document) NodeAt(p Path) (*Node, error) {
	c, err := d.Get(p)
	if err != nil {
		return nil, err
	}
	node, ok := c.(*Node)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a node", ErrPathNotFound, p)
	}
	return node, nil
}

// LeafAt resolves a path to a text leaf.
func (d *Document) LeafAt(p Path) (*Leaf, error) {
	c, err := d.Get(p)
	if err != nil {
		return nil, err
	}
	leaf, ok := c.(*Leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a leaf", ErrPathNotFound, p)
	}
	return leaf, nil
}

// ParentOf returns the node containing the entry at p. For top-level
// entries the parent is the document root, returned as a nil node.
func (d *Document) ParentOf(p Path) (*Node, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: root has no parent", ErrPathNotFound)
	}
	if len(p) == 1 {
		if p[0] < 0 || p[0] >= len(d.Nodes) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
		}
		return nil, nil
	}
	return d.NodeAt(p.Parent())
}

// Span is an inclusive interval of paths in document order. It is used to
// restrict traversal to the part of the tree a selection touches.
type Span struct {
	Start Path
	End   Path
}

// Overlaps returns true if the subtree rooted at p intersects the span.
// Ancestors of the span boundaries count as overlapping since their
// subtrees contain spanned entries.
func (s Span) Overlaps(p Path) bool {
	if p.Compare(s.End) > 0 {
		return false
	}
	return p.Compare(s.Start) >= 0 || p.IsAncestorOf(s.Start)
}

// Predicate filters tree entries during traversal.
type Predicate func(p Path, c Child) bool

// Entries returns a lazy pre-order iteration over the tree in document
// order (top to bottom, left to right). A non-nil span restricts the
// iteration to entries whose subtree overlaps it; a non-nil predicate
// filters which entries are produced without stopping descent. The
// sequence is finite and restartable.
func (d *Document) Entries(within *Span, pred Predicate) iter.Seq2[Path, Child] {
	return func(yield func(Path, Child) bool) {
		for i, n := range d.Nodes {
			if !walkEntries(Path{i}, n, within, pred, yield) {
				return
			}
		}
	}
}

func walkEntries(p Path, c Child, within *Span, pred Predicate, yield func(Path, Child) bool) bool {
	if within != nil && !within.Overlaps(p) {
		return true
	}
	if pred == nil || pred(p, c) {
		if !yield(p.Clone(), c) {
			return false
		}
	}
	if node, ok := c.(*Node); ok {
		for i, child := range node.Children {
			if !walkEntries(append(p, i), child, within, pred, yield) {
				return false
			}
		}
	}
	return true
}

// Leaves returns the leaves of the tree in document order, restricted to
// a span when given.
func (d *Document) Leaves(within *Span) iter.Seq2[Path, *Leaf] {
	return func(yield func(Path, *Leaf) bool) {
		for p, c := range d.Entries(within, isLeaf) {
			if !yield(p, c.(*Leaf)) {
				return
			}
		}
	}
}

func isLeaf(_ Path, c Child) bool {
	_, ok := c.(*Leaf)
	return ok
}

// PathOf locates an entry by identity and returns its path. Used to
// re-derive selections after structural edits move entries around.
func (d *Document) PathOf(target Child) (Path, bool) {
	for p, c := range d.Entries(nil, nil) {
		if c == target {
			return p, true
		}
	}
	return nil, false
}

// FirstLeaf returns the path of the first leaf under the entry at p.
func (d *Document) FirstLeaf(p Path) (Path, error) {
	c, err := d.Get(p)
	if err != nil {
		return nil, err
	}
	for {
		node, ok := c.(*Node)
		if !ok {
			return p, nil
		}
		if len(node.Children) == 0 {
			return nil, fmt.Errorf("%w: node at %s has no children", ErrInvariant, p)
		}
		p = p.Child(0)
		c = node.Children[0]
	}
}
