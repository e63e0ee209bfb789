package document

import "strings"

// Document is an ordered sequence of top-level block nodes.
type Document struct {
	Nodes []*Node
}

// New creates the default document: a single empty paragraph.
func New() *Document {
	return &Document{Nodes: []*Node{NewParagraph("")}}
}

// FromNodes creates a document from the given top-level nodes. An empty
// node list yields the default empty paragraph.
func FromNodes(nodes ...*Node) *Document {
	if len(nodes) == 0 {
		return New()
	}
	return &Document{Nodes: nodes}
}

// Clone returns a deep copy of the document. Command engine operations
// clone before mutating so failures never leave partial edits behind.
func (d *Document) Clone() *Document {
	c := &Document{Nodes: make([]*Node, len(d.Nodes))}
	for i, n := range d.Nodes {
		c.Nodes[i] = n.Clone()
	}
	return c
}

// Equal reports whether two documents have recursively equal content.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.Nodes) != len(other.Nodes) {
		return false
	}
	for i := range d.Nodes {
		if !d.Nodes[i].Equal(other.Nodes[i]) {
			return false
		}
	}
	return true
}

// Text returns the document's plain text, top-level blocks separated by
// newlines.
func (d *Document) Text() string {
	parts := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		parts[i] = n.Text()
	}
	return strings.Join(parts, "\n")
}
