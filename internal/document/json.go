package document

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Decode parses persisted document JSON: a top-level array of node objects,
// where leaves are objects with a "text" field and nodes carry "type" and
// "children". Decoding is tolerant of content written by older versions:
// unknown node types fall back to paragraph, missing children become a
// single empty leaf, and invalid alignments are dropped. Empty input
// decodes to the default single-paragraph document.
//
// Fails with ErrDecode only when the input is not a JSON array at all.
func Decode(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level is not an array", ErrDecode)
	}
	var nodes []*Node
	for _, item := range root.Array() {
		nodes = append(nodes, decodeNode(item))
	}
	if len(nodes) == 0 {
		return New(), nil
	}
	return &Document{Nodes: nodes}, nil
}

func decodeNode(v gjson.Result) *Node {
	n := &Node{Type: NodeType(v.Get("type").String())}
	if !n.Type.Valid() {
		n.Type = Paragraph
	}
	if a := Alignment(v.Get("align").String()); a.Valid() {
		n.Align = a
	}
	switch n.Type {
	case MathBlock:
		n.Formula = v.Get("formula").String()
	case Image:
		n.URL = v.Get("url").String()
		n.Alt = v.Get("alt").String()
		n.Caption = v.Get("caption").String()
		// Preserve unrecognized image alignments; rendering centers them.
		n.ImageAlign = Alignment(v.Get("imageAlign").String())
		if size := v.Get("size"); size.IsObject() {
			n.Size = &ImageSize{
				Width:  int(size.Get("width").Int()),
				Height: int(size.Get("height").Int()),
			}
		}
	}
	for _, c := range v.Get("children").Array() {
		if c.Get("text").Exists() && !c.Get("children").Exists() {
			n.Children = append(n.Children, decodeLeaf(c))
		} else {
			n.Children = append(n.Children, decodeNode(c))
		}
	}
	if len(n.Children) == 0 {
		n.Children = []Child{NewLeaf("")}
	}
	return n
}

func decodeLeaf(v gjson.Result) *Leaf {
	l := NewLeaf(v.Get("text").String())
	for _, name := range markNames {
		mark := v.Get(name)
		if !mark.Exists() {
			continue
		}
		switch name {
		case MarkBold, MarkItalic, MarkUnderline, MarkStrikethrough, MarkHighlight, MarkCode:
			if mark.Bool() {
				l.Marks = l.Marks.With(name, "")
			}
		default:
			l.Marks = l.Marks.With(name, mark.String())
		}
	}
	return l
}

// Encode serializes the document back to the persisted JSON shape with a
// stable key order: "type" leads node objects, "text" leads leaves, and
// marks follow in declaration order.
func Encode(d *Document) ([]byte, error) {
	out := "[]"
	for i, n := range d.Nodes {
		encoded, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRaw(out, "-1", encoded)
		if err != nil {
			return nil, fmt.Errorf("document: encode block %d: %w", i, err)
		}
	}
	return []byte(out), nil
}

func encodeNode(n *Node) (string, error) {
	s, err := sjson.Set("{}", "type", string(n.Type))
	if err != nil {
		return "", fmt.Errorf("document: encode node: %w", err)
	}
	if n.Align != AlignUnset {
		s, _ = sjson.Set(s, "align", string(n.Align))
	}
	switch n.Type {
	case MathBlock:
		s, _ = sjson.Set(s, "formula", n.Formula)
	case Image:
		s, _ = sjson.Set(s, "url", n.URL)
		s, _ = sjson.Set(s, "alt", n.Alt)
		if n.Caption != "" {
			s, _ = sjson.Set(s, "caption", n.Caption)
		}
		if n.ImageAlign != AlignUnset {
			s, _ = sjson.Set(s, "imageAlign", string(n.ImageAlign))
		}
		if n.Size != nil {
			s, _ = sjson.Set(s, "size.width", n.Size.Width)
			s, _ = sjson.Set(s, "size.height", n.Size.Height)
		}
	}
	children := "[]"
	for _, child := range n.Children {
		var encoded string
		switch v := child.(type) {
		case *Node:
			encoded, err = encodeNode(v)
		case *Leaf:
			encoded, err = encodeLeaf(v)
		}
		if err != nil {
			return "", err
		}
		children, err = sjson.SetRaw(children, "-1", encoded)
		if err != nil {
			return "", fmt.Errorf("document: encode children: %w", err)
		}
	}
	s, err = sjson.SetRaw(s, "children", children)
	if err != nil {
		return "", fmt.Errorf("document: encode node: %w", err)
	}
	return s, nil
}

func encodeLeaf(l *Leaf) (string, error) {
	s, err := sjson.Set("{}", "text", l.Text)
	if err != nil {
		return "", fmt.Errorf("document: encode leaf: %w", err)
	}
	for _, name := range markNames {
		if !l.Marks.Active(name) {
			continue
		}
		switch name {
		case MarkBold, MarkItalic, MarkUnderline, MarkStrikethrough, MarkHighlight, MarkCode:
			s, _ = sjson.Set(s, name, true)
		default:
			s, _ = sjson.Set(s, name, l.Marks.Value(name))
		}
	}
	return s, nil
}
