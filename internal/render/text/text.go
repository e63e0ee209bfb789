// Package text renders documents to plain text. It is used for previews,
// search indexing and tests that compare content rather than structure.
package text

import (
	"fmt"
	"strings"

	"github.com/scribekit/richtext/internal/document"
)

// Render extracts the document's content as plain text. Blocks are
// separated by newlines, list items carry bullet or number prefixes,
// formulas keep their delimited source and images reduce to their
// alternative text.
func Render(doc *document.Document) string {
	var b strings.Builder
	for i, n := range doc.Nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderBlock(&b, n, "")
	}
	return b.String()
}

func renderBlock(b *strings.Builder, n *document.Node, prefix string) {
	switch n.Type {
	case document.MathBlock:
		fmt.Fprintf(b, "%s$$%s$$", prefix, n.Formula)
		return
	case document.Image:
		alt := n.Alt
		if alt == "" {
			alt = n.URL
		}
		fmt.Fprintf(b, "%s[image: %s]", prefix, alt)
		if n.Caption != "" {
			fmt.Fprintf(b, " %s", n.Caption)
		}
		return
	case document.BulletedList:
		renderListItems(b, n, func(int) string { return "- " })
		return
	case document.NumberedList:
		renderListItems(b, n, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
		return
	}

	b.WriteString(prefix)
	for _, child := range n.Children {
		switch v := child.(type) {
		case *document.Node:
			renderBlock(b, v, "")
		case *document.Leaf:
			renderLeaf(b, v)
		}
	}
}

func renderListItems(b *strings.Builder, list *document.Node, prefix func(int) string) {
	i := 0
	for _, child := range list.Children {
		item, ok := child.(*document.Node)
		if !ok {
			continue
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		renderBlock(b, item, prefix(i))
		i++
	}
}

func renderLeaf(b *strings.Builder, l *document.Leaf) {
	if l.Marks.InlineMath != "" {
		fmt.Fprintf(b, "$%s$", l.Marks.InlineMath)
		return
	}
	b.WriteString(l.Text)
}
