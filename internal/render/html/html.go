// Package html renders documents to HTML for web display and read-only
// views. Output is deterministic: the same document always yields the same
// markup.
package html

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/render"
)

// Renderer maps a document tree to an HTML fragment. The zero value is not
// usable; create one with New.
type Renderer struct {
	log *zap.Logger
}

// New creates an HTML renderer. A nil logger disables logging.
func New(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log}
}

// Render produces an HTML fragment for the whole document. Rendering never
// fails on content: malformed formulas become visible error markers and
// unknown node types use the paragraph rule.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	frag := etree.NewDocument()
	frag.WriteSettings.CanonicalEndTags = true
	for _, n := range doc.Nodes {
		r.renderNode(&frag.Element, n)
	}
	return frag.WriteToString()
}

func (r *Renderer) renderNode(parent *etree.Element, n *document.Node) {
	switch n.Type {
	case document.MathBlock:
		div := parent.CreateElement("div")
		div.CreateAttr("class", "math-block")
		r.renderMath(div, n.Formula)
		return
	case document.Image:
		r.renderImage(parent, n)
		return
	}

	el := parent.CreateElement(blockTag(n.Type))
	if n.Align != document.AlignUnset {
		el.CreateAttr("style", "text-align: "+string(n.Align))
	}
	for _, child := range n.Children {
		switch v := child.(type) {
		case *document.Node:
			r.renderNode(el, v)
		case *document.Leaf:
			r.renderLeaf(el, v)
		}
	}
}

// blockTag maps a node type to its HTML tag. Unknown types render under
// the paragraph rule rather than failing.
func blockTag(t document.NodeType) string {
	switch t {
	case document.Heading1:
		return "h1"
	case document.Heading2:
		return "h2"
	case document.Heading3:
		return "h3"
	case document.BlockQuote:
		return "blockquote"
	case document.BulletedList:
		return "ul"
	case document.NumberedList:
		return "ol"
	case document.ListItem:
		return "li"
	default:
		return "p"
	}
}

func (r *Renderer) renderImage(parent *etree.Element, n *document.Node) {
	fig := parent.CreateElement("figure")
	fig.CreateAttr("class", "image-"+string(imageAlignment(n.ImageAlign)))
	img := fig.CreateElement("img")
	img.CreateAttr("src", n.URL)
	img.CreateAttr("alt", n.Alt)
	if n.Size != nil {
		img.CreateAttr("width", strconv.Itoa(n.Size.Width))
		img.CreateAttr("height", strconv.Itoa(n.Size.Height))
	}
	if n.Caption != "" {
		fig.CreateElement("figcaption").CreateText(n.Caption)
	}
}

// imageAlignment resolves the rendered image alignment; anything but left
// and right centers, so unrecognized stored values degrade gracefully.
func imageAlignment(a document.Alignment) document.Alignment {
	switch a {
	case document.AlignLeft, document.AlignRight:
		return a
	default:
		return document.AlignCenter
	}
}

// renderLeaf wraps the leaf's content in one element per active mark.
// Composition order only affects nesting, not meaning: the link is
// outermost so every other mark styles the anchor text.
func (r *Renderer) renderLeaf(parent *etree.Element, l *document.Leaf) {
	cur := parent
	if l.Marks.Link != "" {
		a := cur.CreateElement("a")
		a.CreateAttr("href", l.Marks.Link)
		a.CreateAttr("target", "_blank")
		a.CreateAttr("rel", "noopener noreferrer")
		cur = a
	}
	if style := inlineStyle(l.Marks); style != "" {
		span := cur.CreateElement("span")
		span.CreateAttr("style", style)
		cur = span
	}
	if l.Marks.Highlight {
		cur = cur.CreateElement("mark")
	}
	if l.Marks.Strikethrough {
		cur = cur.CreateElement("s")
	}
	if l.Marks.Underline {
		cur = cur.CreateElement("u")
	}
	if l.Marks.Italic {
		cur = cur.CreateElement("em")
	}
	if l.Marks.Bold {
		cur = cur.CreateElement("strong")
	}
	if l.Marks.Code {
		cur = cur.CreateElement("code")
	}
	if l.Marks.InlineMath != "" {
		r.renderMath(cur, l.Marks.InlineMath)
		return
	}
	cur.CreateText(l.Text)
}

// renderMath emits a typeset container for valid LaTeX and a visible
// error marker for invalid LaTeX. Both carry the verbatim source so
// nothing is lost to a typo.
func (r *Renderer) renderMath(parent *etree.Element, latex string) {
	span := parent.CreateElement("span")
	if err := render.CheckFormula(latex); err != nil {
		r.log.Warn("formula failed to typeset", zap.String("formula", latex), zap.Error(err))
		span.CreateAttr("class", "math-error")
		span.CreateAttr("title", err.Error())
		span.CreateText(latex)
		return
	}
	span.CreateAttr("class", "math")
	span.CreateAttr("data-latex", latex)
	span.CreateText(latex)
}

func inlineStyle(m document.Marks) string {
	var style string
	if m.Color != "" {
		style += fmt.Sprintf("color: %s;", m.Color)
	}
	if m.Background != "" {
		style += fmt.Sprintf("background-color: %s;", m.Background)
	}
	if m.FontSize != "" {
		style += fmt.Sprintf("font-size: %s;", m.FontSize)
	}
	return style
}
