// Package term renders documents as a read-only terminal preview. It is
// the read-only mode of the editor core made visible: no command engine,
// no selection tracking, just the renderer on a tcell screen.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/render"
)

// span is a run of styled text within a preview line.
type span struct {
	text  string
	style tcell.Style
}

// line is one terminal row of the preview.
type line struct {
	spans []span
}

// Preview displays a document in the terminal until the user quits with
// q, Escape or Ctrl-C. Arrow keys and paging keys scroll.
type Preview struct {
	screen tcell.Screen
	lines  []line
	top    int
}

// NewPreview creates a preview bound to a new terminal screen.
func NewPreview() (*Preview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return &Preview{screen: screen}, nil
}

// Run lays out the document and enters the event loop. The screen is
// always restored on return.
func (p *Preview) Run(doc *document.Document) error {
	if err := p.screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer p.screen.Fini()

	p.lines = layout(doc)
	p.draw()

	for {
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()
			p.draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				p.scroll(-1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				p.scroll(1)
			case ev.Key() == tcell.KeyPgUp:
				_, h := p.screen.Size()
				p.scroll(-h)
			case ev.Key() == tcell.KeyPgDn:
				_, h := p.screen.Size()
				p.scroll(h)
			case ev.Key() == tcell.KeyHome:
				p.top = 0
				p.draw()
			}
		}
	}
}

func (p *Preview) scroll(delta int) {
	p.top += delta
	if max := len(p.lines) - 1; p.top > max {
		p.top = max
	}
	if p.top < 0 {
		p.top = 0
	}
	p.draw()
}

func (p *Preview) draw() {
	p.screen.Clear()
	_, height := p.screen.Size()
	for row := 0; row < height; row++ {
		idx := p.top + row
		if idx >= len(p.lines) {
			break
		}
		col := 0
		for _, s := range p.lines[idx].spans {
			for _, r := range s.text {
				p.screen.SetContent(col, row, r, nil, s.style)
				col++
			}
		}
	}
	p.screen.Show()
}

// layout flattens the document into styled terminal lines.
func layout(doc *document.Document) []line {
	var lines []line
	for _, n := range doc.Nodes {
		lines = append(lines, blockLines(n, "")...)
	}
	return lines
}

func blockLines(n *document.Node, prefix string) []line {
	switch n.Type {
	case document.MathBlock:
		style := tcell.StyleDefault.Italic(true)
		if render.CheckFormula(n.Formula) != nil {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		return []line{{spans: []span{{text: prefix + "$$ " + n.Formula + " $$", style: style}}}}
	case document.Image:
		text := prefix + "[image: " + n.URL + "]"
		return []line{{spans: []span{{text: text, style: tcell.StyleDefault.Dim(true)}}}}
	case document.BulletedList, document.NumberedList:
		var lines []line
		i := 0
		for _, child := range n.Children {
			item, ok := child.(*document.Node)
			if !ok {
				continue
			}
			marker := "• "
			if n.Type == document.NumberedList {
				marker = fmt.Sprintf("%d. ", i+1)
			}
			lines = append(lines, blockLines(item, prefix+marker)...)
			i++
		}
		return lines
	}

	base := tcell.StyleDefault
	switch n.Type {
	case document.Heading1, document.Heading2, document.Heading3:
		base = base.Bold(true)
	case document.BlockQuote:
		base = base.Dim(true)
		prefix += "> "
	}

	out := line{}
	if prefix != "" {
		out.spans = append(out.spans, span{text: prefix, style: base})
	}
	appendChildSpans(&out, n, base)
	return []line{out}
}

func appendChildSpans(out *line, n *document.Node, base tcell.Style) {
	for _, child := range n.Children {
		switch v := child.(type) {
		case *document.Node:
			appendChildSpans(out, v, base)
		case *document.Leaf:
			out.spans = append(out.spans, leafSpan(v, base))
		}
	}
}

func leafSpan(l *document.Leaf, base tcell.Style) span {
	style := base
	if l.Marks.Bold {
		style = style.Bold(true)
	}
	if l.Marks.Italic {
		style = style.Italic(true)
	}
	if l.Marks.Underline || l.Marks.Link != "" {
		style = style.Underline(true)
	}
	if l.Marks.Strikethrough {
		style = style.StrikeThrough(true)
	}
	if l.Marks.Highlight {
		style = style.Reverse(true)
	}
	text := l.Text
	if l.Marks.InlineMath != "" {
		text = "$" + l.Marks.InlineMath + "$"
		style = style.Italic(true)
		if render.CheckFormula(l.Marks.InlineMath) != nil {
			style = style.Foreground(tcell.ColorRed)
		}
	}
	return span{text: text, style: style}
}
