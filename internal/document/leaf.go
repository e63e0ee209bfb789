package document

import "unicode/utf8"

// Mark names. Toolbars and the command engine address marks by name.
const (
	MarkBold          = "bold"
	MarkItalic        = "italic"
	MarkUnderline     = "underline"
	MarkStrikethrough = "strikethrough"
	MarkHighlight     = "highlight"
	MarkCode          = "code"
	MarkInlineMath    = "inlineMath"
	MarkLink          = "link"
	MarkColor         = "color"
	MarkBackground    = "backgroundColor"
	MarkFontSize      = "fontSize"
)

// markNames lists every known mark in serialization order.
var markNames = []string{
	MarkBold, MarkItalic, MarkUnderline, MarkStrikethrough,
	MarkHighlight, MarkCode, MarkInlineMath, MarkLink,
	MarkColor, MarkBackground, MarkFontSize,
}

// MarkNames returns the known mark names in serialization order.
// The returned slice must not be modified.
func MarkNames() []string {
	return markNames
}

// ValidMark returns true if name is a known mark name.
func ValidMark(name string) bool {
	for _, m := range markNames {
		if m == name {
			return true
		}
	}
	return false
}

// Marks is the set of formatting attributes on a leaf. Boolean marks are
// independent toggles; valued marks hold a string payload (a URL for links,
// LaTeX source for inline math, CSS values for color and size) and count as
// inactive when empty.
type Marks struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Highlight     bool
	Code          bool
	InlineMath    string
	Link          string
	Color         string
	Background    string
	FontSize      string
}

// Active returns true if the named mark is set. Unknown names are inactive.
func (m Marks) Active(name string) bool {
	switch name {
	case MarkBold:
		return m.Bold
	case MarkItalic:
		return m.Italic
	case MarkUnderline:
		return m.Underline
	case MarkStrikethrough:
		return m.Strikethrough
	case MarkHighlight:
		return m.Highlight
	case MarkCode:
		return m.Code
	case MarkInlineMath:
		return m.InlineMath != ""
	case MarkLink:
		return m.Link != ""
	case MarkColor:
		return m.Color != ""
	case MarkBackground:
		return m.Background != ""
	case MarkFontSize:
		return m.FontSize != ""
	}
	return false
}

// Value returns the payload of a valued mark, or "" for boolean and
// unknown marks.
func (m Marks) Value(name string) string {
	switch name {
	case MarkInlineMath:
		return m.InlineMath
	case MarkLink:
		return m.Link
	case MarkColor:
		return m.Color
	case MarkBackground:
		return m.Background
	case MarkFontSize:
		return m.FontSize
	}
	return ""
}

// With returns a copy of the set with the named mark applied. For boolean
// marks the value is ignored; for valued marks it becomes the payload.
// Unknown names return the set unchanged.
func (m Marks) With(name, value string) Marks {
	switch name {
	case MarkBold:
		m.Bold = true
	case MarkItalic:
		m.Italic = true
	case MarkUnderline:
		m.Underline = true
	case MarkStrikethrough:
		m.Strikethrough = true
	case MarkHighlight:
		m.Highlight = true
	case MarkCode:
		m.Code = true
	case MarkInlineMath:
		m.InlineMath = value
	case MarkLink:
		m.Link = value
	case MarkColor:
		m.Color = value
	case MarkBackground:
		m.Background = value
	case MarkFontSize:
		m.FontSize = value
	}
	return m
}

// Without returns a copy of the set with the named mark cleared.
func (m Marks) Without(name string) Marks {
	switch name {
	case MarkBold:
		m.Bold = false
	case MarkItalic:
		m.Italic = false
	case MarkUnderline:
		m.Underline = false
	case MarkStrikethrough:
		m.Strikethrough = false
	case MarkHighlight:
		m.Highlight = false
	case MarkCode:
		m.Code = false
	case MarkInlineMath:
		m.InlineMath = ""
	case MarkLink:
		m.Link = ""
	case MarkColor:
		m.Color = ""
	case MarkBackground:
		m.Background = ""
	case MarkFontSize:
		m.FontSize = ""
	}
	return m
}

// IsZero returns true if no mark is set.
func (m Marks) IsZero() bool {
	return m == Marks{}
}

// Leaf is a terminal text run carrying formatting marks.
//
// A leaf with InlineMath set renders the formula instead of its text; the
// text is preserved so clearing the mark restores it.
type Leaf struct {
	Text  string
	Marks Marks
}

// NewLeaf creates an unmarked leaf with the given text.
func NewLeaf(text string) *Leaf {
	return &Leaf{Text: text}
}

// Clone returns a copy of the leaf.
func (l *Leaf) Clone() *Leaf {
	c := *l
	return &c
}

// Equal reports whether two leaves have the same text and marks.
func (l *Leaf) Equal(other *Leaf) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.Text == other.Text && l.Marks == other.Marks
}

// Len returns the leaf's text length in runes. Offsets into leaf text are
// rune offsets throughout the editor core.
func (l *Leaf) Len() int {
	return utf8.RuneCountInString(l.Text)
}
