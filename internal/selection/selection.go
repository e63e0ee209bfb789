package selection

import (
	"fmt"

	"github.com/scribekit/richtext/internal/document"
)

// Point is a position in the document: the path of the leaf containing the
// position plus a rune offset within that leaf's text.
type Point struct {
	Path   document.Path
	Offset int
}

// NewPoint creates a point at the given leaf path and offset.
func NewPoint(path document.Path, offset int) Point {
	return Point{Path: path, Offset: offset}
}

// Compare orders points in document order: by path first, then by offset
// within the same leaf. Returns -1 if p < other, 0 if equal, 1 if p > other.
func (p Point) Compare(other Point) int {
	if c := p.Path.Compare(other.Path); c != 0 {
		return c
	}
	switch {
	case p.Offset < other.Offset:
		return -1
	case p.Offset > other.Offset:
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// Equal reports whether two points address the same position.
func (p Point) Equal(other Point) bool {
	return p.Compare(other) == 0
}

// Clone returns a copy of the point with an independent path.
func (p Point) Clone() Point {
	return Point{Path: p.Path.Clone(), Offset: p.Offset}
}

// String returns a human-readable representation like [0 1]:4.
func (p Point) String() string {
	return fmt.Sprintf("%s:%d", p.Path, p.Offset)
}

// Selection is a directional anchor/focus pair. Anchor is where the
// selection started; Focus is where it currently ends (the side that moves
// under shift-extension). Anchor == Focus is a caret.
type Selection struct {
	Anchor Point
	Focus  Point
}

// New creates a selection from anchor to focus.
func New(anchor, focus Point) Selection {
	return Selection{Anchor: anchor, Focus: focus}
}

// Caret creates a collapsed selection at the given point.
func Caret(p Point) Selection {
	return Selection{Anchor: p, Focus: p}
}

// Collapsed returns true if the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Anchor.Equal(s.Focus)
}

// IsForward returns true if the focus is at or after the anchor.
func (s Selection) IsForward() bool {
	return s.Anchor.Compare(s.Focus) <= 0
}

// Normalize returns the directionless range view of the selection, with
// Start at or before End in document order. The selection itself keeps its
// anchor/focus orientation.
func (s Selection) Normalize() Range {
	if s.IsForward() {
		return Range{Start: s.Anchor, End: s.Focus}
	}
	return Range{Start: s.Focus, End: s.Anchor}
}

// Equal reports whether two selections have the same anchor and focus.
func (s Selection) Equal(other Selection) bool {
	return s.Anchor.Equal(other.Anchor) && s.Focus.Equal(other.Focus)
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.Collapsed() {
		return fmt.Sprintf("Caret(%s)", s.Focus)
	}
	return fmt.Sprintf("Selection(%s..%s)", s.Anchor, s.Focus)
}

// Range is the normalized view of a selection: Start at or before End in
// document order.
type Range struct {
	Start Point
	End   Point
}

// Collapsed returns true if the range has no extent.
func (r Range) Collapsed() bool {
	return r.Start.Equal(r.End)
}

// Span returns the path interval the range covers, for restricting
// document traversal.
func (r Range) Span() document.Span {
	return document.Span{Start: r.Start.Path, End: r.End.Path}
}

// OverlapsPath returns true if the subtree at the given path intersects
// the range's path interval.
func (r Range) OverlapsPath(p document.Path) bool {
	return r.Span().Overlaps(p)
}

// Touches returns true if the leaf at path p, with the given text length
// in runes, has a non-empty intersection with the range.
func (r Range) Touches(p document.Path, leafLen int) bool {
	if p.Compare(r.Start.Path) < 0 || p.Compare(r.End.Path) > 0 {
		return false
	}
	if p.Equal(r.Start.Path) && r.Start.Offset >= leafLen && !p.Equal(r.End.Path) {
		return false
	}
	if p.Equal(r.End.Path) && r.End.Offset <= 0 && !p.Equal(r.Start.Path) {
		return false
	}
	if p.Equal(r.Start.Path) && p.Equal(r.End.Path) && r.Start.Offset >= r.End.Offset {
		return false
	}
	return true
}

// FullyCovers returns true if the leaf at path p, with the given text
// length in runes, lies entirely inside the range. Empty leaves at the
// boundaries count as covered only when the boundary offset reaches them.
func (r Range) FullyCovers(p document.Path, leafLen int) bool {
	if p.Compare(r.Start.Path) < 0 || p.Compare(r.End.Path) > 0 {
		return false
	}
	if p.Equal(r.Start.Path) && r.Start.Offset > 0 {
		return false
	}
	if p.Equal(r.End.Path) && r.End.Offset < leafLen {
		return false
	}
	return true
}
