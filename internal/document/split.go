package document

import "github.com/rivo/uniseg"

// GraphemeClamp snaps a rune offset to the nearest preceding grapheme
// cluster boundary, so splits never land inside a user-perceived character
// (combining sequences, emoji ZWJ sequences, regional indicators).
// Offsets past the end of the text clamp to the text length.
func GraphemeClamp(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	var runes, boundary int
	state := -1
	remaining := text
	for len(remaining) > 0 {
		cluster, rest, _, next := uniseg.StepString(remaining, state)
		clusterRunes := runeCount(cluster)
		if runes+clusterRunes > offset {
			return boundary
		}
		runes += clusterRunes
		boundary = runes
		if runes == offset {
			return boundary
		}
		remaining = rest
		state = next
	}
	return boundary
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// SplitLeaf splits a leaf at the given rune offset, clamped to a grapheme
// boundary, and returns the two halves. Both halves keep the original
// marks. Splitting at or beyond either end returns a nil half:
// (nil, whole) at offset 0, (whole, nil) at the end.
func SplitLeaf(l *Leaf, offset int) (*Leaf, *Leaf) {
	offset = GraphemeClamp(l.Text, offset)
	if offset == 0 {
		return nil, l.Clone()
	}
	if offset >= l.Len() {
		return l.Clone(), nil
	}
	byteAt := RuneIndex(l.Text, offset)
	left := l.Clone()
	right := l.Clone()
	left.Text = l.Text[:byteAt]
	right.Text = l.Text[byteAt:]
	return left, right
}

// RuneIndex returns the byte index of the rune at the given rune offset,
// or len(s) when the offset is at or past the end.
func RuneIndex(s string, offset int) int {
	n := 0
	for i := range s {
		if n == offset {
			return i
		}
		n++
	}
	return len(s)
}
