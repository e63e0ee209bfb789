package document

import (
	"fmt"
	"strings"
)

// Path addresses a tree entry by the sequence of child indices from the
// document root. The empty path addresses the document itself.
type Path []int

// Compare orders paths in document order (pre-order traversal): an ancestor
// sorts before its descendants, and siblings sort by index.
// Returns -1 if p < other, 0 if equal, 1 if p > other.
func (p Path) Compare(other Path) int {
	for i := 0; i < len(p) && i < len(other); i++ {
		if p[i] < other[i] {
			return -1
		}
		if p[i] > other[i] {
			return 1
		}
	}
	if len(p) < len(other) {
		return -1
	}
	if len(p) > len(other) {
		return 1
	}
	return 0
}

// Equal reports whether two paths address the same entry.
func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}

// Before returns true if p comes before other in document order.
func (p Path) Before(other Path) bool {
	return p.Compare(other) < 0
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Parent returns the path of the entry's parent. The parent of a top-level
// entry is the empty path (the document root).
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Last returns the entry's index within its parent, or -1 for the root.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// IsAncestorOf returns true if p is a strict prefix of other.
func (p Path) IsAncestorOf(other Path) bool {
	if len(p) >= len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Child returns the path extended with the given child index.
func (p Path) Child(index int) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = index
	return c
}

// CommonAncestor returns the longest shared prefix of two paths: the path of
// the lowest tree entry containing both.
func CommonAncestor(a, b Path) Path {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var shared int
	for shared < n && a[shared] == b[shared] {
		shared++
	}
	return a[:shared].Clone()
}

// String returns a human-readable representation like [0 2 1].
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
