// Package selection represents carets and ranges over the document tree.
//
// A Point is a leaf path plus a rune offset into that leaf's text. A
// Selection is a directional anchor/focus pair of points: collapsed when
// they coincide (a caret), otherwise a range that may cross node
// boundaries. Normalize produces the directionless Range view (start
// before end in document order) without losing which side is the anchor,
// so shift-extension semantics stay with the caller.
package selection
