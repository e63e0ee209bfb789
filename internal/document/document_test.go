package document

import (
	"errors"
	"testing"
)

// sampleDoc builds a small mixed document:
//
//	[0] paragraph  [0 0] "hello " [0 1] "world" (bold)
//	[1] bulleted-list
//	      [1 0] list-item [1 0 0] "first"
//	      [1 1] list-item [1 1 0] "second"
//	[2] math-block "x^2"
func sampleDoc() *Document {
	bold := NewLeaf("world")
	bold.Marks.Bold = true
	return FromNodes(
		NewBlock(Paragraph, NewLeaf("hello "), bold),
		NewBlock(BulletedList,
			NewBlock(ListItem, NewLeaf("first")),
			NewBlock(ListItem, NewLeaf("second")),
		),
		NewMathBlock("x^2"),
	)
}

func TestNewDocument(t *testing.T) {
	d := New()
	if len(d.Nodes) != 1 {
		t.Fatalf("expected 1 block, got %d", len(d.Nodes))
	}
	if d.Nodes[0].Type != Paragraph {
		t.Errorf("expected paragraph, got %s", d.Nodes[0].Type)
	}
	if d.Text() != "" {
		t.Errorf("new document should have no text, got %q", d.Text())
	}
}

func TestDocumentText(t *testing.T) {
	d := sampleDoc()
	want := "hello world\nfirstsecond\n"
	if got := d.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestDocumentCloneEqual(t *testing.T) {
	d := sampleDoc()
	c := d.Clone()
	if !d.Equal(c) {
		t.Fatal("clone should equal original")
	}
	leaf, err := c.LeafAt(Path{0, 0})
	if err != nil {
		t.Fatalf("LeafAt: %v", err)
	}
	leaf.Text = "changed "
	if d.Equal(c) {
		t.Error("mutating the clone should not affect the original")
	}
	if orig, _ := d.LeafAt(Path{0, 0}); orig.Text != "hello " {
		t.Errorf("original leaf changed to %q", orig.Text)
	}
}

func TestGet(t *testing.T) {
	d := sampleDoc()

	c, err := d.Get(Path{1, 0, 0})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	leaf, ok := c.(*Leaf)
	if !ok {
		t.Fatalf("expected leaf at [1 0 0], got %T", c)
	}
	if leaf.Text != "first" {
		t.Errorf("expected %q, got %q", "first", leaf.Text)
	}
}

func TestGetErrors(t *testing.T) {
	d := sampleDoc()
	bad := []Path{
		{},           // empty
		{5},          // out of range
		{0, 9},       // child out of range
		{0, 0, 0},    // descends into a leaf
		{-1},         // negative
		{1, 0, 0, 0}, // past a leaf in a list
	}
	for _, p := range bad {
		if _, err := d.Get(p); !errors.Is(err, ErrPathNotFound) {
			t.Errorf("Get(%s) error = %v, want ErrPathNotFound", p, err)
		}
	}
}

func TestNodeAtLeafAt(t *testing.T) {
	d := sampleDoc()

	n, err := d.NodeAt(Path{1})
	if err != nil {
		t.Fatalf("NodeAt: %v", err)
	}
	if n.Type != BulletedList {
		t.Errorf("expected bulleted-list, got %s", n.Type)
	}

	if _, err := d.NodeAt(Path{0, 0}); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("NodeAt on a leaf should fail, got %v", err)
	}
	if _, err := d.LeafAt(Path{1}); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("LeafAt on a node should fail, got %v", err)
	}
}

func TestParentOf(t *testing.T) {
	d := sampleDoc()

	parent, err := d.ParentOf(Path{1, 0})
	if err != nil {
		t.Fatalf("ParentOf: %v", err)
	}
	if parent.Type != BulletedList {
		t.Errorf("expected bulleted-list parent, got %s", parent.Type)
	}

	root, err := d.ParentOf(Path{0})
	if err != nil {
		t.Fatalf("ParentOf top-level: %v", err)
	}
	if root != nil {
		t.Error("parent of a top-level node should be the nil root")
	}
}

func TestEntriesOrder(t *testing.T) {
	d := sampleDoc()
	var paths []string
	for p := range d.Entries(nil, nil) {
		paths = append(paths, p.String())
	}
	want := []string{
		"[0]", "[0 0]", "[0 1]",
		"[1]", "[1 0]", "[1 0 0]", "[1 1]", "[1 1 0]",
		"[2]", "[2 0]",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("entry %d = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestEntriesSpan(t *testing.T) {
	d := sampleDoc()
	span := &Span{Start: Path{1, 0, 0}, End: Path{1, 1, 0}}
	var leaves []string
	for _, l := range d.Leaves(span) {
		leaves = append(leaves, l.Text)
	}
	if len(leaves) != 2 || leaves[0] != "first" || leaves[1] != "second" {
		t.Errorf("span leaves = %v, want [first second]", leaves)
	}
}

func TestEntriesEarlyStop(t *testing.T) {
	d := sampleDoc()
	count := 0
	for range d.Entries(nil, nil) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected iteration to stop at 3, got %d", count)
	}
}

func TestPathOf(t *testing.T) {
	d := sampleDoc()
	leaf, err := d.LeafAt(Path{1, 1, 0})
	if err != nil {
		t.Fatalf("LeafAt: %v", err)
	}
	p, ok := d.PathOf(leaf)
	if !ok {
		t.Fatal("PathOf should find the leaf")
	}
	if !p.Equal(Path{1, 1, 0}) {
		t.Errorf("PathOf = %s, want [1 1 0]", p)
	}

	if _, ok := d.PathOf(NewLeaf("stranger")); ok {
		t.Error("PathOf should not find a foreign leaf")
	}
}

func TestFirstLeaf(t *testing.T) {
	d := sampleDoc()
	p, err := d.FirstLeaf(Path{1})
	if err != nil {
		t.Fatalf("FirstLeaf: %v", err)
	}
	if !p.Equal(Path{1, 0, 0}) {
		t.Errorf("FirstLeaf = %s, want [1 0 0]", p)
	}
}

func TestSpanOverlaps(t *testing.T) {
	span := Span{Start: Path{1, 0}, End: Path{2, 1}}
	tests := []struct {
		p    Path
		want bool
	}{
		{Path{0}, false},
		{Path{1}, true}, // ancestor of the start
		{Path{1, 0}, true},
		{Path{1, 5}, true},
		{Path{2}, true},
		{Path{2, 1}, true},
		{Path{2, 2}, false},
		{Path{3}, false},
	}
	for _, tt := range tests {
		if got := span.Overlaps(tt.p); got != tt.want {
			t.Errorf("Overlaps(%s) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := sampleDoc().Validate(); err != nil {
		t.Errorf("sample document should validate, got %v", err)
	}

	bad := FromNodes(&Node{Type: "banner", Children: []Child{NewLeaf("x")}})
	if err := bad.Validate(); !errors.Is(err, ErrInvariant) {
		t.Errorf("unknown type should violate invariants, got %v", err)
	}

	empty := FromNodes(&Node{Type: Paragraph})
	if err := empty.Validate(); !errors.Is(err, ErrInvariant) {
		t.Errorf("childless node should violate invariants, got %v", err)
	}

	list := FromNodes(NewBlock(BulletedList, NewLeaf("loose text")))
	if err := list.Validate(); !errors.Is(err, ErrInvariant) {
		t.Errorf("list with non-item child should violate invariants, got %v", err)
	}

	item := FromNodes(NewBlock(BulletedList,
		NewBlock(ListItem, NewBlock(Paragraph, NewLeaf("x")))))
	if err := item.Validate(); !errors.Is(err, ErrInvariant) {
		t.Errorf("list-item with non-list node child should violate invariants, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	d := FromNodes(&Node{Type: "banner"})
	d.Normalize()
	if err := d.Validate(); err != nil {
		t.Fatalf("normalized document should validate, got %v", err)
	}
	if d.Nodes[0].Type != Paragraph {
		t.Errorf("unknown type should become paragraph, got %s", d.Nodes[0].Type)
	}
	if len(d.Nodes[0].Children) != 1 {
		t.Errorf("childless node should gain a placeholder leaf")
	}

	empty := &Document{}
	empty.Normalize()
	if len(empty.Nodes) != 1 || empty.Nodes[0].Type != Paragraph {
		t.Error("empty document should normalize to a single paragraph")
	}
}

func TestNodeCloneDeep(t *testing.T) {
	n := NewImage("https://e.com/a.png", "alt", AlignLeft)
	n.Size = &ImageSize{Width: 100, Height: 50}
	c := n.Clone()
	c.Size.Width = 999
	if n.Size.Width != 100 {
		t.Error("Clone should copy the image size")
	}
}

func TestMarksWithWithout(t *testing.T) {
	var m Marks
	m = m.With(MarkBold, "")
	if !m.Active(MarkBold) {
		t.Error("bold should be active after With")
	}
	m = m.With(MarkLink, "https://e.com")
	if m.Value(MarkLink) != "https://e.com" {
		t.Errorf("link value = %q", m.Value(MarkLink))
	}
	m = m.Without(MarkBold).Without(MarkLink)
	if !m.IsZero() {
		t.Errorf("marks should be zero after Without, got %+v", m)
	}
}

func TestValidMark(t *testing.T) {
	if !ValidMark(MarkBold) || !ValidMark(MarkFontSize) {
		t.Error("known marks should be valid")
	}
	if ValidMark("blink") {
		t.Error("unknown mark should be invalid")
	}
}

func TestLeafLen(t *testing.T) {
	if got := NewLeaf("h\u00e9llo").Len(); got != 5 {
		t.Errorf("Len() = %d, want 5 (runes, not bytes)", got)
	}
}
