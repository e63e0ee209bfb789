package editor

import (
	"errors"
	"testing"

	"github.com/scribekit/richtext/internal/command"
	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/selection"
)

func caretAt(path document.Path, offset int) selection.Selection {
	return selection.Caret(selection.NewPoint(path, offset))
}

func rangeSel(sp document.Path, so int, ep document.Path, eo int) selection.Selection {
	return selection.New(selection.NewPoint(sp, so), selection.NewPoint(ep, eo))
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc := s.Document()
	if len(doc.Nodes) != 1 || doc.Nodes[0].Type != document.Paragraph {
		t.Error("fresh session should hold a single empty paragraph")
	}
	if !s.Selection().Collapsed() {
		t.Error("fresh session should start with a caret")
	}
	if s.ReadOnly() {
		t.Error("sessions are writable by default")
	}
	other, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.ID() == other.ID() {
		t.Error("sessions should get distinct IDs")
	}
}

func TestNewSessionLoadsContent(t *testing.T) {
	stored := []byte(`[{"type":"heading-1","children":[{"text":"Doc"}]}]`)
	s, err := New(WithInitialJSON(stored))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Document().Nodes[0].Type != document.Heading1 {
		t.Errorf("loaded type = %s", s.Document().Nodes[0].Type)
	}
	if s.Document().Text() != "Doc" {
		t.Errorf("loaded text = %q", s.Document().Text())
	}
}

func TestNewSessionRejectsGarbage(t *testing.T) {
	if _, err := New(WithInitialJSON([]byte("not json"))); err == nil {
		t.Error("unparseable content should fail session creation")
	}
}

func TestNewSessionNormalizesDamage(t *testing.T) {
	// A stored tree with an unknown type still opens.
	s, err := New(WithInitialJSON([]byte(`[{"type":"widget","children":[{"text":"x"}]}]`)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Document().Validate(); err != nil {
		t.Errorf("loaded document should validate: %v", err)
	}
}

func TestReadOnlySession(t *testing.T) {
	s, err := New(
		WithInitialJSON([]byte(`[{"type":"paragraph","children":[{"text":"locked"}]}]`)),
		WithReadOnly(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sel := rangeSel(document.Path{0, 0}, 0, document.Path{0, 0}, 6)
	if err := s.SetSelection(sel); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}

	mutations := []struct {
		name string
		call func() error
	}{
		{"ToggleMark", func() error { return s.ToggleMark(document.MarkBold) }},
		{"ToggleBlock", func() error { return s.ToggleBlock(document.Heading1) }},
		{"SetAlign", func() error { return s.SetAlign(document.AlignCenter) }},
		{"InsertLink", func() error { return s.InsertLink("https://e.com", "") }},
		{"InsertInlineFormula", func() error { return s.InsertInlineFormula("x^2") }},
		{"InsertBlockFormula", func() error { return s.InsertBlockFormula("x^2") }},
		{"InsertImage", func() error { return s.InsertImage("https://e.com/a.png", "", document.AlignLeft) }},
		{"DeleteSelection", s.DeleteSelection},
	}
	for _, m := range mutations {
		if err := m.call(); !errors.Is(err, ErrReadOnly) {
			t.Errorf("%s error = %v, want ErrReadOnly", m.name, err)
		}
	}
	if s.Document().Text() != "locked" {
		t.Error("read-only document must not change")
	}

	// Queries and Save keep working.
	if s.MarkActive(document.MarkBold) {
		t.Error("query on read-only session should work and report false")
	}
	if _, err := s.Save(); err != nil {
		t.Errorf("Save on read-only session: %v", err)
	}
}

func TestChangeNotification(t *testing.T) {
	var notified [][]byte
	s, err := New(
		WithInitialJSON([]byte(`[{"type":"paragraph","children":[{"text":"hello"}]}]`)),
		WithOnChange(func(data []byte) { notified = append(notified, data) }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetSelection(rangeSel(document.Path{0, 0}, 0, document.Path{0, 0}, 5)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if err := s.ToggleMark(document.MarkBold); err != nil {
		t.Fatalf("ToggleMark: %v", err)
	}
	if len(notified) != 1 {
		t.Fatalf("expected 1 change notification, got %d", len(notified))
	}

	// The payload round-trips to the changed document.
	back, err := document.Decode(notified[0])
	if err != nil {
		t.Fatalf("Decode notification: %v", err)
	}
	if !back.Equal(s.Document()) {
		t.Error("notification payload should match the session document")
	}
}

func TestFailedOperationDoesNotNotify(t *testing.T) {
	calls := 0
	s, err := New(WithOnChange(func([]byte) { calls++ }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.InsertLink("", "text"); !errors.Is(err, command.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if calls != 0 {
		t.Errorf("failed operation produced %d notifications", calls)
	}
}

func TestSetSelectionValidates(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetSelection(caretAt(document.Path{7, 0}, 0)); !errors.Is(err, command.ErrInvalidSelection) {
		t.Errorf("error = %v, want ErrInvalidSelection", err)
	}
}

func TestPendingMarkLifecycle(t *testing.T) {
	s, err := New(WithInitialJSON([]byte(`[{"type":"paragraph","children":[{"text":"word"}]}]`)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetSelection(caretAt(document.Path{0, 0}, 2)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}

	// Toggling at a caret queues the mark without touching the document.
	if err := s.ToggleMark(document.MarkBold); err != nil {
		t.Fatalf("ToggleMark: %v", err)
	}
	if !s.MarkActive(document.MarkBold) {
		t.Error("pending bold should report active")
	}
	leaf, err := s.Document().LeafAt(document.Path{0, 0})
	if err != nil {
		t.Fatalf("LeafAt: %v", err)
	}
	if leaf.Marks.Bold {
		t.Error("document must not change for a pending mark")
	}
	if !s.InsertionMarks().Bold {
		t.Error("insertion marks should carry the pending bold")
	}

	// Toggling again cancels the pending state.
	if err := s.ToggleMark(document.MarkBold); err != nil {
		t.Fatalf("ToggleMark: %v", err)
	}
	if s.MarkActive(document.MarkBold) {
		t.Error("second toggle should cancel the pending mark")
	}

	// Pending state queued again, then dropped when the selection moves.
	if err := s.ToggleMark(document.MarkBold); err != nil {
		t.Fatalf("ToggleMark: %v", err)
	}
	if err := s.SetSelection(caretAt(document.Path{0, 0}, 4)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if s.MarkActive(document.MarkBold) {
		t.Error("moving the caret should drop pending marks")
	}
}

func TestToggleMarkOnRangeMutates(t *testing.T) {
	s, err := New(WithInitialJSON([]byte(`[{"type":"paragraph","children":[{"text":"make it bold"}]}]`)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetSelection(rangeSel(document.Path{0, 0}, 8, document.Path{0, 0}, 12)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if err := s.ToggleMark(document.MarkBold); err != nil {
		t.Fatalf("ToggleMark: %v", err)
	}
	if !s.MarkActive(document.MarkBold) {
		t.Error("range should be bold after the toggle")
	}
	if s.Document().Text() != "make it bold" {
		t.Errorf("text = %q", s.Document().Text())
	}
}

func TestBlockAndAlignQueries(t *testing.T) {
	stored := []byte(`[
		{"type":"bulleted-list","children":[
			{"type":"list-item","children":[{"text":"item"}]}
		]},
		{"type":"paragraph","align":"center","children":[{"text":"p"}]}
	]`)
	s, err := New(WithInitialJSON(stored))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.SetSelection(caretAt(document.Path{0, 0, 0}, 0)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if !s.BlockActive(document.BulletedList) {
		t.Error("list should be active from inside the item")
	}

	if err := s.SetSelection(caretAt(document.Path{1, 0}, 0)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if !s.AlignActive(document.AlignCenter) {
		t.Error("center should be active in the aligned paragraph")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	stored := []byte(`[{"type":"paragraph","children":[{"text":"persist me","bold":true}]}]`)
	s, err := New(WithInitialJSON(stored))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data, err := s.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := document.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !back.Equal(s.Document()) {
		t.Error("saved JSON should round-trip to the same document")
	}
}

func TestDeleteThroughSession(t *testing.T) {
	s, err := New(WithInitialJSON([]byte(`[{"type":"paragraph","children":[{"text":"hello world"}]}]`)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetSelection(rangeSel(document.Path{0, 0}, 5, document.Path{0, 0}, 11)); err != nil {
		t.Fatalf("SetSelection: %v", err)
	}
	if err := s.DeleteSelection(); err != nil {
		t.Fatalf("DeleteSelection: %v", err)
	}
	if s.Document().Text() != "hello" {
		t.Errorf("text = %q", s.Document().Text())
	}
	if !s.Selection().Collapsed() {
		t.Error("delete should collapse the selection")
	}
}
