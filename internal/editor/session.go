package editor

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scribekit/richtext/internal/command"
	"github.com/scribekit/richtext/internal/document"
	"github.com/scribekit/richtext/internal/format"
	"github.com/scribekit/richtext/internal/selection"
)

// Session is the host UI's handle on one open document. It owns the
// document and selection pair, routes mutations through the command
// engine, and notifies the host after each successful change.
type Session struct {
	id       uuid.UUID
	doc      *document.Document
	sel      selection.Selection
	pending  *format.Pending
	readOnly bool
	onChange func([]byte)
	log      *zap.Logger
	initJSON []byte
}

// New creates a session. Without WithInitialJSON the document is a single
// empty paragraph with the caret at its start. Initial content is
// normalized on load so externally stored trees with structural damage
// still open.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:      uuid.New(),
		pending: format.NewPending(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := document.Decode(s.initJSON)
	if err != nil {
		return nil, fmt.Errorf("editor: load initial content: %w", err)
	}
	s.doc = doc.Normalize()

	caretPath, err := s.doc.FirstLeaf(document.Path{0})
	if err != nil {
		return nil, fmt.Errorf("editor: place initial caret: %w", err)
	}
	s.sel = selection.Caret(selection.NewPoint(caretPath, 0))

	s.log.Debug("session created",
		zap.String("session", s.id.String()),
		zap.Bool("readOnly", s.readOnly),
		zap.Int("blocks", len(s.doc.Nodes)))
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// ReadOnly returns true if the session rejects mutations.
func (s *Session) ReadOnly() bool {
	return s.readOnly
}

// Document returns the current document. The host owns it; the session
// replaces it wholesale on every mutation and never mutates it in place.
func (s *Session) Document() *document.Document {
	return s.doc
}

// Selection returns the current selection.
func (s *Session) Selection() selection.Selection {
	return s.sel
}

// SetSelection moves the selection. Pending marks are dropped: they only
// survive until the caret leaves the position they were queued at.
func (s *Session) SetSelection(sel selection.Selection) error {
	if err := command.Validate(s.doc, sel); err != nil {
		return err
	}
	if !s.sel.Equal(sel) {
		s.pending.Clear()
	}
	s.sel = sel
	return nil
}

// Save serializes the current document to the persisted JSON shape.
func (s *Session) Save() ([]byte, error) {
	return document.Encode(s.doc)
}

// MarkActive reports the mark state the toolbar should show, taking
// pending marks into account at a collapsed selection.
func (s *Session) MarkActive(mark string) bool {
	return format.MarkActiveWithPending(s.doc, s.sel, mark, s.pending)
}

// BlockActive reports whether the given block type is active at the
// selection.
func (s *Session) BlockActive(t document.NodeType) bool {
	return format.BlockActive(s.doc, s.sel, t)
}

// AlignActive reports whether the given alignment is active at the
// selection.
func (s *Session) AlignActive(a document.Alignment) bool {
	return format.AlignActive(s.doc, s.sel, a)
}

// InsertionMarks returns the marks the next typed character would carry:
// the caret leaf's marks with pending state layered on top.
func (s *Session) InsertionMarks() document.Marks {
	var base document.Marks
	if leaf, err := s.doc.LeafAt(s.sel.Focus.Path); err == nil {
		base = leaf.Marks
	}
	return s.pending.Apply(base)
}

// ToggleMark toggles a formatting mark across the selection. At a
// collapsed selection it toggles the pending state for the next insertion
// instead of touching the document.
func (s *Session) ToggleMark(mark string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if s.sel.Collapsed() {
		if !document.ValidMark(mark) {
			return fmt.Errorf("%w: unknown mark %q", command.ErrInvalidInput, mark)
		}
		s.pending.Toggle(mark, format.MarkActiveWithPending(s.doc, s.sel, mark, s.pending), "")
		return nil
	}
	return s.apply(func() (*document.Document, selection.Selection, error) {
		return command.ToggleMark(s.doc, s.sel, mark)
	})
}

// ToggleBlock converts the selected blocks to the given type, or back to
// paragraph when already active.
func (s *Session) ToggleBlock(t document.NodeType) error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.ToggleBlock(s.doc, s.sel, t)
	})
}

// SetAlign sets the alignment of the selected blocks.
func (s *Session) SetAlign(a document.Alignment) error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.SetAlign(s.doc, s.sel, a)
	})
}

// InsertLink links the selection to a URL, or inserts a linked leaf at a
// caret.
func (s *Session) InsertLink(url, displayText string) error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.InsertLink(s.doc, s.sel, url, displayText)
	})
}

// InsertInlineFormula embeds inline math at the selection.
func (s *Session) InsertInlineFormula(latex string) error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.InsertInlineFormula(s.doc, s.sel, latex)
	})
}

// InsertBlockFormula inserts a math block after the current block.
func (s *Session) InsertBlockFormula(latex string) error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.InsertBlockFormula(s.doc, s.sel, latex)
	})
}

// InsertImage inserts an image after the current block.
func (s *Session) InsertImage(url, alt string, align document.Alignment) error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.InsertImage(s.doc, s.sel, url, alt, align)
	})
}

// DeleteSelection removes the selected content.
func (s *Session) DeleteSelection() error {
	return s.applyIfWritable(func() (*document.Document, selection.Selection, error) {
		return command.DeleteSelection(s.doc, s.sel)
	})
}

func (s *Session) applyIfWritable(op func() (*document.Document, selection.Selection, error)) error {
	if s.readOnly {
		return ErrReadOnly
	}
	return s.apply(op)
}

// apply runs one command engine operation and, on success, adopts its
// result and notifies the change listener. A failed operation leaves the
// session exactly as it was.
func (s *Session) apply(op func() (*document.Document, selection.Selection, error)) error {
	doc, sel, err := op()
	if err != nil {
		s.log.Debug("operation rejected", zap.String("session", s.id.String()), zap.Error(err))
		return err
	}
	if doc == s.doc {
		// Nothing-to-do result; no change to publish.
		return nil
	}
	s.doc = doc
	s.sel = sel
	s.pending.Clear()

	if s.onChange != nil {
		data, err := document.Encode(s.doc)
		if err != nil {
			s.log.Error("serialize changed document", zap.String("session", s.id.String()), zap.Error(err))
			return nil
		}
		s.onChange(data)
	}
	return nil
}
