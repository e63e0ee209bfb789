// Package editor provides Session, the narrow interface the host UI holds
// on the editor core.
//
// A session owns exactly one document and selection pair. User-facing
// actions call the session's mutating methods, which delegate to the
// command engine and, on success, adopt the new document and selection and
// hand the re-serialized document to the change listener for persistence.
// Toolbars call the formatting queries on every selection change.
//
// # Usage
//
//	s, err := editor.New(
//	    editor.WithInitialJSON(stored),
//	    editor.WithOnChange(persist),
//	)
//	if err != nil { ... }
//
//	s.SetSelection(sel)
//	if err := s.ToggleMark(document.MarkBold); err != nil { ... }
//	active := s.MarkActive(document.MarkBold)
//
// # Pending marks
//
// Toggling a mark at a collapsed selection does not touch the document;
// it records a pending mark that applies to the next insertion. Pending
// state survives until the selection moves, then clears.
//
// # Read-only mode
//
// A session created with WithReadOnly rejects every mutating method with
// ErrReadOnly; only the queries and Save remain usable. This backs
// review-style views where content is displayed but never edited.
//
// Sessions are not safe for concurrent use. The editing model is
// single-threaded and event-driven: one operation completes before the
// next user event is processed.
package editor
