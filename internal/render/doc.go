// Package render holds the pieces shared by the document renderers: the
// LaTeX syntax checker and the presentation contract they all follow.
//
// Renderers are deterministic, pure mappings from a document to an output
// form. They never fail on content: malformed formulas render as a visible
// error indicator carrying the original source, and unknown node types fall
// back to the paragraph rule. A bad formula can make a render pass log a
// warning, never lose content or crash.
//
// Concrete renderers live in subpackages:
//
//   - render/html: HTML export for web display and persistence round-trips
//   - render/text: plain-text extraction
//   - render/term: read-only terminal preview
package render
