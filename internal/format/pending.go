package format

import "github.com/scribekit/richtext/internal/document"

// pendingMark is an explicit desired state for one mark.
type pendingMark struct {
	on    bool
	value string
}

// Pending tracks the marks that will apply to the next insertion at a
// collapsed selection. Entries are explicit on/off states layered over the
// caret leaf's marks, so toggling bold off at a caret inside bold text is
// representable. The session clears pending state whenever the selection
// moves.
type Pending struct {
	marks map[string]pendingMark
}

// NewPending creates an empty pending set.
func NewPending() *Pending {
	return &Pending{marks: make(map[string]pendingMark)}
}

// Toggle flips the named mark relative to the given current state. The
// value is the payload for valued marks and ignored for boolean marks.
func (p *Pending) Toggle(name string, currentlyActive bool, value string) {
	if state, ok := p.marks[name]; ok {
		p.marks[name] = pendingMark{on: !state.on, value: value}
		return
	}
	p.marks[name] = pendingMark{on: !currentlyActive, value: value}
}

// Set records an explicit on state with the given payload.
func (p *Pending) Set(name, value string) {
	p.marks[name] = pendingMark{on: true, value: value}
}

// Lookup returns the explicit pending state for a mark, if one is recorded.
func (p *Pending) Lookup(name string) (active bool, ok bool) {
	state, ok := p.marks[name]
	return state.on, ok
}

// Clear drops all pending state.
func (p *Pending) Clear() {
	clear(p.marks)
}

// Empty returns true if no pending state is recorded.
func (p *Pending) Empty() bool {
	return len(p.marks) == 0
}

// Apply layers the pending state over a base mark set, producing the marks
// for the next inserted text.
func (p *Pending) Apply(base document.Marks) document.Marks {
	for name, state := range p.marks {
		if state.on {
			base = base.With(name, state.value)
		} else {
			base = base.Without(name)
		}
	}
	return base
}
