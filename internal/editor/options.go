package editor

import "go.uber.org/zap"

// Option configures a Session during creation.
type Option func(*Session)

// WithInitialJSON sets the persisted document the session loads. Absent
// or empty content yields a single empty paragraph.
func WithInitialJSON(data []byte) Option {
	return func(s *Session) {
		s.initJSON = data
	}
}

// WithReadOnly creates a read-only session. Mutating methods return
// ErrReadOnly; queries, rendering and Save keep working.
func WithReadOnly() Option {
	return func(s *Session) {
		s.readOnly = true
	}
}

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithOnChange registers the change listener. After every successful
// mutation it receives the updated document serialized to the persisted
// JSON shape, enabling round-trip persistence by the host.
func WithOnChange(fn func(data []byte)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}
