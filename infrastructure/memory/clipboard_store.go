package memory

import (
	"sync"

	"flowpad/domain/clipboard"
)

// ClipboardStore is the process-wide single clipboard slot with
// last-write-wins semantics and the non-empty validity rule.
//
// Clipboard operations run on the editor's event dispatch path, but the
// store carries its own lock so the slot stays atomic if a second writer is
// ever introduced.
type ClipboardStore struct {
	mu      sync.Mutex
	payload *clipboard.Payload
}

// NewClipboardStore creates an empty store
func NewClipboardStore() *ClipboardStore {
	return &ClipboardStore{}
}

// Store replaces the slot contents wholesale. A payload with zero blocks is
// coerced to absent; the return value reports whether it was accepted.
func (s *ClipboardStore) Store(payload *clipboard.Payload) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.IsEmpty() {
		s.payload = nil
		return false
	}
	s.payload = payload
	return true
}

// Retrieve returns the current payload without clearing it
func (s *ClipboardStore) Retrieve() (*clipboard.Payload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.payload == nil {
		return nil, false
	}
	return s.payload, true
}
