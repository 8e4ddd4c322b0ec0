package memory

import (
	"time"
)

// Checkpoint is a single change notification recorded by the history log
type Checkpoint struct {
	Label    string
	Modified bool
	At       time.Time
}

// HistoryLog records change checkpoints emitted by the scene. The editor's
// undo stack consumes these; here they are retained for inspection.
type HistoryLog struct {
	entries []Checkpoint
}

// NewHistoryLog creates an empty history log
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

// Checkpoint appends a change notification
func (h *HistoryLog) Checkpoint(label string, modified bool) {
	h.entries = append(h.entries, Checkpoint{
		Label:    label,
		Modified: modified,
		At:       time.Now(),
	})
}

// Entries returns a copy of all recorded checkpoints
func (h *HistoryLog) Entries() []Checkpoint {
	entries := make([]Checkpoint, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Len returns the number of recorded checkpoints
func (h *HistoryLog) Len() int {
	return len(h.entries)
}

// Last returns the most recent checkpoint
func (h *HistoryLog) Last() (Checkpoint, bool) {
	if len(h.entries) == 0 {
		return Checkpoint{}, false
	}
	return h.entries[len(h.entries)-1], true
}
