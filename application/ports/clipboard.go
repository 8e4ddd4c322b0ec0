package ports

import (
	"time"

	"flowpad/domain/clipboard"
)

// ClipboardStore holds at most one payload for the editor session.
type ClipboardStore interface {
	// Store replaces the slot contents. A payload with zero blocks is
	// coerced to absent. The return value reports whether the payload was
	// accepted.
	Store(payload *clipboard.Payload) bool

	// Retrieve returns the current payload without clearing it, so paste is
	// repeatable without re-copying.
	Retrieve() (*clipboard.Payload, bool)
}

// MetricsRecorder receives clipboard operation telemetry
type MetricsRecorder interface {
	RecordClipboardOperation(operation string, duration time.Duration, err error)
	RecordPaste(nodes, links int)
}
