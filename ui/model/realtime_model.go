package model

import (
	"sync/atomic"
)

// RealtimeModel tracks whether realtime detection is enabled. The zero value
// is disabled and usable. Concurrency-safe via atomic Bool because UI
// callbacks and the engine worker may race on reads.
type RealtimeModel struct{ active atomic.Bool }

// Active reports whether realtime detection is currently running.
func (m *RealtimeModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active.Load()
}

// SetActive stores the active flag.
func (m *RealtimeModel) SetActive(b bool) {
	if m == nil {
		return
	}
	m.active.Store(b)
}
