package detect

import "iter"

// Store holds the current detection batch and the capture space it was
// produced against. Batches are replaced wholesale, never merged, so
// consumers can never observe a space/record mismatch mid-update.
//
// No synchronization: the store is mutated and read only from the UI event
// queue. Batches produced on worker goroutines must be marshaled onto that
// queue before they reach the store.
type Store struct {
	records     []Record
	batchSpace  CaptureSpace
	activeSpace CaptureSpace
	generation  uint64
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// ReplaceAll atomically swaps the whole batch together with its capture
// space. The previous batch is dropped regardless of size.
func (s *Store) ReplaceAll(records []Record, space CaptureSpace) {
	if s == nil {
		return
	}
	s.records = records
	s.batchSpace = space
	s.generation++
}

// Clear empties the store, used when a new selection starts or detection
// stops.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	if len(s.records) == 0 && s.batchSpace == (CaptureSpace{}) {
		return
	}
	s.records = nil
	s.batchSpace = CaptureSpace{}
	s.generation++
}

// SetActiveSpace records the capture space of the currently committed region.
// A batch whose space no longer matches is stale and must not be projected.
func (s *Store) SetActiveSpace(space CaptureSpace) {
	if s == nil {
		return
	}
	if s.activeSpace == space {
		return
	}
	s.activeSpace = space
	s.generation++
}

// Consistent reports whether the stored batch was produced against the
// currently active capture space. An empty store is trivially consistent.
func (s *Store) Consistent() bool {
	if s == nil || len(s.records) == 0 {
		return true
	}
	return s.batchSpace == s.activeSpace
}

// Records returns the current batch as a restartable sequence. The sequence
// is bound to the batch present at call time: re-reading it twice in the same
// tick yields identical content until the next ReplaceAll or Clear.
func (s *Store) Records() iter.Seq[Record] {
	var snapshot []Record
	if s != nil {
		snapshot = s.records
	}
	return func(yield func(Record) bool) {
		for _, r := range snapshot {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of records in the current batch.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Space returns the capture space of the current batch.
func (s *Store) Space() CaptureSpace {
	if s == nil {
		return CaptureSpace{}
	}
	return s.batchSpace
}

// ActiveSpace returns the capture space of the committed region.
func (s *Store) ActiveSpace() CaptureSpace {
	if s == nil {
		return CaptureSpace{}
	}
	return s.activeSpace
}

// Generation increments on every mutation; renderers use it to re-render on
// data changes only.
func (s *Store) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.generation
}
