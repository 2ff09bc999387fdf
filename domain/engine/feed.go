package engine

import "github.com/soocke/match-overlay-go/domain/detect"

// BatchFeed is the hand-off point for detection payloads produced off the UI
// thread. Publishers never block: when the buffer is full the oldest batch is
// dropped, since only the newest detections matter.
type BatchFeed struct {
	ch chan RawBatch
}

// NewBatchFeed returns a feed with the given buffer size (minimum 1).
func NewBatchFeed(buf int) *BatchFeed {
	if buf < 1 {
		buf = 1
	}
	return &BatchFeed{ch: make(chan RawBatch, buf)}
}

// Batches exposes the receive side for the UI tick to drain.
func (f *BatchFeed) Batches() <-chan RawBatch {
	if f == nil {
		return nil
	}
	return f.ch
}

// Publish enqueues a payload, evicting the oldest pending batch if needed.
func (f *BatchFeed) Publish(payload []byte, space detect.CaptureSpace) {
	if f == nil {
		return
	}
	batch := RawBatch{Payload: payload, Space: space}
	select {
	case f.ch <- batch:
		return
	default:
	}
	select {
	case <-f.ch:
	default:
	}
	select {
	case f.ch <- batch:
	default:
	}
}
