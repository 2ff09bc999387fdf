package engine

import (
	"image"
	"time"

	"github.com/soocke/match-overlay-go/domain/detect"
)

// FrameSnapshot carries the latest capture of the committed region together
// with ordering metadata. Sequence increments per successful capture so
// consumers can skip frames they have already rendered.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises the capture loop for instrumentation.
type Stats struct {
	Captures       uint64
	Skipped        uint64
	AvgCapture     time.Duration
	LastCapture    time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource provides read-only access to captured frames.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// RawBatch is one serialized detection batch from the matching engine,
// together with the capture space its relative coordinates refer to.
type RawBatch struct {
	Payload []byte
	Space   detect.CaptureSpace
}

// BatchSource streams detection batches produced by the external matching
// engine on its own worker context. Consumers must drain the channel from the
// UI event queue before the payload touches any UI state.
type BatchSource interface {
	Batches() <-chan RawBatch
}
