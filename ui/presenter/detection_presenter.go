package presenter

import (
	"image"
	"iter"
	"log/slog"

	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/engine"
	"github.com/soocke/match-overlay-go/ui/images"
	"github.com/soocke/match-overlay-go/ui/render"
)

// BatchDrain supplies raw detection payloads from the worker side. The
// presenter drains it on tick so decoded records only ever touch the store on
// the UI thread.
type BatchDrain interface {
	Batches() <-chan engine.RawBatch
}

// FrameProvider supplies the most recent captured frame.
type FrameProvider interface {
	Running() bool
	LatestFrame() engine.FrameSnapshot
}

// PreviewUI is the slice of the view this presenter draws to.
type PreviewUI interface {
	UpdatePreview(img image.Image)
	PreviewSize() (w, h int)
}

// DetectionPresenter drains incoming detection batches into the store and
// recomposes the annotated preview. Rendering is skipped entirely when
// neither the frame, the store generation, nor the container size changed.
type DetectionPresenter struct {
	Source  BatchDrain
	Frames  FrameProvider
	Store   *detect.Store
	Palette *detect.Palette
	View    PreviewUI
	Opts    render.Options
	logger  *slog.Logger

	// OnBatch runs after a batch was accepted into the store.
	OnBatch func(records []detect.Record, space detect.CaptureSpace)

	lastFrameSeq uint64
	lastGen      uint64
	lastW, lastH int
}

// NewDetectionPresenter constructs a detection presenter.
func NewDetectionPresenter(source BatchDrain, frames FrameProvider, store *detect.Store, palette *detect.Palette, view PreviewUI, opts render.Options, logger *slog.Logger) *DetectionPresenter {
	return &DetectionPresenter{
		Source:  source,
		Frames:  frames,
		Store:   store,
		Palette: palette,
		View:    view,
		Opts:    opts,
		logger:  logger,
	}
}

// ProcessFrame drains pending batches and recomposes the preview if needed.
// Runs on the UI thread, once per update tick.
func (p *DetectionPresenter) ProcessFrame() {
	if p == nil || p.Store == nil || p.View == nil {
		return
	}
	p.drainBatches()
	p.renderIfChanged()
}

// drainBatches applies every pending payload. A malformed batch is rejected
// wholesale; the store keeps its last known good state.
func (p *DetectionPresenter) drainBatches() {
	if p.Source == nil {
		return
	}
	ch := p.Source.Batches()
	if ch == nil {
		return
	}
	for {
		select {
		case raw := <-ch:
			records, err := detect.DecodeBatch(raw.Payload)
			if err != nil {
				if p.logger != nil {
					p.logger.Error("detection batch rejected", "error", err, "bytes", len(raw.Payload))
				}
				continue
			}
			p.Store.ReplaceAll(records, raw.Space)
			if p.OnBatch != nil {
				p.OnBatch(records, raw.Space)
			}
		default:
			return
		}
	}
}

func (p *DetectionPresenter) renderIfChanged() {
	if p.Frames == nil {
		return
	}
	snapshot := p.Frames.LatestFrame()
	w, h := p.View.PreviewSize()
	if w <= 0 || h <= 0 {
		return
	}
	gen := p.Store.Generation()
	if snapshot.Sequence == p.lastFrameSeq && gen == p.lastGen && w == p.lastW && h == p.lastH {
		return
	}
	p.lastFrameSeq = snapshot.Sequence
	p.lastGen = gen
	p.lastW, p.lastH = w, h

	records := p.Store.Records()
	if !p.Store.Consistent() {
		// The batch belongs to a superseded capture space; projecting it
		// would place boxes on unrelated content.
		if p.logger != nil {
			p.logger.Debug("stale capture space, rendering frame without records",
				"batch", p.Store.Space(), "active", p.Store.ActiveSpace())
		}
		records = emptyRecords()
	}
	var base image.Image
	if snapshot.Image != nil {
		// Full-screen regions capture far more pixels than the preview can
		// show; bound them before composition. Twice the container keeps
		// enough detail for the final placement resize.
		base = images.ScaleToFit(snapshot.Image, w*2, h*2)
	}
	frame, _ := render.ComposeFrame(base, w, h, records, p.Palette, p.Opts)
	p.View.UpdatePreview(frame)
}

func emptyRecords() iter.Seq[detect.Record] {
	return func(yield func(detect.Record) bool) {}
}
