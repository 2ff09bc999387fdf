package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/match-overlay-go/domain/geometry"
	"github.com/soocke/match-overlay-go/domain/selection"
)

// SelectionView is the full-screen capture surface the presenter opens while
// a selection session is active.
type SelectionView interface {
	Open(onPress, onMove, onRelease func(geometry.Point), onCancel func())
	ShowCandidate(r geometry.ScreenRect)
	HideCandidate()
	Close()
	IsOpen() bool
}

// RegionSink receives the committed capture region.
type RegionSink interface {
	SetRegion(rect geometry.ScreenRect)
}

// SelectionStatusView narrows the root view to the labels this presenter touches.
type SelectionStatusView interface {
	SetStateLabel(text string)
	SetRegionLabel(text string)
}

// SelectionPresenter owns the selection session and the lifetime of the
// capture surface. The surface exists exactly while the session is active.
type SelectionPresenter struct {
	session  *selection.Session
	surface  SelectionView
	sink     RegionSink
	status   SelectionStatusView
	store    DetectionReset
	overlays OverlayClearer
	logger   *slog.Logger

	// OnCommitted, when set, runs after the region reached the sink.
	OnCommitted func(rect geometry.ScreenRect)
}

// NewSelectionPresenter builds the presenter together with its session.
// store and overlays hold the previous region's detection residue and are
// cleared when a new selection starts.
func NewSelectionPresenter(surface SelectionView, sink RegionSink, status SelectionStatusView, store DetectionReset, overlays OverlayClearer, logger *slog.Logger) *SelectionPresenter {
	p := &SelectionPresenter{surface: surface, sink: sink, status: status, store: store, overlays: overlays, logger: logger}
	p.session = selection.NewSession(selection.Listeners{
		OnCommit: p.commit,
		OnCancel: p.cancelled,
	}, logger)
	return p
}

// Begin arms a new selection session and opens the capture surface. Records
// and overlays that belong to the outgoing region are dropped. A second
// Begin while a session is active is refused.
func (p *SelectionPresenter) Begin() {
	if p == nil || p.surface == nil {
		return
	}
	if err := p.session.Start(); err != nil {
		if p.logger != nil {
			p.logger.Warn("selection refused", "error", err)
		}
		return
	}
	if p.store != nil {
		p.store.Clear()
	}
	if p.overlays != nil {
		p.overlays.ClearAll()
	}
	p.surface.Open(p.pointerDown, p.pointerMove, p.pointerUp, p.Cancel)
	if p.status != nil {
		p.status.SetStateLabel("Selecting")
	}
}

// Cancel aborts an in-progress session. Safe to call when idle.
func (p *SelectionPresenter) Cancel() {
	if p == nil {
		return
	}
	p.session.Cancel()
}

// Active reports whether a session is in progress.
func (p *SelectionPresenter) Active() bool { return p != nil && p.session.Active() }

func (p *SelectionPresenter) pointerDown(pt geometry.Point) {
	p.session.PointerDown(pt)
}

func (p *SelectionPresenter) pointerMove(pt geometry.Point) {
	p.session.PointerMove(pt)
	if p.session.Current() == selection.StateDragging {
		p.surface.ShowCandidate(p.session.CandidateRect())
	}
}

func (p *SelectionPresenter) pointerUp(pt geometry.Point) {
	p.session.PointerUp(pt)
	// A drag below the commit threshold reverts to Armed; drop the stale
	// rubber band so the next press starts clean.
	if p.session.Active() {
		p.surface.HideCandidate()
	}
}

func (p *SelectionPresenter) commit(rect geometry.ScreenRect) {
	p.surface.Close()
	if p.sink != nil {
		p.sink.SetRegion(rect)
	}
	if p.status != nil {
		p.status.SetStateLabel("Idle")
		p.status.SetRegionLabel(fmt.Sprintf("Region: %.0fx%.0f@%.0f,%.0f", rect.Width, rect.Height, rect.X, rect.Y))
	}
	if p.logger != nil {
		p.logger.Info("region committed", "x", rect.X, "y", rect.Y, "w", rect.Width, "h", rect.Height)
	}
	if p.OnCommitted != nil {
		p.OnCommitted(rect)
	}
}

func (p *SelectionPresenter) cancelled() {
	p.surface.Close()
	if p.status != nil {
		p.status.SetStateLabel("Idle")
	}
	if p.logger != nil {
		p.logger.Info("selection cancelled")
	}
}
