package presenter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/geometry"
	"github.com/soocke/match-overlay-go/domain/overlay"
)

// OverlayPort narrows the overlay manager to what this presenter drives.
type OverlayPort interface {
	Create(kind overlay.Kind, geom geometry.ScreenRect, title string) (string, error)
	ScheduleAutoClose(id string, delay time.Duration) error
	RepositionForTarget(id string, target geometry.ScreenRect, preferred overlay.Side) error
	Close(id string) error
	CloseAll()
}

// RegionProvider reports the committed capture region the records are
// relative to.
type RegionProvider interface {
	Region() (geometry.ScreenRect, bool)
}

// ResultsPresenter promotes accepted detection batches to on-screen overlay
// windows: one titled box for a single match, boxes plus an adjacent info
// panel for several. Every overlay auto-closes after the configured delay.
type ResultsPresenter struct {
	port    OverlayPort
	region  RegionProvider
	logger  *slog.Logger
	autoCl  time.Duration
	minGap  time.Duration
	panelW  float64
	panelH  float64
	liveIDs []string
	lastAt  time.Time
	now     func() time.Time
}

// NewResultsPresenter wires the presenter to the overlay manager. minGap
// throttles overlay promotion: batches arriving faster than the realtime
// interval update the preview but leave the screen overlays in place.
func NewResultsPresenter(port OverlayPort, region RegionProvider, autoClose, minGap time.Duration, panelW, panelH float64, logger *slog.Logger) *ResultsPresenter {
	return &ResultsPresenter{port: port, region: region, logger: logger, autoCl: autoClose, minGap: minGap, panelW: panelW, panelH: panelH, now: time.Now}
}

// ShowBatch replaces the current result overlays with ones for records.
// An empty batch just clears.
func (p *ResultsPresenter) ShowBatch(records []detect.Record, space detect.CaptureSpace) {
	if p == nil || p.port == nil {
		return
	}
	if p.minGap > 0 && p.now != nil {
		t := p.now()
		if t.Sub(p.lastAt) < p.minGap {
			return
		}
		p.lastAt = t
	}
	p.clearLive()
	if len(records) == 0 {
		return
	}
	region, ok := geometry.ScreenRect{}, false
	if p.region != nil {
		region, ok = p.region.Region()
	}
	if !ok {
		// Without a committed region the relative records have no screen
		// anchor to project onto.
		if p.logger != nil {
			p.logger.Debug("batch without committed region, no overlays shown", "records", len(records))
		}
		return
	}

	if len(records) == 1 {
		rec := records[0]
		p.create(overlay.KindSingleResult, rec.ScreenRect(region),
			fmt.Sprintf("%s %.3f", rec.ClassName, rec.Confidence))
		return
	}

	best := records[0]
	for _, rec := range records {
		if rec.Confidence > best.Confidence {
			best = rec
		}
		p.create(overlay.KindMultiResult, rec.ScreenRect(region), "")
	}
	panelID := p.create(overlay.KindInfoPanel,
		geometry.ScreenRect{Width: p.panelW, Height: p.panelH},
		fmt.Sprintf("%d matches\nbest %s %.3f", len(records), best.ClassName, best.Confidence))
	if panelID != "" {
		if err := p.port.RepositionForTarget(panelID, best.ScreenRect(region), overlay.SideRight); err != nil && p.logger != nil {
			p.logger.Warn("panel placement failed", "error", err)
		}
	}
}

// ClearAll closes every overlay, including ones already fading.
func (p *ResultsPresenter) ClearAll() {
	if p == nil || p.port == nil {
		return
	}
	p.port.CloseAll()
	p.liveIDs = p.liveIDs[:0]
}

func (p *ResultsPresenter) create(kind overlay.Kind, geom geometry.ScreenRect, title string) string {
	id, err := p.port.Create(kind, geom, title)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("overlay creation failed", "kind", kind.String(), "error", err)
		}
		return ""
	}
	p.liveIDs = append(p.liveIDs, id)
	if p.autoCl > 0 {
		_ = p.port.ScheduleAutoClose(id, p.autoCl)
	}
	return id
}

// clearLive closes overlays from the previous batch. Ids that already
// auto-closed report ErrUnknownOverlay, which is expected here.
func (p *ResultsPresenter) clearLive() {
	for _, id := range p.liveIDs {
		_ = p.port.Close(id)
	}
	p.liveIDs = p.liveIDs[:0]
}
