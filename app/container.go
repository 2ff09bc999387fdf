package app

import (
	"log/slog"
	"time"

	"github.com/soocke/match-overlay-go/config"
	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/engine"
	"github.com/soocke/match-overlay-go/domain/geometry"
	"github.com/soocke/match-overlay-go/domain/overlay"
	"github.com/soocke/match-overlay-go/platform"
	"github.com/soocke/match-overlay-go/ui/model"
	"github.com/soocke/match-overlay-go/ui/presenter"
	"github.com/soocke/match-overlay-go/ui/render"
	"github.com/soocke/match-overlay-go/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root
// view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	// Models
	Mode     *model.ModeModel
	Realtime *model.RealtimeModel
	Session  *model.SessionModel

	// Domain
	Store    *detect.Store
	Palette  *detect.Palette
	Engine   engine.Client
	Feed     *engine.BatchFeed
	Overlays *overlay.Manager

	// View
	RootView *view.RootView
	UI       view.UI

	// Presenters
	Selection *presenter.SelectionPresenter
	RealtimeP *presenter.RealtimePresenter
	SessionP  *presenter.SessionPresenter
	Detection *presenter.DetectionPresenter
	Results   *presenter.ResultsPresenter
	Loop      *presenter.Loop
}

// regionSink forwards a committed selection to the capture engine and marks
// the new active capture space, invalidating batches from the old region.
type regionSink struct {
	engine engine.Client
	store  *detect.Store
}

func (s regionSink) SetRegion(rect geometry.ScreenRect) {
	s.engine.SetRegion(rect)
	s.store.SetActiveSpace(detect.CaptureSpace{Width: rect.Width, Height: rect.Height})
}

// BuildContainer constructs all components. Widgets are not created here;
// the root view builds them once Tk is running.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}

	c.Mode = model.NewModeModel()
	c.Realtime = &model.RealtimeModel{}
	c.Session = model.NewSessionModel()

	c.Store = detect.NewStore()
	c.Palette = detect.NewPalette(0)
	c.Engine = engine.NewClient(logger, engine.GrabRegion, time.Duration(cfg.CaptureIntervalMs)*time.Millisecond)
	c.Feed = engine.NewBatchFeed(4)

	screenSize := func() (float64, float64) {
		w, h := platform.ScreenSize()
		return float64(w), float64(h)
	}
	c.Overlays = overlay.NewManager(&view.TkWindowDriver{BorderPx: cfg.OverlayBorderPx, Logger: logger}, view.TkScheduler{}, screenSize, overlay.Options{
		FadeIn:    time.Duration(cfg.FadeInMs) * time.Millisecond,
		FadeOut:   time.Duration(cfg.FadeOutMs) * time.Millisecond,
		FadeSteps: cfg.FadeSteps,
		PanelGap:  float64(cfg.PanelGapPx),
	}, logger)
	c.Overlays.SetClosedListener(func(id string, kind overlay.Kind) {
		if logger != nil {
			logger.Debug("overlay closed", "id", id, "kind", kind.String())
		}
	})

	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	// Panel dimensions are configured in logical pixels; scale them for the
	// actual display.
	scale := platform.DPIScale()
	c.Results = presenter.NewResultsPresenter(c.Overlays, c.Engine,
		time.Duration(cfg.AutoCloseMs)*time.Millisecond,
		time.Duration(cfg.RealtimeIntervalMs)*time.Millisecond,
		float64(cfg.PanelWidthPx)*scale, float64(cfg.PanelHeightPx)*scale, logger)

	surface := view.NewSelectionSurface(platform.CursorPos, platform.ScreenSize, logger)
	c.Selection = presenter.NewSelectionPresenter(surface, regionSink{engine: c.Engine, store: c.Store}, c.RootView, c.Store, c.Results, logger)
	c.Selection.OnCommitted = func(rect geometry.ScreenRect) {
		if logger == nil {
			return
		}
		// The serialized rect is what the external matching engine receives.
		logger.Info("region payload", "rect", string(detect.EncodeRect(rect)))
		cx := int(rect.X + rect.Width/2)
		cy := int(rect.Y + rect.Height/2)
		if info, err := platform.ResolveWindowAtScreenPoint(cx, cy); err == nil {
			logger.Info("region targets window", "title", info.Title, "x", cx, "y", cy)
		}
	}
	c.RealtimeP = presenter.NewRealtimePresenter(c.Realtime, c.Engine, c.RootView, c.Store, c.Results)
	c.SessionP = presenter.NewSessionPresenter(c.Session, c.Realtime, c.RootView)
	c.Detection = presenter.NewDetectionPresenter(c.Feed, c.Engine, c.Store, c.Palette, c.RootView, render.DefaultOptions(), logger)
	c.Detection.OnBatch = c.Results.ShowBatch

	// Loop is wired by the app once the Tk scheduler callback exists.
	return c
}
