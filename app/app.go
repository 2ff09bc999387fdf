package app

import (
	"fmt"
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/match-overlay-go/config"
	"github.com/soocke/match-overlay-go/ui/model"
	"github.com/soocke/match-overlay-go/ui/presenter"
	"github.com/soocke/match-overlay-go/ui/theme"
	"github.com/soocke/match-overlay-go/ui/view"
)

// tick is the UI update cadence; all presenter work runs on these ticks via
// the Tk event loop.
const tick = 50 * time.Millisecond

// App drives the Tk main window and the periodic update loop.
type App struct {
	c       *AppContainer
	logger  *slog.Logger
	afterID string
}

// NewApp creates the main window and assembles the container.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{logger: logger}
	tk.App.WmTitle(title)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", width, height))
	a.c = BuildContainer(cfg, logger)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	return a
}

// Start builds the view, wires the presenters to user actions and enters the
// Tk main loop. Blocks until the window closes.
func (a *App) Start() {
	theme.InitStyles()
	c := a.c
	c.RootView.Build(view.Handlers{
		OnSelectRegion:   c.Selection.Begin,
		OnToggleRealtime: c.RealtimeP.Toggle,
		OnClearOverlays:  c.Results.ClearAll,
		OnExit:           a.exitHandler,
		OnModeChanged: func(m model.Mode) {
			if c.Mode.SetMode(m) && a.logger != nil {
				a.logger.Info("mode changed", "mode", m.String())
			}
		},
		OnAlgorithmChanged: func(algo model.AlgorithmMode) {
			if c.Mode.SetAlgorithm(algo) && a.logger != nil {
				a.logger.Info("algorithm changed", "algorithm", algo.String())
			}
		},
	})

	c.Loop = presenter.NewLoop(c.SessionP, c.Detection, a.scheduleUpdate)
	a.scheduleUpdate()

	tk.App.Wait()
}

func (a *App) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop
	// thread.
	a.afterID = tk.TclAfter(tick, func() {
		if a.c.Loop != nil {
			a.c.Loop.Tick()
		}
	})
}

// exitHandler tears everything down in dependency order: the in-progress
// gesture first, then the overlay windows, then the capture engine.
func (a *App) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if c := a.c; c != nil {
		c.Selection.Cancel()
		c.Overlays.CloseAll()
		c.Engine.Stop()
	}
	if a.logger != nil {
		a.logger.Info("shutting down")
	}
	tk.Destroy(tk.App)
}
