package view

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/soocke/match-overlay-go/domain/geometry"
	"github.com/soocke/match-overlay-go/domain/overlay"
	"github.com/soocke/match-overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// transparentKey is the color key punched out of box-style overlay windows so
// only the border chrome stays visible over the screen content underneath.
const transparentKey = "#008080"

// TkWindowDriver realizes overlay windows as borderless always-on-top Tk
// toplevels. Box kinds (selection, single/multi result) render a colored
// frame with a transparent interior; info panels render as solid cards.
type TkWindowDriver struct {
	BorderPx int
	Logger   *slog.Logger
}

type overlayWindow struct {
	win *ToplevelWidget
}

var _ overlay.WindowDriver = (*TkWindowDriver)(nil)

func (d *TkWindowDriver) Create(kind overlay.Kind, geom geometry.ScreenRect, title string) (h overlay.Handle, err error) {
	// Tk reports failures by panicking; surface them as errors so the
	// manager can decline the instance cleanly.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tk overlay create: %v", r)
		}
	}()
	border := d.BorderPx
	if border <= 0 {
		border = 3
	}
	win := App.Toplevel(Borderwidth(0))
	win.WmTitle("")
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmGeometry(win.Window, geomString(geom))

	switch kind {
	case overlay.KindInfoPanel:
		win.Configure(Background(theme.PanelBg))
		lbl := win.Label(Txt(title), Background(theme.PanelBg), Foreground(theme.PanelText), Anchor("w"))
		Grid(lbl, Row(0), Column(0), Sticky("nw"), Padx("2m"), Pady("1.5m"))
	default:
		borderColor := boxBorderColor(kind)
		win.Configure(Background(borderColor))
		WmAttributes(win.Window, "-transparentcolor", transparentKey)
		GridRowConfigure(win.Window, 1, Weight(1))
		GridColumnConfigure(win.Window, 0, Weight(1))
		if title != "" {
			lbl := win.Label(Txt(title), Background(borderColor), Foreground("white"))
			Grid(lbl, Row(0), Column(0), Sticky("w"), Padx("1m"))
		}
		center := win.Frame(Background(transparentKey))
		Grid(center, Row(1), Column(0), Sticky("nsew"),
			Padx(fmt.Sprintf("%d", border)), Pady(fmt.Sprintf("%d", border)))
	}
	return &overlayWindow{win: win}, nil
}

func (d *TkWindowDriver) SetGeometry(h overlay.Handle, geom geometry.ScreenRect) {
	if w, ok := h.(*overlayWindow); ok && w.win != nil {
		WmGeometry(w.win.Window, geomString(geom))
	}
}

func (d *TkWindowDriver) SetOpacity(h overlay.Handle, alpha float64) {
	if w, ok := h.(*overlayWindow); ok && w.win != nil {
		WmAttributes(w.win.Window, "-alpha", alpha)
	}
}

func (d *TkWindowDriver) Destroy(h overlay.Handle) {
	w, ok := h.(*overlayWindow)
	if !ok || w.win == nil {
		return
	}
	func() {
		// The window may already be gone on shutdown.
		defer func() { _ = recover() }()
		Destroy(w.win)
	}()
	w.win = nil
}

func boxBorderColor(kind overlay.Kind) string {
	if kind == overlay.KindSelection {
		return theme.DragRectColor
	}
	return theme.OverlayFallback
}

// geomString formats a rect as a Tk geometry string "WxH+X+Y".
func geomString(r geometry.ScreenRect) string {
	w := int(math.Round(r.Width))
	h := int(math.Round(r.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return fmt.Sprintf("%dx%d%+d%+d", w, h, int(math.Round(r.X)), int(math.Round(r.Y)))
}

// TkScheduler arms one-shot callbacks on the Tk event loop via `after`.
type TkScheduler struct{}

var _ overlay.Scheduler = (*TkScheduler)(nil)

func (TkScheduler) After(d time.Duration, fn func()) (cancel func()) {
	id := TclAfter(d, fn)
	return func() { TclAfterCancel(id) }
}
