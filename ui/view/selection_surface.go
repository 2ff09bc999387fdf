package view

import (
	"fmt"
	"log/slog"

	"github.com/soocke/match-overlay-go/domain/geometry"
	"github.com/soocke/match-overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SelectionSurface is the full-screen translucent window that captures
// pointer input while a region selection is in progress. A separate
// border-only toplevel tracks the candidate rectangle during the drag.
//
// At most one surface exists at a time; the selection presenter opens it when
// the session arms and closes it on commit or cancel.
type SelectionSurface interface {
	Open(onPress, onMove, onRelease func(geometry.Point), onCancel func())
	ShowCandidate(r geometry.ScreenRect)
	HideCandidate()
	Close()
	IsOpen() bool
}

// CursorPosFunc reports the pointer position in screen pixels. The Tk button
// callbacks carry no coordinates, so the surface asks the platform directly.
type CursorPosFunc func() (x, y int, err error)

type selectionSurface struct {
	logger     *slog.Logger
	cursorPos  CursorPosFunc
	screenSize func() (w, h int)

	win  *ToplevelWidget
	band *ToplevelWidget
}

// NewSelectionSurface wires a surface to its platform inputs.
func NewSelectionSurface(cursorPos CursorPosFunc, screenSize func() (int, int), logger *slog.Logger) SelectionSurface {
	return &selectionSurface{logger: logger, cursorPos: cursorPos, screenSize: screenSize}
}

func (s *selectionSurface) Open(onPress, onMove, onRelease func(geometry.Point), onCancel func()) {
	if s == nil || s.win != nil {
		return
	}
	screenW, screenH := 1920, 1080
	if s.screenSize != nil {
		screenW, screenH = s.screenSize()
	}
	win := App.Toplevel(Borderwidth(0), Background(theme.SelectionTint))
	win.WmTitle("")
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+0+0", screenW, screenH))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-alpha", 0.25)
	s.win = win

	Bind(win, "<ButtonPress-1>", Command(func() { s.emit(onPress) }))
	Bind(win, "<B1-Motion>", Command(func() { s.emit(onMove) }))
	Bind(win, "<ButtonRelease-1>", Command(func() { s.emit(onRelease) }))
	Bind(win, "<Escape>", Command(func() {
		if onCancel != nil {
			onCancel()
		}
	}))
}

// emit resolves the pointer position and forwards it to fn.
func (s *selectionSurface) emit(fn func(geometry.Point)) {
	if fn == nil || s.cursorPos == nil {
		return
	}
	x, y, err := s.cursorPos()
	if err != nil {
		if s.logger != nil {
			s.logger.Error("cursor position", "error", err)
		}
		return
	}
	fn(geometry.Point{X: float64(x), Y: float64(y)})
}

func (s *selectionSurface) ShowCandidate(r geometry.ScreenRect) {
	if s == nil || s.win == nil {
		return
	}
	if r.Width < 1 || r.Height < 1 {
		s.HideCandidate()
		return
	}
	if s.band == nil {
		band := App.Toplevel(Borderwidth(0), Background(theme.DragRectColor))
		band.WmTitle("")
		WmAttributes(band.Window, "-topmost", 1)
		WmAttributes(band.Window, "-toolwindow", true)
		WmAttributes(band.Window, "-transparentcolor", transparentKey)
		GridRowConfigure(band.Window, 0, Weight(1))
		GridColumnConfigure(band.Window, 0, Weight(1))
		center := band.Frame(Background(transparentKey))
		Grid(center, Row(0), Column(0), Sticky("nsew"), Padx("2"), Pady("2"))
		s.band = band
	}
	WmGeometry(s.band.Window, geomString(r))
}

func (s *selectionSurface) HideCandidate() {
	if s == nil || s.band == nil {
		return
	}
	func() { defer func() { _ = recover() }(); Destroy(s.band) }()
	s.band = nil
}

func (s *selectionSurface) Close() {
	if s == nil {
		return
	}
	s.HideCandidate()
	if s.win != nil {
		func() { defer func() { _ = recover() }(); Destroy(s.win) }()
		s.win = nil
	}
}

func (s *selectionSurface) IsOpen() bool { return s != nil && s.win != nil }
