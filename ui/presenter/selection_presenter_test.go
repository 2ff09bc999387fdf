package presenter

import (
	"testing"

	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/geometry"
)

type mockSurface struct {
	opened, closed int
	candidates     []geometry.ScreenRect
	hides          int

	onPress, onMove, onRelease func(geometry.Point)
	onCancel                   func()
}

func (s *mockSurface) Open(onPress, onMove, onRelease func(geometry.Point), onCancel func()) {
	s.opened++
	s.onPress, s.onMove, s.onRelease, s.onCancel = onPress, onMove, onRelease, onCancel
}
func (s *mockSurface) ShowCandidate(r geometry.ScreenRect) { s.candidates = append(s.candidates, r) }
func (s *mockSurface) HideCandidate()                      { s.hides++ }
func (s *mockSurface) Close()                              { s.closed++ }
func (s *mockSurface) IsOpen() bool                        { return s.opened > s.closed }

type mockSink struct {
	rects []geometry.ScreenRect
}

func (s *mockSink) SetRegion(rect geometry.ScreenRect) { s.rects = append(s.rects, rect) }

type mockStatus struct {
	states  []string
	regions []string
}

func (s *mockStatus) SetStateLabel(text string)  { s.states = append(s.states, text) }
func (s *mockStatus) SetRegionLabel(text string) { s.regions = append(s.regions, text) }

func newSelectionFixture() (*SelectionPresenter, *mockSurface, *mockSink, *mockStatus) {
	surface := &mockSurface{}
	sink := &mockSink{}
	status := &mockStatus{}
	return NewSelectionPresenter(surface, sink, status, nil, nil, nil), surface, sink, status
}

func TestSelectionPresenter_CommitFlow(t *testing.T) {
	p, surface, sink, _ := newSelectionFixture()

	p.Begin()
	if surface.opened != 1 || !p.Active() {
		t.Fatalf("begin should open the surface and arm: opened=%d active=%v", surface.opened, p.Active())
	}

	surface.onPress(geometry.Point{X: 50, Y: 50})
	surface.onMove(geometry.Point{X: 250, Y: 150})
	if len(surface.candidates) != 1 {
		t.Fatalf("dragging should show the candidate rect, got %d updates", len(surface.candidates))
	}
	surface.onRelease(geometry.Point{X: 250, Y: 150})

	if surface.closed != 1 || p.Active() {
		t.Fatalf("commit should close the surface and end the session: closed=%d active=%v", surface.closed, p.Active())
	}
	want := geometry.ScreenRect{X: 50, Y: 50, Width: 200, Height: 100}
	if len(sink.rects) != 1 || sink.rects[0] != want {
		t.Fatalf("sink got %v, want [%v]", sink.rects, want)
	}
}

func TestSelectionPresenter_TinyDragStaysArmed(t *testing.T) {
	p, surface, sink, _ := newSelectionFixture()

	p.Begin()
	surface.onPress(geometry.Point{X: 100, Y: 100})
	surface.onMove(geometry.Point{X: 104, Y: 103})
	surface.onRelease(geometry.Point{X: 104, Y: 103})

	if len(sink.rects) != 0 {
		t.Fatalf("tiny drag must not commit, sink got %v", sink.rects)
	}
	if surface.closed != 0 || !p.Active() {
		t.Fatalf("session should revert to armed with the surface still open: closed=%d active=%v", surface.closed, p.Active())
	}
	if surface.hides != 1 {
		t.Fatalf("stale candidate should be hidden after revert, hides=%d", surface.hides)
	}

	// The gesture can be retried on the same surface.
	surface.onPress(geometry.Point{X: 10, Y: 10})
	surface.onRelease(geometry.Point{X: 200, Y: 200})
	if len(sink.rects) != 1 || surface.closed != 1 {
		t.Fatalf("retry should commit: rects=%v closed=%d", sink.rects, surface.closed)
	}
}

func TestSelectionPresenter_CancelClosesSurface(t *testing.T) {
	p, surface, sink, status := newSelectionFixture()

	p.Begin()
	surface.onPress(geometry.Point{X: 5, Y: 5})
	surface.onCancel()

	if surface.closed != 1 || p.Active() {
		t.Fatalf("cancel should close and idle: closed=%d active=%v", surface.closed, p.Active())
	}
	if len(sink.rects) != 0 {
		t.Fatalf("cancel must not commit, sink got %v", sink.rects)
	}
	last := status.states[len(status.states)-1]
	if last != "Idle" {
		t.Fatalf("state label after cancel = %q, want Idle", last)
	}
}

func TestSelectionPresenter_BeginWhileActiveRefused(t *testing.T) {
	p, surface, _, _ := newSelectionFixture()

	p.Begin()
	p.Begin()
	if surface.opened != 1 {
		t.Fatalf("second begin must not open another surface, opened=%d", surface.opened)
	}
}

func TestSelectionPresenter_BeginDropsOutgoingRegionResults(t *testing.T) {
	surface := &mockSurface{}
	store := detect.NewStore()
	overlays := &mockOverlayClearer{}
	p := NewSelectionPresenter(surface, &mockSink{}, &mockStatus{}, store, overlays, nil)

	space := detect.CaptureSpace{Width: 50, Height: 50}
	store.SetActiveSpace(space)
	store.ReplaceAll([]detect.Record{{RelW: 0.5, RelH: 0.5, ClassName: "a"}}, space)

	p.Begin()
	if store.Len() != 0 {
		t.Fatalf("a new selection must start without the old region's records, len=%d", store.Len())
	}
	if overlays.clearAll != 1 {
		t.Fatalf("a new selection must clear the old region's overlays, clearAll=%d", overlays.clearAll)
	}
}
