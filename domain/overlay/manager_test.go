package overlay

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/soocke/match-overlay-go/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeWindow records driver calls for one created window.
type fakeWindow struct {
	kind      Kind
	geom      geometry.ScreenRect
	opacity   float64
	destroyed bool
}

type fakeDriver struct {
	windows []*fakeWindow
	failing bool
}

func (d *fakeDriver) Create(kind Kind, geom geometry.ScreenRect, title string) (Handle, error) {
	if d.failing {
		return nil, errors.New("window creation refused")
	}
	w := &fakeWindow{kind: kind, geom: geom, opacity: 1}
	d.windows = append(d.windows, w)
	return w, nil
}

func (d *fakeDriver) SetGeometry(h Handle, geom geometry.ScreenRect) { h.(*fakeWindow).geom = geom }
func (d *fakeDriver) SetOpacity(h Handle, alpha float64)             { h.(*fakeWindow).opacity = alpha }
func (d *fakeDriver) Destroy(h Handle)                               { h.(*fakeWindow).destroyed = true }

// fakeScheduler collects timers and fires them when advanced past their due
// time, mimicking the UI event queue's after-callbacks.
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	due       time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (s *fakeScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := &fakeTimer{due: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward, firing due timers in order, including
// timers armed by fired callbacks.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var next *fakeTimer
		for _, t := range s.timers {
			if t.fired || t.cancelled || t.due > target {
				continue
			}
			if next == nil || t.due < next.due {
				next = t
			}
		}
		if next == nil {
			break
		}
		s.now = next.due
		next.fired = true
		next.fn()
	}
	s.now = target
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

func newTestManager(driver *fakeDriver, sched *fakeScheduler) *Manager {
	return NewManager(driver, sched, func() (float64, float64) { return 1920, 1080 }, DefaultOptions(), discardLogger)
}

func TestManager_CreateFadesInToVisible(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	id, err := m.Create(KindSingleResult, geometry.ScreenRect{X: 10, Y: 10, Width: 200, Height: 100}, "match")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if st, _ := m.State(id); st != AnimFadingIn {
		t.Fatalf("expected fading-in after create, got %v", st)
	}
	if driver.windows[0].opacity != 0 {
		t.Fatalf("fade must start at opacity 0, got %v", driver.windows[0].opacity)
	}
	sched.Advance(time.Second)
	if st, _ := m.State(id); st != AnimVisible {
		t.Fatalf("expected visible after ramp, got %v", st)
	}
	if driver.windows[0].opacity != 1 {
		t.Fatalf("expected full opacity, got %v", driver.windows[0].opacity)
	}
}

func TestManager_CreateFailureLeavesNoState(t *testing.T) {
	driver := &fakeDriver{failing: true}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	if _, err := m.Create(KindMultiResult, geometry.ScreenRect{Width: 50, Height: 50}, ""); err == nil {
		t.Fatalf("expected creation failure")
	}
	if m.Count() != 0 {
		t.Fatalf("failed create must retain no instance, got %d", m.Count())
	}
	if sched.pending() != 0 {
		t.Fatalf("failed create must arm no timers, got %d", sched.pending())
	}
}

func TestManager_CreateClampsGeometry(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	id, err := m.Create(KindSingleResult, geometry.ScreenRect{X: 1900, Y: -40, Width: 300, Height: 200}, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	geom, _ := m.Geometry(id)
	if geom.X != 1620 || geom.Y != 0 {
		t.Fatalf("expected clamped placement (1620,0), got (%v,%v)", geom.X, geom.Y)
	}
}

func TestManager_CloseFadesOutAndFreesID(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	var closed []string
	m.SetClosedListener(func(id string, kind Kind) { closed = append(closed, id) })

	id, _ := m.Create(KindSingleResult, geometry.ScreenRect{Width: 100, Height: 100}, "")
	sched.Advance(time.Second)
	if err := m.Close(id); err != nil {
		t.Fatalf("close: %v", err)
	}
	if st, _ := m.State(id); st != AnimFadingOut {
		t.Fatalf("expected fading-out, got %v", st)
	}
	sched.Advance(time.Second)
	if m.Count() != 0 || !driver.windows[0].destroyed {
		t.Fatalf("expected instance removed and window destroyed")
	}
	if len(closed) != 1 || closed[0] != id {
		t.Fatalf("closed listener not notified for %s: %v", id, closed)
	}
	if err := m.Close(id); !errors.Is(err, ErrUnknownOverlay) {
		t.Fatalf("closing a freed id must fail, got %v", err)
	}
	if sched.pending() != 0 {
		t.Fatalf("dangling timers after close: %d", sched.pending())
	}
}

func TestManager_SiblingsAreIndependent(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	a, _ := m.Create(KindMultiResult, geometry.ScreenRect{X: 0, Y: 0, Width: 80, Height: 40}, "a")
	b, _ := m.Create(KindMultiResult, geometry.ScreenRect{X: 200, Y: 0, Width: 80, Height: 40}, "b")
	if a == b {
		t.Fatalf("ids must be unique")
	}
	sched.Advance(time.Second)
	_ = m.ScheduleAutoClose(b, 5*time.Second)

	if err := m.Close(a); err != nil {
		t.Fatalf("close a: %v", err)
	}
	sched.Advance(time.Second)
	if _, ok := m.State(a); ok {
		t.Fatalf("a should be gone")
	}
	if st, ok := m.State(b); !ok || st != AnimVisible {
		t.Fatalf("closing a must not affect b: ok=%v st=%v", ok, st)
	}
	// b's auto-close timer still fires on schedule.
	sched.Advance(5 * time.Second)
	if m.Count() != 0 {
		t.Fatalf("b should auto-close independently, %d left", m.Count())
	}
}

func TestManager_AutoCloseRearmReplacesTimer(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	id, _ := m.Create(KindSingleResult, geometry.ScreenRect{Width: 50, Height: 50}, "")
	sched.Advance(time.Second)
	_ = m.ScheduleAutoClose(id, 2*time.Second)
	_ = m.ScheduleAutoClose(id, 10*time.Second)

	sched.Advance(3 * time.Second)
	if st, ok := m.State(id); !ok || st != AnimVisible {
		t.Fatalf("replaced timer must not fire early: ok=%v st=%v", ok, st)
	}
	sched.Advance(8 * time.Second)
	sched.Advance(time.Second) // fade-out ramp
	if m.Count() != 0 {
		t.Fatalf("re-armed timer should close the overlay")
	}
}

func TestManager_AutoCloseIgnoredWhileFadingOut(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	id, _ := m.Create(KindSingleResult, geometry.ScreenRect{Width: 50, Height: 50}, "")
	sched.Advance(time.Second)
	if err := m.Close(id); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := m.ScheduleAutoClose(id, 5*time.Second); err != nil {
		t.Fatalf("auto-close during fade-out should be a quiet no-op, got %v", err)
	}
	sched.Advance(time.Second) // fade-out ramp
	if m.Count() != 0 {
		t.Fatalf("overlay should be gone after the ramp, count=%d", m.Count())
	}
	if sched.pending() != 0 {
		t.Fatalf("no timer may outlive the instance, pending=%d", sched.pending())
	}
}

func TestManager_ManyConcurrentInstances(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	ids := make(map[string]bool)
	for i := 0; i < 48; i++ {
		id, err := m.Create(KindMultiResult, geometry.ScreenRect{X: float64(i * 10), Y: 5, Width: 60, Height: 30}, "")
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if ids[id] {
			t.Fatalf("id collision at %d", i)
		}
		ids[id] = true
	}
	if m.Count() != 48 {
		t.Fatalf("expected 48 live instances, got %d", m.Count())
	}
	m.CloseAll()
	if m.Count() != 0 {
		t.Fatalf("CloseAll left %d instances", m.Count())
	}
	if sched.pending() != 0 {
		t.Fatalf("CloseAll left %d armed timers", sched.pending())
	}
	for _, w := range driver.windows {
		if !w.destroyed {
			t.Fatalf("CloseAll left a live window")
		}
	}
}

func TestManager_RepositionPrefersRightFallsBackLeft(t *testing.T) {
	driver := &fakeDriver{}
	sched := &fakeScheduler{}
	m := newTestManager(driver, sched)

	id, _ := m.Create(KindSingleResult, geometry.ScreenRect{Width: 200, Height: 120}, "panel")
	sched.Advance(time.Second)

	// Plenty of room: panel sits to the right of the target with the gap.
	target := geometry.ScreenRect{X: 400, Y: 300, Width: 100, Height: 80}
	if err := m.RepositionForTarget(id, target, SideRight); err != nil {
		t.Fatalf("reposition: %v", err)
	}
	geom, _ := m.Geometry(id)
	if geom.X != 512 || geom.Y != 300 {
		t.Fatalf("expected right-side placement (512,300), got (%v,%v)", geom.X, geom.Y)
	}

	// Target hugging the right edge: panel flips to the left.
	target = geometry.ScreenRect{X: 1800, Y: 300, Width: 100, Height: 80}
	if err := m.RepositionForTarget(id, target, SideRight); err != nil {
		t.Fatalf("reposition: %v", err)
	}
	geom, _ = m.Geometry(id)
	if geom.X != 1588 {
		t.Fatalf("expected left fallback at 1588, got %v", geom.X)
	}
}
