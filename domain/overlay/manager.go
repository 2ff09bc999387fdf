package overlay

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/match-overlay-go/domain/geometry"
)

// ErrUnknownOverlay is returned for operations on an id that is not live.
var ErrUnknownOverlay = errors.New("unknown overlay id")

// Options tune overlay animation and panel placement.
type Options struct {
	FadeIn    time.Duration // opacity ramp 0 -> 1 on create
	FadeOut   time.Duration // opacity ramp 1 -> 0 on close
	FadeSteps int           // opacity increments per ramp
	PanelGap  float64       // horizontal gap between a target box and its panel
}

// DefaultOptions returns the standard animation timings.
func DefaultOptions() Options {
	return Options{FadeIn: 160 * time.Millisecond, FadeOut: 220 * time.Millisecond, FadeSteps: 8, PanelGap: 12}
}

type instance struct {
	id              string
	kind            Kind
	geom            geometry.ScreenRect
	handle          Handle
	anim            AnimState
	cancelFade      func()
	cancelAutoClose func()
}

// Manager owns the set of transient top-level overlay windows together with
// their timers and fade animations. Instances share no state with each other;
// closing one never disturbs its siblings.
//
// The manager is driven exclusively from the UI event queue: window calls,
// timer callbacks and fade steps all run there, so no locking is needed.
type Manager struct {
	driver     WindowDriver
	sched      Scheduler
	logger     *slog.Logger
	screenSize func() (w, h float64)
	opts       Options
	instances  map[string]*instance
	onClosed   ClosedListener
}

// NewManager wires a manager to its window driver and scheduler. screenSize
// supplies the bounds used for clamping; it is consulted on every placement
// so resolution changes are picked up.
func NewManager(driver WindowDriver, sched Scheduler, screenSize func() (float64, float64), opts Options, logger *slog.Logger) *Manager {
	if opts.FadeSteps <= 0 {
		opts.FadeSteps = DefaultOptions().FadeSteps
	}
	if opts.PanelGap <= 0 {
		opts.PanelGap = DefaultOptions().PanelGap
	}
	return &Manager{
		driver:     driver,
		sched:      sched,
		logger:     logger,
		screenSize: screenSize,
		opts:       opts,
		instances:  make(map[string]*instance),
	}
}

// SetClosedListener registers the single listener notified after each close.
func (m *Manager) SetClosedListener(l ClosedListener) { m.onClosed = l }

// Count returns the number of live instances.
func (m *Manager) Count() int { return len(m.instances) }

// State reports the animation state of a live instance.
func (m *Manager) State(id string) (AnimState, bool) {
	inst, ok := m.instances[id]
	if !ok {
		return AnimClosed, false
	}
	return inst.anim, true
}

// Geometry reports the current geometry of a live instance.
func (m *Manager) Geometry(id string) (geometry.ScreenRect, bool) {
	inst, ok := m.instances[id]
	if !ok {
		return geometry.ScreenRect{}, false
	}
	return inst.geom, true
}

// Create allocates a new overlay window at the clamped geometry and starts
// its fade-in. On driver failure no instance is retained and the error is
// returned to the caller.
func (m *Manager) Create(kind Kind, geom geometry.ScreenRect, title string) (string, error) {
	screenW, screenH := m.screenSize()
	geom = geometry.ClampToScreen(geom, screenW, screenH)
	handle, err := m.driver.Create(kind, geom, title)
	if err != nil {
		return "", fmt.Errorf("create %s overlay: %w", kind, err)
	}
	id := uuid.NewString()
	for m.instances[id] != nil { // uuid collisions are theoretical; ids must stay unique while live
		id = uuid.NewString()
	}
	inst := &instance{id: id, kind: kind, geom: geom, handle: handle, anim: AnimFadingIn}
	m.instances[id] = inst
	if m.logger != nil {
		m.logger.Debug("overlay created", "id", id, "kind", kind.String(), "x", geom.X, "y", geom.Y)
	}
	m.driver.SetOpacity(handle, 0)
	m.fade(inst, m.opts.FadeIn, 0, 1, func() { inst.anim = AnimVisible })
	return id, nil
}

// ScheduleAutoClose arms the one-shot auto-close timer for id. Re-arming
// replaces any prior timer; delays never accumulate. An instance that is
// already fading out is left alone, it is on its way to removal.
func (m *Manager) ScheduleAutoClose(id string, delay time.Duration) error {
	inst, ok := m.instances[id]
	if !ok {
		return ErrUnknownOverlay
	}
	if inst.anim == AnimFadingOut {
		return nil
	}
	if inst.cancelAutoClose != nil {
		inst.cancelAutoClose()
	}
	inst.cancelAutoClose = m.sched.After(delay, func() {
		inst.cancelAutoClose = nil
		_ = m.Close(id)
	})
	return nil
}

// Close runs the fade-out sequence for id and removes the instance when the
// ramp completes. Closing an instance that is already fading out is a no-op;
// siblings are never affected.
func (m *Manager) Close(id string) error {
	inst, ok := m.instances[id]
	if !ok {
		return ErrUnknownOverlay
	}
	if inst.anim == AnimFadingOut {
		return nil
	}
	inst.release()
	inst.anim = AnimFadingOut
	m.fade(inst, m.opts.FadeOut, 1, 0, func() { m.teardown(inst) })
	return nil
}

// CloseAll tears down every live instance immediately, skipping fades. Used
// on application shutdown.
func (m *Manager) CloseAll() {
	for _, inst := range m.instances {
		inst.release()
		if inst.cancelFade != nil {
			inst.cancelFade()
			inst.cancelFade = nil
		}
		m.teardown(inst)
	}
}

// RepositionForTarget places the instance adjacent to targetRect. The
// preferred side is tried first; insufficient horizontal space flips the
// panel to the other side. The result is clamped to the screen.
func (m *Manager) RepositionForTarget(id string, targetRect geometry.ScreenRect, preferred Side) error {
	inst, ok := m.instances[id]
	if !ok {
		return ErrUnknownOverlay
	}
	screenW, screenH := m.screenSize()
	w, h := inst.geom.Width, inst.geom.Height
	right := targetRect.X + targetRect.Width + m.opts.PanelGap
	left := targetRect.X - m.opts.PanelGap - w
	x := right
	switch preferred {
	case SideLeft:
		x = left
		if x < 0 {
			x = right
		}
	default:
		if x+w > screenW {
			x = left
		}
	}
	geom := geometry.ClampToScreen(geometry.ScreenRect{X: x, Y: targetRect.Y, Width: w, Height: h}, screenW, screenH)
	inst.geom = geom
	m.driver.SetGeometry(inst.handle, geom)
	return nil
}

// fade ramps the instance opacity from..to over d using scheduled steps. The
// done callback runs after the final step; a zero duration applies the target
// opacity and completes synchronously.
func (m *Manager) fade(inst *instance, d time.Duration, from, to float64, done func()) {
	if inst.cancelFade != nil {
		inst.cancelFade()
		inst.cancelFade = nil
	}
	steps := m.opts.FadeSteps
	if d <= 0 {
		m.driver.SetOpacity(inst.handle, to)
		done()
		return
	}
	interval := d / time.Duration(steps)
	var step int
	var tick func()
	tick = func() {
		step++
		alpha := from + (to-from)*float64(step)/float64(steps)
		m.driver.SetOpacity(inst.handle, alpha)
		if step >= steps {
			inst.cancelFade = nil
			done()
			return
		}
		inst.cancelFade = m.sched.After(interval, tick)
	}
	inst.cancelFade = m.sched.After(interval, tick)
}

// teardown destroys the window and frees the id. The fade-out has already
// completed (or was skipped); after this no timer references the instance.
func (m *Manager) teardown(inst *instance) {
	inst.anim = AnimClosed
	m.driver.Destroy(inst.handle)
	delete(m.instances, inst.id)
	if m.logger != nil {
		m.logger.Debug("overlay closed", "id", inst.id, "kind", inst.kind.String())
	}
	if m.onClosed != nil {
		m.onClosed(inst.id, inst.kind)
	}
}

// release disarms the auto-close timer if armed.
func (i *instance) release() {
	if i.cancelAutoClose != nil {
		i.cancelAutoClose()
		i.cancelAutoClose = nil
	}
}
