package selection

import (
	"errors"
	"log/slog"

	"github.com/soocke/match-overlay-go/domain/geometry"
)

// State enumerates the phases of one drag-to-select gesture.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// minCommitSize is the drag size (exclusive, logical pixels) below which a
// release is treated as noise rather than a valid selection.
const minCommitSize = 10

// ErrAlreadySelecting is returned by Start while a session is active.
var ErrAlreadySelecting = errors.New("selection session already active")

// Listeners receive the session outcome. Both callbacks run synchronously on
// the UI event queue, the only context that drives the session.
type Listeners struct {
	OnCommit func(geometry.ScreenRect)
	OnCancel func()
}

// Session drives a single interactive drag-to-select gesture over the full
// screen. At most one session is active at a time; Start rejects reentry.
// All methods must be called from the UI event queue. The zero value is idle
// but NewSession should be used so listeners and logging are wired.
type Session struct {
	state     State
	start     geometry.Point
	current   geometry.ScreenRect
	listeners Listeners
	logger    *slog.Logger
}

// NewSession returns an idle session.
func NewSession(listeners Listeners, logger *slog.Logger) *Session {
	return &Session{listeners: listeners, logger: logger}
}

// Current returns the session state.
func (s *Session) Current() State {
	if s == nil {
		return StateIdle
	}
	return s.state
}

// Active reports whether a gesture is in progress (armed or dragging).
func (s *Session) Active() bool { return s.Current() != StateIdle }

// CandidateRect returns the rectangle of the in-progress drag. The zero rect
// is returned outside of the dragging state.
func (s *Session) CandidateRect() geometry.ScreenRect {
	if s == nil || s.state != StateDragging {
		return geometry.ScreenRect{}
	}
	return s.current
}

// Start arms the session. While another session is active the call fails
// fast with ErrAlreadySelecting and the active session is untouched.
func (s *Session) Start() error {
	if s == nil {
		return ErrAlreadySelecting
	}
	if s.state != StateIdle {
		return ErrAlreadySelecting
	}
	s.state = StateArmed
	if s.logger != nil {
		s.logger.Debug("selection armed")
	}
	return nil
}

// PointerDown begins the drag at p. Ignored unless armed.
func (s *Session) PointerDown(p geometry.Point) {
	if s == nil || s.state != StateArmed {
		return
	}
	s.start = p
	s.current = geometry.NormalizeDragRect(p, p)
	s.state = StateDragging
}

// PointerMove recomputes the candidate rectangle. Ignored unless dragging.
func (s *Session) PointerMove(p geometry.Point) {
	if s == nil || s.state != StateDragging {
		return
	}
	s.current = geometry.NormalizeDragRect(s.start, p)
}

// PointerUp ends the drag at p. A drag larger than the minimum threshold on
// both axes commits and the session returns to idle; a smaller drag is
// discarded silently and the session reverts to armed.
func (s *Session) PointerUp(p geometry.Point) {
	if s == nil || s.state != StateDragging {
		return
	}
	rect := geometry.NormalizeDragRect(s.start, p)
	if rect.Width <= minCommitSize || rect.Height <= minCommitSize {
		// Tiny drags are noise, not 1x1 selections.
		s.current = geometry.ScreenRect{}
		s.state = StateArmed
		if s.logger != nil {
			s.logger.Debug("selection below threshold discarded", "width", rect.Width, "height", rect.Height)
		}
		return
	}
	s.state = StateIdle
	s.current = geometry.ScreenRect{}
	if s.logger != nil {
		s.logger.Info("selection committed", "x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)
	}
	if s.listeners.OnCommit != nil {
		s.listeners.OnCommit(rect)
	}
}

// Cancel aborts the gesture from any non-idle state, emitting a cancellation
// event. Idle sessions ignore the call.
func (s *Session) Cancel() {
	if s == nil || s.state == StateIdle {
		return
	}
	s.state = StateIdle
	s.current = geometry.ScreenRect{}
	if s.logger != nil {
		s.logger.Debug("selection cancelled")
	}
	if s.listeners.OnCancel != nil {
		s.listeners.OnCancel()
	}
}
