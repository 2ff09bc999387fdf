package overlay

import (
	"time"

	"github.com/soocke/match-overlay-go/domain/geometry"
)

// Kind classifies a transient overlay window.
type Kind int

const (
	KindSelection Kind = iota
	KindSingleResult
	KindMultiResult
	KindInfoPanel
)

func (k Kind) String() string {
	switch k {
	case KindSelection:
		return "selection"
	case KindSingleResult:
		return "single-result"
	case KindMultiResult:
		return "multi-result"
	case KindInfoPanel:
		return "info-panel"
	default:
		return "unknown"
	}
}

// AnimState tracks the opacity lifecycle of one overlay instance.
type AnimState int

const (
	AnimFadingIn AnimState = iota
	AnimVisible
	AnimFadingOut
	AnimClosed
)

func (a AnimState) String() string {
	switch a {
	case AnimFadingIn:
		return "fading-in"
	case AnimVisible:
		return "visible"
	case AnimFadingOut:
		return "fading-out"
	case AnimClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Side is the preferred placement of an info panel relative to its target.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// Handle is an opaque reference to a platform window owned by a driver.
type Handle any

// WindowDriver performs the actual window-system operations for the manager.
// The production driver speaks Tk; tests substitute a fake.
type WindowDriver interface {
	Create(kind Kind, geom geometry.ScreenRect, title string) (Handle, error)
	SetGeometry(h Handle, geom geometry.ScreenRect)
	SetOpacity(h Handle, alpha float64)
	Destroy(h Handle)
}

// Scheduler arms one-shot callbacks on the UI event queue. The returned
// cancel func disarms a pending callback; cancelling a fired timer is a
// no-op.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// ClosedListener is notified after an overlay finishes its close sequence
// and its id has been released.
type ClosedListener func(id string, kind Kind)
