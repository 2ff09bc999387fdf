package presenter

import (
	"time"

	"github.com/soocke/match-overlay-go/ui/model"
)

// ActiveModel reports whether realtime detection is running.
type ActiveModel interface{ Active() bool }

// SessionView displays formatted session and total durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter feeds detection activity into the session model and pushes
// the resulting durations to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	rt   ActiveModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, rt ActiveModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, rt: rt, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.rt == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.rt.Active(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
