package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick/ProcessFrame on the sub-presenters and invokes a scheduler
// callback to re-arm the next tick. The zero value is usable (methods are
// nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Detect   *DetectionPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, detect *DetectionPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Detect: detect, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Detect != nil {
		l.Detect.ProcessFrame()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
