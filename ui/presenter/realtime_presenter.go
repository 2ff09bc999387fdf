package presenter

// RealtimeModel provides active-state access.
type RealtimeModel interface {
	Active() bool
	SetActive(bool)
}

// EngineLifecycle narrows what the presenter needs from the capture engine.
type EngineLifecycle interface {
	Start()
	Stop()
}

// RealtimeView updates UI elements affected by toggling realtime detection.
type RealtimeView interface {
	SetStateLabel(text string)
	PreviewReset()
}

// DetectionReset drops the accumulated detection records.
type DetectionReset interface {
	Clear()
}

// OverlayClearer removes every live result overlay.
type OverlayClearer interface {
	ClearAll()
}

// RealtimePresenter owns presentation logic for toggling realtime detection.
type RealtimePresenter struct {
	model    RealtimeModel
	engine   EngineLifecycle
	view     RealtimeView
	store    DetectionReset
	overlays OverlayClearer
}

func NewRealtimePresenter(model RealtimeModel, engine EngineLifecycle, view RealtimeView, store DetectionReset, overlays OverlayClearer) *RealtimePresenter {
	return &RealtimePresenter{model: model, engine: engine, view: view, store: store, overlays: overlays}
}

// Enable starts the capture engine and marks the model active. Records and
// overlays left by a previous session are dropped first. Idempotent.
func (p *RealtimePresenter) Enable() {
	if p == nil || p.model == nil || p.engine == nil || p.view == nil {
		return
	}
	if p.model.Active() { // already enabled
		return
	}
	p.clearSession()
	p.engine.Start()
	p.model.SetActive(true)
	p.view.SetStateLabel("Detecting")
}

// Disable stops the capture engine, clears the session's records and
// overlays and resets the preview. Idempotent.
func (p *RealtimePresenter) Disable() {
	if p == nil || p.model == nil || p.engine == nil || p.view == nil {
		return
	}
	if !p.model.Active() { // already disabled
		return
	}
	p.engine.Stop()
	p.model.SetActive(false)
	p.clearSession()
	p.view.PreviewReset()
	p.view.SetStateLabel("Idle")
}

func (p *RealtimePresenter) clearSession() {
	if p.store != nil {
		p.store.Clear()
	}
	if p.overlays != nil {
		p.overlays.ClearAll()
	}
}

// Toggle flips the active state delegating to Enable/Disable.
func (p *RealtimePresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Active() {
		p.Disable()
		return
	}
	p.Enable()
}
