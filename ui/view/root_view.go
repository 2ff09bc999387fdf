package view

import (
	"image"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/match-overlay-go/config"
	"github.com/soocke/match-overlay-go/ui/model"
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Session SessionStats
	Preview PreviewView

	// Widgets
	StateLabel  *LabelWidget
	RegionLabel *LabelWidget
	ModeSelect  *TComboboxWidget
	AlgoSelect  *TComboboxWidget
}

// Handlers are invoked on user actions wired during Build.
type Handlers struct {
	OnSelectRegion     func()
	OnToggleRealtime   func()
	OnClearOverlays    func()
	OnExit             func()
	OnModeChanged      func(model.Mode)
	OnAlgorithmChanged func(model.AlgorithmMode)
}

// UI abstracts the view operations needed by presenters, decoupling them from
// the concrete RootView.
type UI interface {
	SetStateLabel(text string)
	SetRegionLabel(text string)
	UpdatePreview(img image.Image)
	PreviewReset()
	PreviewSize() (w, h int)
	SetSession(session, total time.Duration)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

var (
	modeValues = []model.Mode{model.ModeImagePair, model.ModeScreenRegion}
	algoValues = []model.AlgorithmMode{model.AlgoTemplate, model.AlgoORB, model.AlgoYOLOORB, model.AlgoYOLO}
)

// Build constructs the layout.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: session stats, state label, buttons frame
	statsRow := Frame()
	Grid(statsRow, Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("0.3m"), Pady("0.3m"))
	rv.Session = NewSessionStats(statsRow, 0, 0)
	rv.StateLabel = Label(Txt("Idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	selectBtn := Button(Txt("Select Region"), Command(h.OnSelectRegion))
	Grid(selectBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	realtimeBtn := Button(Txt("Toggle Realtime"), Command(h.OnToggleRealtime))
	Grid(realtimeBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := Button(Txt("Clear Overlays"), Command(h.OnClearOverlays))
	Grid(clearBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: mode and algorithm selectors plus active region readout.
	modeTitles := make([]string, len(modeValues))
	for i, m := range modeValues {
		modeTitles[i] = m.String()
	}
	rv.ModeSelect = TCombobox(Values(modeTitles), Width(16))
	Grid(rv.ModeSelect, Row(1), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	rv.ModeSelect.Current(0)
	Bind(rv.ModeSelect, "<<ComboboxSelected>>", Command(func() {
		if idx, ok := rv.comboIndex(rv.ModeSelect, len(modeValues)); ok && h.OnModeChanged != nil {
			h.OnModeChanged(modeValues[idx])
		}
	}))

	algoTitles := make([]string, len(algoValues))
	for i, a := range algoValues {
		algoTitles[i] = a.String()
	}
	rv.AlgoSelect = TCombobox(Values(algoTitles), Width(16))
	Grid(rv.AlgoSelect, Row(1), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	rv.AlgoSelect.Current(0)
	Bind(rv.AlgoSelect, "<<ComboboxSelected>>", Command(func() {
		if idx, ok := rv.comboIndex(rv.AlgoSelect, len(algoValues)); ok && h.OnAlgorithmChanged != nil {
			h.OnAlgorithmChanged(algoValues[idx])
		}
	}))

	rv.RegionLabel = Label(Txt("Region: <none>"))
	Grid(rv.RegionLabel, Row(1), Column(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))

	// Row 2: annotated preview
	w, hgt := 640, 360
	if rv.cfg != nil {
		w, hgt = rv.cfg.PreviewWidth, rv.cfg.PreviewHeight
	}
	rv.Preview = NewPreviewView(nil, 2, w, hgt)
}

// comboIndex parses the combobox selection index, logging parse failures.
func (rv *RootView) comboIndex(cb *TComboboxWidget, n int) (int, bool) {
	if cb == nil {
		return 0, false
	}
	idxStr := cb.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= n {
		if rv.logger != nil {
			rv.logger.Error("combobox selection parse error", "value", idxStr, "error", err)
		}
		return 0, false
	}
	return idx, true
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetRegionLabel updates the active capture region readout.
func (rv *RootView) SetRegionLabel(text string) {
	if rv != nil && rv.RegionLabel != nil {
		rv.RegionLabel.Configure(Txt(text))
	}
}

// UpdatePreview proxies a composed frame to the preview view.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Update(img)
	}
}

// PreviewReset clears the preview back to its placeholder.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// PreviewSize reports the preview container size used for composition.
func (rv *RootView) PreviewSize() (int, int) {
	if rv == nil || rv.Preview == nil {
		return 0, 0
	}
	return rv.Preview.ContainerSize()
}

// SetSession updates both session and total detection durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}
