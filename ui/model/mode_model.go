package model

// Mode selects the matching input source.
type Mode int

const (
	ModeImagePair Mode = iota
	ModeScreenRegion
)

func (m Mode) String() string {
	switch m {
	case ModeImagePair:
		return "image-pair"
	case ModeScreenRegion:
		return "screen-region"
	default:
		return "unknown"
	}
}

// AlgorithmMode selects the matching algorithm run by the external engine.
type AlgorithmMode int

const (
	AlgoTemplate AlgorithmMode = iota
	AlgoORB
	AlgoYOLOORB
	AlgoYOLO
)

func (a AlgorithmMode) String() string {
	switch a {
	case AlgoTemplate:
		return "template"
	case AlgoORB:
		return "orb"
	case AlgoYOLOORB:
		return "yolo+orb"
	case AlgoYOLO:
		return "yolo"
	default:
		return "unknown"
	}
}

// ModeModel holds the current input mode and algorithm mode. No
// synchronization needed: updates occur on the UI thread.
type ModeModel struct {
	mode Mode
	algo AlgorithmMode
}

func NewModeModel() *ModeModel { return &ModeModel{} }

// SetMode stores the input mode and reports whether it changed.
func (m *ModeModel) SetMode(mode Mode) bool {
	if m == nil || m.mode == mode {
		return false
	}
	m.mode = mode
	return true
}

// Mode returns the current input mode.
func (m *ModeModel) Mode() Mode {
	if m == nil {
		return ModeImagePair
	}
	return m.mode
}

// SetAlgorithm stores the algorithm mode and reports whether it changed.
func (m *ModeModel) SetAlgorithm(algo AlgorithmMode) bool {
	if m == nil || m.algo == algo {
		return false
	}
	m.algo = algo
	return true
}

// Algorithm returns the current algorithm mode.
func (m *ModeModel) Algorithm() AlgorithmMode {
	if m == nil {
		return AlgoTemplate
	}
	return m.algo
}
