package detect

import "github.com/soocke/match-overlay-go/domain/geometry"

// CaptureSpace is the reference frame of the region that was captured. All
// relative detection coordinates in a batch are expressed against the space
// that was active when the batch was produced.
type CaptureSpace struct {
	Width  float64
	Height float64
}

// Zero reports whether the space carries no usable dimensions.
func (s CaptureSpace) Zero() bool { return s.Width <= 0 || s.Height <= 0 }

// Record is one detection box in capture-region space. Relative fields are
// normalized to [0,1] against the CaptureSpace of the batch; BorderColor is a
// "#rrggbb" string, either supplied explicitly by the engine or derived from
// ClassID via the palette.
type Record struct {
	RelX        float64
	RelY        float64
	RelW        float64
	RelH        float64
	Confidence  float64
	ClassName   string
	ClassID     int
	BorderColor string
}

// ScreenRect places the record on screen given the committed capture region,
// for standalone overlay windows positioned in raw screen space.
func (r Record) ScreenRect(region geometry.ScreenRect) geometry.ScreenRect {
	return geometry.ScreenRect{
		X:      region.X + r.RelX*region.Width,
		Y:      region.Y + r.RelY*region.Height,
		Width:  r.RelW * region.Width,
		Height: r.RelH * region.Height,
	}
}
