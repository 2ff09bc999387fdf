package detect

import "github.com/lucasb-eyer/go-colorful"

// Palette assigns a stable border color to each detection class. Known
// classes get evenly spaced hues; ids outside the preassigned range fall back
// to golden-angle hue spacing so late-appearing classes stay visually
// distinct. Colors are cached per id.
type Palette struct {
	colors map[int]string
}

const (
	paletteSaturation = 0.8
	paletteValue      = 0.9
	goldenAngle       = 137.508
)

// NewPalette preassigns colors for numClasses classes with evenly distributed
// hues. numClasses <= 0 yields an empty palette that derives every color on
// demand.
func NewPalette(numClasses int) *Palette {
	p := &Palette{colors: make(map[int]string, max(numClasses, 0))}
	for i := 0; i < numClasses; i++ {
		hue := float64(i) / float64(numClasses) * 360
		p.colors[i] = colorful.Hsv(hue, paletteSaturation, paletteValue).Hex()
	}
	return p
}

// ColorFor returns the "#rrggbb" color for a class id, deriving and caching
// one when the id has no preassigned entry.
func (p *Palette) ColorFor(classID int) string {
	if p == nil {
		return fallbackColor(classID)
	}
	if c, ok := p.colors[classID]; ok {
		return c
	}
	c := fallbackColor(classID)
	p.colors[classID] = c
	return c
}

func fallbackColor(classID int) string {
	hue := float64(classID) * goldenAngle
	hue = hue - 360*float64(int(hue/360))
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsv(hue, paletteSaturation, paletteValue).Hex()
}
