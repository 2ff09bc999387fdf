// Package render composes detection boxes, labels and markers over a
// letterboxed preview image. Composition is pure: pixels in, pixels out, no
// widget state, so the geometry behavior is testable without a display.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/geometry"
	"github.com/soocke/match-overlay-go/ui/images"
)

// Options tune frame composition.
type Options struct {
	Background color.RGBA // letterbox bar color
	BorderPx   int        // detection box border thickness
	MarkerPx   int        // half-size of the center marker cross
}

// DefaultOptions returns the standard composition settings.
func DefaultOptions() Options {
	return Options{
		Background: color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
		BorderPx:   2,
		MarkerPx:   4,
	}
}

var labelFace = basicfont.Face7x13

// ComposeFrame renders the preview container: the base image aspect-fitted
// and centered, letterbox bars filled with the background color, and every
// record projected onto the image placement with a bordered box, a
// "class: NN.N%" label and a center marker. A nil base yields a bare
// background frame and the zero placement.
func ComposeFrame(base image.Image, containerW, containerH int, records iter.Seq[detect.Record], palette *detect.Palette, opts Options) (*image.RGBA, geometry.PreviewPlacement) {
	if containerW < 1 {
		containerW = 1
	}
	if containerH < 1 {
		containerH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, containerW, containerH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	var placement geometry.PreviewPlacement
	if base != nil {
		b := base.Bounds()
		placement = geometry.AspectFitPlacement(float64(containerW), float64(containerH), float64(b.Dx()), float64(b.Dy()))
	}
	if placement.Zero() {
		return dst, placement
	}

	w := int(math.Round(placement.Width))
	h := int(math.Round(placement.Height))
	x := int(math.Round(placement.X))
	y := int(math.Round(placement.Y))
	scaled := images.ResizeExact(base, w, h)
	if scaled != nil {
		draw.Draw(dst, image.Rect(x, y, x+w, y+h), scaled, scaled.Bounds().Min, draw.Src)
	}

	if records != nil {
		for rec := range records {
			drawRecord(dst, rec, placement, palette, opts)
		}
	}
	return dst, placement
}

func drawRecord(dst *image.RGBA, rec detect.Record, placement geometry.PreviewPlacement, palette *detect.Palette, opts Options) {
	box := geometry.ProjectRelative(rec.RelX, rec.RelY, rec.RelW, rec.RelH, placement)
	col := recordColor(rec, palette)
	border := opts.BorderPx
	if border < 1 {
		border = 1
	}
	x0 := int(math.Round(box.X))
	y0 := int(math.Round(box.Y))
	x1 := int(math.Round(box.X + box.Width))
	y1 := int(math.Round(box.Y + box.Height))
	drawBorder(dst, x0, y0, x1, y1, border, col)
	drawCenterMarker(dst, (x0+x1)/2, (y0+y1)/2, opts.MarkerPx, col)

	label := fmt.Sprintf("%s: %.1f%%", rec.ClassName, rec.Confidence*100)
	labelH := labelFace.Height + 2
	labelY := y0 - labelH
	if labelY < int(math.Round(placement.Y)) {
		// Not enough vertical space above the box: tuck the label inside
		// its top edge.
		labelY = y0 + border
	}
	drawLabel(dst, x0, labelY, label, col)
}

// drawBorder draws a rectangle outline of the given thickness growing inward.
func drawBorder(dst *image.RGBA, x0, y0, x1, y1, thickness int, col color.RGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(x0, y0, x1, y0+thickness), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(x0, y1-thickness, x1, y1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(x0, y0, x0+thickness, y1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(x1-thickness, y0, x1, y1), u, image.Point{}, draw.Src)
}

func drawCenterMarker(dst *image.RGBA, cx, cy, half int, col color.RGBA) {
	if half < 1 {
		half = 1
	}
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(cx-half, cy, cx+half+1, cy+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(cx, cy-half, cx+1, cy+half+1), u, image.Point{}, draw.Src)
}

func drawLabel(dst *image.RGBA, x, y int, text string, bg color.RGBA) {
	w := font.MeasureString(labelFace, text).Ceil() + 4
	h := labelFace.Height + 2
	draw.Draw(dst, image.Rect(x, y, x+w, y+h), image.NewUniform(bg), image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelTextColor(bg)),
		Face: labelFace,
		Dot:  fixed.P(x+2, y+labelFace.Ascent),
	}
	d.DrawString(text)
}

// labelTextColor picks black or white text for contrast against the label
// background.
func labelTextColor(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 150 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func recordColor(rec detect.Record, palette *detect.Palette) color.RGBA {
	hex := rec.BorderColor
	if hex == "" {
		hex = palette.ColorFor(rec.ClassID)
	}
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return color.RGBA{R: 0xff, A: 0xff}
}

// parseHexColor parses "#rrggbb"; the boundary codec guarantees the format
// for engine-supplied colors but palette misconfiguration still falls back
// to red.
func parseHexColor(hex string) (color.RGBA, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, false
	}
	val, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 0xff}, true
}
