package geometry

import "math"

// Point is a position in logical screen pixels.
type Point struct {
	X float64
	Y float64
}

// ScreenRect is an axis-aligned rectangle in logical screen pixels.
// Width and Height are never negative for rects produced by this package.
type ScreenRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rect has no area.
func (r ScreenRect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// PreviewPlacement is the rectangle within a preview container actually
// occupied by the image after an aspect-preserving fit, excluding the
// letterbox bars. It is derived state and is recomputed on every container
// or image dimension change.
type PreviewPlacement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Zero reports whether the placement carries no displayable image.
func (p PreviewPlacement) Zero() bool { return p.Width <= 0 || p.Height <= 0 }

// AspectFitPlacement scales an image of imageW x imageH to the largest size
// fitting within containerW x containerH while preserving aspect ratio, then
// centers it. A zero image or container dimension yields the zero placement,
// signalling "no image".
func AspectFitPlacement(containerW, containerH, imageW, imageH float64) PreviewPlacement {
	if imageW <= 0 || imageH <= 0 || containerW <= 0 || containerH <= 0 {
		return PreviewPlacement{}
	}
	scale := containerW / imageW
	if s := containerH / imageH; s < scale {
		scale = s
	}
	w := imageW * scale
	h := imageH * scale
	return PreviewPlacement{
		X:      (containerW - w) / 2,
		Y:      (containerH - h) / 2,
		Width:  w,
		Height: h,
	}
}

// ProjectRelative maps a relative box (coordinates normalized to [0,1]
// against the capture region) onto the placement rectangle. Out-of-range
// relative values are projected as-is; validating them is the caller's
// concern, not a geometry error.
func ProjectRelative(relX, relY, relW, relH float64, p PreviewPlacement) ScreenRect {
	return ScreenRect{
		X:      p.X + relX*p.Width,
		Y:      p.Y + relY*p.Height,
		Width:  relW * p.Width,
		Height: relH * p.Height,
	}
}

// ClampToScreen shifts rect so it lies entirely within
// [0,screenW] x [0,screenH] when possible. The rect is never shrunk; on an
// axis where it exceeds the screen it is anchored at 0.
func ClampToScreen(rect ScreenRect, screenW, screenH float64) ScreenRect {
	out := rect
	if out.Width >= screenW {
		out.X = 0
	} else {
		if out.X+out.Width > screenW {
			out.X = screenW - out.Width
		}
		if out.X < 0 {
			out.X = 0
		}
	}
	if out.Height >= screenH {
		out.Y = 0
	} else {
		if out.Y+out.Height > screenH {
			out.Y = screenH - out.Height
		}
		if out.Y < 0 {
			out.Y = 0
		}
	}
	return out
}

// NormalizeDragRect builds the rectangle spanned by two drag points,
// independent of drag direction. Values are rounded to one decimal, the
// granularity the interactive layer reports.
func NormalizeDragRect(p1, p2 Point) ScreenRect {
	return ScreenRect{
		X:      round1(math.Min(p1.X, p2.X)),
		Y:      round1(math.Min(p1.Y, p2.Y)),
		Width:  round1(math.Abs(p2.X - p1.X)),
		Height: round1(math.Abs(p2.Y - p1.Y)),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
