package geometry

import (
	"math"
	"testing"
)

func TestNormalizeDragRect_DirectionIndependent(t *testing.T) {
	cases := []struct {
		p1, p2 Point
	}{
		{Point{50, 50}, Point{250, 150}},
		{Point{250, 150}, Point{50, 50}},
		{Point{250, 50}, Point{50, 150}},
		{Point{50, 150}, Point{250, 50}},
	}
	want := ScreenRect{X: 50, Y: 50, Width: 200, Height: 100}
	for _, c := range cases {
		got := NormalizeDragRect(c.p1, c.p2)
		if got != want {
			t.Fatalf("NormalizeDragRect(%v,%v) = %+v, want %+v", c.p1, c.p2, got, want)
		}
	}
}

func TestNormalizeDragRect_NonNegativeDims(t *testing.T) {
	pts := []Point{{0, 0}, {-13.4, 9.1}, {1919.9, 1079.9}, {600.25, -4.75}}
	for _, a := range pts {
		for _, b := range pts {
			r := NormalizeDragRect(a, b)
			if r.Width < 0 || r.Height < 0 {
				t.Fatalf("negative dims for %v %v: %+v", a, b, r)
			}
			if r.X > math.Min(a.X, b.X)+0.05 {
				t.Fatalf("x exceeds min corner for %v %v: %+v", a, b, r)
			}
		}
	}
}

func TestNormalizeDragRect_OneDecimalPrecision(t *testing.T) {
	r := NormalizeDragRect(Point{10.04, 20.06}, Point{30.04, 40.06})
	if r.X != 10.0 || r.Y != 20.1 {
		t.Fatalf("expected rounded corner (10.0, 20.1), got (%v, %v)", r.X, r.Y)
	}
	if r.Width != 20.0 || r.Height != 20.0 {
		t.Fatalf("expected 20x20, got %vx%v", r.Width, r.Height)
	}
}

func TestAspectFitPlacement_Letterbox(t *testing.T) {
	// 1920x1080 into 800x600 scales to 800x450 with 75px bars top and bottom.
	p := AspectFitPlacement(800, 600, 1920, 1080)
	if p.Width != 800 || p.Height != 450 {
		t.Fatalf("expected 800x450, got %vx%v", p.Width, p.Height)
	}
	if p.X != 0 || p.Y != 75 {
		t.Fatalf("expected offset (0,75), got (%v,%v)", p.X, p.Y)
	}
}

func TestAspectFitPlacement_Pillarbox(t *testing.T) {
	// Tall image into a wide container centers horizontally.
	p := AspectFitPlacement(800, 600, 300, 600)
	if p.Height != 600 || p.Width != 300 {
		t.Fatalf("expected 300x600, got %vx%v", p.Width, p.Height)
	}
	if p.Y != 0 || p.X != 250 {
		t.Fatalf("expected offset (250,0), got (%v,%v)", p.X, p.Y)
	}
}

func TestAspectFitPlacement_ContainedAndAspectPreserved(t *testing.T) {
	dims := []struct{ cw, ch, iw, ih float64 }{
		{800, 600, 1920, 1080},
		{640, 480, 640, 480},
		{100, 900, 1600, 900},
		{333, 777, 123, 456},
	}
	for _, d := range dims {
		p := AspectFitPlacement(d.cw, d.ch, d.iw, d.ih)
		if p.X < 0 || p.Y < 0 || p.X+p.Width > d.cw+1e-9 || p.Y+p.Height > d.ch+1e-9 {
			t.Fatalf("placement %+v escapes container %vx%v", p, d.cw, d.ch)
		}
		gotRatio := p.Width / p.Height
		wantRatio := d.iw / d.ih
		if math.Abs(gotRatio-wantRatio) > 1e-6 {
			t.Fatalf("aspect ratio drift: got %v want %v", gotRatio, wantRatio)
		}
	}
}

func TestAspectFitPlacement_ZeroImageSignalsNoImage(t *testing.T) {
	if p := AspectFitPlacement(800, 600, 0, 1080); !p.Zero() {
		t.Fatalf("expected zero placement for zero width, got %+v", p)
	}
	if p := AspectFitPlacement(800, 600, 1920, 0); !p.Zero() {
		t.Fatalf("expected zero placement for zero height, got %+v", p)
	}
}

func TestProjectRelative_FullBoxRoundTrip(t *testing.T) {
	p := PreviewPlacement{X: 12, Y: 75, Width: 800, Height: 450}
	r := ProjectRelative(0, 0, 1, 1, p)
	if r.X != p.X || r.Y != p.Y || r.Width != p.Width || r.Height != p.Height {
		t.Fatalf("unit box should cover the placement exactly, got %+v", r)
	}
}

func TestProjectRelative_InsidePlacement(t *testing.T) {
	p := PreviewPlacement{X: 10, Y: 20, Width: 400, Height: 300}
	r := ProjectRelative(0.25, 0.5, 0.1, 0.2, p)
	if r.X < p.X || r.Y < p.Y || r.X+r.Width > p.X+p.Width || r.Y+r.Height > p.Y+p.Height {
		t.Fatalf("in-range record escaped placement: %+v", r)
	}
}

func TestProjectRelative_Pure(t *testing.T) {
	p := PreviewPlacement{X: 3, Y: 4, Width: 100, Height: 50}
	a := ProjectRelative(0.3, 0.6, 0.2, 0.1, p)
	b := ProjectRelative(0.3, 0.6, 0.2, 0.1, p)
	if a != b {
		t.Fatalf("projection not deterministic: %+v vs %+v", a, b)
	}
}

func TestClampToScreen_ShiftsWithoutShrinking(t *testing.T) {
	r := ClampToScreen(ScreenRect{X: 1900, Y: -30, Width: 200, Height: 100}, 1920, 1080)
	if r.Width != 200 || r.Height != 100 {
		t.Fatalf("clamp must never shrink, got %+v", r)
	}
	if r.X != 1720 || r.Y != 0 {
		t.Fatalf("expected shift to (1720,0), got (%v,%v)", r.X, r.Y)
	}
}

func TestClampToScreen_OversizedAnchorsAtOrigin(t *testing.T) {
	r := ClampToScreen(ScreenRect{X: 500, Y: 600, Width: 2500, Height: 100}, 1920, 1080)
	if r.X != 0 {
		t.Fatalf("oversized width should anchor x at 0, got %v", r.X)
	}
	if r.Y != 600 {
		t.Fatalf("in-range y should be untouched, got %v", r.Y)
	}
}
