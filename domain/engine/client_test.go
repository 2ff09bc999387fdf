package engine

import (
	"errors"
	"image"
	"log/slog"
	"testing"
	"time"

	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func syntheticGrabber(rect image.Rectangle) (*image.RGBA, error) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, errors.New("empty capture rect")
	}
	return image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy())), nil
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestClient_CapturesCommittedRegion(t *testing.T) {
	c := NewClient(discardLogger, syntheticGrabber, time.Millisecond)
	c.SetRegion(geometry.ScreenRect{X: 50, Y: 50, Width: 200, Height: 100})
	c.Start()
	defer c.Stop()

	waitFor(t, time.Second, func() bool { return c.LatestFrame().Sequence > 0 })
	frame := c.LatestFrame()
	if got := frame.Image.Bounds(); got.Dx() != 200 || got.Dy() != 100 {
		t.Fatalf("frame dims %dx%d, want 200x100", got.Dx(), got.Dy())
	}
	if space := c.Space(); space != (detect.CaptureSpace{Width: 200, Height: 100}) {
		t.Fatalf("space %+v does not match the region", space)
	}
}

func TestClient_NoRegionSkipsWithoutFrames(t *testing.T) {
	c := NewClient(discardLogger, syntheticGrabber, time.Millisecond)
	c.Start()
	defer c.Stop()
	waitFor(t, time.Second, func() bool { return c.Stats().Skipped > 2 })
	if c.LatestFrame().Sequence != 0 {
		t.Fatalf("no frames expected without a region")
	}
	if !c.Space().Zero() {
		t.Fatalf("space should be zero without a region")
	}
}

func TestClient_SequenceAdvances(t *testing.T) {
	c := NewClient(discardLogger, syntheticGrabber, time.Millisecond)
	c.SetRegion(geometry.ScreenRect{Width: 10, Height: 10})
	c.Start()
	defer c.Stop()
	waitFor(t, time.Second, func() bool { return c.LatestFrame().Sequence >= 3 })
	stats := c.Stats()
	if stats.Captures < 3 || stats.AvgCapture < 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestClient_StartStopIdempotent(t *testing.T) {
	c := NewClient(discardLogger, syntheticGrabber, time.Millisecond)
	c.Start()
	c.Start()
	if !c.Running() {
		t.Fatalf("expected running")
	}
	c.Stop()
	c.Stop()
	waitFor(t, time.Second, func() bool { return !c.Running() })
}
