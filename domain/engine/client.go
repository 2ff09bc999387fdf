package engine

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vova616/screenshot"

	"github.com/soocke/match-overlay-go/domain/detect"
	"github.com/soocke/match-overlay-go/domain/geometry"
)

const statsLogInterval = 5 * time.Second

// Client captures the committed screen region on a worker goroutine and
// exposes the latest frame to the UI loop. It is the in-process stand-in for
// the external capture engine: the committed selection rectangle goes in,
// preview frames come out.
type Client interface {
	Start()
	Stop()
	Running() bool
	LatestFrame() FrameSnapshot
	SetRegion(rect geometry.ScreenRect)
	Region() (geometry.ScreenRect, bool)
	Space() detect.CaptureSpace
	Stats() Stats
}

// Grabber performs one region capture. Production uses GrabRegion; tests
// substitute a synthetic source.
type Grabber func(rect image.Rectangle) (*image.RGBA, error)

// GrabRegion captures a screen rectangle via the platform screenshot API.
func GrabRegion(rect image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(rect)
}

type client struct {
	running  atomic.Bool
	latest   atomic.Pointer[FrameSnapshot]
	logger   *slog.Logger
	grab     Grabber
	interval time.Duration

	mu     sync.Mutex
	region geometry.ScreenRect
	hasReg bool

	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewClient constructs a capture client polling at the given interval. A nil
// grabber defaults to the real screenshot API.
func NewClient(logger *slog.Logger, grab Grabber, interval time.Duration) Client {
	if grab == nil {
		grab = GrabRegion
	}
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &client{logger: logger, grab: grab, interval: interval}
}

// SetRegion replaces the captured region. Takes effect on the next loop pass.
func (c *client) SetRegion(rect geometry.ScreenRect) {
	c.mu.Lock()
	c.region = rect
	c.hasReg = !rect.Empty()
	c.mu.Unlock()
}

// Region returns the current region and whether one is set.
func (c *client) Region() (geometry.ScreenRect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.region, c.hasReg
}

// Space returns the capture space implied by the current region.
func (c *client) Space() detect.CaptureSpace {
	r, ok := c.Region()
	if !ok {
		return detect.CaptureSpace{}
	}
	return detect.CaptureSpace{Width: r.Width, Height: r.Height}
}

func (c *client) LatestFrame() FrameSnapshot {
	snap := c.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (c *client) Running() bool { return c.running.Load() }

func (c *client) Start() {
	if c.running.Load() {
		return
	}
	c.running.Store(true)
	go c.loop()
}

func (c *client) Stop() {
	if !c.running.Load() {
		return
	}
	c.running.Store(false)
}

func (c *client) Stats() Stats {
	captures := c.captures.Load()
	total := c.captureNanos.Load()
	var avg time.Duration
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
	}
	snap := c.LatestFrame()
	age := time.Duration(0)
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return Stats{
		Captures:       captures,
		Skipped:        c.skipped.Load(),
		AvgCapture:     avg,
		LastCapture:    snap.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snap.Sequence,
	}
}

func (c *client) loop() {
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for c.running.Load() {
		region, ok := c.Region()
		if !ok {
			c.skipped.Add(1)
			time.Sleep(c.interval)
			continue
		}
		start := time.Now()
		img, err := c.grab(image.Rect(
			int(region.X),
			int(region.Y),
			int(region.X+region.Width),
			int(region.Y+region.Height),
		))
		if err != nil || img == nil {
			if err != nil && c.logger != nil {
				c.logger.Error("region capture", "error", err)
			}
			c.skipped.Add(1)
			time.Sleep(c.interval)
			continue
		}
		c.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
		c.captures.Add(1)
		seq := c.sequence.Add(1)
		c.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			c.logStats()
		default:
		}

		time.Sleep(c.interval)
	}
}

func (c *client) logStats() {
	if c.logger == nil {
		return
	}
	stats := c.Stats()
	c.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
