//go:build !windows

package platform

import "errors"

// WindowInfo describes the top-level window found under a screen point.
type WindowInfo struct {
	Handle uintptr
	Title  string
	X      int
	Y      int
	Width  int
	Height int
}

// MarkDPIAware is a no-op outside Windows; X11 reports physical pixels.
func MarkDPIAware() {}

// CursorPos is unavailable without a platform backend; callers fall back to
// Tk pointer queries.
func CursorPos() (int, int, error) {
	return 0, 0, errors.New("cursor position not supported on this platform")
}

// ScreenSize returns a conservative default; the Tk layer queries the real
// size at startup.
func ScreenSize() (int, int) { return 1920, 1080 }

// DPIScale reports the 96dpi baseline.
func DPIScale() float64 { return 1.0 }

// ResolveWindowAtScreenPoint is not implemented outside Windows.
func ResolveWindowAtScreenPoint(x, y int) (WindowInfo, error) {
	return WindowInfo{}, errors.New("window resolution not supported on this platform")
}
