//go:build windows

package platform

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procGetSystemMetrics    = user32.NewProc("GetSystemMetrics")
	procGetDpiForSystem     = user32.NewProc("GetDpiForSystem")
	procSetProcessDPIAware  = user32.NewProc("SetProcessDPIAware")
	procWindowFromPoint     = user32.NewProc("WindowFromPoint")
	procGetAncestor         = user32.NewProc("GetAncestor")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
)

const (
	smCxScreen  = 0
	smCyScreen  = 1
	gaRoot      = 2
	maxTitleLen = 256
)

type winPoint struct {
	X int32
	Y int32
}

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// WindowInfo describes the top-level window found under a screen point.
type WindowInfo struct {
	Handle uintptr
	Title  string
	X      int
	Y      int
	Width  int
	Height int
}

// MarkDPIAware opts the process into physical-pixel coordinates so cursor
// positions and window geometry agree with screen captures. Call once before
// any window is created.
func MarkDPIAware() {
	_, _, _ = procSetProcessDPIAware.Call()
}

// CursorPos returns the pointer position in physical screen pixels.
func CursorPos() (int, int, error) {
	var pt winPoint
	r, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return 0, 0, errors.New("GetCursorPos failed")
	}
	return int(pt.X), int(pt.Y), nil
}

// ScreenSize returns the primary display dimensions in pixels.
func ScreenSize() (int, int) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return 1920, 1080
	}
	return int(w), int(h)
}

// DPIScale returns the system DPI divided by the 96dpi baseline. Systems
// without GetDpiForSystem (pre-1607) report 1.0.
func DPIScale() float64 {
	if err := procGetDpiForSystem.Find(); err != nil {
		return 1.0
	}
	dpi, _, _ := procGetDpiForSystem.Call()
	if dpi == 0 {
		return 1.0
	}
	return float64(dpi) / 96.0
}

// ResolveWindowAtScreenPoint finds the top-level window under (x, y) and
// returns its title and geometry. Used by the select-window-by-click flow.
func ResolveWindowAtScreenPoint(x, y int) (WindowInfo, error) {
	// WindowFromPoint takes POINT by value, packed into one word on amd64.
	pt := uintptr(uint64(uint32(int32(y)))<<32 | uint64(uint32(int32(x))))
	hwnd, _, _ := procWindowFromPoint.Call(pt)
	if hwnd == 0 {
		return WindowInfo{}, errors.New("no window at point")
	}
	if root, _, _ := procGetAncestor.Call(hwnd, gaRoot); root != 0 {
		hwnd = root
	}
	info := WindowInfo{Handle: hwnd, Title: windowTitle(hwnd)}
	var rect winRect
	if r, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect))); r != 0 {
		info.X = int(rect.Left)
		info.Y = int(rect.Top)
		info.Width = int(rect.Right - rect.Left)
		info.Height = int(rect.Bottom - rect.Top)
	}
	return info, nil
}

func windowTitle(hwnd uintptr) string {
	buf := make([]uint16, maxTitleLen)
	r, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return ""
	}
	end := int(r)
	for i, v := range buf {
		if v == 0 {
			end = i
			break
		}
	}
	return strings.TrimSpace(string(utf16.Decode(buf[:end])))
}
