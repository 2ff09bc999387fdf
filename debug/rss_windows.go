//go:build windows

package debug

// Working-set (RSS) logger for correlating native window resources with Go
// heap growth. Overlay toplevels hold native surfaces the Go runtime never
// sees, so heap stats alone undercount.

import (
	"log/slog"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// processMemoryCounters matches PROCESS_MEMORY_COUNTERS from psapi.
type processMemoryCounters struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
}

var (
	modPsapi                 = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemoryInfo = modPsapi.NewProc("GetProcessMemoryInfo")
)

// StartRSSLogger logs the process working set every interval. Best-effort; a
// failing query is logged once and then suppressed.
func StartRSSLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var errLogged bool
		for range ticker.C {
			pmc := processMemoryCounters{cb: uint32(unsafe.Sizeof(processMemoryCounters{}))}
			r1, _, err := procGetProcessMemoryInfo.Call(
				uintptr(windows.CurrentProcess()),
				uintptr(unsafe.Pointer(&pmc)),
				uintptr(pmc.cb))
			if r1 == 0 {
				if !errLogged {
					logger.Warn("rss query failed", slog.String("err", err.Error()))
					errLogged = true
				}
				continue
			}
			logger.Info("rss",
				slog.Uint64("working_set", uint64(pmc.WorkingSetSize)),
				slog.Uint64("peak_working_set", uint64(pmc.PeakWorkingSetSize)),
			)
		}
	}()
}
