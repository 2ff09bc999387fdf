//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartRSSLogger is a no-op outside Windows; the runtime logger still covers
// heap and goroutine stats there.
func StartRSSLogger(interval time.Duration, logger *slog.Logger) {}
