package main

import (
	"log/slog"
	"time"

	"github.com/soocke/match-overlay-go/app"
	"github.com/soocke/match-overlay-go/config"
	"github.com/soocke/match-overlay-go/debug"
	"github.com/soocke/match-overlay-go/platform"
)

const configPath = "config.json"

func main() {
	cfg, err := config.Load(configPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "error", err)
	}

	platform.MarkDPIAware()

	if cfg.Debug {
		debug.StartRuntimeLogger(5*time.Second, logger)
		debug.StartRSSLogger(5*time.Second, logger)
	}

	application := app.NewApp("Match Overlay", 800, 600, cfg, logger)
	application.Start()
}
