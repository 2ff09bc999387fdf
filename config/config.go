package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for overlay and preview behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Overlay animation and lifetime
	FadeInMs        int `json:"fade_in_ms"`
	FadeOutMs       int `json:"fade_out_ms"`
	FadeSteps       int `json:"fade_steps"`
	AutoCloseMs     int `json:"auto_close_ms"`
	PanelGapPx      int `json:"panel_gap_px"`
	PanelWidthPx    int `json:"panel_width_px"`
	PanelHeightPx   int `json:"panel_height_px"`
	OverlayBorderPx int `json:"overlay_border_px"`

	// Capture / detection cadence
	CaptureIntervalMs  int `json:"capture_interval_ms"`
	RealtimeIntervalMs int `json:"realtime_interval_ms"`

	// Preview container
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:              false,
		FadeInMs:           160,
		FadeOutMs:          220,
		FadeSteps:          8,
		AutoCloseMs:        3000,
		PanelGapPx:         12,
		PanelWidthPx:       220,
		PanelHeightPx:      72,
		OverlayBorderPx:    3,
		CaptureIntervalMs:  33,
		RealtimeIntervalMs: 500,
		PreviewWidth:       640,
		PreviewHeight:      360,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.FadeInMs < 0 {
		c.FadeInMs = d.FadeInMs
	}
	if c.FadeOutMs < 0 {
		c.FadeOutMs = d.FadeOutMs
	}
	if c.FadeSteps <= 0 {
		c.FadeSteps = d.FadeSteps
	}
	if c.AutoCloseMs <= 0 {
		c.AutoCloseMs = d.AutoCloseMs
	}
	if c.PanelGapPx <= 0 {
		c.PanelGapPx = d.PanelGapPx
	}
	if c.PanelWidthPx < 80 {
		c.PanelWidthPx = d.PanelWidthPx
	}
	if c.PanelHeightPx < 40 {
		c.PanelHeightPx = d.PanelHeightPx
	}
	if c.OverlayBorderPx <= 0 {
		c.OverlayBorderPx = d.OverlayBorderPx
	}
	if c.CaptureIntervalMs < 10 {
		c.CaptureIntervalMs = d.CaptureIntervalMs
	}
	if c.RealtimeIntervalMs < 50 {
		c.RealtimeIntervalMs = d.RealtimeIntervalMs
	}
	if c.PreviewWidth < 100 {
		c.PreviewWidth = d.PreviewWidth
	}
	if c.PreviewHeight < 100 {
		c.PreviewHeight = d.PreviewHeight
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
