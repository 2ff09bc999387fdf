package theme

// Theming for the match-overlay UI. Holds the semantic palette shared by the
// main window, the selection surface and the floating overlay windows, and
// InitStyles to activate a base ttk theme with the app's widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Core semantic colors. PreviewBg matches the letterbox background the frame
// renderer paints so the preview label blends into its surroundings.
const (
	ColorBg         = "#f7f9fb" // app background
	ColorSurface    = "#ffffff" // panels, cards
	ColorBorder     = "#d0d7de"
	ColorPrimary    = "#2563eb" // buttons, accents
	ColorDanger     = "#dc2626"
	ColorAccent     = "#10b981"
	ColorText       = "#1e293b"
	ColorTextMuted  = "#64748b"
	PreviewBg       = "#1e293b" // letterbox bars around the scaled frame
	SelectionTint   = "#2563eb" // translucent capture surface wash
	DragRectColor   = "#f59e0b" // rubber-band rectangle while dragging
	OverlayFallback = "#ef4444" // overlay border when no class color is known
	PanelBg         = "#111827" // info panel background
	PanelText       = "#f9fafb"
)

// Style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatLabel     = "stat.TLabel"
	StyleStateLabel    = "state.TLabel"
)

// InitStyles activates the base theme and configures the app's widget styles.
// Call once after Tk is initialized, before any view is built.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatLabel,
		Foreground(ColorTextMuted),
		Background(ColorBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(ColorAccent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
