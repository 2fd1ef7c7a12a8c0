package theme

// Palette, fonts and ttk styles for the firesight window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines the colors used on the drawing surface.
const (
	ColorBg         = "#d9d9d9" // window and canvas background
	ColorLabel      = "#ffffff" // label overlays
	ColorLabelBg    = "#0f172a" // backing box of a label overlay
	ColorStrategy   = "#000000" // strategy text
	ColorHover      = "#0000ff" // strategy text under the pointer
	ColorLabelHover = "#60a5fa" // label overlay under the pointer
	ColorStatusBg   = "#1e293b"
	ColorStatusFg   = "#f1f5f9"
)

// Fonts as Tk font descriptions.
const (
	FontLabel    = "courier 25"
	FontStrategy = "courier 30"
	FontStatus   = "courier 10"
)

// style names used with Style("status.TLabel") etc.
const (
	StyleStatusLabel = "status.TLabel"
)

// InitStyles activates the base theme and configures the semantic styles.
func InitStyles() {
	_ = ActivateTheme("azure light")
	App.Configure(Background(ColorBg))

	StyleConfigure(StyleStatusLabel,
		Foreground(ColorStatusFg),
		Background(ColorStatusBg),
		Font(FontStatus),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
