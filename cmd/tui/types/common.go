package types

import (
	"github.com/awesome-gocui/gocui"
)

type KeyBinding struct {
	View    string
	Key     interface{}
	Mod     gocui.Modifier
	Handler func(*gocui.Gui, *gocui.View) error
}

type WindowProperties struct {
	Focusable  bool
	Editable   bool
	Wrap       bool
	Autoscroll bool
	Frame      bool
}

// Config is persisted as settings.tui.json
type Config struct {
	// OutputMode controls gocui color support:
	// - "true": 24-bit color (default)
	// - "256": 256-color mode
	// - "normal": 8-color mode
	OutputMode string `json:"output_mode"`

	// GlamourTheme picks the markdown style of the project dialog.
	// "auto" follows the terminal theme.
	GlamourTheme string `json:"glamour_theme"`

	ShowClock   bool `json:"show_clock"`
	ShowBorders bool `json:"show_borders"`

	// ClockFormat is a strftime pattern
	ClockFormat string `json:"clock_format"`
}
