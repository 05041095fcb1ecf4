package presentation

import (
	"fmt"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/pkg/preferences"
)

const resetColor = "\033[0m"

// Theme defines a terminal palette using W3C hex colors
type Theme struct {
	BorderDefault string
	BorderFocused string
	TitleDefault  string

	Background string
	Text       string
	Prompt     string
	Command    string
	Error      string
	Success    string
	Accent     string
	Muted      string

	// GlamourStyle is the glamour standard style matching the palette
	GlamourStyle string
}

var Themes = map[preferences.Theme]*Theme{
	preferences.ThemeDark: {
		BorderDefault: "#4E5A65",
		BorderFocused: "#8FBCBB",
		TitleDefault:  "#88C0D0",

		Background: "#1E1E1E",
		Text:       "#D8DEE9",
		Prompt:     "#A3BE8C",
		Command:    "#ECEFF4",
		Error:      "#BF616A",
		Success:    "#A3BE8C",
		Accent:     "#88C0D0",
		Muted:      "#6C7A89",

		GlamourStyle: "dark",
	},
	preferences.ThemeLight: {
		BorderDefault: "#A0A7B4",
		BorderFocused: "#5E81AC",
		TitleDefault:  "#5E81AC",

		Background: "#F5F5F5",
		Text:       "#2E3440",
		Prompt:     "#4C7A34",
		Command:    "#1D2128",
		Error:      "#B02E3C",
		Success:    "#4C7A34",
		Accent:     "#3B6EA5",
		Muted:      "#7B8394",

		GlamourStyle: "light",
	},
}

// ThemeFor maps a preference to its palette. Unset means dark.
func ThemeFor(t preferences.Theme) *Theme {
	if theme, ok := Themes[t.OrDefault()]; ok {
		return theme
	}
	return Themes[preferences.DefaultTheme]
}

// GlamourStyle resolves the configured glamour theme; "auto" and "" follow the palette
func (t *Theme) GlamourStyleFor(configured string) string {
	if configured != "" && configured != "auto" {
		return configured
	}
	return t.GlamourStyle
}

// GetThemeColor converts a theme hex color to gocui.Attribute using gocui.GetColor
func GetThemeColor(hexColor string) gocui.Attribute {
	return gocui.GetColor(hexColor)
}

// ConvertColorToAnsi converts hex color to ANSI escape sequence for text coloring
func ConvertColorToAnsi(hexColor string) string {
	if len(hexColor) == 7 && hexColor[0] == '#' {
		r, g, b := hexToRGB(hexColor)
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	return ""
}

// Colorize wraps text in the given hex color
func Colorize(hexColor, text string) string {
	ansi := ConvertColorToAnsi(hexColor)
	if ansi == "" || text == "" {
		return text
	}
	return ansi + text + resetColor
}

func hexToRGB(hex string) (int, int, int) {
	hex = hex[1:]

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)

	return r, g, b
}
