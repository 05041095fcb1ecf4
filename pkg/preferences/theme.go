package preferences

import (
	"fmt"
	"strings"
)

// Theme is the visual theme preference.
// ThemeNone is only ever returned by a store that has nothing saved.
type Theme int

const (
	ThemeNone Theme = iota
	ThemeLight
	ThemeDark
)

// DefaultTheme applies when no preference has been stored
const DefaultTheme = ThemeDark

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return ""
	}
}

// Toggle flips light and dark. An unset theme toggles from the default.
func (t Theme) Toggle() Theme {
	if t.OrDefault() == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// OrDefault replaces ThemeNone with DefaultTheme
func (t Theme) OrDefault() Theme {
	if t == ThemeNone {
		return DefaultTheme
	}
	return t
}

// ParseTheme accepts "light" or "dark" in any case. The empty string yields ThemeNone.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ThemeNone, nil
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeNone, fmt.Errorf("unknown theme %q", s)
	}
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
