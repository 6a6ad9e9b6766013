package profile

import (
	"fmt"
	"strings"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("profile: unknown theme %q (want light or dark)", s)
}

// Settings is the singleton preference record.
type Settings struct {
	Theme         Theme `json:"theme"`
	Notifications bool  `json:"notifications"`
	AutoSave      bool  `json:"autoSave"`
}

// DefaultSettings are reported when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, Notifications: false, AutoSave: true}
}
