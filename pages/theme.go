package pages

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the single color swatch used for the title bar and headings.
type Theme int

const (
	ThemeBlue Theme = iota
	ThemeTeal
	ThemeGreen
	ThemePurple
	ThemeOrange
)

var themeNames = map[Theme]string{
	ThemeBlue:   "blue",
	ThemeTeal:   "teal",
	ThemeGreen:  "green",
	ThemePurple: "purple",
	ThemeOrange: "orange",
}

var themeColors = map[Theme]lipgloss.Color{
	ThemeBlue:   lipgloss.Color("#2196F3"),
	ThemeTeal:   lipgloss.Color("#00CED1"),
	ThemeGreen:  lipgloss.Color("#04B575"),
	ThemePurple: lipgloss.Color("#7D56F4"),
	ThemeOrange: lipgloss.Color("#FF9800"),
}

// Color returns the swatch color. Unknown themes fall back to blue.
func (t Theme) Color() lipgloss.Color {
	if c, ok := themeColors[t]; ok {
		return c
	}
	return themeColors[ThemeBlue]
}

func (t Theme) String() string {
	if n, ok := themeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// Config is the fixed presentation configuration of the guide page.
type Config struct {
	Title string
	Theme Theme
}
