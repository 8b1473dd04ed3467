// Package ui provides the interactive terminal browser for the URL scheme
// collection, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light mode colors
	LightBackground = lipgloss.Color("#f6f7f8")
	LightForeground = lipgloss.Color("#1b2733")
	LightPrimary    = lipgloss.Color("#1b2733")
	LightAccent     = lipgloss.Color("#0969da")
	LightSecondary  = lipgloss.Color("#e4e7eb")
	LightMuted      = lipgloss.Color("#8b949e")
	LightBorder     = lipgloss.Color("#d0d7de")

	// Dark mode colors
	DarkBackground = lipgloss.Color("#161b22")
	DarkForeground = lipgloss.Color("#e6edf3")
	DarkPrimary    = lipgloss.Color("#58a6ff")
	DarkAccent     = lipgloss.Color("#58a6ff")
	DarkSecondary  = lipgloss.Color("#21262d")
	DarkMuted      = lipgloss.Color("#7d8590")
	DarkBorder     = lipgloss.Color("#30363d")

	// Semantic colors (same in both modes)
	Success = lipgloss.Color("#3fb950")
	Warning = lipgloss.Color("#d29922")
	Danger  = lipgloss.Color("#f85149")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name. "auto" (and anything
// unrecognized) falls back to terminal detection.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme picks a theme from terminal hints, defaulting to dark.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; low background indexes mean a
	// dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx >= 7 && bgIdx != 8 {
					return LightTheme()
				}
			}
		}
	}

	if os.Getenv("SCHEMES_LIGHT_MODE") == "1" {
		return LightTheme()
	}

	return DarkTheme()
}

// Styles holds all the styled components of the browser.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	URL      lipgloss.Style
	Selected lipgloss.Style

	// Catalog components
	GroupHeader lipgloss.Style
	Count       lipgloss.Style
	Badge       lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style

	// Detail overlay
	Overlay lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		URL: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Secondary).
			Bold(true),

		GroupHeader: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginTop(1),

		Count: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	return s.Muted.Render(strings.Repeat("─", width))
}
