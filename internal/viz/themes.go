package viz

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme defines the color scheme for panels and series.
type Theme struct {
	Name   string
	Border lipgloss.Color
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Series []asciigraph.AnsiColor
}

// SeriesColor returns the curve color for the i-th series of a panel.
func (t Theme) SeriesColor(i int) asciigraph.AnsiColor {
	return t.Series[i%len(t.Series)]
}

// swatch renders a legend marker in the series color.
func (t Theme) swatch(i int) string {
	c := lipgloss.Color(strconv.Itoa(int(t.SeriesColor(i))))
	return lipgloss.NewStyle().Foreground(c).Render("──")
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:   "classic",
		Border: lipgloss.Color("240"),
		Title:  lipgloss.Color("86"),
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("242"),
		Series: []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.Orange, asciigraph.Green, asciigraph.Red},
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Border: lipgloss.Color("#005500"),
		Title:  lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00cc00"),
		Muted:  lipgloss.Color("#005500"),
		Series: []asciigraph.AnsiColor{asciigraph.Lime, asciigraph.Yellow, asciigraph.Green, asciigraph.Olive},
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Border: lipgloss.Color("#4488aa"),
		Title:  lipgloss.Color("#00a8cc"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Series: []asciigraph.AnsiColor{asciigraph.Aqua, asciigraph.Gold, asciigraph.DodgerBlue, asciigraph.White},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
