package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the status panel. The wavefront itself is
// always drawn in its own hue ramp.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Graph  lipgloss.Color
	Border lipgloss.Color
	Muted  lipgloss.Color
	Paused lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#ff00ff"),
		Label:  lipgloss.Color("#00ffff"),
		Value:  lipgloss.Color("#ffffff"),
		Graph:  lipgloss.Color("#ffff00"),
		Border: lipgloss.Color("#444466"),
		Muted:  lipgloss.Color("#666666"),
		Paused: lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"),
		Label:  lipgloss.Color("#00cc00"),
		Value:  lipgloss.Color("#88ff88"),
		Graph:  lipgloss.Color("#00ff00"),
		Border: lipgloss.Color("#005500"),
		Muted:  lipgloss.Color("#005500"),
		Paused: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Label:  lipgloss.Color("#cccccc"),
		Value:  lipgloss.Color("#ffffff"),
		Graph:  lipgloss.Color("#0088ff"),
		Border: lipgloss.Color("#888888"),
		Muted:  lipgloss.Color("#888888"),
		Paused: lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Label:  lipgloss.Color("#4488aa"),
		Value:  lipgloss.Color("#e0f0ff"),
		Graph:  lipgloss.Color("#ffd700"),
		Border: lipgloss.Color("#0077be"),
		Muted:  lipgloss.Color("#4488aa"),
		Paused: lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#ff6b6b"),
		Label:  lipgloss.Color("#feca57"),
		Value:  lipgloss.Color("#fff5f5"),
		Graph:  lipgloss.Color("#ff9ff3"),
		Border: lipgloss.Color("#8b6b8c"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Paused: lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	panel  lipgloss.Style
	canvas lipgloss.Style
	help   lipgloss.Style
	paused lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title:  lipgloss.NewStyle().Foreground(t.Title).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Label),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		graph:  lipgloss.NewStyle().Foreground(t.Graph).Padding(1, 0),
		panel:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Border).Padding(1, 2).Width(panelWidth),
		canvas: lipgloss.NewStyle().Padding(1, 2),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		paused: lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
	}
}
