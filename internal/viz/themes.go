package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the player. The role colors mark array
// positions and graph vertices.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	Bar      lipgloss.Color
	Compared lipgloss.Color
	Mutated  lipgloss.Color
	Sorted   lipgloss.Color
	Pivot    lipgloss.Color
	Frontier lipgloss.Color
	Visited  lipgloss.Color
	Current  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		Bar:       lipgloss.Color("#4a90d9"),
		Compared:  lipgloss.Color("#ffff00"),
		Mutated:   lipgloss.Color("#ff4040"),
		Sorted:    lipgloss.Color("#00ff88"),
		Pivot:     lipgloss.Color("#bf5fff"),
		Frontier:  lipgloss.Color("#ffaa00"),
		Visited:   lipgloss.Color("#00cc66"),
		Current:   lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Bar:       lipgloss.Color("#008800"),
		Compared:  lipgloss.Color("#ffff00"),
		Mutated:   lipgloss.Color("#ff0000"),
		Sorted:    lipgloss.Color("#88ff88"),
		Pivot:     lipgloss.Color("#ccffcc"),
		Frontier:  lipgloss.Color("#ffff00"),
		Visited:   lipgloss.Color("#88ff88"),
		Current:   lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Bar:       lipgloss.Color("#00a8cc"),
		Compared:  lipgloss.Color("#ffd700"),
		Mutated:   lipgloss.Color("#ff4444"),
		Sorted:    lipgloss.Color("#00ff88"),
		Pivot:     lipgloss.Color("#ff9ff3"),
		Frontier:  lipgloss.Color("#ffcc00"),
		Visited:   lipgloss.Color("#00ff88"),
		Current:   lipgloss.Color("#ffffff"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
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

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
