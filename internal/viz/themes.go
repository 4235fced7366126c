package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/scenecore/internal/capability"
)

// Theme defines the preview palette.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color

	// Tier badge colours, indexed by capability.Tier.
	Tiers [4]lipgloss.Color
}

var (
	ThemeMidnight = Theme{
		Name:      "midnight",
		Primary:   lipgloss.Color("#61dafb"),
		Secondary: lipgloss.Color("#a78bfa"),
		Accent:    lipgloss.Color("#f29111"),
		Text:      lipgloss.Color("#e2e8f0"),
		Muted:     lipgloss.Color("#64748b"),
		Tiers:     [4]lipgloss.Color{"#ef4444", "#f59e0b", "#38bdf8", "#22c55e"},
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Tiers:     [4]lipgloss.Color{"#ff0000", "#ffff00", "#88ff88", "#00ff00"},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Tiers:     [4]lipgloss.Color{"#ff0000", "#ffaa00", "#0088ff", "#00ff00"},
	}

	CurrentTheme = ThemeMidnight

	Themes = []Theme{
		ThemeMidnight,
		ThemeRetro,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to midnight.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
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
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// TierColor is the badge colour for tier in the current theme.
func TierColor(t capability.Tier) lipgloss.Color {
	if t < capability.TierNone || t > capability.TierHigh {
		return CurrentTheme.Muted
	}
	return CurrentTheme.Tiers[t]
}
