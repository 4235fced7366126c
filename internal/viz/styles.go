package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/scenecore/internal/capability"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(0, 1)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Width(12)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e2e8f0")).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")).
		Italic(true)

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

// TierBadge renders the tier name on its theme colour.
func TierBadge(t capability.Tier) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0f172a")).
		Background(TierColor(t)).
		Padding(0, 1).
		Render(strings.ToUpper(t.String()))
}

// KeyValue renders one aligned label/value row.
func KeyValue(label string, value any) string {
	return MetricLabel.Render(label) + MetricValue.Render(fmt.Sprint(value))
}

// GradientText colours each rune along a blend from start to end. Colours
// that fail to parse fall back to the theme text colour.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err := colorful.Hex(string(start))
	if err != nil {
		from, _ = colorful.Hex(string(CurrentTheme.Text))
	}
	to, err := colorful.Hex(string(end))
	if err != nil {
		to = from
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := lipgloss.Color(from.BlendRgb(to, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders a bar filled to fraction (clamped to [0, 1]).
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case fraction > 0.8:
		return SparkHigh.Render(bar)
	case fraction > 0.4:
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the last width values as block characters scaled
// between their min and max.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(sparkChars)-1))
		b.WriteRune(sparkChars[max(0, min(len(sparkChars)-1, idx))])
	}
	return b.String()
}

// Separator is a muted horizontal rule.
func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", max(0, width)))
	}
	mid := width / 2
	return Subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
