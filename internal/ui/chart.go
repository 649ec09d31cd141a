package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/moodctl/internal/stats"
)

const maxScale = 5.0

// RenderBarChart draws one horizontal bar per weekday, scaled so a value of
// 5 fills width cells. Empty weekdays get an empty track.
func RenderBarChart(s stats.Summary, theme Theme, width int) string {
	if width < 5 {
		width = 5
	}
	track := lipgloss.NewStyle().Foreground(theme.Muted)

	var b strings.Builder
	for i, label := range stats.WeekdayLabels {
		v := s.PerWeekday[i]
		filled := int(v/maxScale*float64(width) + 0.5)
		if filled > width {
			filled = width
		}

		bar := theme.ScaleStyle(v).Render(strings.Repeat("█", filled)) +
			track.Render(strings.Repeat("░", width-filled))

		value := "  -"
		if s.Counts[i] > 0 {
			value = fmt.Sprintf("%.1f", v)
		}
		fmt.Fprintf(&b, "%s %s %s\n", padRight(label, 3), bar, value)
	}
	return b.String()
}
