package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/jobslots/tui/theme"
)

// RenderHeader creates a header line with an optional muted subtitle.
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Accent.Render(title)
	if len(subtitle) > 0 && subtitle[0] != "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", t.Muted.Render(subtitle[0]))
	}
	return header
}

// RenderStatusBar lays out left and right content across width.
func RenderStatusBar(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderDivider creates a horizontal divider
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.DefaultTheme.Colors.Border).
		Render(strings.Repeat("─", width))
}
