package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kanagawa", "kanagawa"},
		{"Kanagawa Dragon", "kanagawa"},
		{"ansi", "terminal"},
		{"TERMINAL", "terminal"},
		{"no-such-theme", defaultThemeName},
		{"", defaultThemeName},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			th := NewThemeWithName(tt.input)
			assert.Equal(t, tt.want, th.Name)
		})
	}
}

func TestAlternatingRowsDisabledForTerminal(t *testing.T) {
	assert.False(t, NewThemeWithName("terminal").UseAlternatingRows)
	assert.True(t, NewThemeWithName("kanagawa").UseAlternatingRows)
}

func TestSectionHeaderKeepsText(t *testing.T) {
	th := NewThemeWithName("kanagawa")
	assert.Contains(t, th.SectionHeader("#FF0000").Render("Security"), "Security")
	assert.Contains(t, th.SectionHeader("").Render("Service"), "Service")
}

func TestSetASCIIIcons(t *testing.T) {
	defer SetASCIIIcons(false)

	SetASCIIIcons(true)
	assert.Equal(t, "[X]", IconBlacklisted)
	assert.Equal(t, "✓", IconSuccess)

	SetASCIIIcons(false)
	assert.Equal(t, nerdIconBlacklisted, IconBlacklisted)
}
