package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/jobslots/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Increase", "increase"},
		{"SetUnlimited", "set_unlimited"},
		{"ToggleBlacklist", "toggle_blacklist"},
		{"HTTPServer", "h_t_t_p_server"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camelToSnake(tt.input))
		})
	}
}

type testKeyMap struct {
	Base
	Increase    key.Binding
	Decrease    key.Binding
	unexported  key.Binding
	NotABinding string
}

func TestApplyOverrides(t *testing.T) {
	km := testKeyMap{
		Base:        NewBase(),
		Increase:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "more slots")),
		Decrease:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer slots")),
		unexported:  key.NewBinding(key.WithKeys("x")),
		NotABinding: "unchanged",
	}

	ApplyOverrides(&km, Overrides{
		"increase":   {"l", "+"},
		"quit":       {"Q"},
		"unexported": {"y"},
	})

	assert.Equal(t, []string{"l", "+"}, km.Increase.Keys())
	assert.Equal(t, "l/+", km.Increase.Help().Key)
	assert.Equal(t, "more slots", km.Increase.Help().Desc)
	assert.Equal(t, []string{"-"}, km.Decrease.Keys())
	assert.Equal(t, []string{"Q"}, km.Quit.Keys(), "embedded fields are rebound")
	assert.Equal(t, []string{"x"}, km.unexported.Keys())
	assert.Equal(t, "unchanged", km.NotABinding)
}

func TestApplyOverridesIgnoresNonPointers(t *testing.T) {
	km := testKeyMap{Increase: key.NewBinding(key.WithKeys("+"))}
	ApplyOverrides(km, Overrides{"increase": {"l"}})
	assert.Equal(t, []string{"+"}, km.Increase.Keys())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(`
catalog: station.yml
tui:
  keybindings:
    panel:
      increase: ["l"]
      set_unlimited: ["U"]
`), "yaml")
	require.NoError(t, err)

	overrides := LoadOverrides(cfg, "panel")
	assert.Equal(t, Overrides{"increase": {"l"}, "set_unlimited": {"U"}}, overrides)
	assert.Nil(t, LoadOverrides(cfg, "list"))
	assert.Nil(t, LoadOverrides(nil, "panel"))
}

func TestBaseSections(t *testing.T) {
	sections := NewBase().Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, SectionNavigation, sections[0].Name)
	assert.False(t, sections[0].IsEmpty())
	assert.True(t, NewSection("Empty").IsEmpty())
}
