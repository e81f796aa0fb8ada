package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/jobslots/config"
)

// Overrides maps snake_case binding names to replacement keys, e.g.
// {"increase": ["+", "l"]}.
type Overrides map[string][]string

// LoadOverrides reads the bindings for one screen from the
// `tui.keybindings.<screen>` section of the config.
func LoadOverrides(cfg *config.Config, screen string) Overrides {
	if cfg == nil {
		return nil
	}
	var tuiCfg struct {
		Keybindings map[string]Overrides `yaml:"keybindings"`
	}
	if err := cfg.UnmarshalExtension("tui", &tuiCfg); err != nil {
		return nil
	}
	return tuiCfg.Keybindings[screen]
}

// ApplyOverrides rebinds the key.Binding fields of the struct km points to.
// Field names are matched in snake_case (ToggleBlacklist -> toggle_blacklist)
// and embedded structs are walked. The help description is kept.
func ApplyOverrides(km interface{}, overrides Overrides) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	applyOverridesRecursive(v, overrides)
}

func applyOverridesRecursive(v reflect.Value, overrides Overrides) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides)
			continue
		}

		if fieldType.Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(fieldType.Name)]
		if !ok || len(keys) == 0 {
			continue
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), current.Help().Desc),
		)))
	}
}

// camelToSnake converts a CamelCase string to snake_case.
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
