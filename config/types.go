package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// WatchConfig controls live reload of the state snapshot.
type WatchConfig struct {
	Enabled    bool `yaml:"enabled,omitempty" toml:"enabled,omitempty" json:"enabled,omitempty" jsonschema:"description=Reload the state snapshot when the file changes"`
	DebounceMs int  `yaml:"debounce_ms,omitempty" toml:"debounce_ms,omitempty" json:"debounce_ms,omitempty" jsonschema:"description=Minimum milliseconds between reloads (default: 100),minimum=0"`
}

// Config is the panel configuration read from jobslots.yml or jobslots.toml.
type Config struct {
	Version string `yaml:"version" toml:"version" json:"version" jsonschema:"description=Configuration version (e.g. '1.0')"`
	// Locale is a BCP 47 tag used for localization and name collation.
	Locale string `yaml:"locale,omitempty" toml:"locale,omitempty" json:"locale,omitempty" jsonschema:"description=BCP 47 language tag (default: en-US)"`
	// Catalog is the path to the job/department manifest.
	Catalog string `yaml:"catalog,omitempty" toml:"catalog,omitempty" json:"catalog,omitempty" jsonschema:"description=Path to the catalog manifest (yaml or toml)"`
	// State is the path to the console state snapshot.
	State string `yaml:"state,omitempty" toml:"state,omitempty" json:"state,omitempty" jsonschema:"description=Path to the console state snapshot"`
	// Debug forces debug controls on regardless of the snapshot.
	Debug bool `yaml:"debug,omitempty" toml:"debug,omitempty" json:"debug,omitempty" jsonschema:"description=Force debug controls on"`
	// DepartmentOrder ranks departments for display. Unlisted departments
	// follow, sorted by name.
	DepartmentOrder []string    `yaml:"department_order,omitempty" toml:"department_order,omitempty" json:"department_order,omitempty" jsonschema:"description=Department IDs in display order"`
	Watch           WatchConfig `yaml:"watch,omitempty" toml:"watch,omitempty" json:"watch,omitempty" jsonschema:"description=Live reload of the state snapshot"`

	// Extensions holds sections owned by other packages (e.g. logging).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-"`

	// path is the file the config was loaded from, if any.
	path string
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Locale == "" {
		c.Locale = "en-US"
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = 100
	}
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. A missing section
// leaves the target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
