package config

import (
	"fmt"

	"github.com/grovetools/jobslots/errors"
	"golang.org/x/text/language"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, fmt.Sprintf("invalid locale '%s'", c.Locale)).
				WithDetail("locale", c.Locale)
		}
	}

	seen := make(map[string]bool, len(c.DepartmentOrder))
	for _, id := range c.DepartmentOrder {
		if id == "" {
			return errors.New(errors.ErrCodeConfigValidation, "department_order contains an empty id")
		}
		if seen[id] {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("department '%s' appears twice in department_order", id)).
				WithDetail("department", id)
		}
		seen[id] = true
	}

	if c.Watch.DebounceMs < 0 {
		return errors.New(errors.ErrCodeConfigValidation, "watch.debounce_ms cannot be negative").
			WithDetail("debounce_ms", c.Watch.DebounceMs)
	}

	return nil
}

// LanguageTag returns the parsed locale, defaulting to en-US.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil || c.Locale == "" {
		return language.AmericanEnglish
	}
	return tag
}
