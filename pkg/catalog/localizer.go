package catalog

import (
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Localizer resolves string keys to display strings.
type Localizer interface {
	Localize(key string) string
}

// LocalizerFunc adapts a plain function to the Localizer interface.
type LocalizerFunc func(key string) string

// Localize calls f(key).
func (f LocalizerFunc) Localize(key string) string { return f(key) }

// IdentityLocalizer returns keys unchanged.
var IdentityLocalizer Localizer = LocalizerFunc(func(key string) string { return key })

// BundleLocalizer resolves keys through a go-i18n message bundle. Keys with
// no message in any of the requested languages resolve to themselves.
type BundleLocalizer struct {
	tag       language.Tag
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewBundleLocalizer creates a localizer for tag, with tag also used as the
// bundle's default language.
func NewBundleLocalizer(tag language.Tag) *BundleLocalizer {
	bundle := i18n.NewBundle(tag)
	return &BundleLocalizer{
		tag:       tag,
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}
}

// Tag returns the language the localizer resolves for.
func (l *BundleLocalizer) Tag() language.Tag {
	return l.tag
}

// AddMessages registers key -> text pairs for a language.
func (l *BundleLocalizer) AddMessages(tag language.Tag, messages map[string]string) error {
	msgs := make([]*i18n.Message, 0, len(messages))
	for id, text := range messages {
		msgs = append(msgs, &i18n.Message{ID: id, Other: text})
	}
	return l.bundle.AddMessages(tag, msgs...)
}

// Localize implements Localizer.
func (l *BundleLocalizer) Localize(key string) string {
	if key == "" {
		return ""
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || s == "" {
		return key
	}
	return s
}
