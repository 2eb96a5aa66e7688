package main

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.zh.toml",
}

// translator renders the demo's user-facing strings in one language.
type translator struct {
	localizer *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return bundle, nil
}

// newTranslator picks the best match for lang ("en", "zh-CN", ...).
// Unknown or malformed tags fall back to English.
func newTranslator(lang string) (*translator, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	return &translator{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// T localizes id. Missing messages render as their id.
func (tr *translator) T(id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	text, err := tr.localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return text
}

// Fruits returns the localized fruit names items are drawn from.
func (tr *translator) Fruits() []string {
	return strings.Split(tr.T("Fruits"), ",")
}
