// Package i18n loads the embedded message catalogs and resolves user-facing
// text for the supported locales. Views never hardcode display strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed locales/*.json
var localeFS embed.FS

// Supported locales; DefaultLocale is used when a request carries no valid
// locale prefix.
const (
	LocaleZH = "zh"
	LocaleEN = "en"

	DefaultLocale = LocaleZH
)

// Locales lists the supported locales in display order.
func Locales() []string {
	return []string{LocaleZH, LocaleEN}
}

// Supported reports whether the given locale is served.
func Supported(locale string) bool {
	return locale == LocaleZH || locale == LocaleEN
}

// Bundle holds the flattened message catalogs for all supported locales.
type Bundle struct {
	messages map[string]map[string]string
}

// Load parses the embedded locale files into a Bundle.
func Load() (*Bundle, error) {
	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, locale := range Locales() {
		raw, err := localeFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", locale, err)
		}

		var nested map[string]any
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", locale, err)
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		b.messages[locale] = flat
	}
	return b, nil
}

// T resolves a message key for a locale. Missing entries fall back to the
// default locale, then to the key itself so gaps are visible rather than
// blank.
func (b *Bundle) T(locale, key string) string {
	if msgs, ok := b.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, ok := b.messages[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

func flatten(prefix string, nested map[string]any, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// FormatDateTime renders a timestamp in the locale's display format.
func FormatDateTime(t time.Time, locale string) string {
	if locale == LocaleEN {
		return t.Format("Jan 2, 2006 15:04")
	}
	return t.Format("2006年1月2日 15:04")
}

// FormatTimeRange renders an activity time range: full date and time for the
// start, time only for the end.
func FormatTimeRange(start, end time.Time, locale string) string {
	return FormatDateTime(start, locale) + " - " + end.Format("15:04")
}
