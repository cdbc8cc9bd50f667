package i18n_test

import (
	"testing"
	"time"

	"github.com/yunxiao-dev/teachboard/internal/i18n"
)

func TestLoad(t *testing.T) {
	bundle, err := i18n.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Both catalogs carry the keys the views depend on.
	keys := []string{
		"common.siteName",
		"home.noResults",
		"filters.resetFilters",
		"filters.activityTitlePlaceholder",
		"admin.addActivity",
		"admin.endTimeError",
		"auth.invalidCredentials",
	}
	for _, locale := range i18n.Locales() {
		for _, key := range keys {
			if got := bundle.T(locale, key); got == key {
				t.Errorf("T(%q, %q) missing, echoed key", locale, key)
			}
		}
	}
}

func TestT_Fallbacks(t *testing.T) {
	bundle, err := i18n.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := bundle.T("zh", "home.noResults"); got != "没有找到符合条件的活动" {
		t.Errorf("T(zh, home.noResults) = %q", got)
	}

	// Unknown locale falls back to the default catalog.
	if got := bundle.T("fr", "home.noResults"); got != "没有找到符合条件的活动" {
		t.Errorf("T(fr, home.noResults) = %q, want default locale text", got)
	}

	// Unknown key echoes the key so gaps are visible.
	if got := bundle.T("zh", "nope.missing"); got != "nope.missing" {
		t.Errorf("T(zh, nope.missing) = %q, want key echo", got)
	}
}

func TestSupported(t *testing.T) {
	for locale, want := range map[string]bool{"zh": true, "en": true, "fr": false, "": false} {
		if got := i18n.Supported(locale); got != want {
			t.Errorf("Supported(%q) = %v, want %v", locale, got, want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC)

	if got := i18n.FormatTimeRange(start, end, i18n.LocaleZH); got != "2026年1月15日 09:00 - 11:00" {
		t.Errorf("FormatTimeRange(zh) = %q", got)
	}
	if got := i18n.FormatTimeRange(start, end, i18n.LocaleEN); got != "Jan 15, 2026 09:00 - 11:00" {
		t.Errorf("FormatTimeRange(en) = %q", got)
	}
}
