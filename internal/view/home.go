package view

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/yunxiao-dev/teachboard/internal/domain"
	"github.com/yunxiao-dev/teachboard/internal/i18n"
)

// HomePage renders the public browsing page: filter inputs bound to datastar
// signals and the initial, unfiltered activity list.
func HomePage(locale string, t T, activities []domain.Activity) templ.Component {
	return component(func(b *buf) {
		layout(b, locale, t, t("home.title"), "", true, func(b *buf) {
			b.raw(`<h1>`)
			b.esc(t("home.title"))
			b.raw(`</h1><p class="muted">`)
			b.esc(t("home.subtitle"))
			b.raw(`</p>`)

			filterURL := "/" + attr(locale) + "/filter"
			b.raw(`<div data-signals="{startDate:'',endDate:'',title:'',speaker:''}">`)
			b.raw(`<div class="card"><h2>`)
			b.esc(t("filters.title"))
			b.raw(`</h2><div class="filters">`)

			filterInput(b, "date", "startDate", t("filters.startDate"), "", filterURL)
			filterInput(b, "date", "endDate", t("filters.endDate"), "", filterURL)
			filterInput(b, "text", "title", t("filters.activityTitle"), t("filters.activityTitlePlaceholder"), filterURL)
			filterInput(b, "text", "speaker", t("filters.speaker"), t("filters.speakerPlaceholder"), filterURL)

			b.raw(`</div><div style="margin-top:1rem;text-align:right">`)
			b.rawf(`<button class="secondary" data-on-click="$startDate='';$endDate='';$title='';$speaker='';@get('%s')">`, filterURL)
			b.esc(t("filters.resetFilters"))
			b.raw(`</button></div></div>`)

			activityResults(b, locale, t, activities)
			b.raw(`</div>`)
		})
	})
}

// filterInput writes one criteria input; every input event re-runs the
// filter fragment request. The binding uses the value form (data-bind="x")
// because HTML lowercases attribute names: a data-bind-startDate suffix would
// reach the browser as data-bind-startdate and create a signal that no longer
// matches the data-signals keys or the reset expression.
func filterInput(b *buf, typ, signal, label, placeholder, filterURL string) {
	b.rawf(`<div><label for="%s">`, attr(signal))
	b.esc(label)
	b.rawf(`</label><input type="%s" id="%s" data-bind="%s" data-on-input="@get('%s')"`, attr(typ), attr(signal), attr(signal), filterURL)
	if placeholder != "" {
		b.rawf(` placeholder="%s"`, attr(placeholder))
	}
	b.raw(`></div>`)
}

// ActivityResults is the fragment patched over SSE whenever criteria change.
// The wrapping element ID is what datastar matches on.
func ActivityResults(locale string, t T, activities []domain.Activity) templ.Component {
	return component(func(b *buf) {
		activityResults(b, locale, t, activities)
	})
}

func activityResults(b *buf, locale string, t T, activities []domain.Activity) {
	b.raw(`<div id="activity-results"><p class="muted" style="margin-top:1.5rem">`)
	b.esc(fmt.Sprintf(t("home.resultsCount"), len(activities)))
	b.raw(`</p>`)
	if len(activities) == 0 {
		b.raw(`<div class="card" style="text-align:center">`)
		b.esc(t("home.noResults"))
		b.raw(`</div>`)
	} else {
		b.raw(`<div class="grid">`)
		for _, a := range activities {
			activityCard(b, locale, t, a)
		}
		b.raw(`</div>`)
	}
	b.raw(`</div>`)
}

func activityCard(b *buf, locale string, t T, a domain.Activity) {
	b.raw(`<div class="card"><h3>`)
	b.esc(a.Title)
	b.raw(`</h3><p>`)
	b.esc(i18n.FormatTimeRange(a.StartTime, a.EndTime, locale))
	b.raw(`</p><p>`)
	b.esc(t("activity.location"))
	b.raw(`: `)
	b.esc(a.Location)
	b.raw(`</p><p>`)
	b.esc(t("activity.speaker"))
	b.raw(`: `)
	b.esc(a.Speaker)
	b.raw(`</p>`)
	if a.Description != "" {
		b.raw(`<p class="muted">`)
		b.esc(a.Description)
		b.raw(`</p>`)
	}
	b.raw(`</div>`)
}
