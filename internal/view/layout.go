package view

import "github.com/yunxiao-dev/teachboard/internal/i18n"

const datastarScript = `<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>`

const baseStyles = `<style>
body{font-family:system-ui,"PingFang SC","Microsoft YaHei",sans-serif;margin:0;background:#f9fafb;color:#111827}
header{background:#fff;border-bottom:1px solid #e5e7eb;padding:1rem 2rem;display:flex;justify-content:space-between;align-items:center}
main{max-width:72rem;margin:0 auto;padding:2rem}
.card{background:#fff;border-radius:.5rem;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:1.5rem;margin-bottom:1rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(18rem,1fr));gap:1.5rem}
label{display:block;font-size:.875rem;color:#374151;margin-bottom:.25rem}
input,textarea{width:100%;padding:.5rem;border:1px solid #d1d5db;border-radius:.375rem;box-sizing:border-box}
button,.btn{background:#2563eb;color:#fff;border:0;border-radius:.375rem;padding:.5rem 1rem;cursor:pointer;text-decoration:none;display:inline-block}
button.secondary{background:#6b7280}
button.danger{background:#dc2626}
.error{background:#fef2f2;border:1px solid #fecaca;color:#991b1b;border-radius:.5rem;padding:1rem;margin-bottom:1rem}
.muted{color:#6b7280}
table{width:100%;border-collapse:collapse;background:#fff}
th,td{text-align:left;padding:.75rem;border-bottom:1px solid #e5e7eb}
.filters{display:grid;grid-template-columns:repeat(auto-fit,minmax(12rem,1fr));gap:1rem}
nav a{margin-left:1rem;color:#374151;text-decoration:none}
</style>`

// layout writes the shared HTML skeleton. withDatastar pulls in the datastar
// bundle for pages with reactive fragments.
func layout(b *buf, locale string, t T, title string, path string, withDatastar bool, body func(*buf)) {
	b.rawf(`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`, attr(locale))
	b.raw(`<title>`)
	b.esc(title)
	b.raw(`</title>`)
	b.raw(baseStyles)
	if withDatastar {
		b.raw(datastarScript)
	}
	b.raw(`</head><body><header><a href="/` + attr(locale) + `" style="font-weight:700;color:#111827;text-decoration:none">`)
	b.esc(t("common.siteName"))
	b.raw(`</a><nav>`)
	languageSwitcher(b, path)
	b.raw(`</nav></header><main>`)
	body(b)
	b.raw(`</main></body></html>`)
}

// languageSwitcher links the current page in each supported locale.
func languageSwitcher(b *buf, path string) {
	for _, locale := range i18n.Locales() {
		label := "中文"
		if locale == i18n.LocaleEN {
			label = "English"
		}
		b.rawf(`<a href="/%s%s">%s</a>`, attr(locale), attr(path), label)
	}
}
