package view

import "github.com/a-h/templ"

// LoginPage renders the admin login form. errMsg is an already-localized
// message shown inline, or empty.
func LoginPage(locale string, t T, errMsg string) templ.Component {
	return component(func(b *buf) {
		layout(b, locale, t, t("auth.loginTitle"), "/login", false, func(b *buf) {
			b.raw(`<div class="card" style="max-width:24rem;margin:3rem auto"><h1>`)
			b.esc(t("auth.loginTitle"))
			b.raw(`</h1>`)
			if errMsg != "" {
				b.raw(`<div class="error">`)
				b.esc(errMsg)
				b.raw(`</div>`)
			}
			b.rawf(`<form method="post" action="/%s/login">`, attr(locale))
			b.raw(`<div style="margin-bottom:1rem"><label for="email">`)
			b.esc(t("auth.email"))
			b.raw(`</label><input type="email" id="email" name="email" required></div>`)
			b.raw(`<div style="margin-bottom:1rem"><label for="password">`)
			b.esc(t("auth.password"))
			b.raw(`</label><input type="password" id="password" name="password" required></div>`)
			b.raw(`<button type="submit" style="width:100%">`)
			b.esc(t("auth.signIn"))
			b.raw(`</button></form></div>`)
		})
	})
}
