// Package view renders the server-side HTML pages and fragments. Components
// are composed against the templ runtime so handlers and datastar patches
// share the same templ.Component currency.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// T resolves a message key to display text for the current request's locale.
type T func(key string) string

// buf collects writes for one component render, keeping the first error.
type buf struct {
	w   io.Writer
	err error
}

// raw writes trusted markup as-is.
func (b *buf) raw(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

// esc writes untrusted text, HTML-escaped.
func (b *buf) esc(s string) {
	b.raw(templ.EscapeString(s))
}

// rawf writes trusted markup with formatting. Arguments must already be safe.
func (b *buf) rawf(format string, args ...any) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

// attr escapes a value for use inside a double-quoted attribute.
func attr(s string) string {
	return templ.EscapeString(s)
}

func component(render func(b *buf)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		render(b)
		return b.err
	})
}
