package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
)

// Layout wraps a page body with the shared chrome: head, identity line,
// and the one-shot toast when present.
func Layout(data viewmodels.LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"/>`)
		b.WriteString(`<title>` + esc(data.Title) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="/static/app.css"/>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		b.WriteString(`</head>`)
		b.WriteString(`<body hx-headers='{"X-CSRF-Token": "` + esc(data.CSRFToken) + `"}'>`)
		b.WriteString(`<header><h1>` + esc(data.Title) + `</h1>`)
		b.WriteString(`<p class="identity">` + esc(data.TenantID) + ` · ` + esc(data.UserID) + ` (` + esc(data.UserRole) + `)</p>`)
		b.WriteString(`</header>`)
		if data.Toast != nil {
			b.WriteString(`<div class="toast toast-` + esc(data.Toast.Category) + `">`)
			b.WriteString(`<strong>` + esc(data.Toast.Title) + `</strong> ` + esc(data.Toast.Description))
			b.WriteString(`</div>`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
