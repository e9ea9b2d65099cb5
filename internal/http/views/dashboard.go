package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
)

// DashboardPage renders the full dashboard: register form, sync controls,
// and the four refreshable regions.
func DashboardPage(data viewmodels.DashboardViewData) templ.Component {
	return Layout(data.Layout, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sections := []templ.Component{
			connectorPanel(data),
			SummaryRegion(data.Summary),
			ordersPanel(data),
			alertsPanel(data),
		}
		for _, section := range sections {
			if err := section.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	}))
}

func connectorPanel(data viewmodels.DashboardViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="panel"><h2>Supplier connectors</h2>`)
		b.WriteString(`<form id="connector-form" method="post" action="/connectors">`)
		b.WriteString(`<input type="hidden" name="csrf" value="` + esc(data.Layout.CSRFToken) + `"/>`)
		b.WriteString(`<input id="supplier-name" name="supplierName" placeholder="Supplier name" required value="` + esc(data.ConnectorForm.SupplierName) + `"/>`)
		b.WriteString(`<input id="api-key" name="apiKey" type="password" placeholder="API key" required value="` + esc(data.ConnectorForm.APIKey) + `"/>`)
		b.WriteString(`<button type="submit">Register connector</button>`)
		b.WriteString(`</form>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := ConnectorsRegion(data.Connectors).Render(ctx, w); err != nil {
			return err
		}
		b.Reset()
		b.WriteString(`<form id="sync-form" method="post" action="/sync/run">`)
		b.WriteString(`<input type="hidden" name="csrf" value="` + esc(data.Layout.CSRFToken) + `"/>`)
		b.WriteString(`<button id="run-sync-btn" type="submit">Run sync</button>`)
		b.WriteString(`</form>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := SyncOutputRegion(data.SyncOutput).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func ordersPanel(data viewmodels.DashboardViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		header := `<section class="panel"><h2>Orders at risk</h2>` +
			`<button hx-get="/regions/orders" hx-target="#orders-region" hx-swap="outerHTML">Refresh</button>`
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		if err := OrdersRegion(data.Orders).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func alertsPanel(data viewmodels.DashboardViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		header := `<section class="panel"><h2>Open alerts</h2>` +
			`<button hx-get="/regions/alerts" hx-target="#alerts-region" hx-swap="outerHTML">Refresh</button>`
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		if err := AlertsRegion(data.Alerts, data.Layout.CSRFToken).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
