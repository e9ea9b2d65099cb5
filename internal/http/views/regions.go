package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/riskboard/riskboard/internal/dashboard"
)

// Badge renders a status chip. The CSS class keeps the raw status value so
// stylesheets can hook each state; the label is uppercased for display.
func Badge(status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span class="badge %s">%s</span>`, esc(status), esc(strings.ToUpper(status)))
		return err
	})
}

// ConnectorsRegion renders the connector list and rebuilds the sync-target
// selector. The selector belongs to the sync form via the form attribute so
// the region can be swapped independently of it.
func ConnectorsRegion(items []dashboard.ConnectorItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="connectors-region">`)
		b.WriteString(`<ul id="connectors">`)
		for _, item := range items {
			b.WriteString(`<li>` + esc(item.SummaryText) + `</li>`)
		}
		b.WriteString(`</ul>`)
		b.WriteString(`<select id="sync-connector" name="connectorId" form="sync-form">`)
		for _, item := range items {
			b.WriteString(`<option value="` + esc(item.ID) + `">` + esc(item.OptionLabel) + `</option>`)
		}
		b.WriteString(`</select>`)
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SummaryRegion renders the five KPI display fields.
func SummaryRegion(s dashboard.SummaryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="summary-region" class="kpis">`)
		b.WriteString(`<div class="kpi red"><span id="red-count">` + FormatInt(s.RedCount) + `</span> red</div>`)
		b.WriteString(`<div class="kpi yellow"><span id="yellow-count">` + FormatInt(s.YellowCount) + `</span> yellow</div>`)
		b.WriteString(`<div class="kpi green"><span id="green-count">` + FormatInt(s.GreenCount) + `</span> green</div>`)
		b.WriteString(`<div class="kpi"><span id="open-alerts">` + FormatInt(s.OpenAlerts) + `</span> open alerts</div>`)
		b.WriteString(`<p id="sync-health">` + esc(s.SyncLine) + `</p>`)
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// OrdersRegion renders the risk-orders table body, or the placeholder row
// when the page is empty.
func OrdersRegion(rows []dashboard.OrderRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="orders-region"><table id="orders">`)
		b.WriteString(`<thead><tr><th>Status</th><th>Project</th><th>Order</th><th>Material</th><th>ETA</th><th>Score</th><th>Reasons</th></tr></thead>`)
		b.WriteString(`<tbody id="orders-body">`)
		if len(rows) == 0 {
			b.WriteString(`<tr><td colspan="7">` + esc(OrdersPlaceholder) + `</td></tr>`)
		}
		_, err := io.WriteString(w, b.String())
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := writeOrderRow(ctx, w, row); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}

func writeOrderRow(ctx context.Context, w io.Writer, row dashboard.OrderRow) error {
	if _, err := io.WriteString(w, `<tr><td>`); err != nil {
		return err
	}
	if err := Badge(row.Status).Render(ctx, w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
		esc(row.ProjectID), esc(row.SupplierOrderID), esc(row.MaterialName), esc(row.ETADate), esc(row.Score), esc(row.Reasons))
	return err
}

// AlertsRegion renders the open-alert list in server order, with a resolve
// action per entry.
func AlertsRegion(items []dashboard.AlertItem, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="alerts-region"><ul id="alerts">`)
		if len(items) == 0 {
			b.WriteString(`<li>` + esc(AlertsPlaceholder) + `</li>`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, item := range items {
			if err := writeAlertItem(ctx, w, item, csrfToken); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></div>`)
		return err
	})
}

func writeAlertItem(ctx context.Context, w io.Writer, item dashboard.AlertItem, csrfToken string) error {
	if _, err := io.WriteString(w, `<li>`); err != nil {
		return err
	}
	if err := Badge(item.Severity).Render(ctx, w); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(` ` + esc(item.Message) + `<br/>Actions: ` + esc(item.Actions))
	if item.ID != "" {
		b.WriteString(`<form method="post" action="/alerts/` + esc(item.ID) + `/resolve" class="resolve-alert">`)
		b.WriteString(`<input type="hidden" name="csrf" value="` + esc(csrfToken) + `"/>`)
		b.WriteString(`<input type="text" name="resolutionNote" placeholder="Resolution note"/>`)
		b.WriteString(`<button type="submit">Resolve</button>`)
		b.WriteString(`</form>`)
	}
	b.WriteString(`</li>`)
	_, err := io.WriteString(w, b.String())
	return err
}

// SyncOutputRegion renders the diagnostic payload of the last sync run.
func SyncOutputRegion(payload string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<pre id="sync-output">`+esc(payload)+`</pre>`)
		return err
	})
}
