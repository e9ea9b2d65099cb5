package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/riskboard/riskboard/internal/dashboard"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
)

func renderViewComponent(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func assertContains(t *testing.T, html, want string) {
	t.Helper()
	if !strings.Contains(html, want) {
		t.Fatalf("rendered output missing %q:\n%s", want, html)
	}
}

func TestBadgeUppercasesLabelAndKeepsRawClass(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, Badge("red"))
	if html != `<span class="badge red">RED</span>` {
		t.Fatalf("badge = %q", html)
	}
}

func TestConnectorsRegionRebuildsListAndSelector(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, ConnectorsRegion([]dashboard.ConnectorItem{
		{ID: "c1", Status: "active", SummaryText: "Acme Filters · active · poll 1440m", OptionLabel: "Acme Filters (active)"},
		{ID: "c2", Status: "pending_validation", SummaryText: "Borealis · pending_validation · poll 1440m", OptionLabel: "Borealis (pending_validation)"},
	}))

	assertContains(t, html, `<li>Acme Filters · active · poll 1440m</li>`)
	assertContains(t, html, `<option value="c1">Acme Filters (active)</option>`)
	assertContains(t, html, `<option value="c2">Borealis (pending_validation)</option>`)
	assertContains(t, html, `form="sync-form"`)
}

func TestSummaryRegionFields(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, SummaryRegion(dashboard.SummaryView{
		RedCount:    3,
		YellowCount: 2,
		GreenCount:  14,
		OpenAlerts:  5,
		SyncLine:    "Sync: healthy · last sync 2026-08-30 09:15 UTC",
	}))

	assertContains(t, html, `<span id="red-count">3</span>`)
	assertContains(t, html, `<span id="open-alerts">5</span>`)
	assertContains(t, html, `Sync: healthy · last sync 2026-08-30 09:15 UTC`)
}

func TestOrdersRegionEmptyRendersPlaceholder(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, OrdersRegion(nil))
	assertContains(t, html, OrdersPlaceholder)
}

func TestOrdersRegionRow(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, OrdersRegion([]dashboard.OrderRow{{
		Status:          "yellow",
		ProjectID:       "proj-1",
		SupplierOrderID: "po-77",
		MaterialName:    "Steel plate",
		ETADate:         "2026-09-15",
		Score:           "0.50",
		Reasons:         "eta_slip, short_delivery",
	}}))

	assertContains(t, html, `<span class="badge yellow">YELLOW</span>`)
	assertContains(t, html, `<td>0.50</td>`)
	assertContains(t, html, `<td>eta_slip, short_delivery</td>`)
	if strings.Contains(html, OrdersPlaceholder) {
		t.Fatal("placeholder rendered alongside rows")
	}
}

func TestAlertsRegionEmptyRendersPlaceholder(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, AlertsRegion(nil, "csrf-token"))
	assertContains(t, html, AlertsPlaceholder)
}

func TestAlertsRegionEntryWithResolveForm(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, AlertsRegion([]dashboard.AlertItem{{
		ID:       "a1",
		Severity: "red",
		Message:  "PO po-77 at risk",
		Actions:  "Call supplier | Find alternate source",
	}}, "csrf-token-123"))

	assertContains(t, html, `<span class="badge red">RED</span>`)
	assertContains(t, html, `Actions: Call supplier | Find alternate source`)
	assertContains(t, html, `action="/alerts/a1/resolve"`)
	assertContains(t, html, `name="csrf" value="csrf-token-123"`)
}

func TestDashboardPagePreservesSupplierNameNotCredential(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, DashboardPage(viewmodels.DashboardViewData{
		Layout:        viewmodels.LayoutData{Title: "Riskboard", CSRFToken: "tok"},
		ConnectorForm: viewmodels.ConnectorFormState{SupplierName: "Acme Filters"},
	}))

	assertContains(t, html, `name="supplierName" placeholder="Supplier name" required value="Acme Filters"`)
	assertContains(t, html, `name="apiKey" type="password" placeholder="API key" required value=""`)
	assertContains(t, html, OrdersPlaceholder)
	assertContains(t, html, AlertsPlaceholder)
}

func TestLayoutRendersToast(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, Layout(viewmodels.LayoutData{
		Title: "Riskboard",
		Toast: &viewmodels.ToastViewData{Category: "error", Title: "Sync failed", Description: "manual sync is rate limited"},
	}, nil))

	assertContains(t, html, `class="toast toast-error"`)
	assertContains(t, html, `manual sync is rate limited`)
}
