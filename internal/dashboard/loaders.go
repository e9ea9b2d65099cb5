package dashboard

import (
	"context"
	"fmt"

	"github.com/riskboard/riskboard/internal/metrics"
)

// LoadConnectors replaces the connector list and the sync-target selector
// with the freshly fetched set. The selector is rebuilt wholesale; a prior
// selection does not survive.
func (d *Dashboard) LoadConnectors(ctx context.Context) error {
	connectors, err := d.backend.ListConnectors(ctx)
	if err != nil {
		metrics.LoaderFailuresTotal.WithLabelValues("connectors").Inc()
		return fmt.Errorf("load connectors: %w", err)
	}
	items := make([]ConnectorItem, 0, len(connectors))
	for _, c := range connectors {
		items = append(items, NewConnectorItem(c))
	}
	d.view.ShowConnectors(items)
	return nil
}

// LoadSummary replaces the five summary display fields.
func (d *Dashboard) LoadSummary(ctx context.Context) error {
	summary, err := d.backend.Summary(ctx)
	if err != nil {
		metrics.LoaderFailuresTotal.WithLabelValues("summary").Inc()
		return fmt.Errorf("load summary: %w", err)
	}
	d.view.ShowSummary(NewSummaryView(summary))
	return nil
}

// LoadOrders replaces the risk-orders table with at most one page.
func (d *Dashboard) LoadOrders(ctx context.Context) error {
	orders, err := d.backend.RiskOrders(ctx, OrdersPageSize)
	if err != nil {
		metrics.LoaderFailuresTotal.WithLabelValues("orders").Inc()
		return fmt.Errorf("load orders: %w", err)
	}
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, NewOrderRow(o))
	}
	d.view.ShowOrders(rows)
	return nil
}

// LoadAlerts replaces the open-alerts list.
func (d *Dashboard) LoadAlerts(ctx context.Context) error {
	alerts, err := d.backend.OpenAlerts(ctx)
	if err != nil {
		metrics.LoaderFailuresTotal.WithLabelValues("alerts").Inc()
		return fmt.Errorf("load alerts: %w", err)
	}
	items := make([]AlertItem, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, NewAlertItem(a))
	}
	d.view.ShowAlerts(items)
	return nil
}

// RefreshAll runs the four loaders in fixed order, each awaited to
// completion before the next. Connectors go first so the sync selector is
// ready before the sync controls render; the rest of the order keeps
// network traces reproducible. The first failure aborts the pass and
// propagates; the remaining regions keep whatever fetch they last showed.
func (d *Dashboard) RefreshAll(ctx context.Context) error {
	steps := []func(context.Context) error{
		d.LoadConnectors,
		d.LoadSummary,
		d.LoadOrders,
		d.LoadAlerts,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			metrics.RefreshPassesTotal.WithLabelValues("error").Inc()
			return err
		}
	}
	metrics.RefreshPassesTotal.WithLabelValues("success").Inc()
	return nil
}
