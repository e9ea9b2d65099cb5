// Package dashboard is the refresh-and-render orchestration core: it pulls
// the four backend views (connectors, summary, risk orders, open alerts)
// into a render surface and drives the user-triggered write workflows.
package dashboard

import (
	"errors"
	"log/slog"

	"github.com/riskboard/riskboard/internal/backend"
)

// OrdersPageSize bounds the risk-orders fetch. The dashboard never pages
// past the first page.
const OrdersPageSize = 100

// View is the render surface the loaders draw on. Each Show call replaces
// its region wholesale; implementations must not merge new content into
// old. Web, terminal, and in-memory test implementations exist.
type View interface {
	ShowConnectors(items []ConnectorItem)
	ShowSummary(summary SummaryView)
	ShowOrders(rows []OrderRow)
	ShowAlerts(items []AlertItem)
	ShowSyncOutput(payload string)
}

// Dashboard wires the backend client to a render surface.
type Dashboard struct {
	backend *backend.Client
	view    View
	log     *slog.Logger
}

func New(client *backend.Client, view View, log *slog.Logger) *Dashboard {
	if log == nil {
		log = slog.Default()
	}
	return &Dashboard{backend: client, view: view, log: log}
}

// UserMessage converts a workflow error into the text shown to the
// operator. Backend detail strings pass through exactly.
func UserMessage(err error) string {
	var reqErr *backend.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Detail
	}
	return err.Error()
}
