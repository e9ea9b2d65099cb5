package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
	"github.com/riskboard/riskboard/internal/http/views"
)

// HandleDashboard runs one full refresh pass and renders the dashboard page.
func (h *Handlers) HandleDashboard(c *echo.Context) error {
	view, dash := h.newSnapshot(c)
	if err := dash.RefreshAll(c.Request().Context()); err != nil {
		return h.RenderError(c, err)
	}
	return h.renderSnapshot(c, view, viewmodels.ConnectorFormState{}, nil)
}

// HandleConnectorsRegion returns the connectors fragment for partial swaps.
func (h *Handlers) HandleConnectorsRegion(c *echo.Context) error {
	view, dash := h.newSnapshot(c)
	if err := dash.LoadConnectors(c.Request().Context()); err != nil {
		return h.RenderError(c, err)
	}
	return h.RenderComponent(c, views.ConnectorsRegion(view.data.Connectors))
}

// HandleSummaryRegion returns the KPI summary fragment.
func (h *Handlers) HandleSummaryRegion(c *echo.Context) error {
	view, dash := h.newSnapshot(c)
	if err := dash.LoadSummary(c.Request().Context()); err != nil {
		return h.RenderError(c, err)
	}
	return h.RenderComponent(c, views.SummaryRegion(view.data.Summary))
}

// HandleOrdersRegion returns the risk-orders fragment.
func (h *Handlers) HandleOrdersRegion(c *echo.Context) error {
	view, dash := h.newSnapshot(c)
	if err := dash.LoadOrders(c.Request().Context()); err != nil {
		return h.RenderError(c, err)
	}
	return h.RenderComponent(c, views.OrdersRegion(view.data.Orders))
}

// HandleAlertsRegion returns the open-alerts fragment.
func (h *Handlers) HandleAlertsRegion(c *echo.Context) error {
	view, dash := h.newSnapshot(c)
	if err := dash.LoadAlerts(c.Request().Context()); err != nil {
		return h.RenderError(c, err)
	}
	csrfToken := h.layoutData(c).CSRFToken
	return h.RenderComponent(c, views.AlertsRegion(view.data.Alerts, csrfToken))
}

// HandleHealthz reports process liveness. It does not call the backend.
func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
