package handlers

import (
	"github.com/labstack/echo/v5"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
)

// HandleRunSync starts an incremental sync for the selected connector and
// renders the refreshed dashboard with the run's diagnostic payload. The
// payload is also stashed in the session so later page loads keep showing it
// until the next run overwrites it.
func (h *Handlers) HandleRunSync(c *echo.Context) error {
	ctx := c.Request().Context()
	connectorID := c.FormValue("connectorId")

	view, dash := h.newSnapshot(c)
	output, err := dash.RunSync(ctx, connectorID)
	if err != nil {
		return h.renderMutationError(c, viewmodels.ConnectorFormState{}, "Sync not started", err)
	}

	if h.Sessions != nil {
		h.Sessions.Put(ctx, sessionKeySyncOutput, output)
	}
	return h.renderSnapshot(c, view, viewmodels.ConnectorFormState{}, &viewmodels.ToastViewData{
		Category:    "success",
		Title:       "Sync started",
		Description: "Incremental sync accepted by the backend.",
	})
}
