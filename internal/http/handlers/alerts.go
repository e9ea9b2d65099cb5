package handlers

import (
	"github.com/labstack/echo/v5"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
)

// HandleResolveAlert closes an open alert with an optional note and repaints
// the dashboard from the refreshed state.
func (h *Handlers) HandleResolveAlert(c *echo.Context) error {
	alertID := c.Param("id")
	note := c.FormValue("resolutionNote")

	view, dash := h.newSnapshot(c)
	if err := dash.ResolveAlert(c.Request().Context(), alertID, note); err != nil {
		return h.renderMutationError(c, viewmodels.ConnectorFormState{}, "Alert not resolved", err)
	}

	return h.renderSnapshot(c, view, viewmodels.ConnectorFormState{}, &viewmodels.ToastViewData{
		Category:    "success",
		Title:       "Alert resolved",
		Description: "The alert was closed.",
	})
}
