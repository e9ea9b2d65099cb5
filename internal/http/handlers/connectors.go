package handlers

import (
	"strings"

	"github.com/labstack/echo/v5"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
)

// HandleRegisterConnector registers an API-key connector for a supplier and
// repaints the whole dashboard from the state after the write. On failure the
// submitted form values stay on screen; on success the credential field is
// cleared and the supplier name kept for follow-up registrations.
func (h *Handlers) HandleRegisterConnector(c *echo.Context) error {
	supplierName := c.FormValue("supplierName")
	apiKey := c.FormValue("apiKey")

	view, dash := h.newSnapshot(c)
	if err := dash.RegisterConnector(c.Request().Context(), supplierName, apiKey); err != nil {
		form := viewmodels.ConnectorFormState{SupplierName: supplierName, APIKey: apiKey}
		return h.renderMutationError(c, form, "Connector not registered", err)
	}

	form := viewmodels.ConnectorFormState{SupplierName: supplierName}
	return h.renderSnapshot(c, view, form, &viewmodels.ToastViewData{
		Category:    "success",
		Title:       "Connector registered",
		Description: strings.TrimSpace(supplierName) + " is pending validation.",
	})
}
