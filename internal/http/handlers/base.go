// Package handlers contains HTTP handler logic split by workflow.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/riskboard/riskboard/internal/backend"
	"github.com/riskboard/riskboard/internal/config"
	"github.com/riskboard/riskboard/internal/dashboard"
	"github.com/riskboard/riskboard/internal/http/viewmodels"
	"github.com/riskboard/riskboard/internal/http/views"
)

const (
	// ContextKeyRequestID stores the request id (X-Request-ID) for logging and client error references.
	ContextKeyRequestID = "request_id"

	// InternalErrorCode is a stable error code safe to return to clients.
	InternalErrorCode = "INTERNAL_ERROR"

	// sessionKeySyncOutput carries the last sync diagnostic payload so a
	// page reload keeps showing it until the next run overwrites it.
	sessionKeySyncOutput = "sync_output"

	pageTitle = "Supply-chain risk dashboard"
)

// Handlers groups all HTTP handlers and shared dependencies.
type Handlers struct {
	Cfg      config.Config
	Backend  *backend.Client
	Sessions *scs.SessionManager
}

// snapshotView accumulates the regions drawn by one request's refresh
// pass. Every request gets its own snapshot, so two in-flight requests can
// never interleave writes to one rendered picture.
type snapshotView struct {
	data viewmodels.DashboardViewData
}

func (v *snapshotView) ShowConnectors(items []dashboard.ConnectorItem) { v.data.Connectors = items }
func (v *snapshotView) ShowSummary(s dashboard.SummaryView)            { v.data.Summary = s }
func (v *snapshotView) ShowOrders(rows []dashboard.OrderRow)           { v.data.Orders = rows }
func (v *snapshotView) ShowAlerts(items []dashboard.AlertItem)         { v.data.Alerts = items }
func (v *snapshotView) ShowSyncOutput(payload string)                  { v.data.SyncOutput = payload }

func (h *Handlers) newSnapshot(c *echo.Context) (*snapshotView, *dashboard.Dashboard) {
	view := &snapshotView{}
	return view, dashboard.New(h.Backend, view, c.Logger())
}

func (h *Handlers) layoutData(c *echo.Context) viewmodels.LayoutData {
	csrfToken, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return viewmodels.LayoutData{
		Title:      pageTitle,
		CSRFToken:  csrfToken,
		TenantID:   h.Cfg.TenantID,
		UserID:     h.Cfg.UserID,
		UserRole:   h.Cfg.UserRole,
		ActivePath: c.Request().URL.Path,
	}
}

// renderSnapshot renders the dashboard page from an already-refreshed
// snapshot.
func (h *Handlers) renderSnapshot(c *echo.Context, view *snapshotView, form viewmodels.ConnectorFormState, toast *viewmodels.ToastViewData) error {
	data := view.data
	data.Layout = h.layoutData(c)
	data.Layout.Toast = toast
	data.ConnectorForm = form
	if data.SyncOutput == "" && h.Sessions != nil {
		data.SyncOutput = h.Sessions.GetString(c.Request().Context(), sessionKeySyncOutput)
	}
	return h.RenderComponent(c, views.DashboardPage(data))
}

// renderMutationError repaints the dashboard from current backend state
// with a blocking error toast. The failed mutation's form input is kept on
// screen untouched.
func (h *Handlers) renderMutationError(c *echo.Context, form viewmodels.ConnectorFormState, title string, err error) error {
	view, dash := h.newSnapshot(c)
	if refreshErr := dash.RefreshAll(c.Request().Context()); refreshErr != nil {
		return h.RenderError(c, refreshErr)
	}
	return h.renderSnapshot(c, view, form, &viewmodels.ToastViewData{
		Category:    "error",
		Title:       title,
		Description: dashboard.UserMessage(err),
	})
}

// RenderComponent renders a templ component as the response.
func (h *Handlers) RenderComponent(c *echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request().Context(), c.Response()); err != nil {
		return h.RenderError(c, err)
	}
	return nil
}

// RenderError returns a plain text error response.
func (h *Handlers) RenderError(c *echo.Context, err error) error {
	requestID, _ := c.Get(ContextKeyRequestID).(string)
	path := ""
	if req := c.Request(); req != nil && req.URL != nil {
		path = req.URL.Path
	}
	method := ""
	if req := c.Request(); req != nil {
		method = req.Method
	}
	c.Logger().Error("http error",
		"request_id", requestID,
		"method", method,
		"path", path,
		"ip", c.RealIP(),
		"error", err,
	)

	msg := "Internal server error."
	if requestID != "" {
		msg = fmt.Sprintf("%s Reference: %s.", msg, requestID)
	}
	msg = fmt.Sprintf("%s Code: %s.", msg, InternalErrorCode)
	return c.String(http.StatusInternalServerError, msg)
}

// RenderNotFound returns a 404 response.
func RenderNotFound(c *echo.Context) error {
	return c.String(http.StatusNotFound, "404 page not found")
}
