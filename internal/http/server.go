// Package httpapp wires the echo server: routes, middleware, and the
// top-level error handler.
package httpapp

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/riskboard/riskboard/internal/backend"
	"github.com/riskboard/riskboard/internal/config"
	"github.com/riskboard/riskboard/internal/http/handlers"
)

// EchoServer is the HTTP server wrapper.
type EchoServer struct {
	h        *handlers.Handlers
	e        *echo.Echo
	sessions *scs.SessionManager
}

// NewEchoServer creates a new HTTP server.
func NewEchoServer(cfg config.Config, client *backend.Client, logger *slog.Logger) (*EchoServer, error) {
	sessions := scs.New()
	sessions.Lifetime = 12 * time.Hour
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode

	h := &handlers.Handlers{Cfg: cfg, Backend: client, Sessions: sessions}
	es := &EchoServer{h: h, e: echo.New(), sessions: sessions}
	if logger != nil {
		es.e.Logger = logger
	}
	es.e.HTTPErrorHandler = es.httpErrorHandler
	es.registerRoutes()
	return es, nil
}

func (es *EchoServer) registerRoutes() {
	es.e.Use(requestIDMiddleware)
	es.e.GET("/healthz", es.h.HandleHealthz)

	authed := es.e.Group("")
	authed.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	authed.GET("/", es.h.HandleDashboard)
	authed.GET("/regions/connectors", es.h.HandleConnectorsRegion)
	authed.GET("/regions/summary", es.h.HandleSummaryRegion)
	authed.GET("/regions/orders", es.h.HandleOrdersRegion)
	authed.GET("/regions/alerts", es.h.HandleAlertsRegion)
	authed.POST("/connectors", es.h.HandleRegisterConnector)
	authed.POST("/sync/run", es.h.HandleRunSync)
	authed.POST("/alerts/:id/resolve", es.h.HandleResolveAlert)

	es.e.Static("/static", "web/static")
}

// Handler returns the full request pipeline with session management applied.
// Serve this instead of the raw echo instance.
func (es *EchoServer) Handler() http.Handler {
	return es.sessions.LoadAndSave(es.e)
}

func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		id := strings.TrimSpace(c.Request().Header.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(handlers.ContextKeyRequestID, id)
		c.Response().Header().Set("X-Request-ID", id)
		return next(c)
	}
}

// httpErrorHandler keeps error details out of responses. Internal failures
// get a generic message with the request reference; client errors get bare
// status text.
func (es *EchoServer) httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	status := httpStatusFromError(err)
	switch {
	case status == http.StatusNotFound:
		_ = handlers.RenderNotFound(c)
	case status >= 400 && status < 500:
		_ = c.String(status, http.StatusText(status))
	default:
		_ = es.h.RenderError(c, err)
	}
}

func httpStatusFromError(err error) int {
	var sc echo.HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}
