package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/riskboard/riskboard/internal/backend"
	"github.com/riskboard/riskboard/internal/config"
)

// stubBackend serves canned responses per "METHOD /path" route and counts
// requests for call-shape assertions.
type stubBackend struct {
	mu        sync.Mutex
	requests  []string
	responses map[string]func(w http.ResponseWriter, r *http.Request)
}

func newStubBackend() *stubBackend {
	sb := &stubBackend{responses: map[string]func(http.ResponseWriter, *http.Request){}}
	sb.respond("GET /api/integrations/suppliers", http.StatusOK, `{"items":[{"id":"c1","supplierName":"Acme Filters","status":"active","pollIntervalMinutes":1440}]}`)
	sb.respond("GET /api/dashboard/summary", http.StatusOK, `{"redCount":1,"yellowCount":2,"greenCount":3,"openAlerts":4,"syncHealth":"healthy","lastSyncAt":"2026-08-30T09:15:00Z"}`)
	sb.respond("GET /api/orders/risk", http.StatusOK, `{"items":[]}`)
	sb.respond("GET /api/alerts", http.StatusOK, `{"items":[]}`)
	return sb
}

func (sb *stubBackend) respond(route string, status int, body string) {
	sb.responses[route] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (sb *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	sb.mu.Lock()
	sb.requests = append(sb.requests, route)
	handler := sb.responses[route]
	sb.mu.Unlock()
	if handler == nil {
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

func (sb *stubBackend) countRequests(route string) int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	n := 0
	for _, got := range sb.requests {
		if got == route {
			n++
		}
	}
	return n
}

func newTestHandlers(t *testing.T, sb *stubBackend) *Handlers {
	t.Helper()
	srv := httptest.NewServer(sb)
	t.Cleanup(srv.Close)
	client, err := backend.New(srv.URL, backend.Identity{TenantID: "demo-tenant", UserID: "demo-user", Role: "owner"}, 5*time.Second)
	if err != nil {
		t.Fatalf("backend.New() error = %v", err)
	}
	return &Handlers{
		Cfg:     config.Config{TenantID: "demo-tenant", UserID: "demo-user", UserRole: "owner"},
		Backend: client,
	}
}

func newTestContext(t *testing.T, method, target string, form url.Values) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleDashboardRendersSnapshot(t *testing.T) {
	sb := newStubBackend()
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodGet, "http://example.com/", nil)

	if err := h.HandleDashboard(c); err != nil {
		t.Fatalf("HandleDashboard() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Acme Filters · active · poll 1440m",
		`<option value="c1">Acme Filters (active)</option>`,
		`<span id="red-count">1</span>`,
		"Sync: healthy · last sync 2026-08-30 09:15 UTC",
		"No scored open orders yet. Run sync to generate data.",
		"No open alerts.",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q:\n%s", want, body)
		}
	}
}

func TestHandleDashboardBootstrapFailureIsGeneric(t *testing.T) {
	sb := newStubBackend()
	sb.respond("GET /api/integrations/suppliers", http.StatusBadGateway, `{"detail":"upstream exploded"}`)
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodGet, "http://example.com/", nil)

	if err := h.HandleDashboard(c); err != nil {
		t.Fatalf("HandleDashboard() error = %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d want 500", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "upstream exploded") {
		t.Fatalf("response leaked backend detail: %q", body)
	}
	if !strings.Contains(body, "Internal server error") {
		t.Fatalf("response missing generic message: %q", body)
	}
	if sb.countRequests("GET /api/dashboard/summary") != 0 {
		t.Fatal("loaders after the failed one should not run")
	}
}

func TestHandleOrdersRegionReturnsFragmentOnly(t *testing.T) {
	sb := newStubBackend()
	sb.respond("GET /api/orders/risk", http.StatusOK, `{"items":[{"projectId":"proj-1","supplierOrderId":"po-77","materialName":"Steel plate","etaDate":"2026-09-15","riskScore":0.5,"status":"yellow","reasonCodes":["eta_slip"]}]}`)
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodGet, "http://example.com/regions/orders", nil)

	if err := h.HandleOrdersRegion(c); err != nil {
		t.Fatalf("HandleOrdersRegion() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `<td>0.50</td>`) {
		t.Fatalf("fragment missing score cell:\n%s", body)
	}
	if strings.Contains(body, "<html") {
		t.Fatal("region endpoint returned a full page")
	}
	if sb.countRequests("GET /api/integrations/suppliers") != 0 {
		t.Fatal("region refresh must fetch only its own region")
	}
}

func TestHandleRegisterConnectorFailureKeepsFormAndShowsDetail(t *testing.T) {
	sb := newStubBackend()
	sb.respond("POST /api/integrations/suppliers", http.StatusConflict, `{"detail":"connector already exists for tenant + supplier"}`)
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodPost, "http://example.com/connectors", url.Values{
		"supplierName": {"Acme Filters"},
		"apiKey":       {"key-123"},
	})

	if err := h.HandleRegisterConnector(c); err != nil {
		t.Fatalf("HandleRegisterConnector() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "connector already exists for tenant + supplier") {
		t.Fatalf("error toast missing backend detail:\n%s", body)
	}
	if !strings.Contains(body, `name="supplierName" placeholder="Supplier name" required value="Acme Filters"`) {
		t.Fatal("failed submit must keep the supplier name on screen")
	}
	if !strings.Contains(body, `name="apiKey" type="password" placeholder="API key" required value="key-123"`) {
		t.Fatal("failed submit must keep the credential on screen")
	}
}

func TestHandleRegisterConnectorSuccessClearsCredential(t *testing.T) {
	sb := newStubBackend()
	sb.respond("POST /api/integrations/suppliers", http.StatusCreated, `{"id":"c9","supplierName":"Acme Filters","status":"pending_validation","pollIntervalMinutes":1440}`)
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodPost, "http://example.com/connectors", url.Values{
		"supplierName": {"Acme Filters"},
		"apiKey":       {"key-123"},
	})

	if err := h.HandleRegisterConnector(c); err != nil {
		t.Fatalf("HandleRegisterConnector() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "toast toast-success") {
		t.Fatalf("success toast missing:\n%s", body)
	}
	if !strings.Contains(body, `name="supplierName" placeholder="Supplier name" required value="Acme Filters"`) {
		t.Fatal("supplier name should survive a successful registration")
	}
	if !strings.Contains(body, `name="apiKey" type="password" placeholder="API key" required value=""`) {
		t.Fatal("credential input must be cleared after success")
	}
	if sb.countRequests("GET /api/dashboard/summary") != 1 {
		t.Fatal("successful registration must be followed by one refresh pass")
	}
}

func TestHandleRunSyncWithoutSelectionMakesNoBackendCalls(t *testing.T) {
	sb := newStubBackend()
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodPost, "http://example.com/sync/run", url.Values{
		"connectorId": {"   "},
	})

	if err := h.HandleRunSync(c); err != nil {
		t.Fatalf("HandleRunSync() error = %v", err)
	}
	if sb.countRequests("POST /api/sync/run") != 0 {
		t.Fatal("precondition failure must not reach the backend")
	}
	if !strings.Contains(rec.Body.String(), "Create a connector first.") {
		t.Fatalf("precondition message missing:\n%s", rec.Body.String())
	}
}

func TestHandleRunSyncRendersDiagnosticPayload(t *testing.T) {
	sb := newStubBackend()
	sb.respond("POST /api/sync/run", http.StatusAccepted, `{"id":"run-1","status":"queued"}`)
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodPost, "http://example.com/sync/run", url.Values{
		"connectorId": {"c1"},
	})

	if err := h.HandleRunSync(c); err != nil {
		t.Fatalf("HandleRunSync() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "&#34;status&#34;: &#34;queued&#34;") {
		t.Fatalf("sync output missing pretty payload:\n%s", body)
	}
	if !strings.Contains(body, "toast toast-success") {
		t.Fatal("success toast missing after sync run")
	}
}

func TestHandleResolveAlertPostsNoteAndRefreshes(t *testing.T) {
	sb := newStubBackend()
	sb.respond("POST /api/alerts/a1/resolve", http.StatusOK, `{"id":"a1","status":"resolved"}`)
	h := newTestHandlers(t, sb)
	c, rec := newTestContext(t, http.MethodPost, "http://example.com/alerts/a1/resolve", url.Values{
		"resolutionNote": {"handled by phone"},
	})
	c.SetPathValues(echo.PathValues{{Name: "id", Value: "a1"}})

	if err := h.HandleResolveAlert(c); err != nil {
		t.Fatalf("HandleResolveAlert() error = %v", err)
	}
	if sb.countRequests("POST /api/alerts/a1/resolve") != 1 {
		t.Fatal("resolve endpoint not called exactly once")
	}
	if sb.countRequests("GET /api/alerts") != 1 {
		t.Fatal("alerts must be refetched after a resolve")
	}
	if !strings.Contains(rec.Body.String(), "toast toast-success") {
		t.Fatalf("success toast missing:\n%s", rec.Body.String())
	}
}
