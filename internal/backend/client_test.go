package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testIdentity() Identity {
	return Identity{TenantID: "demo-tenant", UserID: "demo-user", Role: "owner"}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, testIdentity(), 5*time.Second)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestCallErrorDetailExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "string detail", body: `{"detail":"connector not found"}`, want: "connector not found"},
		{name: "object detail", body: `{"detail":{"field":"supplierName","reason":"unsupported"}}`, want: `{"field":"supplierName","reason":"unsupported"}`},
		{name: "array detail", body: `{"detail":["a","b"]}`, want: `["a","b"]`},
		{name: "unparsable body", body: `<html>gateway timeout</html>`, want: "Request failed"},
		{name: "empty body", body: ``, want: "Request failed"},
		{name: "json without detail", body: `{"error":"nope"}`, want: "Request failed"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.Call(context.Background(), http.MethodGet, "/api/dashboard/summary", nil, nil)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("Call() error = %v, want *RequestError", err)
			}
			if reqErr.Status != http.StatusBadRequest {
				t.Fatalf("Status = %d, want 400", reqErr.Status)
			}
			if reqErr.Detail != tc.want {
				t.Fatalf("Detail = %q, want %q", reqErr.Detail, tc.want)
			}
		})
	}
}

func TestCallAttachesIdentityHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	})

	if _, err := c.Call(context.Background(), http.MethodGet, "/api/dashboard/summary", nil, nil); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	want := map[string]string{
		"Content-Type": "application/json",
		"X-Tenant-Id":  "demo-tenant",
		"X-User-Id":    "demo-user",
		"X-User-Role":  "owner",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Fatalf("header %s = %q, want %q", key, got.Get(key), value)
		}
	}
}

func TestCallCallerHeadersWinOnConflict(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	})

	extra := http.Header{}
	extra.Set("X-User-Role", "viewer")
	extra.Set("X-Trace-Id", "trace-1")
	if _, err := c.Call(context.Background(), http.MethodGet, "/api/alerts?status=open", nil, extra); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if got.Get("X-User-Role") != "viewer" {
		t.Fatalf("X-User-Role = %q, want caller override %q", got.Get("X-User-Role"), "viewer")
	}
	if got.Get("X-Tenant-Id") != "demo-tenant" {
		t.Fatalf("X-Tenant-Id = %q, want fixed header to survive", got.Get("X-Tenant-Id"))
	}
	if got.Get("X-Trace-Id") != "trace-1" {
		t.Fatalf("X-Trace-Id = %q, want %q", got.Get("X-Trace-Id"), "trace-1")
	}
}

func TestRunSyncPostsIncrementalMode(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody SyncRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode sync request: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"run-1","status":"queued"}`))
	})

	raw, err := c.RunSync(context.Background(), "conn-7")
	if err != nil {
		t.Fatalf("RunSync() error = %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/sync/run" {
		t.Fatalf("request = %s %s, want POST /api/sync/run", gotMethod, gotPath)
	}
	if gotBody.ConnectorID != "conn-7" || gotBody.Mode != ModeIncremental {
		t.Fatalf("body = %+v, want connectorId=conn-7 mode=incremental", gotBody)
	}
	if string(raw) != `{"id":"run-1","status":"queued"}` {
		t.Fatalf("raw payload = %s, want backend body verbatim", raw)
	}
}

func TestListConnectorsDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/integrations/suppliers" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"c1","supplierName":"Acme Filters","status":"active","pollIntervalMinutes":1440}]}`))
	})

	items, err := c.ListConnectors(context.Background())
	if err != nil {
		t.Fatalf("ListConnectors() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].SupplierName != "Acme Filters" || items[0].PollIntervalMinutes != 1440 {
		t.Fatalf("item = %+v", items[0])
	}
}

func TestRiskOrdersSendsPageSize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pageSize"); got != "100" {
			t.Errorf("pageSize = %q, want 100", got)
		}
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	if _, err := c.RiskOrders(context.Background(), 100); err != nil {
		t.Fatalf("RiskOrders() error = %v", err)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New("  ", testIdentity(), 0); err == nil {
		t.Fatal("New() expected error for empty base URL")
	}
}
