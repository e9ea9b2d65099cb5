package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskboard/riskboard/internal/metrics"
)

const (
	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 1 << 20 // 1 MiB

	// fallbackErrorMessage is reported when an error body carries no
	// usable detail. Decode failures degrade to it, they never escalate.
	fallbackErrorMessage = "Request failed"
)

// Identity is the caller context attached to every backend request. A real
// deployment sources it from an authenticated session; the demo CLI and
// server inject fixed values from config.
type Identity struct {
	TenantID string
	UserID   string
	Role     string
}

// RequestError is returned for any non-2xx backend response.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	return e.Detail
}

// Client is the HTTP transport to the risk platform backend.
type Client struct {
	baseURL    string
	identity   Identity
	httpClient *http.Client
}

// New creates a backend client. It validates that baseURL is provided.
func New(baseURL string, identity Identity, timeout time.Duration) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    base,
		identity:   identity,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Call performs one backend request. Fixed identity headers are attached
// first; entries in extra win on conflicting keys. On a non-2xx response
// the returned error is a *RequestError whose message follows the detail
// extraction contract.
func (c *Client) Call(ctx context.Context, method, path string, body any, extra http.Header) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-Id", c.identity.TenantID)
	req.Header.Set("X-User-Id", c.identity.UserID)
	req.Header.Set("X-User-Role", c.identity.Role)
	for key, values := range extra {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(method, metricPath(path)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(method, metricPath(path), "transport_error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(method, metricPath(path), strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &RequestError{Status: resp.StatusCode, Detail: detailMessage(errBody)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// detailMessage extracts a human-readable message from an error body. A
// string detail is used verbatim; a structured detail is serialized back to
// compact JSON; anything else degrades to the fixed fallback.
func detailMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return fallbackErrorMessage
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, payload.Detail); err != nil {
		return fallbackErrorMessage
	}
	return compact.String()
}

// metricPath strips the query string so pageSize and filters do not fan out
// the label space.
func metricPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
