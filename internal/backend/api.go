package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ModeIncremental is the only sync mode this client submits.
const ModeIncremental = "incremental"

// ListConnectors fetches the full connector collection.
func (c *Client) ListConnectors(ctx context.Context) ([]Connector, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/api/integrations/suppliers", nil, nil)
	if err != nil {
		return nil, err
	}
	var payload itemsEnvelope[Connector]
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode connectors: %w", err)
	}
	return payload.Items, nil
}

// CreateConnector registers a new supplier connector and returns the
// created record. Response fields beyond Connector are ignored.
func (c *Client) CreateConnector(ctx context.Context, req ConnectorCreate) (Connector, error) {
	raw, err := c.Call(ctx, http.MethodPost, "/api/integrations/suppliers", req, nil)
	if err != nil {
		return Connector{}, err
	}
	var created Connector
	if err := json.Unmarshal(raw, &created); err != nil {
		return Connector{}, fmt.Errorf("decode created connector: %w", err)
	}
	return created, nil
}

// Summary fetches the singleton dashboard rollup.
func (c *Client) Summary(ctx context.Context) (Summary, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/api/dashboard/summary", nil, nil)
	if err != nil {
		return Summary{}, err
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return Summary{}, fmt.Errorf("decode summary: %w", err)
	}
	return summary, nil
}

// RiskOrders fetches at most pageSize risk-scored open orders.
func (c *Client) RiskOrders(ctx context.Context, pageSize int) ([]RiskOrder, error) {
	raw, err := c.Call(ctx, http.MethodGet, fmt.Sprintf("/api/orders/risk?pageSize=%d", pageSize), nil, nil)
	if err != nil {
		return nil, err
	}
	var payload itemsEnvelope[RiskOrder]
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode risk orders: %w", err)
	}
	return payload.Items, nil
}

// OpenAlerts fetches alerts filtered server-side to status=open.
func (c *Client) OpenAlerts(ctx context.Context) ([]Alert, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/api/alerts?status=open", nil, nil)
	if err != nil {
		return nil, err
	}
	var payload itemsEnvelope[Alert]
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return payload.Items, nil
}

// RunSync triggers an incremental sync job for a connector and returns the
// backend's diagnostic payload verbatim.
func (c *Client) RunSync(ctx context.Context, connectorID string) (json.RawMessage, error) {
	return c.Call(ctx, http.MethodPost, "/api/sync/run", SyncRequest{
		ConnectorID: connectorID,
		Mode:        ModeIncremental,
	}, nil)
}

// RetrySync queues another incremental sync run for a connector.
func (c *Client) RetrySync(ctx context.Context, connectorID string) (json.RawMessage, error) {
	return c.Call(ctx, http.MethodPost, "/api/integrations/"+url.PathEscape(connectorID)+"/retry", nil, nil)
}

// ResolveAlert marks one alert resolved.
func (c *Client) ResolveAlert(ctx context.Context, alertID, note string) error {
	_, err := c.Call(ctx, http.MethodPost, "/api/alerts/"+url.PathEscape(alertID)+"/resolve", resolveAlertRequest{
		ResolutionNote: note,
	}, nil)
	return err
}
