package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskboard/riskboard/internal/backend"
	"github.com/riskboard/riskboard/internal/metrics"
)

// DefaultPollIntervalMinutes is always submitted for new connectors; the
// form exposes no override.
const DefaultPollIntervalMinutes = 1440

// ErrNoConnectorSelected is the local precondition failure for sync
// triggering. It is raised before any network call is made.
var ErrNoConnectorSelected = errors.New("Create a connector first.")

// ErrConnectorInput is raised when the register form is missing its
// required fields, before any network call.
var ErrConnectorInput = errors.New("supplier name and API key are required")

var validate = validator.New()

// RegisterConnector performs the register-connector workflow: validate,
// write, then full refresh. The caller owns clearing the credential input
// on success.
func (d *Dashboard) RegisterConnector(ctx context.Context, supplierName, apiKey string) error {
	req := backend.ConnectorCreate{
		SupplierName:        strings.TrimSpace(supplierName),
		AuthType:            "api_key",
		Credentials:         backend.Credentials{APIKey: apiKey},
		PollIntervalMinutes: DefaultPollIntervalMinutes,
	}
	if err := validate.Struct(req); err != nil {
		metrics.MutationsTotal.WithLabelValues("register_connector", "precondition").Inc()
		return ErrConnectorInput
	}

	if _, err := d.backend.CreateConnector(ctx, req); err != nil {
		metrics.MutationsTotal.WithLabelValues("register_connector", "error").Inc()
		return err
	}
	metrics.MutationsTotal.WithLabelValues("register_connector", "success").Inc()
	return d.RefreshAll(ctx)
}

// RunSync triggers an incremental sync for the selected connector, renders
// the backend's diagnostic payload into the sync output region, then
// refreshes every view. The pretty payload is also returned so callers can
// carry it across a redirect.
func (d *Dashboard) RunSync(ctx context.Context, connectorID string) (string, error) {
	if strings.TrimSpace(connectorID) == "" {
		metrics.MutationsTotal.WithLabelValues("run_sync", "precondition").Inc()
		return "", ErrNoConnectorSelected
	}

	raw, err := d.backend.RunSync(ctx, connectorID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("run_sync", "error").Inc()
		return "", err
	}
	metrics.MutationsTotal.WithLabelValues("run_sync", "success").Inc()

	payload := prettyJSON(raw)
	d.view.ShowSyncOutput(payload)
	return payload, d.RefreshAll(ctx)
}

// RetrySync queues another sync run for a connector, same display contract
// as RunSync.
func (d *Dashboard) RetrySync(ctx context.Context, connectorID string) (string, error) {
	if strings.TrimSpace(connectorID) == "" {
		metrics.MutationsTotal.WithLabelValues("retry_sync", "precondition").Inc()
		return "", ErrNoConnectorSelected
	}

	raw, err := d.backend.RetrySync(ctx, connectorID)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("retry_sync", "error").Inc()
		return "", err
	}
	metrics.MutationsTotal.WithLabelValues("retry_sync", "success").Inc()

	payload := prettyJSON(raw)
	d.view.ShowSyncOutput(payload)
	return payload, d.RefreshAll(ctx)
}

// ResolveAlert marks one alert resolved, then refreshes every view.
func (d *Dashboard) ResolveAlert(ctx context.Context, alertID, note string) error {
	if strings.TrimSpace(alertID) == "" {
		metrics.MutationsTotal.WithLabelValues("resolve_alert", "precondition").Inc()
		return errors.New("alert id is required")
	}

	if err := d.backend.ResolveAlert(ctx, alertID, note); err != nil {
		metrics.MutationsTotal.WithLabelValues("resolve_alert", "error").Inc()
		return err
	}
	metrics.MutationsTotal.WithLabelValues("resolve_alert", "success").Inc()
	return d.RefreshAll(ctx)
}

func prettyJSON(raw json.RawMessage) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
