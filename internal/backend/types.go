package backend

import "time"

// Connector is a configured integration to one supplier's data source. The
// backend owns its lifecycle; this client only creates and lists them.
type Connector struct {
	ID                  string     `json:"id"`
	SupplierName        string     `json:"supplierName"`
	AuthType            string     `json:"authType"`
	Status              string     `json:"status"`
	PollIntervalMinutes int        `json:"pollIntervalMinutes"`
	LastSyncAt          *time.Time `json:"lastSyncAt"`
}

// Summary is the singleton dashboard rollup, recomputed server-side on
// every fetch. Its counts may come from a broader query scope than the
// orders page and are never reconciled against it.
type Summary struct {
	RedCount    int        `json:"redCount"`
	YellowCount int        `json:"yellowCount"`
	GreenCount  int        `json:"greenCount"`
	OpenAlerts  int        `json:"openAlerts"`
	SyncHealth  string     `json:"syncHealth"`
	LastSyncAt  *time.Time `json:"lastSyncAt"`
}

// RiskOrder is a read-only projection of one scored open order line.
type RiskOrder struct {
	ProjectID       string   `json:"projectId"`
	SupplierOrderID string   `json:"supplierOrderId"`
	MaterialName    string   `json:"materialName"`
	ETADate         string   `json:"etaDate"`
	RiskScore       float64  `json:"riskScore"`
	Status          string   `json:"status"`
	ReasonCodes     []string `json:"reasonCodes"`
}

// Alert is a backend-raised risk notification. Display order is server
// order; the client imposes no severity sort.
type Alert struct {
	ID              string   `json:"id"`
	Severity        string   `json:"severity"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

// Credentials is the opaque, write-only secret blob submitted when a
// connector is registered.
type Credentials struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// ConnectorCreate is the register-connector request payload.
type ConnectorCreate struct {
	SupplierName        string      `json:"supplierName" validate:"required"`
	AuthType            string      `json:"authType" validate:"required,eq=api_key"`
	Credentials         Credentials `json:"credentials"`
	PollIntervalMinutes int         `json:"pollIntervalMinutes" validate:"min=1"`
}

// SyncRequest triggers one backend sync job for a connector.
type SyncRequest struct {
	ConnectorID string `json:"connectorId"`
	Mode        string `json:"mode"`
}

type resolveAlertRequest struct {
	ResolutionNote string `json:"resolutionNote"`
}

type itemsEnvelope[T any] struct {
	Items []T `json:"items"`
}
