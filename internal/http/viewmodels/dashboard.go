package viewmodels

import "github.com/riskboard/riskboard/internal/dashboard"

// ConnectorFormState is the transient register-form input carried across a
// render. On success only the credential is cleared; the supplier name
// survives.
type ConnectorFormState struct {
	SupplierName string
	APIKey       string
}

// DashboardViewData is one full snapshot of the four regions plus page
// chrome, produced by a single refresh pass.
type DashboardViewData struct {
	Layout        LayoutData
	Connectors    []dashboard.ConnectorItem
	Summary       dashboard.SummaryView
	Orders        []dashboard.OrderRow
	Alerts        []dashboard.AlertItem
	SyncOutput    string
	ConnectorForm ConnectorFormState
}
