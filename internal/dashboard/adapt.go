package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskboard/riskboard/internal/backend"
)

const (
	lastSyncLayout = "2006-01-02 15:04 MST"

	reasonSeparator = ", "
	actionSeparator = " | "
)

// ConnectorItem is one connector as displayed in the list and in the
// sync-target selector.
type ConnectorItem struct {
	ID          string
	Status      string
	SummaryText string
	OptionLabel string
}

func NewConnectorItem(c backend.Connector) ConnectorItem {
	return ConnectorItem{
		ID:          c.ID,
		Status:      c.Status,
		SummaryText: fmt.Sprintf("%s · %s · poll %dm", c.SupplierName, c.Status, c.PollIntervalMinutes),
		OptionLabel: fmt.Sprintf("%s (%s)", c.SupplierName, c.Status),
	}
}

// SummaryView carries the five summary display fields.
type SummaryView struct {
	RedCount    int
	YellowCount int
	GreenCount  int
	OpenAlerts  int
	SyncLine    string
}

func NewSummaryView(s backend.Summary) SummaryView {
	line := "Sync: " + s.SyncHealth
	if s.LastSyncAt != nil {
		line = fmt.Sprintf("Sync: %s · last sync %s", s.SyncHealth, s.LastSyncAt.Format(lastSyncLayout))
	}
	return SummaryView{
		RedCount:    s.RedCount,
		YellowCount: s.YellowCount,
		GreenCount:  s.GreenCount,
		OpenAlerts:  s.OpenAlerts,
		SyncLine:    line,
	}
}

// OrderRow is one risk order formatted for display. All fields are
// verbatim except Score (two decimals) and Reasons (joined).
type OrderRow struct {
	Status          string
	ProjectID       string
	SupplierOrderID string
	MaterialName    string
	ETADate         string
	Score           string
	Reasons         string
}

func NewOrderRow(o backend.RiskOrder) OrderRow {
	return OrderRow{
		Status:          o.Status,
		ProjectID:       o.ProjectID,
		SupplierOrderID: o.SupplierOrderID,
		MaterialName:    o.MaterialName,
		ETADate:         o.ETADate,
		Score:           FormatScore(o.RiskScore),
		Reasons:         strings.Join(o.ReasonCodes, reasonSeparator),
	}
}

// AlertItem is one open alert formatted for display, server order
// preserved.
type AlertItem struct {
	ID       string
	Severity string
	Message  string
	Actions  string
}

func NewAlertItem(a backend.Alert) AlertItem {
	return AlertItem{
		ID:       a.ID,
		Severity: a.Severity,
		Message:  a.Message,
		Actions:  strings.Join(a.Recommendations, actionSeparator),
	}
}

// FormatScore renders a risk score with exactly two decimal digits.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
