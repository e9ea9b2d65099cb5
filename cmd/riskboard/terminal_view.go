package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riskboard/riskboard/internal/dashboard"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	redStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	yellowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	greenStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// terminalView renders each region to the terminal as it arrives. Loaders
// run in a fixed order, so sections print in that order.
type terminalView struct {
	w io.Writer
}

func newTerminalView(w io.Writer) *terminalView {
	return &terminalView{w: w}
}

func (v *terminalView) ShowConnectors(items []dashboard.ConnectorItem) {
	fmt.Fprintln(v.w, sectionStyle.Render("Connectors"))
	if len(items) == 0 {
		fmt.Fprintln(v.w, dimStyle.Render("  none registered"))
	}
	for _, item := range items {
		fmt.Fprintf(v.w, "  %s  %s\n", statusBadge(item.Status), item.SummaryText)
	}
	fmt.Fprintln(v.w)
}

func (v *terminalView) ShowSummary(s dashboard.SummaryView) {
	fmt.Fprintln(v.w, sectionStyle.Render("Summary"))
	fmt.Fprintf(v.w, "  %s red  %s yellow  %s green  %d open alerts\n",
		redStyle.Render(fmt.Sprintf("%d", s.RedCount)),
		yellowStyle.Render(fmt.Sprintf("%d", s.YellowCount)),
		greenStyle.Render(fmt.Sprintf("%d", s.GreenCount)),
		s.OpenAlerts,
	)
	fmt.Fprintln(v.w, "  "+dimStyle.Render(s.SyncLine))
	fmt.Fprintln(v.w)
}

func (v *terminalView) ShowOrders(rows []dashboard.OrderRow) {
	fmt.Fprintln(v.w, sectionStyle.Render("Orders at risk"))
	if len(rows) == 0 {
		fmt.Fprintln(v.w, dimStyle.Render("  No scored open orders yet. Run sync to generate data."))
	}
	for _, row := range rows {
		fmt.Fprintf(v.w, "  %s  %s %s %s eta %s score %s\n",
			statusBadge(row.Status), row.ProjectID, row.SupplierOrderID, row.MaterialName, row.ETADate, row.Score)
		if row.Reasons != "" {
			fmt.Fprintln(v.w, "      "+dimStyle.Render(row.Reasons))
		}
	}
	fmt.Fprintln(v.w)
}

func (v *terminalView) ShowAlerts(items []dashboard.AlertItem) {
	fmt.Fprintln(v.w, sectionStyle.Render("Open alerts"))
	if len(items) == 0 {
		fmt.Fprintln(v.w, dimStyle.Render("  No open alerts."))
	}
	for _, item := range items {
		fmt.Fprintf(v.w, "  %s  %s\n", statusBadge(item.Severity), item.Message)
		if item.Actions != "" {
			fmt.Fprintln(v.w, "      "+dimStyle.Render("Actions: "+item.Actions))
		}
	}
	fmt.Fprintln(v.w)
}

func (v *terminalView) ShowSyncOutput(payload string) {
	fmt.Fprintln(v.w, sectionStyle.Render("Sync output"))
	fmt.Fprintln(v.w, payload)
	fmt.Fprintln(v.w)
}

func statusBadge(status string) string {
	switch status {
	case "red":
		return redStyle.Render("RED")
	case "yellow":
		return yellowStyle.Render("YEL")
	case "green", "active":
		return greenStyle.Render(abbrev(status))
	default:
		return dimStyle.Render(abbrev(status))
	}
}

func abbrev(status string) string {
	if len(status) > 3 {
		status = status[:3]
	}
	return strings.ToUpper(status)
}
