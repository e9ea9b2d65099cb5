package views

import (
	"strconv"

	"github.com/a-h/templ"
)

// Literal placeholder text rendered when a region has nothing to show.
const (
	OrdersPlaceholder = "No scored open orders yet. Run sync to generate data."
	AlertsPlaceholder = "No open alerts."
)

func esc(s string) string {
	return templ.EscapeString(s)
}

func FormatInt(v int) string {
	return strconv.Itoa(v)
}
