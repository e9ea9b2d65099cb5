package viewmodels

// ToastViewData is a one-shot notification shown at the top of the page.
type ToastViewData struct {
	Category    string
	Title       string
	Description string
}
