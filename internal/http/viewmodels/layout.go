package viewmodels

// LayoutData is the common page chrome for every rendered view.
type LayoutData struct {
	Title      string
	CSRFToken  string
	TenantID   string
	UserID     string
	UserRole   string
	ActivePath string
	Toast      *ToastViewData
}
