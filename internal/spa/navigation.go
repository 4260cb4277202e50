package spa

// NavItem is one destination in the portal sidebar.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// navCatalog lists every destination the portal offers. Order matters: it is
// the order the client renders.
var navCatalog = []NavItem{
	{ID: "dashboard", Label: "Dashboard", Path: "/dashboard"},
	{ID: "profile", Label: "Spa Profile", Path: "/profile"},
	{ID: "therapists", Label: "Therapists", Path: "/therapists"},
	{ID: "services", Label: "Services", Path: "/services"},
	{ID: "payments", Label: "Payments", Path: "/payments"},
	{ID: "notifications", Label: "Notifications", Path: "/notifications"},
	{ID: "settings", Label: "Settings", Path: "/settings"},
}

// AllTabs returns the identifiers of every navigation destination.
func AllTabs() []string {
	tabs := make([]string, len(navCatalog))
	for i, item := range navCatalog {
		tabs[i] = item.ID
	}
	return tabs
}

// Navigation is the filtered destination list plus the status info the client
// uses for messaging.
type Navigation struct {
	Items      []NavItem `json:"items"`
	StatusInfo Policy    `json:"statusInfo"`
}
