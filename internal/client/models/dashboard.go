package models

// DashboardSummary is the payload of GET /dashboard/summary.php.
type DashboardSummary struct {
	User         *User          `json:"user"`
	Stats        map[string]any `json:"stats"`
	RecentDrills []DrillRecord  `json:"recent_drills"`
}
