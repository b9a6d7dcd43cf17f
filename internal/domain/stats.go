package domain

type StatusCounts struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

type CitizenDashboard struct {
	Counts        StatusCounts   `json:"counts"`
	RecentReports []*WasteReport `json:"recent_reports"`
}

type StaffDashboard struct {
	Center        *RecyclingCenter `json:"center"`
	Counts        StatusCounts     `json:"counts"`
	RecentReports []*WasteReport   `json:"recent_reports"`
}

type AdminDashboard struct {
	Reports       StatusCounts   `json:"reports"`
	TotalCenters  int64          `json:"total_centers"`
	TotalUsers    int64          `json:"total_users"`
	TotalCitizens int64          `json:"total_citizens"`
	TotalStaff    int64          `json:"total_staff"`
	RecentReports []*WasteReport `json:"recent_reports"`
}

type AreaStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type Statistics struct {
	StatusStats StatusCounts `json:"status_stats"`
	AreaStats   []AreaStat   `json:"area_stats"`
}
