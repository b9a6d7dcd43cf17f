package postgres

import "wastetrack/internal/service"

var (
	_ service.CenterRepository = (*CenterRepo)(nil)
	_ service.ReportRepository = (*ReportRepo)(nil)
	_ service.UserRepository   = (*UserRepo)(nil)
	_ service.StatsRepository  = (*StatsRepo)(nil)
)
