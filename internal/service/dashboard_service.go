package service

import (
	"context"
	"errors"
	"log/slog"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"

	"github.com/google/uuid"
)

const (
	citizenRecent = 5
	staffRecent   = 10
	adminRecent   = 10
)

type DashboardService struct {
	reports ReportRepository
	centers CenterRepository
	stats   StatsRepository
	logger  *slog.Logger
}

func NewDashboardService(reports ReportRepository, centers CenterRepository, stats StatsRepository, logger *slog.Logger) *DashboardService {
	return &DashboardService{reports: reports, centers: centers, stats: stats, logger: logger}
}

func (s *DashboardService) Citizen(ctx context.Context, citizenID uuid.UUID) (*domain.CitizenDashboard, error) {
	counts, err := s.reports.CountByStatus(ctx, &citizenID, nil)
	if err != nil {
		return nil, err
	}
	recent, err := s.recent(ctx, domain.ReportFilter{CitizenID: &citizenID}, citizenRecent)
	if err != nil {
		return nil, err
	}
	return &domain.CitizenDashboard{Counts: counts, RecentReports: recent}, nil
}

// Staff returns an empty dashboard when the caller has no center yet.
func (s *DashboardService) Staff(ctx context.Context, staffID uuid.UUID) (*domain.StaffDashboard, error) {
	center, err := s.centers.GetByStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, e.ErrNoCenter) {
			s.logger.Info("staff has no center", slog.String("staff_id", staffID.String()))
			return &domain.StaffDashboard{RecentReports: []*domain.WasteReport{}}, nil
		}
		return nil, err
	}

	counts, err := s.reports.CountByStatus(ctx, nil, &center.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.recent(ctx, domain.ReportFilter{CenterID: &center.ID}, staffRecent)
	if err != nil {
		return nil, err
	}
	return &domain.StaffDashboard{Center: center, Counts: counts, RecentReports: recent}, nil
}

func (s *DashboardService) Admin(ctx context.Context) (*domain.AdminDashboard, error) {
	counts, err := s.reports.CountByStatus(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	centers, err := s.stats.CountCenters(ctx)
	if err != nil {
		return nil, err
	}
	users, citizens, staff, err := s.stats.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.recent(ctx, domain.ReportFilter{}, adminRecent)
	if err != nil {
		return nil, err
	}
	return &domain.AdminDashboard{
		Reports:       counts,
		TotalCenters:  centers,
		TotalUsers:    users,
		TotalCitizens: citizens,
		TotalStaff:    staff,
		RecentReports: recent,
	}, nil
}

func (s *DashboardService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	counts, err := s.reports.CountByStatus(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	areas, err := s.stats.ReportsPerCenter(ctx)
	if err != nil {
		return nil, err
	}
	if areas == nil {
		areas = []domain.AreaStat{}
	}
	return &domain.Statistics{StatusStats: counts, AreaStats: areas}, nil
}

func (s *DashboardService) recent(ctx context.Context, f domain.ReportFilter, n int) ([]*domain.WasteReport, error) {
	f.Page, f.Limit = 1, n
	items, _, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.WasteReport{}
	}
	return items, nil
}
