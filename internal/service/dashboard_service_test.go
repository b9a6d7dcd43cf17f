package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"wastetrack/internal/domain"
	"wastetrack/internal/service"
	mock_service "wastetrack/internal/service/mocks"
	"wastetrack/pkg/e"
)

func TestDashboardService_Staff_NoCenter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	centers := mock_service.NewMockCenterRepository(ctrl)
	svc := service.NewDashboardService(mock_service.NewMockReportRepository(ctrl), centers, mock_service.NewMockStatsRepository(ctrl), newTestLogger())

	centers.EXPECT().GetByStaff(gomock.Any(), gomock.Any()).Return(nil, e.ErrNoCenter)

	got, err := svc.Staff(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Center != nil || got.Counts.Total != 0 || got.RecentReports == nil {
		t.Fatalf("expected empty dashboard, got %+v", got)
	}
}

func TestDashboardService_Staff_ScopedToCenter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reports := mock_service.NewMockReportRepository(ctrl)
	centers := mock_service.NewMockCenterRepository(ctrl)
	svc := service.NewDashboardService(reports, centers, mock_service.NewMockStatsRepository(ctrl), newTestLogger())

	staff := uuid.New()
	center := &domain.RecyclingCenter{ID: uuid.New(), Name: "Riyadh Recycling Center"}

	centers.EXPECT().GetByStaff(gomock.Any(), staff).Return(center, nil)
	reports.EXPECT().CountByStatus(gomock.Any(), nil, &center.ID).Return(domain.StatusCounts{Total: 3, Pending: 2, Completed: 1}, nil)
	reports.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.ReportFilter) ([]*domain.WasteReport, int64, error) {
			if f.CenterID == nil || *f.CenterID != center.ID || f.Limit != 10 {
				t.Errorf("unexpected filter %+v", f)
			}
			return []*domain.WasteReport{{ID: uuid.New()}}, 3, nil
		})

	got, err := svc.Staff(context.Background(), staff)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Center != center || got.Counts.Total != 3 || len(got.RecentReports) != 1 {
		t.Fatalf("unexpected dashboard %+v", got)
	}
}

func TestDashboardService_Citizen(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reports := mock_service.NewMockReportRepository(ctrl)
	svc := service.NewDashboardService(reports, mock_service.NewMockCenterRepository(ctrl), mock_service.NewMockStatsRepository(ctrl), newTestLogger())

	citizen := uuid.New()
	reports.EXPECT().CountByStatus(gomock.Any(), &citizen, nil).Return(domain.StatusCounts{Total: 1, Pending: 1}, nil)
	reports.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.ReportFilter) ([]*domain.WasteReport, int64, error) {
			if f.CitizenID == nil || *f.CitizenID != citizen || f.Limit != 5 {
				t.Errorf("unexpected filter %+v", f)
			}
			return nil, 0, nil
		})

	got, err := svc.Citizen(context.Background(), citizen)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Counts.Pending != 1 || got.RecentReports == nil {
		t.Fatalf("unexpected dashboard %+v", got)
	}
}

func TestDashboardService_Admin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reports := mock_service.NewMockReportRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewDashboardService(reports, mock_service.NewMockCenterRepository(ctrl), stats, newTestLogger())

	reports.EXPECT().CountByStatus(gomock.Any(), nil, nil).Return(domain.StatusCounts{Total: 5, Pending: 2, InProgress: 2, Completed: 1}, nil)
	stats.EXPECT().CountCenters(gomock.Any()).Return(int64(3), nil)
	stats.EXPECT().CountUsers(gomock.Any()).Return(int64(6), int64(3), int64(2), nil)
	reports.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.WasteReport{}, int64(5), nil)

	got, err := svc.Admin(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalCenters != 3 || got.TotalUsers != 6 || got.TotalCitizens != 3 || got.TotalStaff != 2 || got.Reports.InProgress != 2 {
		t.Fatalf("unexpected dashboard %+v", got)
	}
}

func TestDashboardService_Statistics(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reports := mock_service.NewMockReportRepository(ctrl)
	stats := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewDashboardService(reports, mock_service.NewMockCenterRepository(ctrl), stats, newTestLogger())

	reports.EXPECT().CountByStatus(gomock.Any(), nil, nil).Return(domain.StatusCounts{Total: 2, Pending: 2}, nil)
	stats.EXPECT().ReportsPerCenter(gomock.Any()).Return([]domain.AreaStat{{Name: "Riyadh Recycling Center", Count: 2}}, nil)

	got, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.AreaStats) != 1 || got.AreaStats[0].Count != 2 || got.StatusStats.Pending != 2 {
		t.Fatalf("unexpected statistics %+v", got)
	}
}
