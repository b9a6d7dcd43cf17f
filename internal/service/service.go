package service

import (
	"context"
	"time"

	"wastetrack/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type CenterRepository interface {
	Create(ctx context.Context, c *domain.RecyclingCenter) error
	Get(ctx context.Context, id uuid.UUID) (*domain.RecyclingCenter, error)
	GetByStaff(ctx context.Context, staffID uuid.UUID) (*domain.RecyclingCenter, error)
	List(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error)
	// Snapshot returns every center in storage order.
	Snapshot(ctx context.Context) ([]domain.RecyclingCenter, error)
	Update(ctx context.Context, c *domain.RecyclingCenter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportRepository interface {
	Create(ctx context.Context, r *domain.WasteReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WasteReport, error)
	List(ctx context.Context, f domain.ReportFilter) ([]*domain.WasteReport, int64, error)
	Update(ctx context.Context, r *domain.WasteReport) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, citizenID, centerID *uuid.UUID) (domain.StatusCounts, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsRepository interface {
	CountCenters(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (total, citizens, staff int64, err error)
	ReportsPerCenter(ctx context.Context) ([]domain.AreaStat, error)
}

type CenterCache interface {
	Get(ctx context.Context) ([]*domain.RecyclingCenter, error)
	Set(ctx context.Context, centers []*domain.RecyclingCenter) error
	Invalidate(ctx context.Context) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, ev domain.ReportEvent) error
}

type TokenIssuer interface {
	Issue(u *domain.User) (string, time.Time, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

type AssignmentObserver interface {
	ObserveAssignment(assigned bool, distanceKM float64)
}

type Service struct {
	Reports   *ReportService
	Centers   *CenterService
	Users     *UserService
	Dashboard *DashboardService
}

func NewService(
	reports *ReportService,
	centers *CenterService,
	users *UserService,
	dashboard *DashboardService,
) *Service {
	return &Service{
		Reports:   reports,
		Centers:   centers,
		Users:     users,
		Dashboard: dashboard,
	}
}
