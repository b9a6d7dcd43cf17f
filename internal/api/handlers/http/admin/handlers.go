package admin

import (
	"context"
	"log/slog"
	"net/http"

	"wastetrack/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	List(ctx context.Context, f domain.ReportFilter) (*domain.ListReportsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.WasteReport, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest) (*domain.WasteReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Centers interface {
	List(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error)
	Create(ctx context.Context, req domain.CenterRequest) (*domain.RecyclingCenter, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RecyclingCenter, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateCenterRequest) (*domain.RecyclingCenter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Users interface {
	List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error)
	AssignRole(ctx context.Context, id uuid.UUID, req domain.AssignRoleRequest) (*domain.User, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type StatsGetter interface {
	Admin(ctx context.Context) (*domain.AdminDashboard, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports Reports
	Centers Centers
	Users   Users
	Stats   StatsGetter
}

func NewHandler(logger *slog.Logger, reports Reports, centers Centers, users Users, stats StatsGetter) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		Centers: centers,
		Users:   users,
		Stats:   stats,
	}
}

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("AdminDashboard", slog.String("remote", r.RemoteAddr))

	dash, err := h.Stats.Admin(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dash)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.Statistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
