package staff

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"wastetrack/internal/api/handlers/http/respond"
	"wastetrack/internal/domain"
	"wastetrack/internal/middleware"
	"wastetrack/pkg/e"

	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	List(ctx context.Context, f domain.ReportFilter) (*domain.ListReportsResponse, error)
	UpdateForCenter(ctx context.Context, centerID, id uuid.UUID, req domain.UpdateReportRequest) (*domain.WasteReport, error)
}

type Centers interface {
	ForStaff(ctx context.Context, staffID uuid.UUID) (*domain.RecyclingCenter, error)
	UpdateForStaff(ctx context.Context, staffID uuid.UUID, req domain.UpdateCenterRequest) (*domain.RecyclingCenter, error)
}

type Dashboard interface {
	Staff(ctx context.Context, staffID uuid.UUID) (*domain.StaffDashboard, error)
}

type Handler struct {
	logger    *slog.Logger
	Reports   Reports
	Centers   Centers
	Dashboard Dashboard
}

func NewHandler(logger *slog.Logger, reports Reports, centers Centers, dashboard Dashboard) *Handler {
	return &Handler{
		logger:    logger,
		Reports:   reports,
		Centers:   centers,
		Dashboard: dashboard,
	}
}

type centerReports struct {
	Center *domain.RecyclingCenter `json:"center"`
	*domain.ListReportsResponse
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, r, l, e.ErrUnauthorized)
		return uuid.Nil, false
	}
	return p.UserID, true
}

func (h *Handler) StaffDashboard(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	staffID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	dash, err := h.Dashboard.Staff(r.Context(), staffID)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, dash)
}

// ListReports lists reports of the caller's center. Without a center the list is empty.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	staffID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	page := respond.QueryInt(r, "page", 1)
	limit := respond.QueryInt(r, "limit", 20)

	center, err := h.Centers.ForStaff(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, e.ErrNoCenter) {
			l.Info("staff without center listed reports", slog.String("staff_id", staffID.String()))
			respond.JSON(w, http.StatusOK, centerReports{
				ListReportsResponse: &domain.ListReportsResponse{Reports: []*domain.WasteReport{}, Page: page, Limit: limit},
			})
			return
		}
		respond.Error(w, r, l, err)
		return
	}

	resp, err := h.Reports.List(r.Context(), domain.ReportFilter{
		CenterID: &center.ID,
		Status:   domain.ReportStatus(r.URL.Query().Get("status")),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, centerReports{Center: center, ListReportsResponse: resp})
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	staffID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	id, err := respond.URLUUID(r, "id")
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	req, err := middleware.Bind[domain.UpdateReportRequest](w, r)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	center, err := h.Centers.ForStaff(r.Context(), staffID)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	report, err := h.Reports.UpdateForCenter(r.Context(), center.ID, id, req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("report updated by staff",
		slog.String("report_id", id.String()),
		slog.String("staff_id", staffID.String()),
	)
	respond.JSON(w, http.StatusOK, report)
}

func (h *Handler) GetCenter(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	staffID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	center, err := h.Centers.ForStaff(r.Context(), staffID)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, center)
}

func (h *Handler) UpdateCenter(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	staffID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	req, err := middleware.Bind[domain.UpdateCenterRequest](w, r)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	center, err := h.Centers.UpdateForStaff(r.Context(), staffID, req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, center)
}
