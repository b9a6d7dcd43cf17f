package citizen

import (
	"context"
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
	Submit(ctx context.Context, citizenID uuid.UUID, req domain.SubmitReportRequest) (*domain.WasteReport, error)
	GetOwned(ctx context.Context, citizenID, id uuid.UUID) (*domain.WasteReport, error)
	List(ctx context.Context, f domain.ReportFilter) (*domain.ListReportsResponse, error)
}

type Centers interface {
	List(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RecyclingCenter, error)
}

type Dashboard interface {
	Citizen(ctx context.Context, citizenID uuid.UUID) (*domain.CitizenDashboard, error)
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

func (h *Handler) caller(w http.ResponseWriter, r *http.Request, l *slog.Logger) (uuid.UUID, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, r, l, e.ErrUnauthorized)
		return uuid.Nil, false
	}
	return p.UserID, true
}

func (h *Handler) CitizenDashboard(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	citizenID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	dash, err := h.Dashboard.Citizen(r.Context(), citizenID)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, dash)
}

func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	citizenID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	req, err := middleware.Bind[domain.SubmitReportRequest](w, r)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("submitting report",
		slog.String("citizen_id", citizenID.String()),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	report, err := h.Reports.Submit(r.Context(), citizenID, req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusCreated, report)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	citizenID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	resp, err := h.Reports.List(r.Context(), domain.ReportFilter{
		CitizenID: &citizenID,
		Status:    domain.ReportStatus(r.URL.Query().Get("status")),
		Page:      respond.QueryInt(r, "page", 1),
		Limit:     respond.QueryInt(r, "limit", 20),
	})
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)
	citizenID, ok := h.caller(w, r, l)
	if !ok {
		return
	}

	id, err := respond.URLUUID(r, "id")
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	report, err := h.Reports.GetOwned(r.Context(), citizenID, id)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, report)
}

func (h *Handler) ListCenters(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)

	centers, err := h.Centers.List(r.Context(), domain.CenterFilter{})
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"centers": centers})
}

func (h *Handler) GetCenter(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)

	id, err := respond.URLUUID(r, "id")
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	center, err := h.Centers.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, center)
}
