package public

import (
	"context"
	"log/slog"
	"net/http"

	"wastetrack/internal/api/handlers/http/respond"
	"wastetrack/internal/domain"
	"wastetrack/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Accounts interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
}

type CenterLister interface {
	List(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, code int, name string, data any) error
}

type Handler struct {
	logger   *slog.Logger
	Accounts Accounts
	Centers  CenterLister
	Renderer Renderer
}

func NewHandler(logger *slog.Logger, accounts Accounts, centers CenterLister, renderer Renderer) *Handler {
	return &Handler{
		logger:   logger,
		Accounts: accounts,
		Centers:  centers,
		Renderer: renderer,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)

	req, err := middleware.Bind[domain.RegisterRequest](w, r)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	u, err := h.Accounts.Register(r.Context(), req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("user registered", slog.String("id", u.ID.String()))
	respond.JSON(w, http.StatusCreated, u)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)

	req, err := middleware.Bind[domain.LoginRequest](w, r)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	resp, err := h.Accounts.Login(r.Context(), req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}

type centersMapPage struct {
	Centers []*domain.RecyclingCenter
	Center  domain.GeoPoint
	Zoom    int
}

// defaultMapView frames Saudi Arabia, where the sample centers live.
var defaultMapView = domain.GeoPoint{Lat: 24.0, Lng: 45.0}

func (h *Handler) CentersMap(w http.ResponseWriter, r *http.Request) {
	l := respond.Logger(h.logger, r)

	centers, err := h.Centers.List(r.Context(), domain.CenterFilter{})
	if err != nil {
		code, msg := respond.Status(err)
		l.Error("list centers for map failed", slog.Any("error", err))
		http.Error(w, msg, code)
		return
	}

	page := centersMapPage{Centers: centers, Center: defaultMapView, Zoom: 5}
	if len(centers) > 0 {
		page.Center = centers[0].Location
		page.Zoom = 6
	}

	if err := h.Renderer.Render(w, http.StatusOK, "centers_map.html", page); err != nil {
		l.Error("render centers map failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
