package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"wastetrack/internal/api/handlers/http/admin"
	"wastetrack/internal/api/handlers/http/citizen"
	"wastetrack/internal/api/handlers/http/public"
	"wastetrack/internal/api/handlers/http/staff"
	"wastetrack/internal/api/handlers/http/system"
	"wastetrack/internal/config"
	"wastetrack/internal/domain"
	"wastetrack/internal/metrics"
	"wastetrack/internal/middleware"
	"wastetrack/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Public  *public.Handler
	Citizen *citizen.Handler
	Staff   *staff.Handler
	Admin   *admin.Handler
	System  *system.Handler
}

func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	svc *service.Service,
	tokens middleware.TokenParser,
	users middleware.UserLookup,
	renderer public.Renderer,
	m *metrics.Collector,
	deps map[string]system.Pinger,
) *Server {
	handlers := Handlers{
		Public:  public.NewHandler(logger, svc.Users, svc.Centers, renderer),
		Citizen: citizen.NewHandler(logger, svc.Reports, svc.Centers, svc.Dashboard),
		Staff:   staff.NewHandler(logger, svc.Reports, svc.Centers, svc.Dashboard),
		Admin:   admin.NewHandler(logger, svc.Reports, svc.Centers, svc.Users, svc.Dashboard),
		System:  system.NewHandler(logger, deps),
	}

	r := InitRouter(cfg, handlers, tokens, users, m, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	h Handlers,
	tokens middleware.TokenParser,
	users middleware.UserLookup,
	m *metrics.Collector,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)
	if cfg.Env == "local" {
		r.Use(chimw.Logger)
	}

	r.Get("/health", h.System.SystemHealth)
	r.Get("/ready", h.System.SystemReady)
	r.Handle("/metrics", m.Handler())
	r.With(middleware.Limit(cfg.RateLimit.PublicRPS, cfg.RateLimit.PublicBurst, 5*time.Minute, logger)).
		Get("/centers/map", h.Public.CentersMap)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/health", h.System.SystemHealth)

		// AUTH
		api.Route("/auth", func(ar chi.Router) {
			ar.Use(middleware.Limit(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst, 10*time.Minute, logger))
			ar.Post("/register", h.Public.Register)
			ar.Post("/login", h.Public.Login)
		})

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Authenticate(tokens, users, logger))
			pr.Use(middleware.Limit(cfg.RateLimit.PublicRPS, cfg.RateLimit.PublicBurst, 5*time.Minute, logger))

			// CITIZEN
			pr.Route("/citizen", func(cr chi.Router) {
				cr.Use(middleware.RequireRole(domain.RoleCitizen))
				cr.Get("/dashboard", h.Citizen.CitizenDashboard)
				cr.Route("/reports", func(rr chi.Router) {
					rr.Get("/", h.Citizen.ListReports)
					rr.Post("/", h.Citizen.SubmitReport)
					rr.Get("/{id}", h.Citizen.GetReport)
				})
				cr.Get("/centers", h.Citizen.ListCenters)
				cr.Get("/centers/{id}", h.Citizen.GetCenter)
			})

			// STAFF
			pr.Route("/staff", func(sr chi.Router) {
				sr.Use(middleware.RequireRole(domain.RoleStaff))
				sr.Get("/dashboard", h.Staff.StaffDashboard)
				sr.Get("/reports", h.Staff.ListReports)
				sr.Patch("/reports/{id}", h.Staff.UpdateReport)
				sr.Get("/center", h.Staff.GetCenter)
				sr.Put("/center", h.Staff.UpdateCenter)
			})

			// ADMIN
			pr.Route("/admin", func(ar chi.Router) {
				ar.Use(middleware.RequireRole(domain.RoleAdmin))
				ar.Get("/dashboard", h.Admin.AdminDashboard)
				ar.Get("/stats", h.Admin.AdminStats)

				ar.Route("/reports", func(rr chi.Router) {
					rr.Get("/", h.Admin.AdminReportList)
					rr.Route("/{id}", func(ir chi.Router) {
						ir.Get("/", h.Admin.AdminReportGet)
						ir.Patch("/", h.Admin.AdminReportUpdate)
						ir.Delete("/", h.Admin.AdminReportDelete)
					})
				})

				ar.Route("/centers", func(cr chi.Router) {
					cr.Get("/", h.Admin.AdminCenterList)
					cr.Post("/", h.Admin.AdminCenterCreate)
					cr.Route("/{id}", func(ir chi.Router) {
						ir.Get("/", h.Admin.AdminCenterGet)
						ir.Put("/", h.Admin.AdminCenterUpdate)
						ir.Delete("/", h.Admin.AdminCenterDelete)
					})
				})

				ar.Route("/users", func(ur chi.Router) {
					ur.Get("/", h.Admin.AdminUserList)
					ur.Put("/{id}/role", h.Admin.AdminUserAssignRole)
					ur.Delete("/{id}", h.Admin.AdminUserDelete)
				})
			})
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
