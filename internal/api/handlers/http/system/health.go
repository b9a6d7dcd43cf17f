package system

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"wastetrack/internal/api/handlers/http/respond"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	deps   map[string]Pinger
}

func NewHandler(logger *slog.Logger, deps map[string]Pinger) *Handler {
	return &Handler{logger: logger, deps: deps}
}

// SystemHealth answers 200 when the process is up.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// SystemReady pings every dependency and answers 503 if any is down.
func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	code := http.StatusOK
	for name, p := range h.deps {
		if err := p.Ping(ctx); err != nil {
			respond.Logger(h.logger, r).Warn("dependency not ready", slog.String("dep", name), slog.Any("error", err))
			status[name] = "down"
			code = http.StatusServiceUnavailable
			continue
		}
		status[name] = "ok"
	}
	respond.JSON(w, code, status)
}
