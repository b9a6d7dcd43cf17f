package admin

import (
	"log/slog"
	"net/http"

	"wastetrack/internal/api/handlers/http/respond"
	"wastetrack/internal/middleware"
	"wastetrack/pkg/e"

	"github.com/google/uuid"
)

func (h *Handler) log(r *http.Request) *slog.Logger {
	return respond.Logger(h.logger, r)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	respond.Error(w, r, h.log(r), err)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	respond.JSON(w, code, v)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := respond.URLUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		h.handleError(w, r, e.ErrUnauthorized)
		return uuid.Nil, false
	}
	return p.UserID, true
}
