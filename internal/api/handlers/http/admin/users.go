package admin

import (
	"log/slog"
	"net/http"

	"wastetrack/internal/domain"
	"wastetrack/internal/middleware"
)

func (h *Handler) AdminUserList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.Users.List(r.Context(), domain.UserFilter{
		Role:   domain.Role(q.Get("role")),
		Search: q.Get("search"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) AdminUserAssignRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, err := middleware.Bind[domain.AssignRoleRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.Users.AssignRole(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("role assigned", slog.String("id", id.String()), slog.String("role", string(u.Role)))
	h.writeJSON(w, http.StatusOK, u)
}

// AdminUserDelete removes the user together with their reports.
func (h *Handler) AdminUserDelete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), actorID, id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
