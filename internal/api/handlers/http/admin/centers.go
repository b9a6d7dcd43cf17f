package admin

import (
	"log/slog"
	"net/http"

	"wastetrack/internal/domain"
	"wastetrack/internal/middleware"
)

func (h *Handler) AdminCenterList(w http.ResponseWriter, r *http.Request) {
	centers, err := h.Centers.List(r.Context(), domain.CenterFilter{Search: r.URL.Query().Get("search")})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"centers": centers})
}

func (h *Handler) AdminCenterCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	req, err := middleware.Bind[domain.CenterRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("creating center",
		slog.String("name", req.Name),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	center, err := h.Centers.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, center)
}

func (h *Handler) AdminCenterGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	center, err := h.Centers.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, center)
}

func (h *Handler) AdminCenterUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, err := middleware.Bind[domain.UpdateCenterRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	center, err := h.Centers.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, center)
}

// AdminCenterDelete removes a center; its reports stay, unassigned.
func (h *Handler) AdminCenterDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Centers.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("center deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
