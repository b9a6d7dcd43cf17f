package admin

import (
	"log/slog"
	"net/http"

	"wastetrack/internal/api/handlers/http/respond"
	"wastetrack/internal/domain"
	"wastetrack/internal/middleware"
)

func (h *Handler) AdminReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReportList", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	resp, err := h.Reports.List(r.Context(), domain.ReportFilter{
		Status: domain.ReportStatus(q.Get("status")),
		Search: q.Get("search"),
		Page:   respond.QueryInt(r, "page", 1),
		Limit:  respond.QueryInt(r, "limit", 20),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reports listed", slog.Int("count", len(resp.Reports)), slog.Int64("total", resp.Total))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminReportGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	report, err := h.Reports.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) AdminReportUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, err := middleware.Bind[domain.UpdateReportRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	report, err := h.Reports.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) AdminReportDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Reports.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("report deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
