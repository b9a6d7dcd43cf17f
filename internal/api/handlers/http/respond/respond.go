package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"wastetrack/pkg/e"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Logger returns base enriched with chi's request id, if any.
func Logger(base *slog.Logger, r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return base
	}
	return base.With(slog.String("request_id", reqID))
}

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Status maps a domain error onto an HTTP status and a client-safe message.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, "invalid coordinates"
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, e.ErrNoCenter):
		return http.StatusConflict, "no recycling center assigned"
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "conflict"
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, e.ErrCanceled):
		return http.StatusServiceUnavailable, "request canceled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// Error logs err and writes it as {"error": ...}. Bad requests also carry the details.
func Error(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error) {
	code, msg := Status(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		slog.Any("error", err),
	}
	if code >= http.StatusInternalServerError {
		l.Error("handler error", attrs...)
	} else {
		l.Warn("handler error", attrs...)
	}

	body := map[string]string{"error": msg}
	if code == http.StatusBadRequest {
		body["details"] = err.Error()
	}
	JSON(w, code, body)
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// URLUUID parses a chi URL parameter as a UUID; failures wrap e.ErrInvalidInput.
func URLUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := chi.URLParam(r, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, e.Wrap("invalid "+key+" "+strconv.Quote(raw), e.ErrInvalidInput)
	}
	return id, nil
}
