package respond

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wastetrack/pkg/e"

	"github.com/go-chi/chi/v5"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("op: %w", e.ErrInvalidInput), http.StatusBadRequest},
		{e.ErrInvalidCoordinates, http.StatusBadRequest},
		{e.ErrUnauthorized, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("op: %w", e.ErrNotFound), http.StatusNotFound},
		{e.ErrNoCenter, http.StatusConflict},
		{e.ErrUniqueViolation, http.StatusConflict},
		{e.ErrDeadline, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got, _ := Status(tt.err); got != tt.want {
			t.Fatalf("Status(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestError_HidesInternalDetails(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	rr := httptest.NewRecorder()
	Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), l, errors.New("pq: password authentication failed"))
	if rr.Code != http.StatusInternalServerError || rr.Body.String() != "{\"error\":\"internal error\"}\n" {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), l, e.Wrap("description: required", e.ErrInvalidInput))
	if rr.Code != http.StatusBadRequest || rr.Body.String() != "{\"details\":\"description: required: invalid input\",\"error\":\"invalid input\"}\n" {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
}

func TestURLUUID(t *testing.T) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "not-a-uuid")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	if _, err := URLUUID(r, "id"); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
