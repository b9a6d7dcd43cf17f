package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"
)

type parserFunc func(string) (domain.Principal, error)

func (f parserFunc) Parse(token string) (domain.Principal, error) { return f(token) }

type userStore map[uuid.UUID]*domain.User

func (s userStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return u, nil
}

type failingLookup struct{}

func (failingLookup) GetByID(context.Context, uuid.UUID) (*domain.User, error) {
	return nil, errors.New("connection refused")
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(t *testing.T, want *domain.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want != nil {
			p, ok := PrincipalFrom(r.Context())
			if !ok || p != *want {
				t.Errorf("unexpected principal %+v", p)
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	principal := domain.Principal{UserID: uuid.New(), Role: domain.RoleStaff}
	parser := parserFunc(func(token string) (domain.Principal, error) {
		if token == "good" {
			return principal, nil
		}
		return domain.Principal{}, e.ErrUnauthorized
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer good", http.StatusNoContent},
		{"lowercase scheme", "bearer good", http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			users := userStore{principal.UserID: {ID: principal.UserID, Role: domain.RoleStaff}}
			h := Authenticate(parser, users, newTestLogger())(okHandler(t, &principal))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("expected %d got %d, body=%s", tt.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAuthenticate_UsesStoredRole(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	// token was issued while the user was an admin
	parser := parserFunc(func(string) (domain.Principal, error) {
		return domain.Principal{UserID: id, Role: domain.RoleAdmin}, nil
	})

	send := func(users UserLookup) int {
		h := Authenticate(parser, users, newTestLogger())(RequireRole(domain.RoleAdmin)(okHandler(t, nil)))
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	users := userStore{id: {ID: id, Role: domain.RoleAdmin}}
	if code := send(users); code != http.StatusNoContent {
		t.Fatalf("admin: expected 204, got %d", code)
	}

	users[id].Role = domain.RoleCitizen
	if code := send(users); code != http.StatusForbidden {
		t.Fatalf("demoted user: expected 403, got %d", code)
	}

	delete(users, id)
	if code := send(users); code != http.StatusUnauthorized {
		t.Fatalf("deleted user: expected 401, got %d", code)
	}

	if code := send(failingLookup{}); code != http.StatusInternalServerError {
		t.Fatalf("lookup failure: expected 500, got %d", code)
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	h := RequireRole(domain.RoleStaff, domain.RoleAdmin)(okHandler(t, nil))

	tests := []struct {
		name string
		p    *domain.Principal
		want int
	}{
		{"no principal", nil, http.StatusUnauthorized},
		{"citizen", &domain.Principal{UserID: uuid.New(), Role: domain.RoleCitizen}, http.StatusForbidden},
		{"staff", &domain.Principal{UserID: uuid.New(), Role: domain.RoleStaff}, http.StatusNoContent},
		{"admin", &domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}, http.StatusNoContent},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.p != nil {
			req = req.WithContext(WithPrincipal(req.Context(), *tt.p))
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != tt.want {
			t.Fatalf("%s: expected %d got %d", tt.name, tt.want, rr.Code)
		}
	}
}

func TestLimit_PerClient(t *testing.T) {
	t.Parallel()

	l := newRateLimiter(1, 2, time.Minute)
	h := l.middleware(newTestLogger())(okHandler(t, nil))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if do("10.0.0.1:1000") != http.StatusNoContent || do("10.0.0.1:1001") != http.StatusNoContent {
		t.Fatalf("burst should allow two requests")
	}
	if got := do("10.0.0.1:1002"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", got)
	}
	if got := do("10.0.0.2:1000"); got != http.StatusNoContent {
		t.Fatalf("other client must not be throttled, got %d", got)
	}
}

func TestRateLimiter_Evict(t *testing.T) {
	t.Parallel()

	l := newRateLimiter(1, 1, time.Minute)
	start := time.Now()
	l.allow("ip:a", start)
	l.allow("ip:b", start.Add(50*time.Second))

	l.evict(start.Add(90 * time.Second))

	if _, ok := l.visitors["ip:a"]; ok {
		t.Fatalf("idle visitor should be evicted")
	}
	if _, ok := l.visitors["ip:b"]; !ok {
		t.Fatalf("recent visitor should be kept")
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"description":"bins","lat":24.7,"lng":46.6}`, false},
		{"empty", ``, true},
		{"malformed", `{"description":`, true},
		{"unknown field", `{"description":"x","lat":1,"lng":1,"radius":3}`, true},
		{"trailing", `{"description":"x","lat":1,"lng":1}{}`, true},
		{"validation", `{"description":"","lat":1,"lng":1}`, true},
		{"bad lat", `{"description":"x","lat":95,"lng":1}`, true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
		got, err := Bind[domain.SubmitReportRequest](httptest.NewRecorder(), req)
		if tt.wantErr {
			if !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("%s: expected ErrInvalidInput, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tt.name, err)
		}
		if got.Description != "bins" || got.Lat != 24.7 {
			t.Fatalf("%s: unexpected value %+v", tt.name, got)
		}
	}
}
