package api_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"wastetrack/internal/api"
	"wastetrack/internal/api/handlers/http/admin"
	mock_admin "wastetrack/internal/api/handlers/http/admin/mocks"
	"wastetrack/internal/api/handlers/http/citizen"
	mock_citizen "wastetrack/internal/api/handlers/http/citizen/mocks"
	"wastetrack/internal/api/handlers/http/public"
	mock_public "wastetrack/internal/api/handlers/http/public/mocks"
	"wastetrack/internal/api/handlers/http/staff"
	mock_staff "wastetrack/internal/api/handlers/http/staff/mocks"
	"wastetrack/internal/api/handlers/http/system"
	"wastetrack/internal/config"
	"wastetrack/internal/domain"
	"wastetrack/internal/metrics"
	"wastetrack/pkg/e"
)

type fakeTokens map[string]domain.Principal

func (f fakeTokens) Parse(token string) (domain.Principal, error) {
	p, ok := f[token]
	if !ok {
		return domain.Principal{}, errors.New("bad token")
	}
	return p, nil
}

type memUsers struct {
	mu    sync.Mutex
	roles map[uuid.UUID]domain.Role
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	role, ok := m.roles[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &domain.User{ID: id, Role: role}, nil
}

func (m *memUsers) set(id uuid.UUID, role domain.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[id] = role
}

func (m *memUsers) remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.roles, id)
}

type routerDeps struct {
	accounts  *mock_public.MockAccounts
	citizenDB *mock_citizen.MockDashboard
	staffDB   *mock_staff.MockDashboard
	adminRep  *mock_admin.MockReports
	users     *memUsers
}

var (
	citizenID = uuid.New()
	staffID   = uuid.New()
	adminID   = uuid.New()
)

func newRouter(t *testing.T, authRPS, authBurst int) (http.Handler, routerDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))

	d := routerDeps{
		accounts:  mock_public.NewMockAccounts(ctrl),
		citizenDB: mock_citizen.NewMockDashboard(ctrl),
		staffDB:   mock_staff.NewMockDashboard(ctrl),
		adminRep:  mock_admin.NewMockReports(ctrl),
		users: &memUsers{roles: map[uuid.UUID]domain.Role{
			citizenID: domain.RoleCitizen,
			staffID:   domain.RoleStaff,
			adminID:   domain.RoleAdmin,
		}},
	}

	h := api.Handlers{
		Public:  public.NewHandler(logger, d.accounts, mock_public.NewMockCenterLister(ctrl), mock_public.NewMockRenderer(ctrl)),
		Citizen: citizen.NewHandler(logger, mock_citizen.NewMockReports(ctrl), mock_citizen.NewMockCenters(ctrl), d.citizenDB),
		Staff:   staff.NewHandler(logger, mock_staff.NewMockReports(ctrl), mock_staff.NewMockCenters(ctrl), d.staffDB),
		Admin: admin.NewHandler(logger, d.adminRep, mock_admin.NewMockCenters(ctrl),
			mock_admin.NewMockUsers(ctrl), mock_admin.NewMockStatsGetter(ctrl)),
		System: system.NewHandler(logger, nil),
	}

	cfg := &config.Config{
		Env: "test",
		RateLimit: config.RateLimitConfig{
			PublicRPS:   100,
			PublicBurst: 100,
			AuthRPS:     authRPS,
			AuthBurst:   authBurst,
		},
	}

	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("metrics.New: %v", err)
	}

	tokens := fakeTokens{
		"citizen": {UserID: citizenID, Role: domain.RoleCitizen},
		"staff":   {UserID: staffID, Role: domain.RoleStaff},
		"admin":   {UserID: adminID, Role: domain.RoleAdmin},
	}

	return api.InitRouter(cfg, h, tokens, d.users, m, logger), d
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_SystemEndpoints(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, 100, 100)

	for _, path := range []string{"/health", "/ready", "/api/v1/health", "/metrics"} {
		if rr := do(h, http.MethodGet, path, "", ""); rr.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rr.Code)
		}
	}
}

func TestRouter_RoleGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"no token", "/api/v1/citizen/dashboard", "", http.StatusUnauthorized},
		{"unknown token", "/api/v1/citizen/dashboard", "forged", http.StatusUnauthorized},
		{"staff on citizen area", "/api/v1/citizen/dashboard", "staff", http.StatusForbidden},
		{"admin on citizen area", "/api/v1/citizen/dashboard", "admin", http.StatusForbidden},
		{"citizen on staff area", "/api/v1/staff/dashboard", "citizen", http.StatusForbidden},
		{"citizen on admin area", "/api/v1/admin/reports", "citizen", http.StatusForbidden},
		{"staff on admin area", "/api/v1/admin/reports", "staff", http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newRouter(t, 100, 100)
			if rr := do(h, http.MethodGet, tt.path, tt.token, ""); rr.Code != tt.want {
				t.Fatalf("expected %d, got %d body=%s", tt.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestRouter_RoutesToRoleHandlers(t *testing.T) {
	t.Parallel()
	h, d := newRouter(t, 100, 100)

	d.citizenDB.EXPECT().Citizen(gomock.Any(), citizenID).Return(&domain.CitizenDashboard{}, nil)
	if rr := do(h, http.MethodGet, "/api/v1/citizen/dashboard", "citizen", ""); rr.Code != http.StatusOK {
		t.Fatalf("citizen dashboard: expected 200, got %d", rr.Code)
	}

	d.staffDB.EXPECT().Staff(gomock.Any(), staffID).Return(&domain.StaffDashboard{}, nil)
	if rr := do(h, http.MethodGet, "/api/v1/staff/dashboard", "staff", ""); rr.Code != http.StatusOK {
		t.Fatalf("staff dashboard: expected 200, got %d", rr.Code)
	}

	id := uuid.New()
	d.adminRep.EXPECT().Get(gomock.Any(), id).Return(&domain.WasteReport{ID: id}, nil)
	if rr := do(h, http.MethodGet, "/api/v1/admin/reports/"+id.String(), "admin", ""); rr.Code != http.StatusOK {
		t.Fatalf("admin report get: expected 200, got %d", rr.Code)
	}
}

func TestRouter_AuthRateLimited(t *testing.T) {
	t.Parallel()
	h, d := newRouter(t, 1, 1)

	d.accounts.EXPECT().Login(gomock.Any(), domain.LoginRequest{Username: "citizen1", Password: "citizen123"}).
		Return(&domain.LoginResponse{}, nil).Times(1)

	body := `{"username":"citizen1","password":"citizen123"}`
	if rr := do(h, http.MethodPost, "/api/v1/auth/login", "", body); rr.Code != http.StatusOK {
		t.Fatalf("first login: expected 200, got %d", rr.Code)
	}
	rr := do(h, http.MethodPost, "/api/v1/auth/login", "", body)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second login: expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

func TestRouter_RoleChangesApplyToIssuedTokens(t *testing.T) {
	t.Parallel()
	h, d := newRouter(t, 100, 100)

	id := uuid.New()
	d.adminRep.EXPECT().Get(gomock.Any(), id).Return(&domain.WasteReport{ID: id}, nil)
	if rr := do(h, http.MethodGet, "/api/v1/admin/reports/"+id.String(), "admin", ""); rr.Code != http.StatusOK {
		t.Fatalf("admin before demotion: expected 200, got %d", rr.Code)
	}

	d.users.set(adminID, domain.RoleCitizen)
	if rr := do(h, http.MethodGet, "/api/v1/admin/reports/"+id.String(), "admin", ""); rr.Code != http.StatusForbidden {
		t.Fatalf("demoted admin: expected 403, got %d", rr.Code)
	}

	d.users.remove(citizenID)
	if rr := do(h, http.MethodGet, "/api/v1/citizen/dashboard", "citizen", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("deleted citizen: expected 401, got %d", rr.Code)
	}
}
