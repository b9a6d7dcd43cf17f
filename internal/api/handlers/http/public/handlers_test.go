package public_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"wastetrack/internal/api/handlers/http/public"
	mock_public "wastetrack/internal/api/handlers/http/public/mocks"
	"wastetrack/internal/domain"
	"wastetrack/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type deps struct {
	accounts *mock_public.MockAccounts
	centers  *mock_public.MockCenterLister
	renderer *mock_public.MockRenderer
	h        *public.Handler
}

func newDeps(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	d := &deps{
		accounts: mock_public.NewMockAccounts(ctrl),
		centers:  mock_public.NewMockCenterLister(ctrl),
		renderer: mock_public.NewMockRenderer(ctrl),
	}
	d.h = public.NewHandler(newTestLogger(), d.accounts, d.centers, d.renderer)
	return d
}

func TestRegister_Created(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	want := domain.RegisterRequest{Username: "citizen1", Email: "citizen1@example.com", Password: "citizen123"}
	d.accounts.EXPECT().
		Register(gomock.Any(), want).
		Return(&domain.User{ID: uuid.New(), Username: "citizen1", Role: domain.RoleCitizen, PasswordHash: "secret-hash"}, nil)

	body := `{"username":"citizen1","email":"citizen1@example.com","password":"citizen123"}`
	rr := httptest.NewRecorder()
	d.h.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("secret-hash")) {
		t.Fatalf("password hash leaked: %s", rr.Body.String())
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["role"] != "citizen" {
		t.Fatalf("unexpected role %v", got["role"])
	}
}

func TestRegister_ValidationError_400(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	rr := httptest.NewRecorder()
	d.h.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(`{"username":"x","email":"bad","password":"1"}`)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRegister_Duplicate_409(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	d.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, e.ErrUniqueViolation)

	body := `{"username":"citizen1","email":"citizen1@example.com","password":"citizen123"}`
	rr := httptest.NewRecorder()
	d.h.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body)))

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resp     *domain.LoginResponse
		err      error
		wantCode int
	}{
		{"ok", &domain.LoginResponse{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil, http.StatusOK},
		{"bad credentials", nil, e.ErrUnauthorized, http.StatusUnauthorized},
		{"db down", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newDeps(t)
			d.accounts.EXPECT().
				Login(gomock.Any(), domain.LoginRequest{Username: "admin", Password: "admin123"}).
				Return(tt.resp, tt.err)

			rr := httptest.NewRecorder()
			d.h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"username":"admin","password":"admin123"}`)))

			if rr.Code != tt.wantCode {
				t.Fatalf("expected %d got %d, body=%s", tt.wantCode, rr.Code, rr.Body.String())
			}
			if tt.resp != nil && decodeJSON[map[string]any](t, rr)["token"] != "tok" {
				t.Fatalf("token missing")
			}
		})
	}
}

func TestCentersMap_RendersTemplate(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	centers := []*domain.RecyclingCenter{{Name: "Jeddah", Location: domain.GeoPoint{Lat: 21.5433, Lng: 39.1728}}}
	d.centers.EXPECT().List(gomock.Any(), domain.CenterFilter{}).Return(centers, nil)
	d.renderer.EXPECT().
		Render(gomock.Any(), http.StatusOK, "centers_map.html", gomock.Any()).
		DoAndReturn(func(w http.ResponseWriter, code int, _ string, _ any) error {
			w.WriteHeader(code)
			return nil
		})

	rr := httptest.NewRecorder()
	d.h.CentersMap(rr, httptest.NewRequest(http.MethodGet, "/centers/map", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestCentersMap_ListError(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	d.centers.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, e.ErrDeadline)

	rr := httptest.NewRecorder()
	d.h.CentersMap(rr, httptest.NewRequest(http.MethodGet, "/centers/map", nil))

	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected %d got %d", http.StatusGatewayTimeout, rr.Code)
	}
}
