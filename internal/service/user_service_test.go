package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"wastetrack/internal/domain"
	"wastetrack/internal/service"
	mock_service "wastetrack/internal/service/mocks"
	"wastetrack/pkg/e"
)

type userDeps struct {
	users  *mock_service.MockUserRepository
	hasher *mock_service.MockPasswordHasher
	tokens *mock_service.MockTokenIssuer
	cache  *mock_service.MockCenterCache
	svc    *service.UserService
}

func newUserDeps(t *testing.T) *userDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &userDeps{
		users:  mock_service.NewMockUserRepository(ctrl),
		hasher: mock_service.NewMockPasswordHasher(ctrl),
		tokens: mock_service.NewMockTokenIssuer(ctrl),
		cache:  mock_service.NewMockCenterCache(ctrl),
	}
	d.svc = service.NewUserService(d.users, d.cache, d.hasher, d.tokens, newTestLogger())
	return d
}

func TestUserService_Register_CreatesCitizen(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	d.hasher.EXPECT().Hash("citizen123").Return("hashed", nil)
	d.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			if u.Role != domain.RoleCitizen || u.PasswordHash != "hashed" || u.Username != "citizen1" {
				t.Errorf("unexpected user %+v", u)
			}
			return nil
		})

	u, err := d.svc.Register(context.Background(), domain.RegisterRequest{
		Username: " citizen1 ",
		Email:    "citizen1@example.com",
		Password: "citizen123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Fatalf("expected id")
	}
}

func TestUserService_Register_Invalid(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	_, err := d.svc.Register(context.Background(), domain.RegisterRequest{Username: "ab", Email: "nope", Password: "short"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	d.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	d.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(e.ErrUniqueViolation)

	_, err := d.svc.Register(context.Background(), domain.RegisterRequest{Username: "citizen1", Email: "c@example.com", Password: "citizen123"})
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	stored := &domain.User{ID: uuid.New(), Username: "staff1", Role: domain.RoleStaff, PasswordHash: "hash"}
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		d := newUserDeps(t)
		d.users.EXPECT().GetByUsername(gomock.Any(), "staff1").Return(stored, nil)
		d.hasher.EXPECT().Check("staff123", "hash").Return(true)
		d.tokens.EXPECT().Issue(stored).Return("token", exp, nil)

		resp, err := d.svc.Login(context.Background(), domain.LoginRequest{Username: "staff1", Password: "staff123"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.Token != "token" || !resp.ExpiresAt.Equal(exp) || resp.User != stored {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		d := newUserDeps(t)
		d.users.EXPECT().GetByUsername(gomock.Any(), "staff1").Return(stored, nil)
		d.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := d.svc.Login(context.Background(), domain.LoginRequest{Username: "staff1", Password: "nope"})
		if !errors.Is(err, e.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		d := newUserDeps(t)
		d.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, e.ErrNotFound)

		_, err := d.svc.Login(context.Background(), domain.LoginRequest{Username: "ghost", Password: "x"})
		if !errors.Is(err, e.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestUserService_AssignRole(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	id := uuid.New()
	d.users.EXPECT().UpdateRole(gomock.Any(), id, domain.RoleStaff).Return(nil)
	d.users.EXPECT().GetByID(gomock.Any(), id).Return(&domain.User{ID: id, Role: domain.RoleStaff}, nil)

	u, err := d.svc.AssignRole(context.Background(), id, domain.AssignRoleRequest{Role: domain.RoleStaff})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Role != domain.RoleStaff {
		t.Fatalf("unexpected role %q", u.Role)
	}
}

func TestUserService_AssignRole_Unknown(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	_, err := d.svc.AssignRole(context.Background(), uuid.New(), domain.AssignRoleRequest{Role: "superuser"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Delete_Self(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	id := uuid.New()
	if err := d.svc.Delete(context.Background(), id, id); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Delete_InvalidatesCenterCache(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	actor, staff := uuid.New(), uuid.New()
	gomock.InOrder(
		d.users.EXPECT().Delete(gomock.Any(), staff).Return(nil),
		d.cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
	)

	if err := d.svc.Delete(context.Background(), actor, staff); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUserService_Delete_CacheErrorIsNotFatal(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	id := uuid.New()
	d.users.EXPECT().Delete(gomock.Any(), id).Return(nil)
	d.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	if err := d.svc.Delete(context.Background(), uuid.New(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUserService_Delete_NotFoundKeepsCache(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	id := uuid.New()
	d.users.EXPECT().Delete(gomock.Any(), id).Return(e.ErrNotFound)

	if err := d.svc.Delete(context.Background(), uuid.New(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_List_FilterRole(t *testing.T) {
	t.Parallel()
	d := newUserDeps(t)

	d.users.EXPECT().List(gomock.Any(), domain.UserFilter{Role: domain.RoleStaff}).Return(nil, nil)

	users, err := d.svc.List(context.Background(), domain.UserFilter{Role: domain.RoleStaff})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if users == nil {
		t.Fatalf("expected empty slice")
	}

	if _, err := d.svc.List(context.Background(), domain.UserFilter{Role: "root"}); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
