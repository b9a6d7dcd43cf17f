package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"
	"wastetrack/pkg/validator"

	"github.com/google/uuid"
)

type UserService struct {
	users   UserRepository
	centers CenterCache
	hasher  PasswordHasher
	tokens  TokenIssuer
	logger  *slog.Logger
}

// NewUserService wires account use cases. centers may be nil.
func NewUserService(users UserRepository, centers CenterCache, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) *UserService {
	return &UserService{users: users, centers: centers, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a citizen account. Elevated roles are granted by an admin afterwards.
func (s *UserService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	const op = "service.User.Register"

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("password hash failed", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleCitizen,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("id", u.ID.String()), slog.String("username", u.Username))
	return u, nil
}

func (s *UserService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	const op = "service.User.Login"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
		}
		return nil, err
	}
	if !s.hasher.Check(req.Password, u.PasswordHash) {
		s.logger.Warn("login rejected", slog.String("username", u.Username))
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthorized)
	}

	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		s.logger.Error("token issue failed", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}
	return &domain.LoginResponse{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error) {
	if f.Role != "" && !f.Role.Valid() {
		return nil, fmt.Errorf("service.User.List: role %q: %w", f.Role, e.ErrInvalidInput)
	}
	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *UserService) AssignRole(ctx context.Context, id uuid.UUID, req domain.AssignRoleRequest) (*domain.User, error) {
	const op = "service.User.AssignRole"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}
	if err := s.users.UpdateRole(ctx, id, req.Role); err != nil {
		return nil, err
	}
	s.logger.Info("role assigned", slog.String("id", id.String()), slog.String("role", string(req.Role)))
	return s.users.GetByID(ctx, id)
}

// Delete removes a user and, through the schema, their reports. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return fmt.Errorf("service.User.Delete: self-delete: %w", e.ErrForbidden)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", slog.String("id", id.String()))

	// a deleted staff member drops off their center's assigned_staff_id
	if s.centers != nil {
		if err := s.centers.Invalidate(ctx); err != nil {
			s.logger.Error("center cache invalidate failed", slog.Any("error", err))
		}
	}
	return nil
}
