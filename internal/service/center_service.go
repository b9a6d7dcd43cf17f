package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"
	"wastetrack/pkg/validator"

	"github.com/google/uuid"
)

type CenterService struct {
	centers CenterRepository
	users   UserRepository
	cache   CenterCache
	logger  *slog.Logger
}

// NewCenterService wires center use cases. cache may be nil.
func NewCenterService(centers CenterRepository, users UserRepository, cache CenterCache, logger *slog.Logger) *CenterService {
	return &CenterService{centers: centers, users: users, cache: cache, logger: logger}
}

func (s *CenterService) Create(ctx context.Context, req domain.CenterRequest) (*domain.RecyclingCenter, error) {
	const op = "service.Center.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}
	if err := s.checkStaff(ctx, req.AssignedStaffID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &domain.RecyclingCenter{
		ID:                uuid.New(),
		Name:              req.Name,
		Address:           req.Address,
		Location:          domain.NormalizePoint(domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}),
		MaterialsAccepted: req.MaterialsAccepted,
		WorkingHours:      req.WorkingHours,
		AssignedStaffID:   req.AssignedStaffID,
	}
	if err := s.centers.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info("center created", slog.String("id", c.ID.String()), slog.String("name", c.Name))
	return c, nil
}

func (s *CenterService) Get(ctx context.Context, id uuid.UUID) (*domain.RecyclingCenter, error) {
	return s.centers.Get(ctx, id)
}

// List serves the unfiltered listing from the cache when possible.
func (s *CenterService) List(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error) {
	if f.Search != "" || s.cache == nil {
		return s.list(ctx, f)
	}

	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("center cache read failed", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	items, err := s.list(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, items); err != nil {
		s.logger.Warn("center cache write failed", slog.Any("error", err))
	}
	return items, nil
}

func (s *CenterService) list(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error) {
	items, err := s.centers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.RecyclingCenter{}
	}
	return items, nil
}

func (s *CenterService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateCenterRequest) (*domain.RecyclingCenter, error) {
	const op = "service.Center.Update"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}
	if err := s.checkStaff(ctx, req.AssignedStaffID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.centers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, c, req)
}

func (s *CenterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.centers.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info("center deleted", slog.String("id", id.String()))
	return nil
}

// ForStaff returns the center a staff member is assigned to, or e.ErrNoCenter.
func (s *CenterService) ForStaff(ctx context.Context, staffID uuid.UUID) (*domain.RecyclingCenter, error) {
	return s.centers.GetByStaff(ctx, staffID)
}

// UpdateForStaff edits the caller's own center. Staff assignment is not theirs to change.
func (s *CenterService) UpdateForStaff(ctx context.Context, staffID uuid.UUID, req domain.UpdateCenterRequest) (*domain.RecyclingCenter, error) {
	const op = "service.Center.UpdateForStaff"

	req.AssignedStaffID = nil
	req.ClearStaff = false
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}

	c, err := s.centers.GetByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, c, req)
}

func (s *CenterService) apply(ctx context.Context, c *domain.RecyclingCenter, req domain.UpdateCenterRequest) (*domain.RecyclingCenter, error) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Lat != nil {
		c.Location.Lat = *req.Lat
	}
	if req.Lng != nil {
		c.Location.Lng = *req.Lng
	}
	c.Location = domain.NormalizePoint(c.Location)
	if req.MaterialsAccepted != nil {
		c.MaterialsAccepted = *req.MaterialsAccepted
	}
	if req.WorkingHours != nil {
		c.WorkingHours = *req.WorkingHours
	}
	switch {
	case req.ClearStaff:
		c.AssignedStaffID = nil
	case req.AssignedStaffID != nil:
		c.AssignedStaffID = req.AssignedStaffID
	}

	if err := s.centers.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.Info("center updated", slog.String("id", c.ID.String()))
	return c, nil
}

// checkStaff rejects assignments to users that are missing or not staff.
func (s *CenterService) checkStaff(ctx context.Context, staffID *uuid.UUID) error {
	if staffID == nil {
		return nil
	}
	u, err := s.users.GetByID(ctx, *staffID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("staff %s: %w", *staffID, e.ErrInvalidInput)
		}
		return err
	}
	if u.Role != domain.RoleStaff {
		return fmt.Errorf("user %s is %s, not staff: %w", u.ID, u.Role, e.ErrInvalidInput)
	}
	return nil
}

func (s *CenterService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Error("center cache invalidate failed", slog.Any("error", err))
	}
}
