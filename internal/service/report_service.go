package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wastetrack/internal/domain"
	"wastetrack/internal/geo"
	"wastetrack/pkg/e"
	"wastetrack/pkg/validator"

	"github.com/google/uuid"
)

const (
	defaultReportLimit = 20
	maxReportLimit     = 100
)

type ReportService struct {
	reports  ReportRepository
	centers  CenterRepository
	events   EventQueue
	observer AssignmentObserver
	logger   *slog.Logger
	now      func() time.Time
}

// NewReportService wires report use cases. events and observer may be nil.
func NewReportService(
	reports ReportRepository,
	centers CenterRepository,
	events EventQueue,
	observer AssignmentObserver,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		reports:  reports,
		centers:  centers,
		events:   events,
		observer: observer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a citizen's report, assigning the nearest recycling center at this moment.
// The assignment is never recomputed afterwards.
func (s *ReportService) Submit(ctx context.Context, citizenID uuid.UUID, req domain.SubmitReportRequest) (*domain.WasteReport, error) {
	const op = "service.Report.Submit"

	point := domain.GeoPoint{Lat: req.Lat, Lng: req.Lng}
	if !point.Valid() {
		s.logger.Warn("invalid coordinates",
			slog.String("citizen_id", citizenID.String()),
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	req.Description = strings.TrimSpace(req.Description)
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}
	point = domain.NormalizePoint(point)

	centers, err := s.centers.Snapshot(ctx)
	if err != nil {
		s.logger.Error("centers.Snapshot failed", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}

	report := &domain.WasteReport{
		ID:          uuid.New(),
		CitizenID:   citizenID,
		Location:    point,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      domain.ReportPending,
		CreatedAt:   s.now(),
	}

	match, ok := geo.FindNearest(point, centers)
	var distance *float64
	if ok {
		id := match.Center.ID
		report.CenterID = &id
		report.CenterName = match.Center.Name
		d := match.DistanceKM
		distance = &d
		s.logger.Debug("nearest center resolved",
			slog.Int("candidates", len(centers)),
			slog.String("center_id", id.String()),
			slog.Float64("distance_km", d),
		)
	} else {
		s.logger.Info("no recycling center available, report left unassigned", slog.Int("candidates", len(centers)))
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	if s.observer != nil {
		s.observer.ObserveAssignment(ok, match.DistanceKM)
	}

	s.publish(ctx, domain.ReportEvent{
		Type:       domain.EventReportSubmitted,
		ReportID:   report.ID,
		CitizenID:  report.CitizenID,
		CenterID:   report.CenterID,
		Status:     report.Status,
		DistanceKM: distance,
		OccurredAt: report.CreatedAt,
	})

	s.logger.Info("report submitted",
		slog.String("report_id", report.ID.String()),
		slog.Bool("assigned", ok),
	)
	return report, nil
}

func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*domain.WasteReport, error) {
	return s.reports.Get(ctx, id)
}

// GetOwned returns the report only if it belongs to citizenID; foreign reports look absent.
func (s *ReportService) GetOwned(ctx context.Context, citizenID, id uuid.UUID) (*domain.WasteReport, error) {
	r, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.CitizenID != citizenID {
		return nil, fmt.Errorf("service.Report.GetOwned: %w", e.ErrNotFound)
	}
	return r, nil
}

func (s *ReportService) List(ctx context.Context, f domain.ReportFilter) (*domain.ListReportsResponse, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("service.Report.List: status %q: %w", f.Status, e.ErrInvalidInput)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultReportLimit
	}
	if f.Limit > maxReportLimit {
		f.Limit = maxReportLimit
	}

	items, total, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.WasteReport{}
	}
	return &domain.ListReportsResponse{Reports: items, Page: f.Page, Limit: f.Limit, Total: total}, nil
}

func (s *ReportService) Counts(ctx context.Context, citizenID, centerID *uuid.UUID) (domain.StatusCounts, error) {
	return s.reports.CountByStatus(ctx, citizenID, centerID)
}

// Update applies a manual status change and/or center reassignment.
func (s *ReportService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest) (*domain.WasteReport, error) {
	r, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, r, req)
}

// UpdateForCenter is the staff variant: only reports currently assigned to centerID may change.
func (s *ReportService) UpdateForCenter(ctx context.Context, centerID, id uuid.UUID, req domain.UpdateReportRequest) (*domain.WasteReport, error) {
	r, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.CenterID == nil || *r.CenterID != centerID {
		return nil, fmt.Errorf("service.Report.UpdateForCenter: report %s: %w", id, e.ErrForbidden)
	}
	return s.apply(ctx, r, req)
}

func (s *ReportService) apply(ctx context.Context, r *domain.WasteReport, req domain.UpdateReportRequest) (*domain.WasteReport, error) {
	const op = "service.Report.Update"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, validator.Describe(err), e.ErrInvalidInput)
	}

	prevStatus := r.Status
	if req.Status != nil {
		r.Status = *req.Status
	}
	switch {
	case req.ClearCenter:
		r.CenterID = nil
		r.CenterName = ""
	case req.CenterID != nil:
		c, err := s.centers.Get(ctx, *req.CenterID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, fmt.Errorf("%s: center %s: %w", op, *req.CenterID, e.ErrInvalidInput)
			}
			return nil, err
		}
		id := c.ID
		r.CenterID = &id
		r.CenterName = c.Name
	}

	if err := s.reports.Update(ctx, r); err != nil {
		return nil, err
	}

	if r.Status != prevStatus {
		s.publish(ctx, domain.ReportEvent{
			Type:       domain.EventReportStatusChanged,
			ReportID:   r.ID,
			CitizenID:  r.CitizenID,
			CenterID:   r.CenterID,
			Status:     r.Status,
			OccurredAt: s.now(),
		})
	}
	s.logger.Info("report updated",
		slog.String("report_id", r.ID.String()),
		slog.String("status", string(r.Status)),
	)
	return r, nil
}

func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reports.Delete(ctx, id)
}

// publish never fails the caller: a lost notification is logged and dropped.
func (s *ReportService) publish(ctx context.Context, ev domain.ReportEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Error("enqueue report event failed",
			slog.String("type", string(ev.Type)),
			slog.String("report_id", ev.ReportID.String()),
			slog.Any("error", err),
		)
	}
}
