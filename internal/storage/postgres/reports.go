package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reportSelect = `
	SELECT r.id, r.citizen_id, u.username, r.center_id, COALESCE(c.name, ''),
		   r.latitude, r.longitude, r.description, r.image_url, r.status,
		   r.created_at, r.updated_at
	FROM waste_reports r
	JOIN users u ON u.id = r.citizen_id
	LEFT JOIN recycling_centers c ON c.id = r.center_id`

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func scanReport(row pgx.Row) (*domain.WasteReport, error) {
	var r domain.WasteReport
	err := row.Scan(
		&r.ID,
		&r.CitizenID,
		&r.CitizenUsername,
		&r.CenterID,
		&r.CenterName,
		&r.Location.Lat,
		&r.Location.Lng,
		&r.Description,
		&r.ImageURL,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ReportRepo) Create(ctx context.Context, r *domain.WasteReport) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO waste_reports
			(id, citizen_id, center_id, latitude, longitude, description, image_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.UpdatedAt = r.CreatedAt
	if r.Status == "" {
		r.Status = domain.ReportPending
	}

	_, err := p.pool.Exec(ctx, query,
		r.ID,
		r.CitizenID,
		r.CenterID,
		r.Location.Lat,
		r.Location.Lng,
		r.Description,
		r.ImageURL,
		r.Status,
		r.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// CreateIfAbsent inserts r unless the citizen already has a report with the same description.
func (p *ReportRepo) CreateIfAbsent(ctx context.Context, r *domain.WasteReport) (bool, error) {
	const op = "postgres.Report.CreateIfAbsent"

	const query = `
		INSERT INTO waste_reports
			(id, citizen_id, center_id, latitude, longitude, description, image_url, status, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, now(), now()
		WHERE NOT EXISTS (
			SELECT 1 FROM waste_reports WHERE citizen_id = $2 AND description = $6
		)
	`

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = domain.ReportPending
	}

	cmd, err := p.pool.Exec(ctx, query,
		r.ID,
		r.CitizenID,
		r.CenterID,
		r.Location.Lat,
		r.Location.Lng,
		r.Description,
		r.ImageURL,
		r.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.WasteReport, error) {
	const op = "postgres.Report.Get"

	r, err := scanReport(p.pool.QueryRow(ctx, reportSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return r, nil
}

func reportWhere(f domain.ReportFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CitizenID != nil {
		add("r.citizen_id = $%d", *f.CitizenID)
	}
	if f.CenterID != nil {
		add("r.center_id = $%d", *f.CenterID)
	}
	if f.Status != "" {
		add("r.status = $%d", f.Status)
	}
	if f.Search != "" {
		args = append(args, f.Search)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(u.username ILIKE '%%' || $%d || '%%' OR r.description ILIKE '%%' || $%d || '%%')", n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (p *ReportRepo) List(ctx context.Context, f domain.ReportFilter) ([]*domain.WasteReport, int64, error) {
	const op = "postgres.Report.List"

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	offset := (f.Page - 1) * f.Limit

	where, args := reportWhere(f)

	countQuery := `
		SELECT COUNT(*)
		FROM waste_reports r
		JOIN users u ON u.id = r.citizen_id` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listArgs := append(args, f.Limit, offset)
	listQuery := reportSelect + where + fmt.Sprintf(` ORDER BY r.created_at DESC, r.id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := p.pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]*domain.WasteReport, 0, f.Limit)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return reports, total, nil
}

// Update persists status and center. Coordinates and description are immutable.
func (p *ReportRepo) Update(ctx context.Context, r *domain.WasteReport) error {
	const op = "postgres.Report.Update"

	const query = `
		UPDATE waste_reports
		SET status = $2,
			center_id = $3,
			updated_at = $4
		WHERE id = $1
	`

	r.UpdatedAt = time.Now().UTC()
	cmd, err := p.pool.Exec(ctx, query, r.ID, r.Status, r.CenterID, r.UpdatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", r.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *ReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Report.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM waste_reports WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// CountByStatus counts reports, optionally restricted to one citizen and/or one center.
func (p *ReportRepo) CountByStatus(ctx context.Context, citizenID, centerID *uuid.UUID) (domain.StatusCounts, error) {
	const op = "postgres.Report.CountByStatus"

	const query = `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'pending'),
			   COUNT(*) FILTER (WHERE status = 'in_progress'),
			   COUNT(*) FILTER (WHERE status = 'completed')
		FROM waste_reports
		WHERE ($1::uuid IS NULL OR citizen_id = $1)
		  AND ($2::uuid IS NULL OR center_id = $2)
	`

	var sc domain.StatusCounts
	if err := p.pool.QueryRow(ctx, query, citizenID, centerID).Scan(&sc.Total, &sc.Pending, &sc.InProgress, &sc.Completed); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return domain.StatusCounts{}, e.WrapError(ctx, op, err)
	}
	return sc, nil
}
