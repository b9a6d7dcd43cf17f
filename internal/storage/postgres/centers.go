package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const centerColumns = `
	c.id, c.name, c.address, c.latitude, c.longitude,
	c.materials_accepted, c.working_hours, c.assigned_staff_id,
	c.created_at, c.updated_at`

type CenterRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCenterRepo(pool *pgxpool.Pool, logger *slog.Logger) *CenterRepo {
	return &CenterRepo{pool: pool, logger: logger}
}

func scanCenter(row pgx.Row) (*domain.RecyclingCenter, error) {
	var c domain.RecyclingCenter
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.Location.Lat,
		&c.Location.Lng,
		&c.MaterialsAccepted,
		&c.WorkingHours,
		&c.AssignedStaffID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *CenterRepo) Create(ctx context.Context, c *domain.RecyclingCenter) error {
	const op = "postgres.Center.Create"

	const query = `
		INSERT INTO recycling_centers
			(id, name, address, latitude, longitude, materials_accepted, working_hours, assigned_staff_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.UpdatedAt = c.CreatedAt

	_, err := p.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Address,
		c.Location.Lat,
		c.Location.Lng,
		c.MaterialsAccepted,
		c.WorkingHours,
		c.AssignedStaffID,
		c.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *CenterRepo) Get(ctx context.Context, id uuid.UUID) (*domain.RecyclingCenter, error) {
	const op = "postgres.Center.Get"

	query := `SELECT` + centerColumns + ` FROM recycling_centers c WHERE c.id = $1`

	c, err := scanCenter(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

// GetByStaff returns the center the staff member is assigned to. When several centers
// name the same staff member the first by name wins.
func (p *CenterRepo) GetByStaff(ctx context.Context, staffID uuid.UUID) (*domain.RecyclingCenter, error) {
	const op = "postgres.Center.GetByStaff"

	query := `SELECT` + centerColumns + `
		FROM recycling_centers c
		WHERE c.assigned_staff_id = $1
		ORDER BY c.name, c.id
		LIMIT 1`

	c, err := scanCenter(p.pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNoCenter)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (p *CenterRepo) List(ctx context.Context, f domain.CenterFilter) ([]*domain.RecyclingCenter, error) {
	const op = "postgres.Center.List"

	query := `SELECT` + centerColumns + ` FROM recycling_centers c`
	var args []any
	if f.Search != "" {
		args = append(args, f.Search)
		query += ` WHERE c.name ILIKE '%' || $1 || '%' OR c.address ILIKE '%' || $1 || '%'`
	}
	query += ` ORDER BY c.name, c.id`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	centers := make([]*domain.RecyclingCenter, 0, 16)
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return centers, nil
}

// Snapshot reads every center in a stable order (name, then id). The nearest-center
// lookup breaks ties by this order.
func (p *CenterRepo) Snapshot(ctx context.Context) ([]domain.RecyclingCenter, error) {
	items, err := p.List(ctx, domain.CenterFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.RecyclingCenter, 0, len(items))
	for _, c := range items {
		out = append(out, *c)
	}
	return out, nil
}

func (p *CenterRepo) Update(ctx context.Context, c *domain.RecyclingCenter) error {
	const op = "postgres.Center.Update"

	const query = `
		UPDATE recycling_centers
		SET name = $2,
			address = $3,
			latitude = $4,
			longitude = $5,
			materials_accepted = $6,
			working_hours = $7,
			assigned_staff_id = $8,
			updated_at = $9
		WHERE id = $1
	`

	c.UpdatedAt = time.Now().UTC()
	cmd, err := p.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Address,
		c.Location.Lat,
		c.Location.Lng,
		c.MaterialsAccepted,
		c.WorkingHours,
		c.AssignedStaffID,
		c.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", c.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Delete removes the center. Reports pointing at it keep existing with a NULL center.
func (p *CenterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Center.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM recycling_centers WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// UpsertByName overwrites the oldest center carrying c's name, or inserts c when there is none.
// Names are not unique, so this is only meant for seeding.
func (p *CenterRepo) UpsertByName(ctx context.Context, c *domain.RecyclingCenter) (bool, error) {
	const op = "postgres.Center.UpsertByName"

	const query = `
		WITH updated AS (
			UPDATE recycling_centers
			SET address = $3,
				latitude = $4,
				longitude = $5,
				materials_accepted = $6,
				working_hours = $7,
				assigned_staff_id = $8,
				updated_at = now()
			WHERE id = (
				SELECT id FROM recycling_centers WHERE name = $2 ORDER BY created_at, id LIMIT 1
			)
			RETURNING id, created_at, updated_at, false AS inserted
		), added AS (
			INSERT INTO recycling_centers
				(id, name, address, latitude, longitude, materials_accepted, working_hours, assigned_staff_id, created_at, updated_at)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, now(), now()
			WHERE NOT EXISTS (SELECT 1 FROM updated)
			RETURNING id, created_at, updated_at, true AS inserted
		)
		SELECT id, created_at, updated_at, inserted FROM updated
		UNION ALL
		SELECT id, created_at, updated_at, inserted FROM added
	`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	var inserted bool
	err := p.pool.QueryRow(ctx, query,
		c.ID,
		c.Name,
		c.Address,
		c.Location.Lat,
		c.Location.Lng,
		c.MaterialsAccepted,
		c.WorkingHours,
		c.AssignedStaffID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &inserted)
	if err != nil {
		p.logger.Error("db upsert failed", slog.String("op", op), slog.Any("error", err), slog.String("name", c.Name))
		return false, e.WrapError(ctx, op, err)
	}
	return inserted, nil
}
