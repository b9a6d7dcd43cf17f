package postgres

import (
	"context"
	"log/slog"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountCenters(ctx context.Context) (int64, error) {
	const op = "postgres.Stats.CountCenters"

	var n int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recycling_centers`).Scan(&n); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}

func (p *StatsRepo) CountUsers(ctx context.Context) (total, citizens, staff int64, err error) {
	const op = "postgres.Stats.CountUsers"

	const query = `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE role = 'citizen'),
			   COUNT(*) FILTER (WHERE role = 'staff')
		FROM users
	`

	if err = p.pool.QueryRow(ctx, query).Scan(&total, &citizens, &staff); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, 0, 0, e.WrapError(ctx, op, err)
	}
	return total, citizens, staff, nil
}

// ReportsPerCenter counts reports for every center, including centers with none.
func (p *StatsRepo) ReportsPerCenter(ctx context.Context) ([]domain.AreaStat, error) {
	const op = "postgres.Stats.ReportsPerCenter"

	const query = `
		SELECT c.name, COUNT(r.id)
		FROM recycling_centers c
		LEFT JOIN waste_reports r ON r.center_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name, c.id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stats := make([]domain.AreaStat, 0, 16)
	for rows.Next() {
		var s domain.AreaStat
		if err := rows.Scan(&s.Name, &s.Count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return stats, nil
}
