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

const userSelect = `
	SELECT id, username, email, first_name, last_name, role, password_hash, created_at
	FROM users`

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *UserRepo) Create(ctx context.Context, u *domain.User) error {
	const op = "postgres.User.Create"

	const query = `
		INSERT INTO users (id, username, email, first_name, last_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = domain.RoleCitizen
	}

	_, err := p.pool.Exec(ctx, query, u.ID, u.Username, strings.ToLower(u.Email), u.FirstName, u.LastName, u.Role, u.PasswordHash, u.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("username", u.Username))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *UserRepo) get(ctx context.Context, op, where string, arg any) (*domain.User, error) {
	u, err := scanUser(p.pool.QueryRow(ctx, userSelect+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return u, nil
}

func (p *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return p.get(ctx, "postgres.User.GetByID", ` WHERE id = $1`, id)
}

func (p *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.get(ctx, "postgres.User.GetByUsername", ` WHERE username = $1`, username)
}

func (p *UserRepo) List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error) {
	const op = "postgres.User.List"

	var (
		conds []string
		args  []any
	)
	if f.Role != "" {
		args = append(args, f.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, f.Search)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(username ILIKE '%%' || $%[1]d || '%%' OR email ILIKE '%%' || $%[1]d || '%%' OR first_name ILIKE '%%' || $%[1]d || '%%' OR last_name ILIKE '%%' || $%[1]d || '%%')", n))
	}

	query := userSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY username"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return users, nil
}

func (p *UserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	const op = "postgres.User.UpdateRole"

	cmd, err := p.pool.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1`, id, role)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Delete removes the user together with every report they own.
func (p *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.User.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Upsert creates the user or refreshes profile and role of an existing username.
// The password hash is only written on insert.
func (p *UserRepo) Upsert(ctx context.Context, u *domain.User) (bool, error) {
	const op = "postgres.User.Upsert"

	const query = `
		INSERT INTO users (id, username, email, first_name, last_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (username) DO UPDATE
		SET email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = EXCLUDED.role
		RETURNING id, created_at, (xmax = 0) AS inserted
	`

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	var inserted bool
	err := p.pool.QueryRow(ctx, query, u.ID, u.Username, strings.ToLower(u.Email), u.FirstName, u.LastName, u.Role, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt, &inserted)
	if err != nil {
		p.logger.Error("db upsert failed", slog.String("op", op), slog.Any("error", err), slog.String("username", u.Username))
		return false, e.WrapError(ctx, op, err)
	}
	return inserted, nil
}
