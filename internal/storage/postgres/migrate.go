package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY,
	username      text NOT NULL UNIQUE,
	email         text NOT NULL UNIQUE,
	first_name    text NOT NULL DEFAULT '',
	last_name     text NOT NULL DEFAULT '',
	role          text NOT NULL DEFAULT 'citizen' CHECK (role IN ('citizen', 'staff', 'admin')),
	password_hash text NOT NULL,
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS recycling_centers (
	id                 uuid PRIMARY KEY,
	name               varchar(200) NOT NULL,
	address            text NOT NULL,
	latitude           numeric(9,6) NOT NULL,
	longitude          numeric(9,6) NOT NULL,
	materials_accepted text NOT NULL,
	working_hours      varchar(200) NOT NULL,
	assigned_staff_id  uuid REFERENCES users(id) ON DELETE SET NULL,
	created_at         timestamptz NOT NULL DEFAULT now(),
	updated_at         timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS waste_reports (
	id          uuid PRIMARY KEY,
	citizen_id  uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	center_id   uuid REFERENCES recycling_centers(id) ON DELETE SET NULL,
	latitude    numeric(9,6) NOT NULL,
	longitude   numeric(9,6) NOT NULL,
	description text NOT NULL,
	image_url   text NOT NULL DEFAULT '',
	status      varchar(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'in_progress', 'completed')),
	created_at  timestamptz NOT NULL DEFAULT now(),
	updated_at  timestamptz NOT NULL DEFAULT now()
);

DROP INDEX IF EXISTS recycling_centers_name_key;
CREATE INDEX IF NOT EXISTS recycling_centers_name_idx ON recycling_centers (name, id);
CREATE INDEX IF NOT EXISTS waste_reports_citizen_idx ON waste_reports (citizen_id, created_at DESC);
CREATE INDEX IF NOT EXISTS waste_reports_center_idx ON waste_reports (center_id, created_at DESC);
CREATE INDEX IF NOT EXISTS recycling_centers_staff_idx ON recycling_centers (assigned_staff_id);
`

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
