// Command init_schema creates the walk-in drive tables on a Postgres
// database. It is idempotent; existing tables are left alone. The
// gateway defaults to the in-memory store, so this only matters for
// DB_ENABLED=true deployments.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Cross-entity references are plain ids checked in the service layer;
// there are no foreign keys and no cascade deletes.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id BIGSERIAL PRIMARY KEY,
		serial_number TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		current_round TEXT NOT NULL,
		assigned_panel_id BIGINT NOT NULL DEFAULT 0,
		room_no TEXT NOT NULL DEFAULT '',
		qr_code_url TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		registered_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS candidates_email_idx ON candidates (LOWER(email))`,
	// Serials are backfilled from the generated id inside the insert
	// transaction, so the blank placeholder must stay non-unique.
	`CREATE UNIQUE INDEX IF NOT EXISTS candidates_serial_idx ON candidates (serial_number) WHERE serial_number <> ''`,
	`CREATE INDEX IF NOT EXISTS candidates_round_status_idx ON candidates (current_round, status)`,

	`CREATE TABLE IF NOT EXISTS panels (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		room_no TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		current_candidate_id BIGINT NOT NULL DEFAULT 0,
		members TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGSERIAL PRIMARY KEY,
		room_no TEXT NOT NULL UNIQUE,
		capacity INTEGER NOT NULL DEFAULT 1,
		floor TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT 'General',
		occupied BOOLEAN NOT NULL DEFAULT FALSE,
		assigned_panel_ids BIGINT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL,
		panel_id BIGINT NOT NULL,
		round TEXT NOT NULL DEFAULT '',
		technical_rating TEXT NOT NULL DEFAULT '',
		communication_rating TEXT NOT NULL DEFAULT '',
		detail TEXT NOT NULL DEFAULT '',
		decision TEXT NOT NULL,
		next_round TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS feedback_candidate_idx ON feedback (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS feedback_panel_idx ON feedback (panel_id)`,

	`CREATE TABLE IF NOT EXISTS candidate_feedback (
		id BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL,
		overall_rating INTEGER NOT NULL,
		process_rating INTEGER NOT NULL,
		communication_rating INTEGER NOT NULL,
		facilities_rating INTEGER NOT NULL,
		liked TEXT NOT NULL DEFAULT '',
		improve TEXT NOT NULL DEFAULT '',
		anonymous BOOLEAN NOT NULL DEFAULT FALSE,
		submitted_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		permission_overrides TEXT[] NOT NULL DEFAULT '{}',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_idx ON users (LOWER(username))`,

	`CREATE TABLE IF NOT EXISTS role_permissions (
		id BIGSERIAL PRIMARY KEY,
		role TEXT NOT NULL UNIQUE,
		permissions JSONB NOT NULL DEFAULT '{}',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

func main() {
	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "postgres"),
		envOr("DB_NAME", "walkin_drive"),
		envOr("DB_SSLMODE", "disable"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck

	if err := db.Ping(); err != nil {
		log.Fatalf("ping: %v", err)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("schema: %v\nstatement: %s", err, stmt)
		}
	}
	log.Printf("schema ready (%d statements)", len(statements))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
