package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/migrations"
)

// Migrate applies every embedded *.up.sql file in name order. The schema
// files only use CREATE ... IF NOT EXISTS, so running it on every start is
// safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	files, err := fs.Glob(migrations.FS, "*.up.sql")
	if err != nil {
		return fmt.Errorf("Migrate: glob: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		content, err := fs.ReadFile(migrations.FS, f)
		if err != nil {
			return fmt.Errorf("Migrate: read %s: %w", f, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("Migrate: exec %s: %w", f, err)
		}
	}
	return nil
}

// SeedAdmin inserts the default administrator unless a user with that id
// already exists. It reports whether a row was written.
func SeedAdmin(ctx context.Context, db *sql.DB, passwordHash string, now time.Time) (bool, error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO users (user_id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING`,
		domain.DefaultAdminID, "System Administrator", passwordHash, domain.RoleAdmin, now,
	)
	if err != nil {
		return false, fmt.Errorf("SeedAdmin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("SeedAdmin: rows affected: %w", err)
	}
	return n == 1, nil
}

// ledgerTables must all exist before the API can serve traffic.
var ledgerTables = []string{"users", "customers", "accounts", "transactions", "interest_runs", "idempotency_cache"}

// CheckSchema reports the first ledger table missing from the database.
func CheckSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range ledgerTables {
		var present bool
		if err := db.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, "public."+table).Scan(&present); err != nil {
			return fmt.Errorf("CheckSchema: %w", err)
		}
		if !present {
			return fmt.Errorf("CheckSchema: table %s missing", table)
		}
	}
	return nil
}
