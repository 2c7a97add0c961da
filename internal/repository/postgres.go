package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

type PoolConfig struct {
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetimeS int
	ConnMaxIdleTimeS int
}

// withDefaults fills unset fields. Every balance change holds a row lock
// for the length of its transaction, so the pool must not be left at
// database/sql's unlimited default.
func (p PoolConfig) withDefaults() PoolConfig {
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = 25
	}
	if p.MaxIdleConns <= 0 || p.MaxIdleConns > p.MaxOpenConns {
		p.MaxIdleConns = min(10, p.MaxOpenConns)
	}
	if p.ConnMaxLifetimeS <= 0 {
		p.ConnMaxLifetimeS = 300
	}
	if p.ConnMaxIdleTimeS <= 0 {
		p.ConnMaxIdleTimeS = 60
	}
	return p
}

func NewPostgresDB(ctx context.Context, databaseURL string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("NewPostgresDB: open: %w", err)
	}

	pool = pool.withDefaults()
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeS) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewPostgresDB: ping: %w", err)
	}

	return db, nil
}

// Connect retries NewPostgresDB until the database answers, attempts runs
// out, or ctx is cancelled. Containers often start the API before Postgres
// accepts connections.
func Connect(ctx context.Context, databaseURL string, pool PoolConfig, attempts int, wait time.Duration) (*sql.DB, error) {
	var err error
	for i := range attempts {
		var db *sql.DB
		if db, err = NewPostgresDB(ctx, databaseURL, pool); err == nil {
			return db, nil
		}
		slog.Info("waiting for database", "attempt", i+1, "error", err)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("Connect: %w", ctx.Err())
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("Connect: gave up after %d attempts: %w", attempts, err)
}
