package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/auth"
	"github.com/josh-kwaku/teller-ledger/internal/config"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
	"github.com/josh-kwaku/teller-ledger/internal/repository"
	"github.com/josh-kwaku/teller-ledger/internal/service"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
	"github.com/josh-kwaku/teller-ledger/internal/service/teller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init("teller-ledger", cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := connectDB(ctx, cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := bootstrap(ctx, db, cfg); err != nil {
		slog.Error("failed to bootstrap database", "error", err)
		os.Exit(1)
	}

	idempotency := repository.NewIdempotencyRepository(db)
	rbac := auth.NewRBAC()

	b, err := bank.New(ctx,
		bank.Config{Name: cfg.BankName, Code: cfg.BankCode},
		repository.NewDB(db),
		repository.NewCustomerRepository(db),
		repository.NewAccountRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewInterestRunRepository(db),
	)
	if err != nil {
		slog.Error("failed to start bank", "error", err)
		os.Exit(1)
	}

	tellerSvc := teller.NewService(b, rbac)
	userSvc := service.NewUserService(repository.NewUserRepository(db), rbac, cfg.JWTSecret, cfg.JWTExpiry)

	if cfg.InterestSchedulerEnabled {
		scheduler := service.NewInterestScheduler(b, idempotency, logger, cfg.InterestSchedulerInterval)
		go scheduler.Start(ctx)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr: addr,
		Handler: newRouter(routerDeps{
			cfg:         cfg,
			db:          db,
			teller:      tellerSvc,
			users:       userSvc,
			idempotency: idempotency,
		}),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "bank", b.Name(), "bank_code", b.Code())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func connectDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	pool := repository.PoolConfig{
		MaxOpenConns:     cfg.DBMaxOpenConns,
		MaxIdleConns:     cfg.DBMaxIdleConns,
		ConnMaxLifetimeS: cfg.DBConnMaxLifetimeS,
		ConnMaxIdleTimeS: cfg.DBConnMaxIdleTimeS,
	}
	return repository.Connect(ctx, cfg.DatabaseURL, pool, 30, time.Second)
}

// bootstrap applies the schema and seeds the default admin on first run.
func bootstrap(ctx context.Context, db *sql.DB, cfg *config.Config) error {
	if err := repository.Migrate(ctx, db); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	seeded, err := repository.SeedAdmin(ctx, db, hash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if seeded {
		slog.Info("default admin created", "user_id", "admin")
	}
	return nil
}
