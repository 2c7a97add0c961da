package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/josh-kwaku/teller-ledger/api"
	"github.com/josh-kwaku/teller-ledger/internal/config"
	"github.com/josh-kwaku/teller-ledger/internal/handler"
	"github.com/josh-kwaku/teller-ledger/internal/middleware"
	"github.com/josh-kwaku/teller-ledger/internal/repository"
	"github.com/josh-kwaku/teller-ledger/internal/service"
	"github.com/josh-kwaku/teller-ledger/internal/service/teller"
)

type routerDeps struct {
	cfg         *config.Config
	db          *sql.DB
	teller      *teller.Service
	users       *service.UserService
	idempotency *repository.IdempotencyRepository
}

func newRouter(d routerDeps) http.Handler {
	health := handler.NewHealthHandler(d.cfg.Version, d.cfg.BankName, map[string]handler.Check{
		"database": d.db.PingContext,
		"schema":   func(ctx context.Context) error { return repository.CheckSchema(ctx, d.db) },
	})
	authH := handler.NewAuthHandler(d.users)
	users := handler.NewUserHandler(d.users)
	customers := handler.NewCustomerHandler(d.teller)
	accounts := handler.NewAccountHandler(d.teller)

	authed := middleware.Auth(d.cfg.JWTSecret)
	idem := middleware.Idempotency(d.idempotency, d.cfg.IdempotencyTTL)

	protect := func(h http.HandlerFunc) http.Handler { return authed(h) }
	protectOnce := func(h http.HandlerFunc) http.Handler { return authed(idem(h)) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Liveness)
	mux.HandleFunc("GET /health/ready", health.Readiness)
	mux.HandleFunc("GET /docs", handler.ServeDocs(d.cfg.BankName))
	mux.HandleFunc("GET /docs/openapi.yaml", handler.ServeOpenAPI(api.OpenAPI))

	mux.HandleFunc("POST /api/v1/auth/login", authH.Login)
	mux.Handle("POST /api/v1/auth/password", protect(authH.ChangePassword))

	mux.Handle("GET /api/v1/users", protect(users.List))
	mux.Handle("POST /api/v1/users", protect(users.Create))

	mux.Handle("GET /api/v1/customers", protect(customers.List))
	mux.Handle("POST /api/v1/customers", protectOnce(customers.Register))
	mux.Handle("GET /api/v1/customers/{id}", protect(customers.Get))
	mux.Handle("PUT /api/v1/customers/{id}", protect(customers.Update))
	mux.Handle("DELETE /api/v1/customers/{id}", protect(customers.Delete))
	mux.Handle("GET /api/v1/customers/{id}/accounts", protect(customers.Accounts))

	mux.Handle("GET /api/v1/accounts", protect(accounts.List))
	mux.Handle("POST /api/v1/accounts", protectOnce(accounts.Open))
	mux.Handle("GET /api/v1/accounts/stats", protect(accounts.Statistics))
	mux.Handle("GET /api/v1/accounts/{number}", protect(accounts.Balance))
	mux.Handle("GET /api/v1/accounts/{number}/transactions", protect(accounts.Transactions))
	mux.Handle("POST /api/v1/accounts/{number}/deposits", protectOnce(accounts.Deposit))
	mux.Handle("POST /api/v1/accounts/{number}/withdrawals", protectOnce(accounts.Withdraw))
	mux.Handle("POST /api/v1/accounts/{number}/salary", protectOnce(accounts.CreditSalary))
	mux.Handle("PUT /api/v1/accounts/{number}/employment", protect(accounts.UpdateEmployment))
	mux.Handle("GET /api/v1/transactions/{id}", protect(accounts.Transaction))
	mux.Handle("POST /api/v1/interest/runs", protectOnce(accounts.ProcessInterest))

	return middleware.RequestID(middleware.Logging(middleware.Recovery(mux)))
}
