package service

import (
	"context"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
)

type userRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	List(ctx context.Context) ([]*domain.User, error)
}

type permissionGate interface {
	HasPermission(ctx context.Context, perm domain.Permission) bool
}

type interestProcessor interface {
	ProcessMonthlyInterest(ctx context.Context, period domain.Period) (*bank.InterestSummary, error)
}

type idempotencyPurger interface {
	Purge(ctx context.Context, before time.Time) (int64, error)
}
