// Package teller is the operator-facing surface of the bank. Each operation
// checks the caller's permission, validates its input in a fixed order, and
// reports the outcome as a result value; it never returns a Go error.
package teller

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
)

//go:generate mockgen -destination=mocks/mock_teller.go -package=mock_teller . Bank,PermissionGate

type Bank interface {
	RegisterCustomer(ctx context.Context, d bank.CustomerDetails) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	SearchCustomers(ctx context.Context, term string) ([]*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, d bank.CustomerDetails) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	CustomerAccounts(ctx context.Context, customerID string) ([]domain.Account, error)

	OpenSavingsAccount(ctx context.Context, req bank.OpenRequest) (domain.Account, error)
	OpenInvestmentAccount(ctx context.Context, req bank.OpenRequest) (domain.Account, error)
	OpenChequeAccount(ctx context.Context, req bank.OpenRequest, companyName, companyAddress string) (domain.Account, error)
	GetAccount(ctx context.Context, number string) (domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateEmployment(ctx context.Context, number, companyName, companyAddress string) (domain.Account, error)
	Statistics(ctx context.Context) (*bank.Statistics, error)

	Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Account, *domain.Transaction, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Account, *domain.Transaction, error)
	CreditSalary(ctx context.Context, number string, amount decimal.Decimal, employerReference string) (domain.Account, *domain.Transaction, error)
	ProcessMonthlyInterest(ctx context.Context, period domain.Period) (*bank.InterestSummary, error)

	TransactionHistory(ctx context.Context, number string) ([]domain.Transaction, error)
	TransactionsBetween(ctx context.Context, number string, from, to time.Time) ([]domain.Transaction, error)
	TransactionsByType(ctx context.Context, number string, t domain.TransactionType) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
}

// PermissionGate decides whether the caller in ctx may run an operation.
type PermissionGate interface {
	HasPermission(ctx context.Context, perm domain.Permission) bool
}

type Service struct {
	bank Bank
	gate PermissionGate
}

func NewService(b Bank, gate PermissionGate) *Service {
	return &Service{bank: b, gate: gate}
}
