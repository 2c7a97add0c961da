// Package bank orchestrates customers, accounts and their ledgers on top of
// the Postgres store. Every balance change is committed together with its
// transaction row, under a row lock on the account.
package bank

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Search(ctx context.Context, term string) ([]*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	LastSequence(ctx context.Context) (int, error)
}

type accountRepo interface {
	Create(ctx context.Context, tx *sql.Tx, rec domain.AccountRecord) error
	GetByNumber(ctx context.Context, number string) (domain.Account, error)
	GetForUpdate(ctx context.Context, tx *sql.Tx, number string) (domain.Account, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListNumbers(ctx context.Context, types ...domain.AccountType) ([]string, error)
	CountByType(ctx context.Context, t domain.AccountType) (int, error)
	Count(ctx context.Context) (int, error)
	LastSequence(ctx context.Context) (int, error)
	UpdateBalance(ctx context.Context, tx *sql.Tx, number string, expected, next decimal.Decimal) error
	UpdateEmployment(ctx context.Context, number, companyName, companyAddress string) error
}

type transactionRepo interface {
	Create(ctx context.Context, tx *sql.Tx, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error)
	GetByDateRange(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.Transaction, error)
	GetByType(ctx context.Context, accountNumber string, t domain.TransactionType) ([]domain.Transaction, error)
}

type interestRunRepo interface {
	Create(ctx context.Context, tx *sql.Tx, accountNumber string, period domain.Period, transactionID string, appliedAt time.Time) error
	Exists(ctx context.Context, tx *sql.Tx, accountNumber string, period domain.Period) (bool, error)
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type Config struct {
	Name string
	Code string
}

type Bank struct {
	name string
	code string

	customers    customerRepo
	accounts     accountRepo
	transactions transactionRepo
	interestRuns interestRunRepo
	db           txBeginner

	ids *idGenerator
	now func() time.Time
}

type Option func(*Bank)

// WithClock replaces the wall clock used to stamp accounts and transactions.
func WithClock(now func() time.Time) Option {
	return func(b *Bank) { b.now = now }
}

// New seeds the id counters from what is already stored, so it must run
// after the schema exists. Counters start past both the stored row count
// and the highest stored id, so deletions never make them reissue an id.
func New(
	ctx context.Context,
	cfg Config,
	db txBeginner,
	customers customerRepo,
	accounts accountRepo,
	transactions transactionRepo,
	interestRuns interestRunRepo,
	opts ...Option,
) (*Bank, error) {
	b := &Bank{
		name:         cfg.Name,
		code:         cfg.Code,
		customers:    customers,
		accounts:     accounts,
		transactions: transactions,
		interestRuns: interestRuns,
		db:           db,
		now:          wallClock,
	}
	for _, opt := range opts {
		opt(b)
	}

	nextCust, err := nextSequence(ctx, customerIDBase, customers)
	if err != nil {
		return nil, fmt.Errorf("bank.New: customers: %w", err)
	}
	nextAccount, err := nextSequence(ctx, accountNumberBase, accounts)
	if err != nil {
		return nil, fmt.Errorf("bank.New: accounts: %w", err)
	}
	b.ids = newIDGenerator(cfg.Code, nextCust, nextAccount)

	return b, nil
}

// wallClock matches the microsecond precision Postgres stores.
func wallClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (b *Bank) Name() string { return b.name }
func (b *Bank) Code() string { return b.code }
