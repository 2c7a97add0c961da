package bank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
)

type OpenRequest struct {
	CustomerID     string
	InitialBalance decimal.Decimal
	Branch         string
}

type builder func(p domain.OpenParams) (domain.Account, error)

func (b *Bank) OpenSavingsAccount(ctx context.Context, req OpenRequest) (domain.Account, error) {
	a, err := b.openAccount(ctx, req, func(p domain.OpenParams) (domain.Account, error) {
		s, err := domain.OpenSavings(p)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("OpenSavingsAccount: %w", err)
	}
	return a, nil
}

func (b *Bank) OpenInvestmentAccount(ctx context.Context, req OpenRequest) (domain.Account, error) {
	a, err := b.openAccount(ctx, req, func(p domain.OpenParams) (domain.Account, error) {
		i, err := domain.OpenInvestment(p)
		if err != nil {
			return nil, err
		}
		return i, nil
	})
	if err != nil {
		return nil, fmt.Errorf("OpenInvestmentAccount: %w", err)
	}
	return a, nil
}

func (b *Bank) OpenChequeAccount(ctx context.Context, req OpenRequest, companyName, companyAddress string) (domain.Account, error) {
	a, err := b.openAccount(ctx, req, func(p domain.OpenParams) (domain.Account, error) {
		c, err := domain.OpenCheque(p, companyName, companyAddress)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("OpenChequeAccount: %w", err)
	}
	return a, nil
}

// openAccount writes the account and its opening deposit in one
// transaction, then attaches the account to the loaded customer.
func (b *Bank) openAccount(ctx context.Context, req OpenRequest, build builder) (domain.Account, error) {
	log := logging.FromContext(ctx)

	customer, err := b.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("openAccount: %w", err)
	}

	for attempt := 1; ; attempt++ {
		now := b.now()
		acct, err := build(domain.OpenParams{
			Number:         b.ids.accountNumber(),
			Customer:       customer,
			InitialBalance: req.InitialBalance,
			Branch:         req.Branch,
			OpenedAt:       now,
		})
		if err != nil {
			return nil, fmt.Errorf("openAccount: %w", err)
		}

		err = b.persistOpened(ctx, acct, now)
		if errors.Is(err, domain.ErrDuplicateKey) && attempt < maxIDAttempts {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("openAccount: %w", err)
		}

		customer.AddAccount(acct)
		log.Info("account opened",
			"account_number", acct.Number(),
			"account_type", acct.Type(),
			"customer_id", customer.ID,
			"opening_balance", acct.Balance().StringFixed(2),
		)
		return acct, nil
	}
}

func (b *Bank) persistOpened(ctx context.Context, acct domain.Account, now time.Time) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("persistOpened: begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := b.accounts.Create(ctx, tx, acct.Record()); err != nil {
		return fmt.Errorf("persistOpened: %w", err)
	}
	if deposit := domain.OpeningDeposit(acct, now); deposit != nil {
		if err := b.transactions.Create(ctx, tx, deposit); err != nil {
			return fmt.Errorf("persistOpened: opening deposit: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("persistOpened: commit: %w", err)
	}
	return nil
}

func (b *Bank) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	a, err := b.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("GetAccount: %w", err)
	}
	return a, nil
}

func (b *Bank) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := b.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListAccounts: %w", err)
	}
	return accounts, nil
}

// UpdateEmployment changes the employer on record for a cheque account.
// Blank values keep the current ones.
func (b *Bank) UpdateEmployment(ctx context.Context, number, companyName, companyAddress string) (domain.Account, error) {
	a, err := b.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("UpdateEmployment: %w", err)
	}
	cheque, ok := a.(*domain.ChequeAccount)
	if !ok {
		return nil, fmt.Errorf("UpdateEmployment: %s: %w", a.Type(), domain.ErrSalaryNotSupported)
	}
	cheque.UpdateEmployment(companyName, companyAddress)

	if err := b.accounts.UpdateEmployment(ctx, number, cheque.CompanyName(), cheque.CompanyAddress()); err != nil {
		return nil, fmt.Errorf("UpdateEmployment: %w", err)
	}
	return cheque, nil
}

type Statistics struct {
	Customers int
	Accounts  int
	ByType    map[domain.AccountType]int
}

func (b *Bank) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{ByType: make(map[domain.AccountType]int, len(domain.AccountTypes))}

	var err error
	if stats.Customers, err = b.customers.Count(ctx); err != nil {
		return nil, fmt.Errorf("Statistics: %w", err)
	}
	if stats.Accounts, err = b.accounts.Count(ctx); err != nil {
		return nil, fmt.Errorf("Statistics: %w", err)
	}
	for _, t := range domain.AccountTypes {
		n, err := b.accounts.CountByType(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("Statistics: %w", err)
		}
		stats.ByType[t] = n
	}
	return stats, nil
}
