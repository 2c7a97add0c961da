package bank

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
)

// mutation changes a locked account. apply may return a nil transaction to
// leave the account untouched; record runs after the transaction row is
// written, inside the same unit of work.
type mutation struct {
	apply  func(ctx context.Context, tx *sql.Tx, acct domain.Account, now time.Time) (*domain.Transaction, error)
	record func(ctx context.Context, tx *sql.Tx, txn *domain.Transaction) error
}

// mutate locks the account row and applies m to the stored state. The
// returned account reflects what was committed; nothing is returned on
// rollback.
func (b *Bank) mutate(ctx context.Context, number string, m mutation) (domain.Account, *domain.Transaction, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("mutate: begin tx: %w", err)
	}
	defer tx.Rollback()

	acct, err := b.accounts.GetForUpdate(ctx, tx, number)
	if err != nil {
		return nil, nil, fmt.Errorf("mutate: %w", err)
	}
	before := acct.Balance()

	txn, err := m.apply(ctx, tx, acct, b.now())
	if err != nil {
		return nil, nil, fmt.Errorf("mutate: %w", err)
	}
	if txn == nil {
		return acct, nil, nil
	}

	if err := b.accounts.UpdateBalance(ctx, tx, number, before, acct.Balance()); err != nil {
		return nil, nil, fmt.Errorf("mutate: %w", err)
	}
	if err := b.transactions.Create(ctx, tx, txn); err != nil {
		return nil, nil, fmt.Errorf("mutate: %w", err)
	}
	if m.record != nil {
		if err := m.record(ctx, tx, txn); err != nil {
			return nil, nil, fmt.Errorf("mutate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("mutate: commit: %w", err)
	}
	return acct, txn, nil
}

func (b *Bank) Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Account, *domain.Transaction, error) {
	acct, txn, err := b.mutate(ctx, number, mutation{
		apply: func(_ context.Context, _ *sql.Tx, a domain.Account, now time.Time) (*domain.Transaction, error) {
			return a.Deposit(amount, now)
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("Deposit: %w", err)
	}
	logApplied(ctx, "deposit applied", txn)
	return acct, txn, nil
}

func (b *Bank) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Account, *domain.Transaction, error) {
	acct, txn, err := b.mutate(ctx, number, mutation{
		apply: func(_ context.Context, _ *sql.Tx, a domain.Account, now time.Time) (*domain.Transaction, error) {
			return a.Withdraw(amount, now)
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("Withdraw: %w", err)
	}
	logApplied(ctx, "withdrawal applied", txn)
	return acct, txn, nil
}

// CreditSalary is accepted only by accounts that take salary credits.
func (b *Bank) CreditSalary(ctx context.Context, number string, amount decimal.Decimal, employerReference string) (domain.Account, *domain.Transaction, error) {
	acct, txn, err := b.mutate(ctx, number, mutation{
		apply: func(_ context.Context, _ *sql.Tx, a domain.Account, now time.Time) (*domain.Transaction, error) {
			sc, ok := a.(domain.SalaryCreditor)
			if !ok {
				return nil, domain.ErrSalaryNotSupported
			}
			return sc.CreditSalary(amount, employerReference, now)
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("CreditSalary: %w", err)
	}
	logApplied(ctx, "salary credited", txn)
	return acct, txn, nil
}

func logApplied(ctx context.Context, msg string, txn *domain.Transaction) {
	logging.FromContext(ctx).Info(msg,
		"account_number", txn.AccountNumber,
		"transaction_id", txn.ID,
		"amount", txn.Amount.StringFixed(2),
		"balance_after", txn.BalanceAfter.StringFixed(2),
	)
}
