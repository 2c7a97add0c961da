package bank

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
)

type InterestSummary struct {
	Period domain.Period
	// Processed counts interest-earning accounts handled for Period,
	// including those whose interest rounded to zero.
	Processed int
	Credited  int
	// Skipped counts accounts that already received interest for Period.
	Skipped       int
	Failed        int
	TotalInterest decimal.Decimal
}

// ApplyInterest credits one period of interest to an account. It returns a
// nil transaction when the interest is zero, and ErrInterestAlreadyApplied
// when the period was already credited. Periods after the current month
// are refused with ErrFuturePeriod.
func (b *Bank) ApplyInterest(ctx context.Context, number string, period domain.Period) (domain.Account, *domain.Transaction, error) {
	if err := b.checkPeriod(period); err != nil {
		return nil, nil, fmt.Errorf("ApplyInterest: %w", err)
	}
	acct, txn, err := b.mutate(ctx, number, mutation{
		apply: func(ctx context.Context, tx *sql.Tx, a domain.Account, now time.Time) (*domain.Transaction, error) {
			if !a.EarnsInterest() {
				return nil, nil
			}
			done, err := b.interestRuns.Exists(ctx, tx, a.Number(), period)
			if err != nil {
				return nil, err
			}
			if done {
				return nil, domain.ErrInterestAlreadyApplied
			}
			return a.ApplyInterest(now), nil
		},
		record: func(ctx context.Context, tx *sql.Tx, txn *domain.Transaction) error {
			return b.interestRuns.Create(ctx, tx, txn.AccountNumber, period, txn.ID, txn.Timestamp)
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ApplyInterest: %w", err)
	}
	if txn != nil {
		logApplied(ctx, "interest applied", txn)
	}
	return acct, txn, nil
}

// ProcessMonthlyInterest applies one period of interest to every account
// that earns it. Each account commits on its own, so one failure does not
// undo the others. An empty period means the current month.
func (b *Bank) ProcessMonthlyInterest(ctx context.Context, period domain.Period) (*InterestSummary, error) {
	log := logging.FromContext(ctx)

	if period == "" {
		period = domain.PeriodOf(b.now())
	}
	if err := b.checkPeriod(period); err != nil {
		return nil, fmt.Errorf("ProcessMonthlyInterest: %w", err)
	}
	summary := &InterestSummary{Period: period, TotalInterest: decimal.Zero}

	numbers, err := b.accounts.ListNumbers(ctx, domain.InterestBearingTypes()...)
	if err != nil {
		return nil, fmt.Errorf("ProcessMonthlyInterest: %w", err)
	}

	for _, number := range numbers {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("ProcessMonthlyInterest: %w", err)
		}

		_, txn, err := b.ApplyInterest(ctx, number, period)
		switch {
		case errors.Is(err, domain.ErrInterestAlreadyApplied):
			summary.Skipped++
			continue
		case err != nil:
			summary.Failed++
			log.Error("interest failed", "account_number", number, "period", period, "error", err)
			continue
		}

		summary.Processed++
		if txn != nil {
			summary.Credited++
			summary.TotalInterest = summary.TotalInterest.Add(txn.Amount)
		}
	}

	log.Info("monthly interest processed",
		"period", period,
		"processed", summary.Processed,
		"credited", summary.Credited,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"total_interest", summary.TotalInterest.StringFixed(2),
	)
	return summary, nil
}

func (b *Bank) checkPeriod(period domain.Period) error {
	if period.After(domain.PeriodOf(b.now())) {
		return fmt.Errorf("%s: %w", period, domain.ErrFuturePeriod)
	}
	return nil
}
