package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

// InterestScheduler credits monthly interest for the current period and
// purges expired idempotency entries on every tick. It talks to the bank
// directly, so no caller permission is involved.
type InterestScheduler struct {
	interest interestProcessor
	purger   idempotencyPurger
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	lastPeriod domain.Period
}

func NewInterestScheduler(
	interest interestProcessor,
	purger idempotencyPurger,
	logger *slog.Logger,
	interval time.Duration,
) *InterestScheduler {
	return &InterestScheduler{
		interest: interest,
		purger:   purger,
		logger:   logger,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *InterestScheduler) Start(ctx context.Context) {
	s.logger.Info("interest scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("interest scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *InterestScheduler) tick(ctx context.Context) {
	now := s.now()
	s.runInterest(ctx, domain.PeriodOf(now))

	if s.purger == nil {
		return
	}
	n, err := s.purger.Purge(ctx, now)
	if err != nil {
		s.logger.Error("failed to purge idempotency entries", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("purged idempotency entries", "count", n)
	}
}

// runInterest skips a period this scheduler already completed. Accounts
// credited by an earlier process or a manual run are skipped by the bank.
func (s *InterestScheduler) runInterest(ctx context.Context, period domain.Period) {
	if period == s.lastPeriod {
		return
	}

	summary, err := s.interest.ProcessMonthlyInterest(ctx, period)
	if err != nil {
		s.logger.Error("scheduled interest run failed", "period", period, "error", err)
		return
	}

	s.logger.Info("scheduled interest run complete",
		"period", summary.Period,
		"credited", summary.Credited,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"total_interest", summary.TotalInterest.StringFixed(2),
	)
	if summary.Failed == 0 {
		s.lastPeriod = period
	}
}
