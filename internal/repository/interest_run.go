package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

// InterestRunRepository records which accounts already received interest
// for a period.
type InterestRunRepository struct {
	db *sql.DB
}

func NewInterestRunRepository(db *sql.DB) *InterestRunRepository {
	return &InterestRunRepository{db: db}
}

func (r *InterestRunRepository) Create(ctx context.Context, tx *sql.Tx, accountNumber string, period domain.Period, transactionID string, appliedAt time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO interest_runs (account_number, period, transaction_id, applied_at)
		VALUES ($1, $2, $3, $4)`,
		accountNumber, period.String(), transactionID, appliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: %w", domain.ErrInterestAlreadyApplied)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Exists is checked under the account row lock, so a concurrent run for the
// same account and period waits and then sees the committed row.
func (r *InterestRunRepository) Exists(ctx context.Context, tx *sql.Tx, accountNumber string, period domain.Period) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM interest_runs WHERE account_number = $1 AND period = $2)`,
		accountNumber, period.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}
