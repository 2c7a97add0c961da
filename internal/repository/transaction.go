package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

const transactionColumns = `transaction_id, account_number, transaction_type, amount,
	balance_after, description, transaction_timestamp`

// newestFirst breaks timestamp ties by insertion order.
const newestFirst = ` ORDER BY transaction_timestamp DESC, seq DESC`

// TransactionRepository is insert-only. The table rejects UPDATE and DELETE.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *sql.Tx, t *domain.Transaction) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (
			transaction_id, account_number, transaction_type, amount,
			balance_after, description, transaction_timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.AccountNumber, t.Type, t.Amount, t.BalanceAfter, t.Description, t.Timestamp,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("Create: %w", domain.ErrDuplicateKey)
		case isForeignKeyViolation(err):
			return fmt.Errorf("Create: %w", domain.ErrAccountNotFound)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1`, id,
	)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return t, nil
}

// GetByAccount returns the full history of an account, newest first.
func (r *TransactionRepository) GetByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE account_number = $1`+newestFirst,
		accountNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("GetByAccount: %w", err)
	}
	return collectTransactions(rows, "GetByAccount")
}

// GetByDateRange returns transactions stamped between from and to, both
// ends included.
func (r *TransactionRepository) GetByDateRange(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE account_number = $1 AND transaction_timestamp BETWEEN $2 AND $3`+newestFirst,
		accountNumber, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("GetByDateRange: %w", err)
	}
	return collectTransactions(rows, "GetByDateRange")
}

func (r *TransactionRepository) GetByType(ctx context.Context, accountNumber string, t domain.TransactionType) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE account_number = $1 AND transaction_type = $2`+newestFirst,
		accountNumber, t,
	)
	if err != nil {
		return nil, fmt.Errorf("GetByType: %w", err)
	}
	return collectTransactions(rows, "GetByType")
}

func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions`+newestFirst,
	)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return collectTransactions(rows, "List")
}

func collectTransactions(rows *sql.Rows, op string) ([]domain.Transaction, error) {
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return txns, nil
}

func scanTransaction(s scanner) (*domain.Transaction, error) {
	var (
		t           domain.Transaction
		description sql.NullString
	)
	err := s.Scan(
		&t.ID, &t.AccountNumber, &t.Type, &t.Amount,
		&t.BalanceAfter, &description, &t.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	t.Timestamp = t.Timestamp.UTC()
	return &t, nil
}
