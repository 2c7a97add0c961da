package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

const accountColumns = `account_number, customer_id, account_type, balance, branch,
	date_opened, company_name, company_address`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a newly opened account inside tx.
func (r *AccountRepository) Create(ctx context.Context, tx *sql.Tx, rec domain.AccountRecord) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.Number, rec.CustomerID, rec.Type, rec.Balance, rec.Branch,
		rec.OpenedAt, rec.CompanyName, rec.CompanyAddress,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("Create: %w", domain.ErrDuplicateKey)
		case isForeignKeyViolation(err):
			return fmt.Errorf("Create: %w", domain.ErrCustomerNotFound)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Save upserts by account number. The owner, variant and opening date are
// fixed on first insert; balance changes made through Save bypass the
// ledger, so services use UpdateBalance for anything that moves money.
func (r *AccountRepository) Save(ctx context.Context, rec domain.AccountRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_number) DO UPDATE SET
			balance = EXCLUDED.balance,
			branch = EXCLUDED.branch,
			company_name = EXCLUDED.company_name,
			company_address = EXCLUDED.company_address`,
		rec.Number, rec.CustomerID, rec.Type, rec.Balance, rec.Branch,
		rec.OpenedAt, rec.CompanyName, rec.CompanyAddress,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("Save: %w", domain.ErrCustomerNotFound)
		}
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (domain.Account, error) {
	a, err := getAccount(ctx, r.db, `SELECT `+accountColumns+` FROM accounts WHERE account_number = $1`, number)
	if err != nil {
		return nil, fmt.Errorf("GetByNumber: %w", err)
	}
	return a, nil
}

// GetForUpdate loads the account and holds its row lock until tx ends.
func (r *AccountRepository) GetForUpdate(ctx context.Context, tx *sql.Tx, number string) (domain.Account, error) {
	a, err := getAccount(ctx, tx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = $1 FOR UPDATE`, number)
	if err != nil {
		return nil, fmt.Errorf("GetForUpdate: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) GetByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE customer_id = $1 ORDER BY date_opened, account_number`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetByCustomerID: %w", err)
	}
	return collectAccounts(rows, "GetByCustomerID")
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY account_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return collectAccounts(rows, "List")
}

// ListNumbers returns every account number of the given variants.
func (r *AccountRepository) ListNumbers(ctx context.Context, types ...domain.AccountType) ([]string, error) {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_number FROM accounts WHERE account_type = ANY($1) ORDER BY account_number`,
		pq.Array(names),
	)
	if err != nil {
		return nil, fmt.Errorf("ListNumbers: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("ListNumbers: scan: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListNumbers: rows: %w", err)
	}
	return numbers, nil
}

func (r *AccountRepository) CountByType(ctx context.Context, t domain.AccountType) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE account_type = $1`, t,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("CountByType: %w", err)
	}
	return n, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

// LastSequence returns the largest numeric suffix among stored account
// numbers, or 0 when there are none.
func (r *AccountRepository) LastSequence(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(substring(account_number FROM '[0-9]+$')::bigint), 0) FROM accounts`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("LastSequence: %w", err)
	}
	return n, nil
}

// UpdateBalance writes next only if the stored balance still equals
// expected.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx *sql.Tx, number string, expected, next decimal.Decimal) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE accounts SET balance = $1 WHERE account_number = $2 AND balance = $3`,
		next, number, expected,
	)
	if err != nil {
		return fmt.Errorf("UpdateBalance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateBalance: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("UpdateBalance: %w", domain.ErrBalanceConflict)
	}
	return nil
}

// UpdateEmployment rewrites the employer fields of a cheque account.
func (r *AccountRepository) UpdateEmployment(ctx context.Context, number, companyName, companyAddress string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET company_name = $2, company_address = $3
		WHERE account_number = $1 AND account_type = $4`,
		number, companyName, companyAddress, domain.AccountTypeCheque,
	)
	if err != nil {
		return fmt.Errorf("UpdateEmployment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateEmployment: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("UpdateEmployment: %w", domain.ErrAccountNotFound)
	}
	return nil
}

// Delete removes an account that has no recorded transactions.
func (r *AccountRepository) Delete(ctx context.Context, number string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE account_number = $1`, number,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("Delete: %w", domain.ErrAccountHasTransactions)
		}
		return fmt.Errorf("Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("Delete: %w", domain.ErrAccountNotFound)
	}
	return nil
}

func getAccount(ctx context.Context, q querier, query, number string) (domain.Account, error) {
	rec, err := scanAccountRecord(q.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return domain.Rehydrate(rec)
}

func collectAccounts(rows *sql.Rows, op string) ([]domain.Account, error) {
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		rec, err := scanAccountRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		a, err := domain.Rehydrate(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return accounts, nil
}

func scanAccountRecord(s scanner) (domain.AccountRecord, error) {
	var rec domain.AccountRecord
	err := s.Scan(
		&rec.Number, &rec.CustomerID, &rec.Type, &rec.Balance, &rec.Branch,
		&rec.OpenedAt, &rec.CompanyName, &rec.CompanyAddress,
	)
	if err != nil {
		return domain.AccountRecord{}, err
	}
	rec.OpenedAt = rec.OpenedAt.UTC()
	return rec, nil
}
