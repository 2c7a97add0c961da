package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

const TestPassword = "password123"

func SeedTestUser(t *testing.T, db *sql.DB, id string, role domain.Role) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		ID:           id,
		Username:     id,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = db.Exec(
		`INSERT INTO users (user_id, username, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.PasswordHash, u.Role, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("seed test user %s: %v", id, err)
	}
	return u
}

func SeedTestCustomer(t *testing.T, db *sql.DB, id, firstName, surname string) *domain.Customer {
	t.Helper()

	c, err := domain.NewCustomer(id, firstName, surname, "Plot 5, Gaborone", time.Now())
	if err != nil {
		t.Fatalf("build test customer %s: %v", id, err)
	}
	_, err = db.Exec(
		`INSERT INTO customers (customer_id, first_name, surname, address, registered_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.FirstName, c.Surname, c.Address, c.RegisteredAt,
	)
	if err != nil {
		t.Fatalf("seed test customer %s: %v", id, err)
	}
	return c
}

// SeedTestAccount writes an account row directly, without an opening
// transaction.
func SeedTestAccount(t *testing.T, db *sql.DB, rec domain.AccountRecord) {
	t.Helper()

	if rec.OpenedAt.IsZero() {
		rec.OpenedAt = time.Now().UTC()
	}
	if rec.Branch == "" {
		rec.Branch = "Main Mall"
	}
	_, err := db.Exec(
		`INSERT INTO accounts (account_number, customer_id, account_type, balance, branch,
			date_opened, company_name, company_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.Number, rec.CustomerID, rec.Type, rec.Balance, rec.Branch,
		rec.OpenedAt, rec.CompanyName, rec.CompanyAddress,
	)
	if err != nil {
		t.Fatalf("seed test account %s: %v", rec.Number, err)
	}
}

func GetAccountBalance(t *testing.T, db *sql.DB, number string) decimal.Decimal {
	t.Helper()

	var balance decimal.Decimal
	err := db.QueryRow(`SELECT balance FROM accounts WHERE account_number = $1`, number).Scan(&balance)
	if err != nil {
		t.Fatalf("get account balance %s: %v", number, err)
	}
	return balance
}

func CountTransactions(t *testing.T, db *sql.DB, number string, txType domain.TransactionType) int {
	t.Helper()

	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM transactions WHERE account_number = $1 AND transaction_type = $2`,
		number, txType,
	).Scan(&count)
	if err != nil {
		t.Fatalf("count %s transactions for %s: %v", txType, number, err)
	}
	return count
}

// LedgerSum replays an account's transactions into the balance they imply.
func LedgerSum(t *testing.T, db *sql.DB, number string) decimal.Decimal {
	t.Helper()

	var sum decimal.Decimal
	err := db.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN transaction_type = 'WITHDRAWAL' THEN -amount ELSE amount END), 0)
		 FROM transactions WHERE account_number = $1`,
		number,
	).Scan(&sum)
	if err != nil {
		t.Fatalf("sum ledger for %s: %v", number, err)
	}
	return sum
}
