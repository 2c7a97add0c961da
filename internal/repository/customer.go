package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

const customerColumns = `customer_id, first_name, surname, address, phone_number, email, registered_at`

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (`+customerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.FirstName, c.Surname, c.Address, c.PhoneNumber, c.Email, c.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: %w", domain.ErrDuplicateKey)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields. The id and registration time never change.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers
		SET first_name = $2, surname = $3, address = $4, phone_number = $5, email = $6
		WHERE customer_id = $1`,
		c.ID, c.FirstName, c.Surname, c.Address, c.PhoneNumber, c.Email,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("Update: %w", domain.ErrCustomerNotFound)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = $1`, id,
	)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY surname, first_name, customer_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return collectCustomers(rows, "List")
}

// Search matches term case-insensitively as a substring of the first name or
// surname.
func (r *CustomerRepository) Search(ctx context.Context, term string) ([]*domain.Customer, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM customers
		WHERE LOWER(first_name) LIKE $1 ESCAPE '\' OR LOWER(surname) LIKE $1 ESCAPE '\'
		ORDER BY surname, first_name, customer_id`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	return collectCustomers(rows, "Search")
}

// Delete removes a customer that owns no accounts. The ownership check and
// the delete run as one statement.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM customers c
		WHERE c.customer_id = $1
		AND NOT EXISTS (SELECT 1 FROM accounts a WHERE a.customer_id = c.customer_id)`,
		id,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("Delete: %w", domain.ErrCustomerHasAccounts)
		}
		return fmt.Errorf("Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if rows == 1 {
		return nil
	}

	exists, err := r.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if exists {
		return fmt.Errorf("Delete: %w", domain.ErrCustomerHasAccounts)
	}
	return fmt.Errorf("Delete: %w", domain.ErrCustomerNotFound)
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

// LastSequence returns the largest numeric suffix among stored customer
// ids, or 0 when there are none.
func (r *CustomerRepository) LastSequence(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(substring(customer_id FROM '[0-9]+$')::bigint), 0) FROM customers`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("LastSequence: %w", err)
	}
	return n, nil
}

func collectCustomers(rows *sql.Rows, op string) ([]*domain.Customer, error) {
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return customers, nil
}

func scanCustomer(s scanner) (*domain.Customer, error) {
	var c domain.Customer
	err := s.Scan(
		&c.ID, &c.FirstName, &c.Surname, &c.Address,
		&c.PhoneNumber, &c.Email, &c.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	c.RegisteredAt = c.RegisteredAt.UTC()
	return &c, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
