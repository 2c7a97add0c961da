package bank

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
)

type CustomerDetails struct {
	FirstName   string
	Surname     string
	Address     string
	PhoneNumber *string
	Email       *string
}

func (b *Bank) RegisterCustomer(ctx context.Context, d CustomerDetails) (*domain.Customer, error) {
	log := logging.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		c, err := domain.NewCustomer(b.ids.customerID(), d.FirstName, d.Surname, d.Address, b.now())
		if err != nil {
			return nil, fmt.Errorf("RegisterCustomer: %w", err)
		}
		c.PhoneNumber = trimmedOrNil(d.PhoneNumber)
		c.Email = trimmedOrNil(d.Email)

		err = b.customers.Create(ctx, c)
		if errors.Is(err, domain.ErrDuplicateKey) && attempt < maxIDAttempts {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("RegisterCustomer: %w", err)
		}

		log.Info("customer registered", "customer_id", c.ID)
		return c, nil
	}
}

// GetCustomer returns the customer with its accounts attached.
func (b *Bank) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := b.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("GetCustomer: %w", err)
	}
	if err := b.attachAccounts(ctx, c); err != nil {
		return nil, fmt.Errorf("GetCustomer: %w", err)
	}
	return c, nil
}

func (b *Bank) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := b.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListCustomers: %w", err)
	}
	return customers, nil
}

// SearchCustomers lists everyone when term is blank.
func (b *Bank) SearchCustomers(ctx context.Context, term string) ([]*domain.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return b.ListCustomers(ctx)
	}
	customers, err := b.customers.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("SearchCustomers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer overwrites the contact details. Blank names and address
// are rejected; nil phone or email clears the field.
func (b *Bank) UpdateCustomer(ctx context.Context, id string, d CustomerDetails) (*domain.Customer, error) {
	c, err := b.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("UpdateCustomer: %w", err)
	}

	updated, err := domain.NewCustomer(c.ID, d.FirstName, d.Surname, d.Address, c.RegisteredAt)
	if err != nil {
		return nil, fmt.Errorf("UpdateCustomer: %w", err)
	}
	updated.PhoneNumber = trimmedOrNil(d.PhoneNumber)
	updated.Email = trimmedOrNil(d.Email)

	if err := b.customers.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("UpdateCustomer: %w", err)
	}
	if err := b.attachAccounts(ctx, updated); err != nil {
		return nil, fmt.Errorf("UpdateCustomer: %w", err)
	}

	logging.FromContext(ctx).Info("customer updated", "customer_id", id)
	return updated, nil
}

// DeleteCustomer fails with ErrCustomerHasAccounts while any account exists.
func (b *Bank) DeleteCustomer(ctx context.Context, id string) error {
	if err := b.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("DeleteCustomer: %w", err)
	}
	logging.FromContext(ctx).Info("customer deleted", "customer_id", id)
	return nil
}

func (b *Bank) CustomerAccounts(ctx context.Context, customerID string) ([]domain.Account, error) {
	ok, err := b.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("CustomerAccounts: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("CustomerAccounts: %w", domain.ErrCustomerNotFound)
	}
	accounts, err := b.accounts.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("CustomerAccounts: %w", err)
	}
	return accounts, nil
}

func (b *Bank) attachAccounts(ctx context.Context, c *domain.Customer) error {
	accounts, err := b.accounts.GetByCustomerID(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("attachAccounts: %w", err)
	}
	for _, a := range accounts {
		c.AddAccount(a)
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
