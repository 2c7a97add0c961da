package domain

import (
	"fmt"
	"strings"
	"time"
)

type Customer struct {
	ID           string
	FirstName    string
	Surname      string
	Address      string
	PhoneNumber  *string
	Email        *string
	RegisteredAt time.Time

	accounts []Account
}

func NewCustomer(id, firstName, surname, address string, now time.Time) (*Customer, error) {
	c := &Customer{
		ID:           id,
		FirstName:    strings.TrimSpace(firstName),
		Surname:      strings.TrimSpace(surname),
		Address:      strings.TrimSpace(address),
		RegisteredAt: now.UTC(),
	}
	if c.ID == "" || c.FirstName == "" || c.Surname == "" || c.Address == "" {
		return nil, fmt.Errorf("NewCustomer: %w", ErrInvalidRequest)
	}
	return c, nil
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.Surname
}

// AddAccount attaches an account owned by this customer. Accounts of other
// customers and duplicates are ignored.
func (c *Customer) AddAccount(a Account) {
	if a == nil || a.CustomerID() != c.ID {
		return
	}
	if _, ok := c.Account(a.Number()); ok {
		return
	}
	c.accounts = append(c.accounts, a)
}

func (c *Customer) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Customer) Account(number string) (Account, bool) {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, true
		}
	}
	return nil, false
}

func (c *Customer) HasAccounts() bool {
	return len(c.accounts) > 0
}
