package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeInterest   TransactionType = "INTEREST"
	TransactionTypeSalary     TransactionType = "SALARY"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeInterest, TransactionTypeSalary:
		return true
	}
	return false
}

// Credit reports whether the type increases the balance.
func (t TransactionType) Credit() bool {
	return t != TransactionTypeWithdrawal
}

// Transaction is an immutable ledger fact. Amount is always positive; the
// direction comes from Type.
type Transaction struct {
	ID            string
	AccountNumber string
	Type          TransactionType
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
	Timestamp     time.Time
}

func newTransaction(accountNumber string, t TransactionType, amount, balanceAfter decimal.Decimal, description string, now time.Time) Transaction {
	return Transaction{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		Type:          t,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		Description:   description,
		Timestamp:     now.UTC(),
	}
}
