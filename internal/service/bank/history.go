package bank

import (
	"context"
	"fmt"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

// TransactionHistory returns every transaction of the account, newest first.
func (b *Bank) TransactionHistory(ctx context.Context, number string) ([]domain.Transaction, error) {
	if _, err := b.accounts.GetByNumber(ctx, number); err != nil {
		return nil, fmt.Errorf("TransactionHistory: %w", err)
	}
	txns, err := b.transactions.GetByAccount(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("TransactionHistory: %w", err)
	}
	return txns, nil
}

// TransactionsBetween returns transactions with from <= timestamp <= to.
func (b *Bank) TransactionsBetween(ctx context.Context, number string, from, to time.Time) ([]domain.Transaction, error) {
	if from.After(to) {
		return nil, fmt.Errorf("TransactionsBetween: from is after to: %w", domain.ErrInvalidRequest)
	}
	if _, err := b.accounts.GetByNumber(ctx, number); err != nil {
		return nil, fmt.Errorf("TransactionsBetween: %w", err)
	}
	txns, err := b.transactions.GetByDateRange(ctx, number, from, to)
	if err != nil {
		return nil, fmt.Errorf("TransactionsBetween: %w", err)
	}
	return txns, nil
}

func (b *Bank) TransactionsByType(ctx context.Context, number string, t domain.TransactionType) ([]domain.Transaction, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("TransactionsByType: %q: %w", t, domain.ErrInvalidRequest)
	}
	if _, err := b.accounts.GetByNumber(ctx, number); err != nil {
		return nil, fmt.Errorf("TransactionsByType: %w", err)
	}
	txns, err := b.transactions.GetByType(ctx, number, t)
	if err != nil {
		return nil, fmt.Errorf("TransactionsByType: %w", err)
	}
	return txns, nil
}

func (b *Bank) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	t, err := b.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("GetTransaction: %w", err)
	}
	return t, nil
}
