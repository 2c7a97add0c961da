package bank

import (
	"context"
	"fmt"
	"sync"
)

const (
	customerIDBase    = 1000
	accountNumberBase = 10000

	// maxIDAttempts bounds retries when another process already took the
	// next id.
	maxIDAttempts = 50
)

type idGenerator struct {
	mu          sync.Mutex
	code        string
	nextCust    int
	nextAccount int
}

type sequenced interface {
	Count(ctx context.Context) (int, error)
	LastSequence(ctx context.Context) (int, error)
}

func nextSequence(ctx context.Context, base int, repo sequenced) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	last, err := repo.LastSequence(ctx)
	if err != nil {
		return 0, err
	}
	return max(base+count, last+1), nil
}

func newIDGenerator(code string, nextCust, nextAccount int) *idGenerator {
	return &idGenerator{
		code:        code,
		nextCust:    nextCust,
		nextAccount: nextAccount,
	}
}

func (g *idGenerator) customerID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("CUST-%04d", g.nextCust)
	g.nextCust++
	return id
}

func (g *idGenerator) accountNumber() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := fmt.Sprintf("%s-%05d", g.code, g.nextAccount)
	g.nextAccount++
	return n
}
