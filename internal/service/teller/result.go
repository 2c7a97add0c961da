package teller

import (
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
)

// FailureKind says which stage rejected an operation.
type FailureKind string

const (
	KindNone       FailureKind = ""
	KindPermission FailureKind = "permission"
	KindValidation FailureKind = "validation"
	KindBusiness   FailureKind = "business"
	KindNotFound   FailureKind = "not_found"
	KindInternal   FailureKind = "internal"
)

type Outcome struct {
	Success bool
	Message string
	Kind    FailureKind
}

func ok(msg string) Outcome {
	return Outcome{Success: true, Message: msg}
}

func fail(kind FailureKind, msg string) Outcome {
	return Outcome{Message: msg, Kind: kind}
}

type AccountResult struct {
	Outcome
	Account domain.Account
}

type TransactionResult struct {
	Outcome
	NewBalance  decimal.Decimal
	Account     domain.Account
	Transaction *domain.Transaction
}

type RecordResult struct {
	Outcome
	Transaction *domain.Transaction
}

type BalanceResult struct {
	Outcome
	Balance decimal.Decimal
	Account domain.Account
}

type HistoryResult struct {
	Outcome
	Transactions []domain.Transaction
}

type InterestResult struct {
	Outcome
	Summary *bank.InterestSummary
}

type CustomerResult struct {
	Outcome
	Customer *domain.Customer
}

type CustomersResult struct {
	Outcome
	Customers []*domain.Customer
}

type AccountsResult struct {
	Outcome
	Accounts []domain.Account
}

type StatisticsResult struct {
	Outcome
	Statistics *bank.Statistics
}
