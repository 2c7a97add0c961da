package teller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
)

type OpenAccountRequest struct {
	AccountType    domain.AccountType
	CustomerID     string
	InitialBalance decimal.Decimal
	Branch         string
	// Cheque accounts only.
	CompanyName    string
	CompanyAddress string
}

// OpenAccount dispatches on AccountType.
func (s *Service) OpenAccount(ctx context.Context, req OpenAccountRequest) AccountResult {
	switch req.AccountType {
	case domain.AccountTypeSavings:
		return s.OpenSavingsAccount(ctx, req)
	case domain.AccountTypeInvestment:
		return s.OpenInvestmentAccount(ctx, req)
	case domain.AccountTypeCheque:
		return s.OpenChequeAccount(ctx, req)
	}
	if !s.gate.HasPermission(ctx, domain.PermOpenAccount) {
		return AccountResult{Outcome: fail(KindPermission, "You don't have permission to open accounts")}
	}
	return AccountResult{Outcome: fail(KindValidation, fmt.Sprintf("Unknown account type: %s", req.AccountType))}
}

func (s *Service) OpenSavingsAccount(ctx context.Context, req OpenAccountRequest) AccountResult {
	if out, failed := s.checkOpen(ctx, req); failed {
		return AccountResult{Outcome: out}
	}
	acct, err := s.bank.OpenSavingsAccount(ctx, openRequest(req))
	return s.opened(ctx, req.CustomerID, acct, err)
}

func (s *Service) OpenInvestmentAccount(ctx context.Context, req OpenAccountRequest) AccountResult {
	if out, failed := s.checkOpen(ctx, req); failed {
		return AccountResult{Outcome: out}
	}
	if req.InitialBalance.LessThan(domain.InvestmentMinimumOpeningBalance) {
		return AccountResult{Outcome: fail(KindBusiness, "Investment Account requires minimum opening balance of BWP 500.00")}
	}
	acct, err := s.bank.OpenInvestmentAccount(ctx, openRequest(req))
	return s.opened(ctx, req.CustomerID, acct, err)
}

func (s *Service) OpenChequeAccount(ctx context.Context, req OpenAccountRequest) AccountResult {
	if out, failed := s.checkOpen(ctx, req); failed {
		return AccountResult{Outcome: out}
	}
	if blank(req.CompanyName) {
		return AccountResult{Outcome: fail(KindBusiness, "Company name is required for Cheque Account")}
	}
	if blank(req.CompanyAddress) {
		return AccountResult{Outcome: fail(KindBusiness, "Company address is required for Cheque Account")}
	}
	acct, err := s.bank.OpenChequeAccount(ctx, openRequest(req),
		strings.TrimSpace(req.CompanyName), strings.TrimSpace(req.CompanyAddress))
	return s.opened(ctx, req.CustomerID, acct, err)
}

// checkOpen runs the permission, presence and format stages shared by every
// account type.
func (s *Service) checkOpen(ctx context.Context, req OpenAccountRequest) (Outcome, bool) {
	if !s.gate.HasPermission(ctx, domain.PermOpenAccount) {
		return fail(KindPermission, "You don't have permission to open accounts"), true
	}
	if blank(req.CustomerID) {
		return fail(KindValidation, "Customer ID is required"), true
	}
	if blank(req.Branch) {
		return fail(KindValidation, "Branch code is required"), true
	}
	if req.InitialBalance.IsNegative() {
		return fail(KindValidation, "Initial balance cannot be negative"), true
	}
	if hasSubCent(req.InitialBalance) {
		return fail(KindValidation, "Initial balance cannot have more than 2 decimal places"), true
	}
	return Outcome{}, false
}

func openRequest(req OpenAccountRequest) bank.OpenRequest {
	return bank.OpenRequest{
		CustomerID:     strings.TrimSpace(req.CustomerID),
		InitialBalance: req.InitialBalance,
		Branch:         strings.TrimSpace(req.Branch),
	}
}

func (s *Service) opened(ctx context.Context, customerID string, acct domain.Account, err error) AccountResult {
	if err != nil {
		return AccountResult{Outcome: s.customerFailure(ctx, "open account", strings.TrimSpace(customerID), err)}
	}
	return AccountResult{
		Outcome: ok(fmt.Sprintf("%s opened successfully: %s", acct.Type(), acct.Number())),
		Account: acct,
	}
}

func (s *Service) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) TransactionResult {
	if !s.gate.HasPermission(ctx, domain.PermDeposit) {
		return TransactionResult{Outcome: fail(KindPermission, "You don't have permission to make deposits")}
	}
	if blank(accountNumber) {
		return TransactionResult{Outcome: fail(KindValidation, "Account number is required")}
	}
	if !amount.IsPositive() {
		return TransactionResult{Outcome: fail(KindValidation, "Deposit amount must be positive")}
	}
	if hasSubCent(amount) {
		return TransactionResult{Outcome: fail(KindValidation, "Deposit amount cannot have more than 2 decimal places")}
	}

	number := strings.TrimSpace(accountNumber)
	acct, txn, err := s.bank.Deposit(ctx, number, amount)
	if err != nil {
		return TransactionResult{Outcome: s.accountFailure(ctx, "deposit", number, err)}
	}
	return transacted("Deposit successful. New balance: %s", acct, txn)
}

func (s *Service) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) TransactionResult {
	if !s.gate.HasPermission(ctx, domain.PermWithdraw) {
		return TransactionResult{Outcome: fail(KindPermission, "You don't have permission to make withdrawals")}
	}
	if blank(accountNumber) {
		return TransactionResult{Outcome: fail(KindValidation, "Account number is required")}
	}
	if !amount.IsPositive() {
		return TransactionResult{Outcome: fail(KindValidation, "Withdrawal amount must be positive")}
	}
	if hasSubCent(amount) {
		return TransactionResult{Outcome: fail(KindValidation, "Withdrawal amount cannot have more than 2 decimal places")}
	}

	number := strings.TrimSpace(accountNumber)
	acct, txn, err := s.bank.Withdraw(ctx, number, amount)
	if err != nil {
		return TransactionResult{Outcome: s.accountFailure(ctx, "withdraw", number, err)}
	}
	return transacted("Withdrawal successful. New balance: %s", acct, txn)
}

func (s *Service) CreditSalary(ctx context.Context, accountNumber string, amount decimal.Decimal, employerReference string) TransactionResult {
	if !s.gate.HasPermission(ctx, domain.PermDeposit) {
		return TransactionResult{Outcome: fail(KindPermission, "You don't have permission to make deposits")}
	}
	if blank(accountNumber) {
		return TransactionResult{Outcome: fail(KindValidation, "Account number is required")}
	}
	if blank(employerReference) {
		return TransactionResult{Outcome: fail(KindValidation, "Employer reference is required")}
	}
	if !amount.IsPositive() {
		return TransactionResult{Outcome: fail(KindValidation, "Salary amount must be positive")}
	}
	if hasSubCent(amount) {
		return TransactionResult{Outcome: fail(KindValidation, "Salary amount cannot have more than 2 decimal places")}
	}

	number := strings.TrimSpace(accountNumber)
	acct, txn, err := s.bank.CreditSalary(ctx, number, amount, strings.TrimSpace(employerReference))
	if err != nil {
		return TransactionResult{Outcome: s.accountFailure(ctx, "credit salary", number, err)}
	}
	return transacted("Salary credited. New balance: %s", acct, txn)
}

func transacted(format string, acct domain.Account, txn *domain.Transaction) TransactionResult {
	return TransactionResult{
		Outcome:     ok(fmt.Sprintf(format, domain.FormatMoney(acct.Balance()))),
		NewBalance:  acct.Balance(),
		Account:     acct,
		Transaction: txn,
	}
}

func (s *Service) GetBalance(ctx context.Context, accountNumber string) BalanceResult {
	if !s.gate.HasPermission(ctx, domain.PermViewBalance) {
		return BalanceResult{Outcome: fail(KindPermission, "You don't have permission to view balances")}
	}
	if blank(accountNumber) {
		return BalanceResult{Outcome: fail(KindValidation, "Account number is required")}
	}

	number := strings.TrimSpace(accountNumber)
	acct, err := s.bank.GetAccount(ctx, number)
	if err != nil {
		return BalanceResult{Outcome: s.accountFailure(ctx, "get balance", number, err)}
	}
	return BalanceResult{Outcome: ok("Balance retrieved"), Balance: acct.Balance(), Account: acct}
}

type HistoryQuery struct {
	AccountNumber string
	// From and To select from <= timestamp <= to when both are set.
	From *time.Time
	To   *time.Time
	Type domain.TransactionType
}

func (s *Service) TransactionHistory(ctx context.Context, q HistoryQuery) HistoryResult {
	if !s.gate.HasPermission(ctx, domain.PermViewTransactions) {
		return HistoryResult{Outcome: fail(KindPermission, "You don't have permission to view transactions")}
	}
	if blank(q.AccountNumber) {
		return HistoryResult{Outcome: fail(KindValidation, "Account number is required")}
	}
	if (q.From == nil) != (q.To == nil) {
		return HistoryResult{Outcome: fail(KindValidation, "Both start and end dates are required for a date range")}
	}
	if q.From != nil && q.From.After(*q.To) {
		return HistoryResult{Outcome: fail(KindValidation, "Start date must not be after end date")}
	}
	if q.Type != "" && !q.Type.IsValid() {
		return HistoryResult{Outcome: fail(KindValidation, fmt.Sprintf("Unknown transaction type: %s", q.Type))}
	}
	if q.From != nil && q.Type != "" {
		return HistoryResult{Outcome: fail(KindValidation, "Filter by date range or by type, not both")}
	}

	number := strings.TrimSpace(q.AccountNumber)
	var (
		txns []domain.Transaction
		err  error
	)
	switch {
	case q.From != nil:
		txns, err = s.bank.TransactionsBetween(ctx, number, *q.From, *q.To)
	case q.Type != "":
		txns, err = s.bank.TransactionsByType(ctx, number, q.Type)
	default:
		txns, err = s.bank.TransactionHistory(ctx, number)
	}
	if err != nil {
		return HistoryResult{Outcome: s.accountFailure(ctx, "transaction history", number, err)}
	}
	return HistoryResult{
		Outcome:      ok(fmt.Sprintf("Found %d transactions", len(txns))),
		Transactions: txns,
	}
}

// ProcessMonthlyInterest credits interest for period, or for the current
// month when period is blank.
func (s *Service) ProcessMonthlyInterest(ctx context.Context, period string) InterestResult {
	if !s.gate.HasPermission(ctx, domain.PermOverrideLimit) {
		return InterestResult{Outcome: fail(KindPermission, "You don't have permission to process interest")}
	}

	var p domain.Period
	if !blank(period) {
		parsed, err := domain.ParsePeriod(strings.TrimSpace(period))
		if err != nil {
			return InterestResult{Outcome: fail(KindValidation, "Period must be formatted as YYYY-MM")}
		}
		p = parsed
	}

	summary, err := s.bank.ProcessMonthlyInterest(ctx, p)
	if err != nil {
		return InterestResult{Outcome: s.failure(ctx, "process interest", err)}
	}
	return InterestResult{
		Outcome: ok(fmt.Sprintf("Interest processed for %d accounts. Total interest: %s",
			summary.Credited, domain.FormatMoney(summary.TotalInterest))),
		Summary: summary,
	}
}

func (s *Service) GetCustomerAccounts(ctx context.Context, customerID string) AccountsResult {
	if !s.gate.HasPermission(ctx, domain.PermViewBalance) {
		return AccountsResult{Outcome: fail(KindPermission, "You don't have permission to view balances")}
	}
	if blank(customerID) {
		return AccountsResult{Outcome: fail(KindValidation, "Customer ID is required")}
	}

	id := strings.TrimSpace(customerID)
	accounts, err := s.bank.CustomerAccounts(ctx, id)
	if err != nil {
		return AccountsResult{Outcome: s.customerFailure(ctx, "customer accounts", id, err)}
	}
	return AccountsResult{
		Outcome:  ok(fmt.Sprintf("Found %d accounts", len(accounts))),
		Accounts: accounts,
	}
}

// ListAccounts returns every account in the bank.
func (s *Service) ListAccounts(ctx context.Context) AccountsResult {
	if !s.gate.HasPermission(ctx, domain.PermViewAllAccounts) {
		return AccountsResult{Outcome: fail(KindPermission, "You don't have permission to view all accounts")}
	}
	accounts, err := s.bank.ListAccounts(ctx)
	if err != nil {
		return AccountsResult{Outcome: s.failure(ctx, "list accounts", err)}
	}
	return AccountsResult{
		Outcome:  ok(fmt.Sprintf("Found %d accounts", len(accounts))),
		Accounts: accounts,
	}
}

func (s *Service) GetTransaction(ctx context.Context, transactionID string) RecordResult {
	if !s.gate.HasPermission(ctx, domain.PermViewTransactions) {
		return RecordResult{Outcome: fail(KindPermission, "You don't have permission to view transactions")}
	}
	if blank(transactionID) {
		return RecordResult{Outcome: fail(KindValidation, "Transaction ID is required")}
	}

	id := strings.TrimSpace(transactionID)
	txn, err := s.bank.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return RecordResult{Outcome: fail(KindNotFound, "Transaction not found: "+id)}
		}
		return RecordResult{Outcome: s.failure(ctx, "get transaction", err)}
	}
	return RecordResult{Outcome: ok("Transaction retrieved"), Transaction: txn}
}

func (s *Service) UpdateEmployment(ctx context.Context, accountNumber, companyName, companyAddress string) AccountResult {
	if !s.gate.HasPermission(ctx, domain.PermOpenAccount) {
		return AccountResult{Outcome: fail(KindPermission, "You don't have permission to update accounts")}
	}
	if blank(accountNumber) {
		return AccountResult{Outcome: fail(KindValidation, "Account number is required")}
	}
	if blank(companyName) && blank(companyAddress) {
		return AccountResult{Outcome: fail(KindValidation, "Company name or address is required")}
	}

	number := strings.TrimSpace(accountNumber)
	acct, err := s.bank.UpdateEmployment(ctx, number, companyName, companyAddress)
	if err != nil {
		if errors.Is(err, domain.ErrSalaryNotSupported) {
			return AccountResult{Outcome: fail(KindBusiness, "Employment details apply to Cheque Accounts only")}
		}
		return AccountResult{Outcome: s.accountFailure(ctx, "update employment", number, err)}
	}
	return AccountResult{Outcome: ok("Employment details updated"), Account: acct}
}

func (s *Service) AccountStatistics(ctx context.Context) StatisticsResult {
	if !s.gate.HasPermission(ctx, domain.PermViewBalance) {
		return StatisticsResult{Outcome: fail(KindPermission, "You don't have permission to view balances")}
	}
	stats, err := s.bank.Statistics(ctx)
	if err != nil {
		return StatisticsResult{Outcome: s.failure(ctx, "account statistics", err)}
	}
	return StatisticsResult{Outcome: ok("Statistics retrieved"), Statistics: stats}
}

func (s *Service) accountFailure(ctx context.Context, op, number string, err error) Outcome {
	if errors.Is(err, domain.ErrAccountNotFound) {
		return fail(KindNotFound, "Account not found: "+number)
	}
	return s.failure(ctx, op, err)
}

func (s *Service) customerFailure(ctx context.Context, op, id string, err error) Outcome {
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return fail(KindNotFound, "Customer not found: "+id)
	}
	return s.failure(ctx, op, err)
}

// failure turns a bank error into a caller-facing outcome. Rule violations
// carry their own message; anything unexpected is logged and reported
// generically.
func (s *Service) failure(ctx context.Context, op string, err error) Outcome {
	for _, r := range ruleMessages {
		if errors.Is(err, r.err) {
			return fail(r.kind, r.msg)
		}
	}
	logging.FromContext(ctx).Error(op+" failed", "error", err)
	return fail(KindInternal, "Failed to "+op)
}

var ruleMessages = []struct {
	err  error
	kind FailureKind
	msg  string
}{
	{domain.ErrCustomerNotFound, KindNotFound, "Customer not found"},
	{domain.ErrAccountNotFound, KindNotFound, "Account not found"},
	{domain.ErrWithdrawalNotPermitted, KindBusiness, "Withdrawals are not permitted on Savings Accounts"},
	{domain.ErrInsufficientFunds, KindBusiness, "Insufficient balance for withdrawal"},
	{domain.ErrBelowMinimumBalance, KindBusiness, "Investment Account requires minimum opening balance of BWP 500.00"},
	{domain.ErrEmploymentRequired, KindBusiness, "Cheque Account requires company name and address"},
	{domain.ErrSalaryNotSupported, KindBusiness, "Salary credits are only accepted on Cheque Accounts"},
	{domain.ErrCustomerHasAccounts, KindBusiness, "Cannot delete customer with existing accounts"},
	{domain.ErrFuturePeriod, KindValidation, "Interest cannot be processed for a future period"},
	{domain.ErrInvalidAmount, KindValidation, "Amount must be positive"},
	{domain.ErrNegativeBalance, KindValidation, "Initial balance cannot be negative"},
	{domain.ErrInvalidRequest, KindValidation, "Invalid request"},
}
