package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the persisted discriminator of an account variant.
type AccountType string

const (
	AccountTypeSavings    AccountType = "Savings Account"
	AccountTypeInvestment AccountType = "Investment Account"
	AccountTypeCheque     AccountType = "Cheque Account"
)

var AccountTypes = []AccountType{AccountTypeSavings, AccountTypeInvestment, AccountTypeCheque}

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeInvestment, AccountTypeCheque:
		return true
	}
	return false
}

// Account is implemented only by SavingsAccount, InvestmentAccount and
// ChequeAccount. Mutating methods change the in-memory balance and return the
// Transaction describing the change; persisting both is the caller's job.
type Account interface {
	Number() string
	CustomerID() string
	Type() AccountType
	Balance() decimal.Decimal
	Branch() string
	OpenedAt() time.Time

	Deposit(amount decimal.Decimal, now time.Time) (*Transaction, error)
	Withdraw(amount decimal.Decimal, now time.Time) (*Transaction, error)
	CalculateInterest() decimal.Decimal
	// ApplyInterest returns nil when there is no positive interest to add.
	ApplyInterest(now time.Time) *Transaction
	EarnsInterest() bool

	Record() AccountRecord

	sealed()
}

// SalaryCreditor is the capability of accepting employer salary credits.
type SalaryCreditor interface {
	CreditSalary(amount decimal.Decimal, employerReference string, now time.Time) (*Transaction, error)
}

// AccountRecord is the persisted shape of every variant. CompanyName and
// CompanyAddress are only set for cheque accounts.
type AccountRecord struct {
	Number         string
	CustomerID     string
	Type           AccountType
	Balance        decimal.Decimal
	Branch         string
	OpenedAt       time.Time
	CompanyName    *string
	CompanyAddress *string
}

type OpenParams struct {
	Number         string
	Customer       *Customer
	InitialBalance decimal.Decimal
	Branch         string
	OpenedAt       time.Time
}

func (p OpenParams) open() (baseAccount, error) {
	if p.Customer == nil {
		return baseAccount{}, ErrCustomerRequired
	}
	if p.InitialBalance.IsNegative() {
		return baseAccount{}, ErrNegativeBalance
	}
	if !p.InitialBalance.Equal(RoundMoney(p.InitialBalance)) {
		return baseAccount{}, ErrInvalidAmount
	}
	return baseAccount{
		number:     p.Number,
		customerID: p.Customer.ID,
		balance:    p.InitialBalance,
		branch:     p.Branch,
		openedAt:   p.OpenedAt.UTC(),
	}, nil
}

func OpenSavings(p OpenParams) (*SavingsAccount, error) {
	base, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("OpenSavings: %w", err)
	}
	return &SavingsAccount{baseAccount: base}, nil
}

// OpenInvestment enforces the minimum opening balance. The minimum is not
// re-checked after opening.
func OpenInvestment(p OpenParams) (*InvestmentAccount, error) {
	base, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("OpenInvestment: %w", err)
	}
	if p.InitialBalance.LessThan(InvestmentMinimumOpeningBalance) {
		return nil, fmt.Errorf("OpenInvestment: %w", ErrBelowMinimumBalance)
	}
	return &InvestmentAccount{baseAccount: base}, nil
}

func OpenCheque(p OpenParams, companyName, companyAddress string) (*ChequeAccount, error) {
	base, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("OpenCheque: %w", err)
	}
	companyName = strings.TrimSpace(companyName)
	companyAddress = strings.TrimSpace(companyAddress)
	if companyName == "" || companyAddress == "" {
		return nil, fmt.Errorf("OpenCheque: %w", ErrEmploymentRequired)
	}
	return &ChequeAccount{baseAccount: base, companyName: companyName, companyAddress: companyAddress}, nil
}

// Rehydrate rebuilds a stored account without any opening-time validation:
// a stored balance may legitimately sit below a rule that only applies when
// the account is opened.
func Rehydrate(r AccountRecord) (Account, error) {
	base := baseAccount{
		number:     r.Number,
		customerID: r.CustomerID,
		balance:    r.Balance,
		branch:     r.Branch,
		openedAt:   r.OpenedAt.UTC(),
	}
	switch r.Type {
	case AccountTypeSavings:
		return &SavingsAccount{baseAccount: base}, nil
	case AccountTypeInvestment:
		return &InvestmentAccount{baseAccount: base}, nil
	case AccountTypeCheque:
		c := &ChequeAccount{baseAccount: base}
		if r.CompanyName != nil {
			c.companyName = *r.CompanyName
		}
		if r.CompanyAddress != nil {
			c.companyAddress = *r.CompanyAddress
		}
		return c, nil
	default:
		return nil, fmt.Errorf("Rehydrate: %q: %w", r.Type, ErrUnknownAccountType)
	}
}

// InterestBearingTypes lists the variants whose accounts earn interest.
func InterestBearingTypes() []AccountType {
	var types []AccountType
	for _, t := range AccountTypes {
		if a, err := Rehydrate(AccountRecord{Type: t}); err == nil && a.EarnsInterest() {
			types = append(types, t)
		}
	}
	return types
}

// OpeningDeposit is the DEPOSIT recording a positive opening balance, or nil.
func OpeningDeposit(a Account, now time.Time) *Transaction {
	if !a.Balance().IsPositive() {
		return nil
	}
	t := newTransaction(a.Number(), TransactionTypeDeposit, a.Balance(), a.Balance(), "Initial deposit", now)
	return &t
}

type baseAccount struct {
	number     string
	customerID string
	balance    decimal.Decimal
	branch     string
	openedAt   time.Time
}

func (a *baseAccount) Number() string           { return a.number }
func (a *baseAccount) CustomerID() string       { return a.customerID }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }
func (a *baseAccount) Branch() string           { return a.branch }
func (a *baseAccount) OpenedAt() time.Time      { return a.openedAt }
func (a *baseAccount) sealed()                  {}

func (a *baseAccount) Deposit(amount decimal.Decimal, now time.Time) (*Transaction, error) {
	return a.credit(TransactionTypeDeposit, amount, "Deposit to account", now)
}

func (a *baseAccount) credit(t TransactionType, amount decimal.Decimal, description string, now time.Time) (*Transaction, error) {
	if !ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	txn := newTransaction(a.number, t, amount, a.balance, description, now)
	return &txn, nil
}

func (a *baseAccount) debit(amount decimal.Decimal, description string, now time.Time) (*Transaction, error) {
	if !ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return nil, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	txn := newTransaction(a.number, TransactionTypeWithdrawal, amount, a.balance, description, now)
	return &txn, nil
}

func (a *baseAccount) accrue(rate decimal.Decimal) decimal.Decimal {
	return RoundMoney(a.balance.Mul(rate))
}

func (a *baseAccount) applyInterest(interest decimal.Decimal, now time.Time) *Transaction {
	if !interest.IsPositive() {
		return nil
	}
	a.balance = a.balance.Add(interest)
	txn := newTransaction(a.number, TransactionTypeInterest, interest, a.balance, "Monthly interest applied", now)
	return &txn
}

func (a *baseAccount) record(t AccountType) AccountRecord {
	return AccountRecord{
		Number:     a.number,
		CustomerID: a.customerID,
		Type:       t,
		Balance:    a.balance,
		Branch:     a.branch,
		OpenedAt:   a.openedAt,
	}
}

// SavingsAccount never allows withdrawals and earns 0.05% per period.
type SavingsAccount struct {
	baseAccount
}

func (s *SavingsAccount) Type() AccountType { return AccountTypeSavings }

func (s *SavingsAccount) Withdraw(decimal.Decimal, time.Time) (*Transaction, error) {
	return nil, ErrWithdrawalNotPermitted
}

func (s *SavingsAccount) CalculateInterest() decimal.Decimal {
	return s.accrue(SavingsInterestRate)
}

func (s *SavingsAccount) ApplyInterest(now time.Time) *Transaction {
	return s.applyInterest(s.CalculateInterest(), now)
}

func (s *SavingsAccount) EarnsInterest() bool   { return true }
func (s *SavingsAccount) Record() AccountRecord { return s.record(AccountTypeSavings) }

// InvestmentAccount earns 5% per period.
type InvestmentAccount struct {
	baseAccount
}

func (i *InvestmentAccount) Type() AccountType { return AccountTypeInvestment }

func (i *InvestmentAccount) Withdraw(amount decimal.Decimal, now time.Time) (*Transaction, error) {
	return i.debit(amount, "Withdrawal from Investment Account", now)
}

func (i *InvestmentAccount) CalculateInterest() decimal.Decimal {
	return i.accrue(InvestmentInterestRate)
}

func (i *InvestmentAccount) ApplyInterest(now time.Time) *Transaction {
	return i.applyInterest(i.CalculateInterest(), now)
}

func (i *InvestmentAccount) EarnsInterest() bool   { return true }
func (i *InvestmentAccount) Record() AccountRecord { return i.record(AccountTypeInvestment) }

// ChequeAccount belongs to an employed customer, takes salary credits and
// earns no interest.
type ChequeAccount struct {
	baseAccount
	companyName    string
	companyAddress string
}

func (c *ChequeAccount) Type() AccountType      { return AccountTypeCheque }
func (c *ChequeAccount) CompanyName() string    { return c.companyName }
func (c *ChequeAccount) CompanyAddress() string { return c.companyAddress }

func (c *ChequeAccount) Withdraw(amount decimal.Decimal, now time.Time) (*Transaction, error) {
	return c.debit(amount, "Withdrawal from Cheque Account", now)
}

func (c *ChequeAccount) CalculateInterest() decimal.Decimal { return decimal.Zero }

func (c *ChequeAccount) ApplyInterest(time.Time) *Transaction { return nil }

func (c *ChequeAccount) EarnsInterest() bool { return false }

func (c *ChequeAccount) CreditSalary(amount decimal.Decimal, employerReference string, now time.Time) (*Transaction, error) {
	description := fmt.Sprintf("Salary credit from %s (Ref: %s)", c.companyName, employerReference)
	return c.credit(TransactionTypeSalary, amount, description, now)
}

// UpdateEmployment replaces only the non-blank fields.
func (c *ChequeAccount) UpdateEmployment(companyName, companyAddress string) {
	if name := strings.TrimSpace(companyName); name != "" {
		c.companyName = name
	}
	if addr := strings.TrimSpace(companyAddress); addr != "" {
		c.companyAddress = addr
	}
}

func (c *ChequeAccount) Record() AccountRecord {
	r := c.record(AccountTypeCheque)
	name, addr := c.companyName, c.companyAddress
	r.CompanyName = &name
	r.CompanyAddress = &addr
	return r
}
