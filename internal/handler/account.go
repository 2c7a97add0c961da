package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/teller"
)

type accountService interface {
	OpenAccount(ctx context.Context, req teller.OpenAccountRequest) teller.AccountResult
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) teller.TransactionResult
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) teller.TransactionResult
	CreditSalary(ctx context.Context, accountNumber string, amount decimal.Decimal, employerReference string) teller.TransactionResult
	GetBalance(ctx context.Context, accountNumber string) teller.BalanceResult
	ListAccounts(ctx context.Context) teller.AccountsResult
	GetTransaction(ctx context.Context, transactionID string) teller.RecordResult
	TransactionHistory(ctx context.Context, q teller.HistoryQuery) teller.HistoryResult
	UpdateEmployment(ctx context.Context, accountNumber, companyName, companyAddress string) teller.AccountResult
	AccountStatistics(ctx context.Context) teller.StatisticsResult
	ProcessMonthlyInterest(ctx context.Context, period string) teller.InterestResult
}

type AccountHandler struct {
	accounts accountService
}

func NewAccountHandler(accounts accountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type openAccountRequest struct {
	Type           string          `json:"type"`
	CustomerID     string          `json:"customer_id"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Branch         string          `json:"branch"`
	CompanyName    string          `json:"company_name"`
	CompanyAddress string          `json:"company_address"`
}

// accountTypeAliases lets clients send the short type names.
var accountTypeAliases = map[string]domain.AccountType{
	"savings":    domain.AccountTypeSavings,
	"investment": domain.AccountTypeInvestment,
	"cheque":     domain.AccountTypeCheque,
}

func parseAccountType(s string) domain.AccountType {
	if t, ok := accountTypeAliases[s]; ok {
		return t
	}
	return domain.AccountType(s)
}

func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	res := h.accounts.OpenAccount(r.Context(), teller.OpenAccountRequest{
		AccountType:    parseAccountType(req.Type),
		CustomerID:     req.CustomerID,
		InitialBalance: req.InitialBalance,
		Branch:         req.Branch,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
	})
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}

	w.Header().Set("Location", "/api/v1/accounts/"+res.Account.Number())
	RespondOutcome(w, http.StatusCreated, res.Outcome, toAccountDTO(res.Account))
}

type amountRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	EmployerReference string          `json:"employer_reference,omitempty"`
}

type transactionResponse struct {
	NewBalance  string         `json:"new_balance"`
	Transaction transactionDTO `json:"transaction"`
}

func respondTransaction(w http.ResponseWriter, res teller.TransactionResult) {
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusCreated, res.Outcome, transactionResponse{
		NewBalance:  res.NewBalance.StringFixed(2),
		Transaction: toTransactionDTO(res.Transaction),
	})
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (amountRequest, bool) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return req, false
	}
	return req, true
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	respondTransaction(w, h.accounts.Deposit(r.Context(), r.PathValue("number"), req.Amount))
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	respondTransaction(w, h.accounts.Withdraw(r.Context(), r.PathValue("number"), req.Amount))
}

func (h *AccountHandler) CreditSalary(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	respondTransaction(w, h.accounts.CreditSalary(r.Context(), r.PathValue("number"), req.Amount, req.EmployerReference))
}

type balanceResponse struct {
	AccountNumber string `json:"account_number"`
	Type          string `json:"type"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency"`
}

func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	res := h.accounts.GetBalance(r.Context(), r.PathValue("number"))
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, balanceResponse{
		AccountNumber: res.Account.Number(),
		Type:          string(res.Account.Type()),
		Balance:       res.Balance.StringFixed(2),
		Currency:      domain.Currency,
	})
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.accounts.ListAccounts(r.Context())
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toAccountDTOs(res.Accounts))
}

func (h *AccountHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	res := h.accounts.GetTransaction(r.Context(), r.PathValue("id"))
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toTransactionDTO(res.Transaction))
}

// Transactions accepts optional from/to (RFC 3339, both or neither) or a type
// query parameter.
func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	q := teller.HistoryQuery{
		AccountNumber: r.PathValue("number"),
		Type:          domain.TransactionType(r.URL.Query().Get("type")),
	}

	var fields []FieldError
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &q.From}, {"to", &q.To}} {
		raw := r.URL.Query().Get(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fields = append(fields, FieldError{Field: p.name, Message: "must be an RFC 3339 timestamp"})
			continue
		}
		*p.dst = &t
	}
	if len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	res := h.accounts.TransactionHistory(r.Context(), q)
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}

	dtos := make([]transactionDTO, len(res.Transactions))
	for i := range res.Transactions {
		dtos[i] = toTransactionDTO(&res.Transactions[i])
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, dtos)
}

type employmentRequest struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
}

func (h *AccountHandler) UpdateEmployment(w http.ResponseWriter, r *http.Request) {
	var req employmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	res := h.accounts.UpdateEmployment(r.Context(), r.PathValue("number"), req.CompanyName, req.CompanyAddress)
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toAccountDTO(res.Account))
}

func (h *AccountHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	res := h.accounts.AccountStatistics(r.Context())
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toStatisticsDTO(res.Statistics))
}

type interestRunRequest struct {
	Period string `json:"period"`
}

// ProcessInterest runs monthly interest. An empty body means the current
// period.
func (h *AccountHandler) ProcessInterest(w http.ResponseWriter, r *http.Request) {
	var req interestRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	res := h.accounts.ProcessMonthlyInterest(r.Context(), req.Period)
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toInterestSummaryDTO(res.Summary))
}
