package handler

import (
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
)

type accountDTO struct {
	AccountNumber  string    `json:"account_number"`
	CustomerID     string    `json:"customer_id"`
	Type           string    `json:"type"`
	Balance        string    `json:"balance"`
	Currency       string    `json:"currency"`
	Branch         string    `json:"branch"`
	EarnsInterest  bool      `json:"earns_interest"`
	CompanyName    *string   `json:"company_name,omitempty"`
	CompanyAddress *string   `json:"company_address,omitempty"`
	OpenedAt       time.Time `json:"opened_at"`
}

func toAccountDTO(a domain.Account) accountDTO {
	rec := a.Record()
	return accountDTO{
		AccountNumber:  rec.Number,
		CustomerID:     rec.CustomerID,
		Type:           string(rec.Type),
		Balance:        rec.Balance.StringFixed(2),
		Currency:       domain.Currency,
		Branch:         rec.Branch,
		EarnsInterest:  a.EarnsInterest(),
		CompanyName:    rec.CompanyName,
		CompanyAddress: rec.CompanyAddress,
		OpenedAt:       rec.OpenedAt,
	}
}

func toAccountDTOs(accounts []domain.Account) []accountDTO {
	dtos := make([]accountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}
	return dtos
}

type transactionDTO struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"account_number"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	BalanceAfter  string    `json:"balance_after"`
	Description   string    `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
}

func toTransactionDTO(t *domain.Transaction) transactionDTO {
	return transactionDTO{
		ID:            t.ID,
		AccountNumber: t.AccountNumber,
		Type:          string(t.Type),
		Amount:        t.Amount.StringFixed(2),
		BalanceAfter:  t.BalanceAfter.StringFixed(2),
		Description:   t.Description,
		Timestamp:     t.Timestamp,
	}
}

type customerDTO struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	Surname      string       `json:"surname"`
	FullName     string       `json:"full_name"`
	Address      string       `json:"address"`
	PhoneNumber  *string      `json:"phone_number"`
	Email        *string      `json:"email"`
	RegisteredAt time.Time    `json:"registered_at"`
	Accounts     []accountDTO `json:"accounts,omitempty"`
}

func toCustomerDTO(c *domain.Customer) customerDTO {
	dto := customerDTO{
		ID:           c.ID,
		FirstName:    c.FirstName,
		Surname:      c.Surname,
		FullName:     c.FullName(),
		Address:      c.Address,
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		RegisteredAt: c.RegisteredAt,
	}
	if c.HasAccounts() {
		dto.Accounts = toAccountDTOs(c.Accounts())
	}
	return dto
}

type interestSummaryDTO struct {
	Period        string `json:"period"`
	Processed     int    `json:"processed"`
	Credited      int    `json:"credited"`
	Skipped       int    `json:"skipped"`
	Failed        int    `json:"failed"`
	TotalInterest string `json:"total_interest"`
}

func toInterestSummaryDTO(s *bank.InterestSummary) interestSummaryDTO {
	return interestSummaryDTO{
		Period:        s.Period.String(),
		Processed:     s.Processed,
		Credited:      s.Credited,
		Skipped:       s.Skipped,
		Failed:        s.Failed,
		TotalInterest: s.TotalInterest.StringFixed(2),
	}
}

type statisticsDTO struct {
	Customers int            `json:"customers"`
	Accounts  int            `json:"accounts"`
	ByType    map[string]int `json:"by_type"`
}

func toStatisticsDTO(s *bank.Statistics) statisticsDTO {
	byType := make(map[string]int, len(s.ByType))
	for t, n := range s.ByType {
		byType[string(t)] = n
	}
	return statisticsDTO{Customers: s.Customers, Accounts: s.Accounts, ByType: byType}
}

type userDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{ID: u.ID, Username: u.Username, Role: string(u.Role), CreatedAt: u.CreatedAt}
}
