package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/josh-kwaku/teller-ledger/internal/service/teller"
)

type customerService interface {
	RegisterCustomer(ctx context.Context, req teller.CustomerRequest) teller.CustomerResult
	GetCustomer(ctx context.Context, customerID string) teller.CustomerResult
	UpdateCustomer(ctx context.Context, customerID string, req teller.CustomerRequest) teller.CustomerResult
	SearchCustomers(ctx context.Context, term string) teller.CustomersResult
	DeleteCustomer(ctx context.Context, customerID string) teller.CustomerResult
	GetCustomerAccounts(ctx context.Context, customerID string) teller.AccountsResult
}

type CustomerHandler struct {
	customers customerService
}

func NewCustomerHandler(customers customerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	FirstName   string  `json:"first_name"`
	Surname     string  `json:"surname"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

func (c customerRequest) toTeller() teller.CustomerRequest {
	return teller.CustomerRequest{
		FirstName:   c.FirstName,
		Surname:     c.Surname,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
	}
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	res := h.customers.RegisterCustomer(r.Context(), req.toTeller())
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+res.Customer.ID)
	RespondOutcome(w, http.StatusCreated, res.Outcome, toCustomerDTO(res.Customer))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	res := h.customers.GetCustomer(r.Context(), r.PathValue("id"))
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toCustomerDTO(res.Customer))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	res := h.customers.UpdateCustomer(r.Context(), r.PathValue("id"), req.toTeller())
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toCustomerDTO(res.Customer))
}

// List searches by name when q is set.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.customers.SearchCustomers(r.Context(), r.URL.Query().Get("q"))
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}

	dtos := make([]customerDTO, len(res.Customers))
	for i, c := range res.Customers {
		dtos[i] = toCustomerDTO(c)
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, dtos)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res := h.customers.DeleteCustomer(r.Context(), r.PathValue("id"))
	RespondOutcome(w, http.StatusOK, res.Outcome, nil)
}

func (h *CustomerHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	res := h.customers.GetCustomerAccounts(r.Context(), r.PathValue("id"))
	if !res.Success {
		RespondOutcome(w, 0, res.Outcome, nil)
		return
	}
	RespondOutcome(w, http.StatusOK, res.Outcome, toAccountDTOs(res.Accounts))
}
