package teller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
)

type CustomerRequest struct {
	FirstName   string
	Surname     string
	Address     string
	PhoneNumber *string
	Email       *string
}

func (r CustomerRequest) details() bank.CustomerDetails {
	return bank.CustomerDetails{
		FirstName:   strings.TrimSpace(r.FirstName),
		Surname:     strings.TrimSpace(r.Surname),
		Address:     strings.TrimSpace(r.Address),
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}

// checkCustomer runs the presence stage, then the format stage.
func checkCustomer(r CustomerRequest) (Outcome, bool) {
	switch {
	case blank(r.FirstName):
		return fail(KindValidation, "First name is required"), true
	case blank(r.Surname):
		return fail(KindValidation, "Surname is required"), true
	case blank(r.Address):
		return fail(KindValidation, "Address is required"), true
	case !validName(r.FirstName):
		return fail(KindValidation, "First name contains invalid characters"), true
	case !validName(r.Surname):
		return fail(KindValidation, "Surname contains invalid characters"), true
	case !validEmail(r.Email):
		return fail(KindValidation, "Invalid email format"), true
	case !validPhone(r.PhoneNumber):
		return fail(KindValidation, "Invalid phone number format"), true
	}
	return Outcome{}, false
}

func (s *Service) RegisterCustomer(ctx context.Context, req CustomerRequest) CustomerResult {
	if !s.gate.HasPermission(ctx, domain.PermCreateCustomer) {
		return CustomerResult{Outcome: fail(KindPermission, "You don't have permission to register customers")}
	}
	if out, failed := checkCustomer(req); failed {
		return CustomerResult{Outcome: out}
	}

	c, err := s.bank.RegisterCustomer(ctx, req.details())
	if err != nil {
		return CustomerResult{Outcome: s.failure(ctx, "register customer", err)}
	}
	return CustomerResult{Outcome: ok("Customer registered successfully: " + c.ID), Customer: c}
}

func (s *Service) GetCustomer(ctx context.Context, customerID string) CustomerResult {
	if !s.gate.HasPermission(ctx, domain.PermViewBalance) {
		return CustomerResult{Outcome: fail(KindPermission, "You don't have permission to view customers")}
	}
	if blank(customerID) {
		return CustomerResult{Outcome: fail(KindValidation, "Customer ID is required")}
	}

	id := strings.TrimSpace(customerID)
	c, err := s.bank.GetCustomer(ctx, id)
	if err != nil {
		return CustomerResult{Outcome: s.customerFailure(ctx, "get customer", id, err)}
	}
	return CustomerResult{Outcome: ok("Customer found"), Customer: c}
}

func (s *Service) UpdateCustomer(ctx context.Context, customerID string, req CustomerRequest) CustomerResult {
	if !s.gate.HasPermission(ctx, domain.PermCreateCustomer) {
		return CustomerResult{Outcome: fail(KindPermission, "You don't have permission to update customers")}
	}
	if blank(customerID) {
		return CustomerResult{Outcome: fail(KindValidation, "Customer ID is required")}
	}
	if out, failed := checkCustomer(req); failed {
		return CustomerResult{Outcome: out}
	}

	id := strings.TrimSpace(customerID)
	c, err := s.bank.UpdateCustomer(ctx, id, req.details())
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return CustomerResult{Outcome: fail(KindNotFound, "Customer does not exist: "+id)}
		}
		return CustomerResult{Outcome: s.failure(ctx, "update customer", err)}
	}
	return CustomerResult{Outcome: ok("Customer updated successfully"), Customer: c}
}

// SearchCustomers lists everyone when term is blank.
func (s *Service) SearchCustomers(ctx context.Context, term string) CustomersResult {
	if !s.gate.HasPermission(ctx, domain.PermViewBalance) {
		return CustomersResult{Outcome: fail(KindPermission, "You don't have permission to view customers")}
	}
	customers, err := s.bank.SearchCustomers(ctx, term)
	if err != nil {
		return CustomersResult{Outcome: s.failure(ctx, "search customers", err)}
	}
	return CustomersResult{
		Outcome:   ok(fmt.Sprintf("Found %d customers", len(customers))),
		Customers: customers,
	}
}

func (s *Service) ListCustomers(ctx context.Context) CustomersResult {
	if !s.gate.HasPermission(ctx, domain.PermViewBalance) {
		return CustomersResult{Outcome: fail(KindPermission, "You don't have permission to view customers")}
	}
	customers, err := s.bank.ListCustomers(ctx)
	if err != nil {
		return CustomersResult{Outcome: s.failure(ctx, "list customers", err)}
	}
	return CustomersResult{
		Outcome:   ok(fmt.Sprintf("Found %d customers", len(customers))),
		Customers: customers,
	}
}

func (s *Service) DeleteCustomer(ctx context.Context, customerID string) CustomerResult {
	if !s.gate.HasPermission(ctx, domain.PermDeleteUser) {
		return CustomerResult{Outcome: fail(KindPermission, "You don't have permission to delete customers")}
	}
	if blank(customerID) {
		return CustomerResult{Outcome: fail(KindValidation, "Customer ID is required")}
	}

	id := strings.TrimSpace(customerID)
	if err := s.bank.DeleteCustomer(ctx, id); err != nil {
		return CustomerResult{Outcome: s.customerFailure(ctx, "delete customer", id, err)}
	}
	return CustomerResult{Outcome: ok("Customer deleted successfully")}
}
