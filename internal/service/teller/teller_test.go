package teller_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/service/bank"
	"github.com/josh-kwaku/teller-ledger/internal/service/teller"
	mock_teller "github.com/josh-kwaku/teller-ledger/internal/service/teller/mocks"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func setup(t *testing.T, allowed bool) (*teller.Service, *mock_teller.MockBank) {
	t.Helper()
	ctrl := gomock.NewController(t)
	b := mock_teller.NewMockBank(ctrl)
	gate := mock_teller.NewMockPermissionGate(ctrl)
	gate.EXPECT().HasPermission(gomock.Any(), gomock.Any()).Return(allowed).AnyTimes()
	return teller.NewService(b, gate), b
}

func customer(t *testing.T) *domain.Customer {
	t.Helper()
	c, err := domain.NewCustomer("CUST-1000", "Kagiso", "Molefe", "Plot 12, Gaborone", now)
	require.NoError(t, err)
	return c
}

func savings(t *testing.T, number, balance string) domain.Account {
	t.Helper()
	a, err := domain.OpenSavings(domain.OpenParams{
		Number: number, Customer: customer(t), InitialBalance: d(balance), Branch: "Main Mall", OpenedAt: now,
	})
	require.NoError(t, err)
	return a
}

func cheque(t *testing.T, number, balance string) domain.Account {
	t.Helper()
	a, err := domain.OpenCheque(domain.OpenParams{
		Number: number, Customer: customer(t), InitialBalance: d(balance), Branch: "Main Mall", OpenedAt: now,
	}, "Debswana", "Jwaneng")
	require.NoError(t, err)
	return a
}

func assertFailed(t *testing.T, out teller.Outcome, kind teller.FailureKind, msg string) {
	t.Helper()
	assert.False(t, out.Success)
	assert.Equal(t, kind, out.Kind)
	assert.Equal(t, msg, out.Message)
}

func TestOpenAccount_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		allowed bool
		req     teller.OpenAccountRequest
		kind    teller.FailureKind
		msg     string
	}{
		{
			name:    "permission checked before anything else",
			allowed: false,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeInvestment, InitialBalance: d("-1")},
			kind:    teller.KindPermission,
			msg:     "You don't have permission to open accounts",
		},
		{
			name:    "customer id reported before branch",
			allowed: true,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeSavings, InitialBalance: d("-1")},
			kind:    teller.KindValidation,
			msg:     "Customer ID is required",
		},
		{
			name:    "branch required",
			allowed: true,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeSavings, CustomerID: "CUST-1000", Branch: "  "},
			kind:    teller.KindValidation,
			msg:     "Branch code is required",
		},
		{
			name:    "negative balance is a format failure before the investment minimum",
			allowed: true,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeInvestment, CustomerID: "CUST-1000", Branch: "Main Mall", InitialBalance: d("-5")},
			kind:    teller.KindValidation,
			msg:     "Initial balance cannot be negative",
		},
		{
			name:    "investment minimum",
			allowed: true,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeInvestment, CustomerID: "CUST-1000", Branch: "Main Mall", InitialBalance: d("499.99")},
			kind:    teller.KindBusiness,
			msg:     "Investment Account requires minimum opening balance of BWP 500.00",
		},
		{
			name:    "cheque company name",
			allowed: true,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeCheque, CustomerID: "CUST-1000", Branch: "Main Mall", CompanyAddress: "Jwaneng"},
			kind:    teller.KindBusiness,
			msg:     "Company name is required for Cheque Account",
		},
		{
			name:    "cheque company address",
			allowed: true,
			req:     teller.OpenAccountRequest{AccountType: domain.AccountTypeCheque, CustomerID: "CUST-1000", Branch: "Main Mall", CompanyName: "Debswana"},
			kind:    teller.KindBusiness,
			msg:     "Company address is required for Cheque Account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setup(t, tt.allowed)
			res := svc.OpenAccount(context.Background(), tt.req)
			assertFailed(t, res.Outcome, tt.kind, tt.msg)
			assert.Nil(t, res.Account)
		})
	}
}

func TestOpenSavingsAccount_Success(t *testing.T) {
	svc, b := setup(t, true)
	acct := savings(t, "TLB-10000", "1000.00")

	b.EXPECT().OpenSavingsAccount(gomock.Any(), bank.OpenRequest{
		CustomerID: "CUST-1000", InitialBalance: d("1000.00"), Branch: "Main Mall",
	}).Return(acct, nil)

	res := svc.OpenSavingsAccount(context.Background(), teller.OpenAccountRequest{
		CustomerID: " CUST-1000 ", InitialBalance: d("1000.00"), Branch: "Main Mall",
	})

	require.True(t, res.Success)
	assert.Equal(t, "Savings Account opened successfully: TLB-10000", res.Message)
	assert.Equal(t, acct, res.Account)
}

func TestOpenChequeAccount_PassesEmployment(t *testing.T) {
	svc, b := setup(t, true)
	acct := cheque(t, "TLB-10001", "0.00")

	b.EXPECT().OpenChequeAccount(gomock.Any(), gomock.Any(), "Debswana", "Jwaneng").Return(acct, nil)

	res := svc.OpenAccount(context.Background(), teller.OpenAccountRequest{
		AccountType: domain.AccountTypeCheque, CustomerID: "CUST-1000", Branch: "Main Mall",
		CompanyName: " Debswana ", CompanyAddress: "Jwaneng",
	})

	require.True(t, res.Success)
	assert.Equal(t, "Cheque Account opened successfully: TLB-10001", res.Message)
}

func TestOpenAccount_UnknownCustomer(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().OpenSavingsAccount(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("openAccount: %w", domain.ErrCustomerNotFound))

	res := svc.OpenSavingsAccount(context.Background(), teller.OpenAccountRequest{
		CustomerID: "CUST-9999", Branch: "Main Mall",
	})

	assertFailed(t, res.Outcome, teller.KindNotFound, "Customer not found: CUST-9999")
}

func TestDeposit(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			allowed bool
			number  string
			amount  decimal.Decimal
			kind    teller.FailureKind
			msg     string
		}{
			{"permission", false, "", d("0"), teller.KindPermission, "You don't have permission to make deposits"},
			{"account number", true, "", d("0"), teller.KindValidation, "Account number is required"},
			{"zero amount", true, "TLB-10000", d("0"), teller.KindValidation, "Deposit amount must be positive"},
			{"negative amount", true, "TLB-10000", d("-10"), teller.KindValidation, "Deposit amount must be positive"},
			{"sub-cent amount", true, "TLB-10000", d("1.005"), teller.KindValidation, "Deposit amount cannot have more than 2 decimal places"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _ := setup(t, tt.allowed)
				res := svc.Deposit(context.Background(), tt.number, tt.amount)
				assertFailed(t, res.Outcome, tt.kind, tt.msg)
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		svc, b := setup(t, true)
		acct := savings(t, "TLB-10000", "1000.00")
		txn, err := acct.Deposit(d("500.00"), now)
		require.NoError(t, err)
		b.EXPECT().Deposit(gomock.Any(), "TLB-10000", d("500.00")).Return(acct, txn, nil)

		res := svc.Deposit(context.Background(), "TLB-10000", d("500.00"))

		require.True(t, res.Success)
		assert.Equal(t, "Deposit successful. New balance: BWP 1500.00", res.Message)
		assert.True(t, d("1500.00").Equal(res.NewBalance))
		assert.Equal(t, txn, res.Transaction)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().Deposit(gomock.Any(), "TLB-99999", gomock.Any()).
			Return(nil, nil, fmt.Errorf("mutate: %w", domain.ErrAccountNotFound))

		res := svc.Deposit(context.Background(), "TLB-99999", d("10"))

		assertFailed(t, res.Outcome, teller.KindNotFound, "Account not found: TLB-99999")
	})

	t.Run("unexpected error is reported generically", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errors.New("connection reset"))

		res := svc.Deposit(context.Background(), "TLB-10000", d("10"))

		assertFailed(t, res.Outcome, teller.KindInternal, "Failed to deposit")
	})
}

func TestWithdraw_RuleFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"savings", domain.ErrWithdrawalNotPermitted, "Withdrawals are not permitted on Savings Accounts"},
		{"overdraw", domain.ErrInsufficientFunds, "Insufficient balance for withdrawal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, b := setup(t, true)
			b.EXPECT().Withdraw(gomock.Any(), "TLB-10000", d("100")).
				Return(nil, nil, fmt.Errorf("mutate: %w", tt.err))

			res := svc.Withdraw(context.Background(), "TLB-10000", d("100"))

			assertFailed(t, res.Outcome, teller.KindBusiness, tt.msg)
		})
	}
}

func TestWithdraw_Validation(t *testing.T) {
	svc, _ := setup(t, false)
	assertFailed(t, svc.Withdraw(context.Background(), "", d("-1")).Outcome,
		teller.KindPermission, "You don't have permission to make withdrawals")

	svc, _ = setup(t, true)
	assertFailed(t, svc.Withdraw(context.Background(), "TLB-10000", d("-1")).Outcome,
		teller.KindValidation, "Withdrawal amount must be positive")
}

func TestGetBalance(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().GetAccount(gomock.Any(), "TLB-10000").Return(savings(t, "TLB-10000", "250.50"), nil)

	res := svc.GetBalance(context.Background(), "TLB-10000")

	require.True(t, res.Success)
	assert.Equal(t, "Balance retrieved", res.Message)
	assert.True(t, d("250.50").Equal(res.Balance))
}

func TestCreditSalary(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().CreditSalary(gomock.Any(), "TLB-10000", d("100"), "EMP-1").
		Return(nil, nil, fmt.Errorf("CreditSalary: %w", domain.ErrSalaryNotSupported))

	res := svc.CreditSalary(context.Background(), "TLB-10000", d("100"), "EMP-1")
	assertFailed(t, res.Outcome, teller.KindBusiness, "Salary credits are only accepted on Cheque Accounts")

	res = svc.CreditSalary(context.Background(), "TLB-10000", d("100"), " ")
	assertFailed(t, res.Outcome, teller.KindValidation, "Employer reference is required")
}

func TestTransactionHistory(t *testing.T) {
	from := now.Add(-time.Hour)
	to := now

	t.Run("validation", func(t *testing.T) {
		svc, _ := setup(t, true)
		ctx := context.Background()

		res := svc.TransactionHistory(ctx, teller.HistoryQuery{AccountNumber: "TLB-10000", From: &from})
		assertFailed(t, res.Outcome, teller.KindValidation, "Both start and end dates are required for a date range")

		res = svc.TransactionHistory(ctx, teller.HistoryQuery{AccountNumber: "TLB-10000", From: &to, To: &from})
		assertFailed(t, res.Outcome, teller.KindValidation, "Start date must not be after end date")

		res = svc.TransactionHistory(ctx, teller.HistoryQuery{AccountNumber: "TLB-10000", Type: "REFUND"})
		assertFailed(t, res.Outcome, teller.KindValidation, "Unknown transaction type: REFUND")
	})

	t.Run("full history", func(t *testing.T) {
		svc, b := setup(t, true)
		txns := []domain.Transaction{{ID: "a"}, {ID: "b"}}
		b.EXPECT().TransactionHistory(gomock.Any(), "TLB-10000").Return(txns, nil)

		res := svc.TransactionHistory(context.Background(), teller.HistoryQuery{AccountNumber: "TLB-10000"})

		require.True(t, res.Success)
		assert.Equal(t, "Found 2 transactions", res.Message)
		assert.Equal(t, txns, res.Transactions)
	})

	t.Run("date range", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().TransactionsBetween(gomock.Any(), "TLB-10000", from, to).Return(nil, nil)

		res := svc.TransactionHistory(context.Background(), teller.HistoryQuery{AccountNumber: "TLB-10000", From: &from, To: &to})

		require.True(t, res.Success)
		assert.Equal(t, "Found 0 transactions", res.Message)
	})

	t.Run("single instant", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().TransactionsBetween(gomock.Any(), "TLB-10000", to, to).Return(nil, nil)

		res := svc.TransactionHistory(context.Background(), teller.HistoryQuery{AccountNumber: "TLB-10000", From: &to, To: &to})

		require.True(t, res.Success)
	})

	t.Run("by type", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().TransactionsByType(gomock.Any(), "TLB-10000", domain.TransactionTypeInterest).Return(nil, nil)

		res := svc.TransactionHistory(context.Background(), teller.HistoryQuery{
			AccountNumber: "TLB-10000", Type: domain.TransactionTypeInterest,
		})

		require.True(t, res.Success)
	})
}

func TestProcessMonthlyInterest(t *testing.T) {
	t.Run("requires override limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := mock_teller.NewMockPermissionGate(ctrl)
		gate.EXPECT().HasPermission(gomock.Any(), domain.PermOverrideLimit).Return(false)
		svc := teller.NewService(mock_teller.NewMockBank(ctrl), gate)

		res := svc.ProcessMonthlyInterest(context.Background(), "")

		assertFailed(t, res.Outcome, teller.KindPermission, "You don't have permission to process interest")
	})

	t.Run("malformed period", func(t *testing.T) {
		svc, _ := setup(t, true)
		res := svc.ProcessMonthlyInterest(context.Background(), "March 2025")
		assertFailed(t, res.Outcome, teller.KindValidation, "Period must be formatted as YYYY-MM")
	})

	t.Run("blank period means current month", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().ProcessMonthlyInterest(gomock.Any(), domain.Period("")).Return(&bank.InterestSummary{
			Period: "2025-03", Processed: 3, Credited: 2, Skipped: 1, TotalInterest: d("25.25"),
		}, nil)

		res := svc.ProcessMonthlyInterest(context.Background(), " ")

		require.True(t, res.Success)
		assert.Equal(t, "Interest processed for 2 accounts. Total interest: BWP 25.25", res.Message)
		assert.Equal(t, 1, res.Summary.Skipped)
	})

	t.Run("explicit period", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().ProcessMonthlyInterest(gomock.Any(), domain.Period("2025-02")).
			Return(&bank.InterestSummary{Period: "2025-02", TotalInterest: decimal.Zero}, nil)

		res := svc.ProcessMonthlyInterest(context.Background(), "2025-02")

		require.True(t, res.Success)
		assert.Equal(t, "Interest processed for 0 accounts. Total interest: BWP 0.00", res.Message)
	})

	t.Run("future period", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().ProcessMonthlyInterest(gomock.Any(), domain.Period("2099-11")).
			Return(nil, fmt.Errorf("ProcessMonthlyInterest: 2099-11: %w", domain.ErrFuturePeriod))

		res := svc.ProcessMonthlyInterest(context.Background(), "2099-11")

		assertFailed(t, res.Outcome, teller.KindValidation, "Interest cannot be processed for a future period")
	})
}

func TestRegisterCustomer_ValidationOrder(t *testing.T) {
	valid := teller.CustomerRequest{FirstName: "Kagiso", Surname: "Molefe", Address: "Plot 12, Gaborone"}

	tests := []struct {
		name    string
		allowed bool
		mutate  func(r *teller.CustomerRequest)
		kind    teller.FailureKind
		msg     string
	}{
		{"permission", false, func(r *teller.CustomerRequest) { r.FirstName = "" }, teller.KindPermission, "You don't have permission to register customers"},
		{"first name before bad email", true, func(r *teller.CustomerRequest) { r.FirstName = ""; r.Email = strPtr("nope") }, teller.KindValidation, "First name is required"},
		{"surname", true, func(r *teller.CustomerRequest) { r.Surname = " " }, teller.KindValidation, "Surname is required"},
		{"address before name format", true, func(r *teller.CustomerRequest) { r.Address = ""; r.FirstName = "K4giso" }, teller.KindValidation, "Address is required"},
		{"first name characters", true, func(r *teller.CustomerRequest) { r.FirstName = "K4giso" }, teller.KindValidation, "First name contains invalid characters"},
		{"surname characters", true, func(r *teller.CustomerRequest) { r.Surname = "Mol@fe" }, teller.KindValidation, "Surname contains invalid characters"},
		{"email", true, func(r *teller.CustomerRequest) { r.Email = strPtr("kagiso@") }, teller.KindValidation, "Invalid email format"},
		{"phone too short", true, func(r *teller.CustomerRequest) { r.PhoneNumber = strPtr("71 23") }, teller.KindValidation, "Invalid phone number format"},
		{"phone too long", true, func(r *teller.CustomerRequest) { r.PhoneNumber = strPtr("+2677123456789012") }, teller.KindValidation, "Invalid phone number format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setup(t, tt.allowed)
			req := valid
			tt.mutate(&req)
			res := svc.RegisterCustomer(context.Background(), req)
			assertFailed(t, res.Outcome, tt.kind, tt.msg)
		})
	}
}

func TestRegisterCustomer_Success(t *testing.T) {
	svc, b := setup(t, true)
	c := customer(t)
	b.EXPECT().RegisterCustomer(gomock.Any(), bank.CustomerDetails{
		FirstName: "Kagiso", Surname: "O'Neil-Molefe", Address: "Plot 12, Gaborone",
		PhoneNumber: strPtr("+267 71 234 567"), Email: strPtr("kagiso@example.co.bw"),
	}).Return(c, nil)

	res := svc.RegisterCustomer(context.Background(), teller.CustomerRequest{
		FirstName: " Kagiso", Surname: "O'Neil-Molefe", Address: "Plot 12, Gaborone",
		PhoneNumber: strPtr("+267 71 234 567"), Email: strPtr("kagiso@example.co.bw"),
	})

	require.True(t, res.Success)
	assert.Equal(t, "Customer registered successfully: CUST-1000", res.Message)
}

func TestUpdateCustomer_Missing(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().UpdateCustomer(gomock.Any(), "CUST-4040", gomock.Any()).
		Return(nil, fmt.Errorf("UpdateCustomer: %w", domain.ErrCustomerNotFound))

	res := svc.UpdateCustomer(context.Background(), "CUST-4040", teller.CustomerRequest{
		FirstName: "Neo", Surname: "Sechele", Address: "Maun",
	})

	assertFailed(t, res.Outcome, teller.KindNotFound, "Customer does not exist: CUST-4040")
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("requires delete permission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := mock_teller.NewMockPermissionGate(ctrl)
		gate.EXPECT().HasPermission(gomock.Any(), domain.PermDeleteUser).Return(false)
		svc := teller.NewService(mock_teller.NewMockBank(ctrl), gate)

		res := svc.DeleteCustomer(context.Background(), "CUST-1000")

		assertFailed(t, res.Outcome, teller.KindPermission, "You don't have permission to delete customers")
	})

	t.Run("has accounts", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().DeleteCustomer(gomock.Any(), "CUST-1000").
			Return(fmt.Errorf("Delete: %w", domain.ErrCustomerHasAccounts))

		res := svc.DeleteCustomer(context.Background(), "CUST-1000")

		assertFailed(t, res.Outcome, teller.KindBusiness, "Cannot delete customer with existing accounts")
	})

	t.Run("deleted", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().DeleteCustomer(gomock.Any(), "CUST-1000").Return(nil)

		res := svc.DeleteCustomer(context.Background(), "CUST-1000")

		require.True(t, res.Success)
		assert.Equal(t, "Customer deleted successfully", res.Message)
	})
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().GetCustomer(gomock.Any(), "CUST-4040").Return(nil, domain.ErrCustomerNotFound)

	res := svc.GetCustomer(context.Background(), "CUST-4040")

	assertFailed(t, res.Outcome, teller.KindNotFound, "Customer not found: CUST-4040")
}

func TestSearchCustomers(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().SearchCustomers(gomock.Any(), "mol").Return([]*domain.Customer{customer(t)}, nil)

	res := svc.SearchCustomers(context.Background(), "mol")

	require.True(t, res.Success)
	assert.Equal(t, "Found 1 customers", res.Message)
	assert.Len(t, res.Customers, 1)
}

func TestUpdateEmployment_NotCheque(t *testing.T) {
	svc, b := setup(t, true)
	b.EXPECT().UpdateEmployment(gomock.Any(), "TLB-10000", "BCL", "Selebi-Phikwe").
		Return(nil, fmt.Errorf("UpdateEmployment: %w", domain.ErrSalaryNotSupported))

	res := svc.UpdateEmployment(context.Background(), "TLB-10000", "BCL", "Selebi-Phikwe")

	assertFailed(t, res.Outcome, teller.KindBusiness, "Employment details apply to Cheque Accounts only")
}

func TestAccountStatistics(t *testing.T) {
	svc, b := setup(t, true)
	stats := &bank.Statistics{Customers: 2, Accounts: 3, ByType: map[domain.AccountType]int{domain.AccountTypeSavings: 3}}
	b.EXPECT().Statistics(gomock.Any()).Return(stats, nil)

	res := svc.AccountStatistics(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, stats, res.Statistics)
}

func TestListAccounts(t *testing.T) {
	t.Run("requires view all accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := mock_teller.NewMockPermissionGate(ctrl)
		gate.EXPECT().HasPermission(gomock.Any(), domain.PermViewAllAccounts).Return(false)
		svc := teller.NewService(mock_teller.NewMockBank(ctrl), gate)

		res := svc.ListAccounts(context.Background())

		assertFailed(t, res.Outcome, teller.KindPermission, "You don't have permission to view all accounts")
	})

	t.Run("lists", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{nil, nil}, nil)

		res := svc.ListAccounts(context.Background())

		require.True(t, res.Success)
		assert.Equal(t, "Found 2 accounts", res.Message)
		assert.Len(t, res.Accounts, 2)
	})
}

func TestGetTransaction(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		svc, _ := setup(t, true)
		res := svc.GetTransaction(context.Background(), "  ")
		assertFailed(t, res.Outcome, teller.KindValidation, "Transaction ID is required")
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, b := setup(t, true)
		b.EXPECT().GetTransaction(gomock.Any(), "t-404").
			Return(nil, fmt.Errorf("GetTransaction: GetByID: %w", domain.ErrNotFound))

		res := svc.GetTransaction(context.Background(), " t-404 ")

		assertFailed(t, res.Outcome, teller.KindNotFound, "Transaction not found: t-404")
	})

	t.Run("found", func(t *testing.T) {
		svc, b := setup(t, true)
		txn := &domain.Transaction{ID: "t1", Type: domain.TransactionTypeDeposit, Amount: d("10.00"), BalanceAfter: d("10.00")}
		b.EXPECT().GetTransaction(gomock.Any(), "t1").Return(txn, nil)

		res := svc.GetTransaction(context.Background(), "t1")

		require.True(t, res.Success)
		assert.Equal(t, txn, res.Transaction)
	})
}
