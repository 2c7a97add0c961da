package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer("CUST-1000", "Kagiso", "Molefe", "Plot 12, Gaborone", testNow)
	require.NoError(t, err)
	return c
}

func params(c *Customer, initial string) OpenParams {
	return OpenParams{
		Number:         "TLB-10000",
		Customer:       c,
		InitialBalance: d(initial),
		Branch:         "Main Mall",
		OpenedAt:       testNow,
	}
}

func TestOpen_RequiresCustomer(t *testing.T) {
	p := params(nil, "100.00")

	_, err := OpenSavings(p)
	assert.ErrorIs(t, err, ErrCustomerRequired)

	_, err = OpenInvestment(OpenParams{InitialBalance: d("1000.00")})
	assert.ErrorIs(t, err, ErrCustomerRequired)

	_, err = OpenCheque(p, "Acme", "Main St")
	assert.ErrorIs(t, err, ErrCustomerRequired)
}

func TestOpen_RejectsNegativeOpeningBalance(t *testing.T) {
	_, err := OpenSavings(params(testCustomer(t), "-0.01"))
	assert.ErrorIs(t, err, ErrNegativeBalance)
}

func TestOpenInvestment_MinimumOpeningBalance(t *testing.T) {
	c := testCustomer(t)

	tests := []struct {
		name    string
		initial string
		wantErr error
	}{
		{name: "one cent below minimum", initial: "499.99", wantErr: ErrBelowMinimumBalance},
		{name: "zero", initial: "0", wantErr: ErrBelowMinimumBalance},
		{name: "exactly minimum", initial: "500.00"},
		{name: "above minimum", initial: "2500.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acct, err := OpenInvestment(params(c, tc.initial))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, acct)
				return
			}
			require.NoError(t, err)
			assert.True(t, acct.Balance().Equal(d(tc.initial)))
		})
	}
}

func TestOpenCheque_RequiresEmployment(t *testing.T) {
	c := testCustomer(t)

	tests := []struct {
		name    string
		company string
		address string
	}{
		{name: "empty company", company: "", address: "Main St"},
		{name: "blank company", company: "   ", address: "Main St"},
		{name: "empty address", company: "Acme", address: ""},
		{name: "both empty", company: "", address: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OpenCheque(params(c, "200.00"), tc.company, tc.address)
			assert.ErrorIs(t, err, ErrEmploymentRequired)
		})
	}
}

func TestDeposit(t *testing.T) {
	acct, err := OpenSavings(params(testCustomer(t), "1000.00"))
	require.NoError(t, err)

	for _, amount := range []string{"0", "-5.00", "0.001"} {
		txn, err := acct.Deposit(d(amount), testNow)
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
		assert.Nil(t, txn)
	}
	assert.True(t, acct.Balance().Equal(d("1000.00")))

	txn, err := acct.Deposit(d("500.00"), testNow)
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeDeposit, txn.Type)
	assert.True(t, txn.Amount.Equal(d("500.00")))
	assert.True(t, txn.BalanceAfter.Equal(d("1500.00")))
	assert.True(t, acct.Balance().Equal(txn.BalanceAfter))
	assert.Equal(t, acct.Number(), txn.AccountNumber)
	assert.NotEmpty(t, txn.ID)
}

func TestSavingsWithdraw_AlwaysRejected(t *testing.T) {
	acct, err := OpenSavings(params(testCustomer(t), "1500.00"))
	require.NoError(t, err)

	for _, amount := range []string{"100.00", "0", "-10.00", "1500.00", "99999.00"} {
		txn, err := acct.Withdraw(d(amount), testNow)
		assert.ErrorIs(t, err, ErrWithdrawalNotPermitted, amount)
		assert.Nil(t, txn)
		assert.True(t, acct.Balance().Equal(d("1500.00")))
	}
}

func TestWithdraw_InvestmentAndCheque(t *testing.T) {
	c := testCustomer(t)
	inv, err := OpenInvestment(params(c, "800.00"))
	require.NoError(t, err)
	chq, err := OpenCheque(params(c, "200.00"), "Acme", "Main St")
	require.NoError(t, err)

	tests := []struct {
		name        string
		acct        Account
		amount      string
		wantErr     error
		wantBalance string
	}{
		{name: "investment zero", acct: inv, amount: "0", wantErr: ErrInvalidAmount, wantBalance: "800.00"},
		{name: "investment overdraw", acct: inv, amount: "800.01", wantErr: ErrInsufficientFunds, wantBalance: "800.00"},
		{name: "investment below minimum allowed after opening", acct: inv, amount: "700.00", wantBalance: "100.00"},
		{name: "cheque negative", acct: chq, amount: "-1", wantErr: ErrInvalidAmount, wantBalance: "200.00"},
		{name: "cheque exact balance", acct: chq, amount: "200.00", wantBalance: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txn, err := tc.acct.Withdraw(d(tc.amount), testNow)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, txn)
			} else {
				require.NoError(t, err)
				assert.Equal(t, TransactionTypeWithdrawal, txn.Type)
				assert.True(t, txn.Amount.IsPositive())
				assert.True(t, txn.BalanceAfter.Equal(d(tc.wantBalance)))
			}
			assert.True(t, tc.acct.Balance().Equal(d(tc.wantBalance)),
				"balance: got %s, want %s", tc.acct.Balance(), tc.wantBalance)
		})
	}
}

func TestCalculateInterest(t *testing.T) {
	c := testCustomer(t)
	sav, _ := OpenSavings(params(c, "10000.00"))
	inv, _ := OpenInvestment(params(c, "1000.00"))
	chq, _ := OpenCheque(params(c, "5000.00"), "Acme", "Main St")

	assert.True(t, sav.CalculateInterest().Equal(d("5.00")))
	assert.True(t, inv.CalculateInterest().Equal(d("50.00")))
	assert.True(t, chq.CalculateInterest().IsZero())

	assert.True(t, sav.Balance().Equal(d("10000.00")), "calculate must not mutate")
	assert.True(t, sav.EarnsInterest())
	assert.True(t, inv.EarnsInterest())
	assert.False(t, chq.EarnsInterest())
}

func TestApplyInterest(t *testing.T) {
	c := testCustomer(t)

	t.Run("savings 10000 earns 5.00", func(t *testing.T) {
		sav, err := OpenSavings(params(c, "10000.00"))
		require.NoError(t, err)

		txn := sav.ApplyInterest(testNow)
		require.NotNil(t, txn)
		assert.Equal(t, TransactionTypeInterest, txn.Type)
		assert.True(t, txn.Amount.Equal(d("5.00")))
		assert.True(t, txn.BalanceAfter.Equal(d("10005.00")))
		assert.True(t, sav.Balance().Equal(d("10005.00")))
	})

	t.Run("zero balance is a no-op", func(t *testing.T) {
		sav, err := OpenSavings(params(c, "0"))
		require.NoError(t, err)

		assert.Nil(t, sav.ApplyInterest(testNow))
		assert.True(t, sav.Balance().IsZero())
	})

	t.Run("sub-cent interest is a no-op", func(t *testing.T) {
		sav, err := OpenSavings(params(c, "5.00"))
		require.NoError(t, err)

		assert.Nil(t, sav.ApplyInterest(testNow))
		assert.True(t, sav.Balance().Equal(d("5.00")))
	})

	t.Run("cheque never earns", func(t *testing.T) {
		chq, err := OpenCheque(params(c, "5000.00"), "Acme", "Main St")
		require.NoError(t, err)

		assert.Nil(t, chq.ApplyInterest(testNow))
		assert.True(t, chq.Balance().Equal(d("5000.00")))
	})
}

func TestCreditSalary(t *testing.T) {
	chq, err := OpenCheque(params(testCustomer(t), "0"), "Acme", "Main St")
	require.NoError(t, err)

	_, err = chq.CreditSalary(d("0"), "PAY-01", testNow)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	txn, err := chq.CreditSalary(d("12000.00"), "PAY-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeSalary, txn.Type)
	assert.Equal(t, "Salary credit from Acme (Ref: PAY-01)", txn.Description)
	assert.True(t, chq.Balance().Equal(d("12000.00")))

	var a Account = chq
	_, ok := a.(SalaryCreditor)
	assert.True(t, ok)

	var s Account
	s, err = OpenSavings(params(testCustomer(t), "0"))
	require.NoError(t, err)
	_, ok = s.(SalaryCreditor)
	assert.False(t, ok)
}

func TestBalanceMatchesTransactionSum(t *testing.T) {
	inv, err := OpenInvestment(params(testCustomer(t), "1000.00"))
	require.NoError(t, err)

	var ledger []*Transaction
	ledger = append(ledger, OpeningDeposit(inv, testNow))

	steps := []func() (*Transaction, error){
		func() (*Transaction, error) { return inv.Deposit(d("250.50"), testNow) },
		func() (*Transaction, error) { return inv.Withdraw(d("100.25"), testNow) },
		func() (*Transaction, error) { return inv.ApplyInterest(testNow), nil },
		func() (*Transaction, error) { return inv.Withdraw(d("5000.00"), testNow) },
		func() (*Transaction, error) { return inv.Deposit(d("-1"), testNow) },
	}
	for _, step := range steps {
		txn, err := step()
		if err == nil && txn != nil {
			ledger = append(ledger, txn)
		}
	}

	sum := decimal.Zero
	for _, txn := range ledger {
		if txn.Type.Credit() {
			sum = sum.Add(txn.Amount)
		} else {
			sum = sum.Sub(txn.Amount)
		}
	}
	assert.True(t, sum.Equal(inv.Balance()), "sum %s != balance %s", sum, inv.Balance())
	assert.True(t, ledger[len(ledger)-1].BalanceAfter.Equal(inv.Balance()))
}

func TestRehydrate_BypassesOpeningRules(t *testing.T) {
	rec := AccountRecord{
		Number:     "TLB-10042",
		CustomerID: "CUST-1000",
		Type:       AccountTypeInvestment,
		Balance:    d("120.00"),
		Branch:     "Francistown",
		OpenedAt:   testNow,
	}

	acct, err := Rehydrate(rec)
	require.NoError(t, err)
	assert.Equal(t, AccountTypeInvestment, acct.Type())
	assert.True(t, acct.Balance().Equal(d("120.00")))
	assert.Equal(t, rec, acct.Record())

	name, addr := "Acme", "Main St"
	chq, err := Rehydrate(AccountRecord{Number: "TLB-10043", Type: AccountTypeCheque, CompanyName: &name, CompanyAddress: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Acme", chq.(*ChequeAccount).CompanyName())

	_, err = Rehydrate(AccountRecord{Type: "Loan Account"})
	assert.ErrorIs(t, err, ErrUnknownAccountType)
}

func TestOpeningDeposit(t *testing.T) {
	c := testCustomer(t)

	zero, _ := OpenSavings(params(c, "0"))
	assert.Nil(t, OpeningDeposit(zero, testNow))

	funded, _ := OpenSavings(params(c, "1000.00"))
	txn := OpeningDeposit(funded, testNow)
	require.NotNil(t, txn)
	assert.Equal(t, TransactionTypeDeposit, txn.Type)
	assert.True(t, txn.BalanceAfter.Equal(d("1000.00")))
}

func TestChequeUpdateEmployment(t *testing.T) {
	chq, err := OpenCheque(params(testCustomer(t), "0"), "Acme", "Main St")
	require.NoError(t, err)

	chq.UpdateEmployment("Globex", " ")
	assert.Equal(t, "Globex", chq.CompanyName())
	assert.Equal(t, "Main St", chq.CompanyAddress())
}

func TestInterestBearingTypes(t *testing.T) {
	assert.Equal(t, []AccountType{AccountTypeSavings, AccountTypeInvestment}, InterestBearingTypes())
}
