package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrCustomerRequired       = errors.New("account cannot exist without a customer")
	ErrCustomerHasAccounts    = errors.New("cannot delete customer with existing accounts")
	ErrAccountHasTransactions = errors.New("cannot delete account with recorded transactions")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrNegativeBalance        = errors.New("initial balance cannot be negative")
	ErrInsufficientFunds      = errors.New("insufficient balance for withdrawal")
	ErrWithdrawalNotPermitted = errors.New("withdrawals are not permitted on savings accounts")
	ErrBelowMinimumBalance    = errors.New("investment account requires minimum opening balance of BWP 500.00")
	ErrEmploymentRequired     = errors.New("cheque account requires valid employment information (company name and address)")
	ErrSalaryNotSupported     = errors.New("salary credits are only accepted on cheque accounts")
	ErrUnknownAccountType     = errors.New("unknown account type")
	ErrInvalidPeriod          = errors.New("period must be formatted as YYYY-MM")
	ErrFuturePeriod           = errors.New("period has not started yet")
	ErrInterestAlreadyApplied = errors.New("interest already applied for period")
	ErrDuplicateKey           = errors.New("duplicate key")
	ErrBalanceConflict        = errors.New("balance changed concurrently")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrInvalidCredentials     = errors.New("invalid user id or password")
	ErrInvalidRequest         = errors.New("invalid request")
)
