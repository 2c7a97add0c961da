package domain

import "time"

type Role string

const (
	RoleTeller  Role = "TELLER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleTeller, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Permission names an operation a caller may be allowed to invoke.
type Permission string

const (
	PermCreateCustomer   Permission = "CREATE_CUSTOMER"
	PermOpenAccount      Permission = "OPEN_ACCOUNT"
	PermDeposit          Permission = "DEPOSIT"
	PermWithdraw         Permission = "WITHDRAW"
	PermViewBalance      Permission = "VIEW_BALANCE"
	PermViewTransactions Permission = "VIEW_TRANSACTIONS"
	PermCloseAccount     Permission = "CLOSE_ACCOUNT"
	PermOverrideLimit    Permission = "OVERRIDE_LIMIT"
	PermCreateUser       Permission = "CREATE_USER"
	PermDeleteUser       Permission = "DELETE_USER"
	PermViewAllAccounts  Permission = "VIEW_ALL_ACCOUNTS"
)

const DefaultAdminID = "admin"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
