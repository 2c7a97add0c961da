package auth

import (
	"context"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

var tellerPermissions = []domain.Permission{
	domain.PermCreateCustomer,
	domain.PermOpenAccount,
	domain.PermDeposit,
	domain.PermWithdraw,
	domain.PermViewBalance,
	domain.PermViewTransactions,
}

var managerPermissions = append(append([]domain.Permission{}, tellerPermissions...),
	domain.PermCloseAccount,
	domain.PermOverrideLimit,
)

var adminPermissions = append(append([]domain.Permission{}, managerPermissions...),
	domain.PermCreateUser,
	domain.PermDeleteUser,
	domain.PermViewAllAccounts,
)

// RolePermissions is cumulative: each role holds everything the role below
// it holds.
var RolePermissions = map[domain.Role][]domain.Permission{
	domain.RoleTeller:  tellerPermissions,
	domain.RoleManager: managerPermissions,
	domain.RoleAdmin:   adminPermissions,
}

// RBAC answers permission questions for the identity carried in a context.
type RBAC struct {
	rolePermissions map[domain.Role]map[domain.Permission]bool
}

func NewRBAC() *RBAC {
	r := &RBAC{rolePermissions: make(map[domain.Role]map[domain.Permission]bool)}
	for role, perms := range RolePermissions {
		r.rolePermissions[role] = make(map[domain.Permission]bool, len(perms))
		for _, p := range perms {
			r.rolePermissions[role][p] = true
		}
	}
	return r
}

func (r *RBAC) RoleHasPermission(role domain.Role, perm domain.Permission) bool {
	return r.rolePermissions[role][perm]
}

// HasPermission is false when ctx carries no identity.
func (r *RBAC) HasPermission(ctx context.Context, perm domain.Permission) bool {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return false
	}
	return r.RoleHasPermission(id.Role, perm)
}
