package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

func TestRBAC_RolePermissions(t *testing.T) {
	rbac := NewRBAC()

	tests := []struct {
		perm    domain.Permission
		teller  bool
		manager bool
		admin   bool
	}{
		{domain.PermCreateCustomer, true, true, true},
		{domain.PermOpenAccount, true, true, true},
		{domain.PermDeposit, true, true, true},
		{domain.PermWithdraw, true, true, true},
		{domain.PermViewBalance, true, true, true},
		{domain.PermViewTransactions, true, true, true},
		{domain.PermCloseAccount, false, true, true},
		{domain.PermOverrideLimit, false, true, true},
		{domain.PermCreateUser, false, false, true},
		{domain.PermDeleteUser, false, false, true},
		{domain.PermViewAllAccounts, false, false, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.perm), func(t *testing.T) {
			assert.Equal(t, tc.teller, rbac.RoleHasPermission(domain.RoleTeller, tc.perm))
			assert.Equal(t, tc.manager, rbac.RoleHasPermission(domain.RoleManager, tc.perm))
			assert.Equal(t, tc.admin, rbac.RoleHasPermission(domain.RoleAdmin, tc.perm))
		})
	}
}

func TestRBAC_PermissionsAreAdditive(t *testing.T) {
	rbac := NewRBAC()
	hierarchy := []domain.Role{domain.RoleTeller, domain.RoleManager, domain.RoleAdmin}

	for i := 1; i < len(hierarchy); i++ {
		lower, higher := hierarchy[i-1], hierarchy[i]
		for _, p := range RolePermissions[lower] {
			assert.True(t, rbac.RoleHasPermission(higher, p), "%s should inherit %s from %s", higher, p, lower)
		}
		assert.Greater(t, len(RolePermissions[higher]), len(RolePermissions[lower]))
	}
}

func TestRBAC_HasPermission_FromContext(t *testing.T) {
	rbac := NewRBAC()

	assert.False(t, rbac.HasPermission(context.Background(), domain.PermDeposit))

	ctx := ContextWithIdentity(context.Background(), Identity{UserID: "teller1", Role: domain.RoleTeller})
	assert.True(t, rbac.HasPermission(ctx, domain.PermDeposit))
	assert.False(t, rbac.HasPermission(ctx, domain.PermOverrideLimit))

	id, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "teller1", id.UserID)

	unknown := ContextWithIdentity(context.Background(), Identity{UserID: "x", Role: "AUDITOR"})
	assert.False(t, rbac.HasPermission(unknown, domain.PermViewBalance))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	ok, err := CheckPassword(hash, "s3cret!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword("not-a-bcrypt-hash", "s3cret!")
	assert.Error(t, err)
}
