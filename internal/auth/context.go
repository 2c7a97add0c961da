package auth

import (
	"context"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Role   domain.Role
}

type identityKey struct{}

func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
