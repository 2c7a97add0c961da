package middleware

import (
	"net/http"
	"strings"

	"github.com/josh-kwaku/teller-ledger/internal/auth"
	"github.com/josh-kwaku/teller-ledger/internal/handler"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
)

const authRealm = `Bearer realm="teller-ledger"`

// Auth resolves the operator behind a bearer token and stores the identity
// in the request context. Permission checks happen later, per operation.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, handler.ErrMissingToken)
				return
			}

			token, ok := bearerToken(header)
			if !ok {
				unauthorized(w, handler.ErrInvalidToken)
				return
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				logging.FromContext(r.Context()).Warn("rejected token", "error", err)
				unauthorized(w, handler.ErrInvalidToken)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), auth.Identity{UserID: claims.UserID, Role: claims.Role})
			ctx = logging.With(ctx, "user_id", claims.UserID, "role", claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential; the scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, appErr *handler.AppError) {
	w.Header().Set("WWW-Authenticate", authRealm)
	handler.RespondAppError(w, appErr, nil)
}
