package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
)

const testSecret = "test-jwt-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("teller1", domain.RoleTeller, testSecret, 8*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "teller1", claims.UserID)
	assert.Equal(t, domain.RoleTeller, claims.Role)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestValidateToken(t *testing.T) {
	validToken, _, err := GenerateToken("teller1", domain.RoleTeller, testSecret, 8*time.Hour)
	require.NoError(t, err)

	expiredToken, _, err := GenerateToken("teller1", domain.RoleTeller, testSecret, -1*time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		secret    string
		wantErrIs error
	}{
		{
			name:      "expired token",
			token:     expiredToken,
			secret:    testSecret,
			wantErrIs: jwt.ErrTokenExpired,
		},
		{
			name:      "wrong secret",
			token:     validToken,
			secret:    "wrong-secret",
			wantErrIs: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:      "malformed token",
			token:     "not.a.valid.jwt",
			secret:    testSecret,
			wantErrIs: jwt.ErrTokenMalformed,
		},
		{
			name:      "empty token",
			token:     "",
			secret:    testSecret,
			wantErrIs: jwt.ErrTokenMalformed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateToken(tc.token, tc.secret)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErrIs)
		})
	}
}

func TestValidateToken_RejectsUnknownRole(t *testing.T) {
	token, _, err := GenerateToken("ghost", domain.Role("AUDITOR"), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorContains(t, err, "unknown role")
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	// Algorithm confusion: a token signed with "none" should be rejected
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: string(domain.RoleAdmin),
	}
	claims.Issuer = Issuer
	claims.Subject = "admin"
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, testSecret)
	require.Error(t, err)
}

func TestValidateToken_RequiresIssuerAndExpiry(t *testing.T) {
	sign := func(rc jwt.RegisteredClaims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
			RegisteredClaims: rc,
			Role:             string(domain.RoleTeller),
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}
	later := jwt.NewNumericDate(time.Now().Add(time.Hour))

	_, err := ValidateToken(sign(jwt.RegisteredClaims{Issuer: "someone-else", Subject: "teller1", ExpiresAt: later}), testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ValidateToken(sign(jwt.RegisteredClaims{Issuer: Issuer, Subject: "teller1"}), testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)

	_, err = ValidateToken(sign(jwt.RegisteredClaims{Issuer: Issuer, ExpiresAt: later}), testSecret)
	assert.ErrorContains(t, err, "missing subject")
}
