package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func rawToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + "."
}

func TestTokenGuardClaimsReadsIdentity(t *testing.T) {
	t.Parallel()

	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	token := signToken(t, jwt.MapClaims{
		"email": "a@x.com",
		"sub":   "42",
		"role":  "instructor",
		"exp":   expires.Unix(),
	})

	claims, ok := NewTokenGuard().Claims(token)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "instructor", claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(expires))
}

func TestTokenGuardClaimsToleratesLooseClaimTypes(t *testing.T) {
	t.Parallel()

	claims, ok := NewTokenGuard().Claims(rawToken(`{"email":"a@x.com","sub":42,"exp":"1893456000","role":["admin"]}`))
	require.True(t, ok)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.Empty(t, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(time.Unix(1893456000, 0)))
}

func TestTokenGuardClaimsRejectsMalformedTokens(t *testing.T) {
	t.Parallel()

	guard := NewTokenGuard()
	for _, token := range []string{"", "   ", "not-a-jwt", "a.b", "a.b.c", rawToken("{not json")} {
		_, ok := guard.Claims(token)
		assert.False(t, ok, token)
	}
}

func TestTokenGuardValidate(t *testing.T) {
	t.Parallel()

	user := domain.User{ID: "42", Email: "a@x.com", Role: domain.RoleInstructor}

	tests := []struct {
		name     string
		token    string
		user     domain.User
		mismatch bool
	}{
		{
			name:  "email claim matches",
			token: signToken(t, jwt.MapClaims{"email": "a@x.com"}),
			user:  user,
		},
		{
			name:  "email comparison ignores case",
			token: signToken(t, jwt.MapClaims{"email": "A@X.com"}),
			user:  user,
		},
		{
			name:     "email claim differs",
			token:    signToken(t, jwt.MapClaims{"email": "b@x.com"}),
			user:     user,
			mismatch: true,
		},
		{
			name:  "sub matches email",
			token: signToken(t, jwt.MapClaims{"sub": "a@x.com"}),
			user:  user,
		},
		{
			name:  "sub matches user id",
			token: signToken(t, jwt.MapClaims{"sub": "42"}),
			user:  user,
		},
		{
			name:     "sub differs from email and id",
			token:    signToken(t, jwt.MapClaims{"sub": "99"}),
			user:     user,
			mismatch: true,
		},
		{
			name:  "email claim wins over sub",
			token: signToken(t, jwt.MapClaims{"email": "a@x.com", "sub": "99"}),
			user:  user,
		},
		{
			name:  "token without identity",
			token: signToken(t, jwt.MapClaims{"role": "student"}),
			user:  user,
		},
		{
			name:  "cached user without email",
			token: signToken(t, jwt.MapClaims{"email": "b@x.com"}),
			user:  domain.User{ID: "7"},
		},
		{
			name:  "malformed token",
			token: "garbage",
			user:  user,
		},
		{
			name:  "expired token is not a mismatch",
			token: signToken(t, jwt.MapClaims{"email": "a@x.com", "exp": time.Now().Add(-time.Hour).Unix()}),
			user:  user,
		},
		{
			name:     "numeric sub does not hide a different email",
			token:    rawToken(`{"email":"a@x.com","sub":42}`),
			user:     domain.User{ID: "7", Email: "b@x.com"},
			mismatch: true,
		},
		{
			name:  "numeric sub matches user id",
			token: rawToken(`{"sub":42}`),
			user:  user,
		},
		{
			name:     "string exp does not hide a different email",
			token:    rawToken(`{"email":"b@x.com","exp":"soon"}`),
			user:     user,
			mismatch: true,
		},
		{
			name:  "unsigned token still decodes",
			token: rawToken(`{"email":"a@x.com"}`),
			user:  user,
		},
	}

	guard := NewTokenGuard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := guard.Validate(tt.token, tt.user)
			assert.Equal(t, tt.mismatch, check.Mismatch)
			if tt.mismatch {
				assert.Contains(t, check.Detail, tt.user.Email)
			} else {
				assert.True(t, check.OK())
			}
		})
	}
}
