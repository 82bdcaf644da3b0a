package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-token-tests"

func newTestService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, ttl)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	t.Parallel()

	// TTL floor in NewTokenService prevents a negative lifetime, so build an
	// already-expired token by hand with the same claims layout.
	now := time.Now().Add(-2 * time.Hour)
	claims := jwt.MapClaims{
		"sub": "42",
		"iss": issuer,
		"aud": audience,
		"exp": now.Add(time.Hour).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newTestService(t, time.Hour)
	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	other, err := NewTokenService("a-completely-different-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(42)
	require.NoError(t, err)

	svc := newTestService(t, time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tokenString)
	}
}

func TestTokenService_Verify_WrongAudience(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "42",
		"iss": issuer,
		"aud": "someone-else",
		"exp": now.Add(time.Hour).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newTestService(t, time.Hour)
	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_NoneAlgorithmRejected(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"sub": "42",
		"iss": issuer,
		"aud": audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newTestService(t, time.Hour)
	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
