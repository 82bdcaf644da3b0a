// Package auth implements stateless bearer-token issuance and verification.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"bitacora/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "bitacora-api"
	audience = "bitacora-client"

	// DefaultTTL is the fixed token lifetime.
	DefaultTTL = time.Hour
)

// ErrTokenExpired is returned when a token's signature is valid but its
// expiry has elapsed.
var ErrTokenExpired = models.NewUnauthorizedError("Token has expired")

// ErrTokenInvalid is returned for any malformed or badly signed token.
var ErrTokenInvalid = models.NewUnauthorizedError("Invalid token")

// TokenService issues and verifies signed, time-limited identity tokens.
// It is fully self-contained and never consults the store.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. The signing secret must be
// externally supplied; there is deliberately no fallback default.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token embedding the user id with an absolute expiry
// of now plus the configured TTL.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": issuer,
		"aud": audience,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and claims of a token and returns the embedded
// user id. Expired tokens yield ErrTokenExpired; anything else that fails
// yields ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrTokenInvalid
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrTokenInvalid
	}

	return uint(userID), nil
}
