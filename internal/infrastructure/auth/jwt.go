// Package auth provides bearer-token authentication for the optional
// REST surface, adapted from the workflow engine's WebSocket
// Authenticator to a plain HTTP request.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing authentication token")
	ErrInvalidToken = errors.New("invalid authentication token")
	ErrExpiredToken = errors.New("token has expired")
)

// Authenticator extracts and validates a caller identity from an
// inbound request.
type Authenticator interface {
	Authenticate(r *http.Request) (subject string, err error)
}

// JWTAuth implements Authenticator using HMAC-signed JWTs.
type JWTAuth struct {
	secretKey string
}

func NewJWTAuth(secretKey string) *JWTAuth {
	return &JWTAuth{secretKey: secretKey}
}

type claims struct {
	jwt.RegisteredClaims
}

func (a *JWTAuth) Authenticate(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrMissingToken
	}
	return a.validateToken(strings.TrimPrefix(authHeader, "Bearer "))
}

func (a *JWTAuth) validateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}

// GenerateToken creates a signed JWT for subject, used by tests and by
// whatever issues tokens for roster API callers.
func (a *JWTAuth) GenerateToken(subject string, expiresAt time.Time) (string, error) {
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(a.secretKey))
}

// NoAuth allows every request through unauthenticated, for local/dev use.
type NoAuth struct{}

func NewNoAuth() *NoAuth { return &NoAuth{} }

func (a *NoAuth) Authenticate(r *http.Request) (string, error) { return "anonymous", nil }
