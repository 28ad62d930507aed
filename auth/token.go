package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/wellspring-health/clinic/users"
)

// Claims are the session token claims. The subject is the user id of the session owner.
type Claims struct {
	Role   users.Role `json:"role,omitempty"`
	Server bool       `json:"server,omitempty"`
	jwt.RegisteredClaims
}

func NewClaims(subjectId string, role users.Role, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func NewServerClaims(serviceName string, ttl time.Duration) Claims {
	claims := NewClaims(serviceName, "", ttl)
	claims.Server = true
	return claims
}

// NewSessionToken signs the claims with the shared session secret
func NewSessionToken(secret []byte, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

type TokenAuthenticator struct {
	secret []byte
}

var _ Authenticator = &TokenAuthenticator{}

func NewTokenAuthenticator(secret []byte) *TokenAuthenticator {
	return &TokenAuthenticator{secret: secret}
}

func (t *TokenAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, t.keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return false, ErrUnauthenticated
	}
	if !claims.Server && claims.Role != users.RolePatient && !claims.Role.IsClinician() {
		return false, fmt.Errorf("%w: unknown role %q", ErrUnauthenticated, claims.Role)
	}

	auth := &Auth{
		SubjectId:    claims.Subject,
		Role:         claims.Role,
		ServerAccess: claims.Server,
	}
	if claims.ExpiresAt != nil {
		auth.ExpiresAt = claims.ExpiresAt.Time
	}

	SetAuthData(ec, auth)
	return true, nil
}

func (t *TokenAuthenticator) keyFunc(*jwt.Token) (interface{}, error) {
	return t.secret, nil
}
