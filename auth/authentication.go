package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/wellspring-health/clinic/users"
)

var (
	ErrUnauthenticated    = fmt.Errorf("session token is invalid")
	AuthContextKey        = AuthKey("auth")
	SessionTokenHeaderKey = "x-clinic-session-token"
)

type AuthKey string

type Auth struct {
	SubjectId    string     `json:"subjectId"`
	Role         users.Role `json:"role"`
	ServerAccess bool       `json:"serverAccess"`
	ExpiresAt    time.Time  `json:"-"`
}

func (a *Auth) IsPatient(patientId string) bool {
	return a != nil && !a.ServerAccess && a.Role == users.RolePatient && a.SubjectId == patientId
}

func IsValidAuth(a *Auth) bool {
	return a != nil && a.SubjectId != ""
}

type Authenticator interface {
	ValidateAndSetAuthData(token string, ec echo.Context) (bool, error)
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthMiddleware(authenticator Authenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. readiness probe)
			if opts.Skipper != nil {
				if opts.Skipper(c) {
					return next(c)
				}
			}

			token := c.Request().Header.Get(SessionTokenHeaderKey)
			if token == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "session token is missing")
			}

			valid, err := authenticator.ValidateAndSetAuthData(token, c)
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "session token is invalid",
					Internal: err,
				}
			} else if valid {
				return next(c)
			}
			return echo.ErrUnauthorized
		}
	}
}

// NewAuthenticator returns a session token authenticator that caches validated tokens
func NewAuthenticator(cfg Config) (Authenticator, error) {
	delegate := NewTokenAuthenticator([]byte(cfg.SessionTokenSecret))
	return NewCachingAuthenticator(
		cfg.CacheSize,
		cfg.CacheEntryExpiration,
		delegate,
		IsValidAuth,
	)
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}

type CacheEntry struct {
	token  string
	auth   *Auth
	expiry time.Time
}

func (c CacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

type CachingAuthenticator struct {
	delegate    Authenticator
	expiration  time.Duration
	lru         *simplelru.LRU
	mu          *sync.Mutex
	shouldCache func(*Auth) bool
}

var _ Authenticator = &CachingAuthenticator{}

func NewCachingAuthenticator(size int, expiration time.Duration, delegate Authenticator, shouldCache func(*Auth) bool) (*CachingAuthenticator, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingAuthenticator{
		delegate:    delegate,
		expiration:  expiration,
		lru:         lru,
		mu:          &sync.Mutex{},
		shouldCache: shouldCache,
	}, nil
}

func (c *CachingAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	entry := c.getCachedEntry(token)
	if entry != nil {
		SetAuthData(ec, entry.auth)
		return true, nil
	}

	res, err := c.delegate.ValidateAndSetAuthData(token, ec)
	if err != nil || !res {
		return res, err
	}

	auth := GetAuthData(ec.Request().Context())
	if c.shouldCache(auth) {
		expiry := time.Now().Add(c.expiration)
		// Never keep a session around longer than the token itself is valid
		if !auth.ExpiresAt.IsZero() && auth.ExpiresAt.Before(expiry) {
			expiry = auth.ExpiresAt
		}
		c.setCacheEntry(CacheEntry{
			token:  token,
			auth:   auth,
			expiry: expiry,
		})
	}

	return res, nil
}

func (c *CachingAuthenticator) getCachedEntry(token string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(token); ok {
		entry := e.(CacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(token)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingAuthenticator) setCacheEntry(entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.token, entry)
}
