package auth_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wellspring-health/clinic/auth"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/users"
)

type countingAuthenticator struct {
	delegate auth.Authenticator
	calls    int
}

func (c *countingAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	c.calls++
	return c.delegate.ValidateAndSetAuthData(token, ec)
}

func newEchoContext(e *echo.Echo, token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/v1/patients/me/dashboard", nil)
	if token != "" {
		req.Header.Set(auth.SessionTokenHeaderKey, token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

var _ = Describe("Authentication", func() {
	var e *echo.Echo
	var secret []byte
	var subjectId string

	BeforeEach(func() {
		e = echo.New()
		secret = []byte(test.Faker.UUID().V4())
		subjectId = test.Faker.UUID().V4()
	})

	Describe("Token authenticator", func() {
		var authenticator *auth.TokenAuthenticator

		BeforeEach(func() {
			authenticator = auth.NewTokenAuthenticator(secret)
		})

		It("sets the auth data for a valid patient token", func() {
			token, err := auth.NewSessionToken(secret, auth.NewClaims(subjectId, users.RolePatient, time.Hour))
			Expect(err).ToNot(HaveOccurred())

			ec, _ := newEchoContext(e, token)
			valid, err := authenticator.ValidateAndSetAuthData(token, ec)
			Expect(err).ToNot(HaveOccurred())
			Expect(valid).To(BeTrue())

			data := auth.GetAuthData(ec.Request().Context())
			Expect(data).ToNot(BeNil())
			Expect(data.SubjectId).To(Equal(subjectId))
			Expect(data.Role).To(Equal(users.RolePatient))
			Expect(data.ServerAccess).To(BeFalse())
			Expect(data.IsPatient(subjectId)).To(BeTrue())
		})

		It("sets server access for server tokens", func() {
			token, err := auth.NewSessionToken(secret, auth.NewServerClaims("notifications", time.Hour))
			Expect(err).ToNot(HaveOccurred())

			ec, _ := newEchoContext(e, token)
			valid, err := authenticator.ValidateAndSetAuthData(token, ec)
			Expect(err).ToNot(HaveOccurred())
			Expect(valid).To(BeTrue())
			Expect(auth.GetAuthData(ec.Request().Context()).ServerAccess).To(BeTrue())
		})

		It("rejects tokens signed with a different secret", func() {
			token, err := auth.NewSessionToken([]byte("another-secret"), auth.NewClaims(subjectId, users.RoleDoctor, time.Hour))
			Expect(err).ToNot(HaveOccurred())

			ec, _ := newEchoContext(e, token)
			valid, err := authenticator.ValidateAndSetAuthData(token, ec)
			Expect(err).To(MatchError(auth.ErrUnauthenticated))
			Expect(valid).To(BeFalse())
			Expect(auth.GetAuthData(ec.Request().Context())).To(BeNil())
		})

		It("rejects expired tokens", func() {
			token, err := auth.NewSessionToken(secret, auth.NewClaims(subjectId, users.RoleDoctor, -time.Minute))
			Expect(err).ToNot(HaveOccurred())

			ec, _ := newEchoContext(e, token)
			_, err = authenticator.ValidateAndSetAuthData(token, ec)
			Expect(err).To(MatchError(auth.ErrUnauthenticated))
		})

		It("rejects tokens with an unknown role", func() {
			token, err := auth.NewSessionToken(secret, auth.NewClaims(subjectId, users.Role("nurse"), time.Hour))
			Expect(err).ToNot(HaveOccurred())

			ec, _ := newEchoContext(e, token)
			_, err = authenticator.ValidateAndSetAuthData(token, ec)
			Expect(err).To(MatchError(auth.ErrUnauthenticated))
		})
	})

	Describe("Caching authenticator", func() {
		var delegate *countingAuthenticator
		var authenticator *auth.CachingAuthenticator

		BeforeEach(func() {
			var err error
			delegate = &countingAuthenticator{delegate: auth.NewTokenAuthenticator(secret)}
			authenticator, err = auth.NewCachingAuthenticator(10, time.Minute, delegate, auth.IsValidAuth)
			Expect(err).ToNot(HaveOccurred())
		})

		It("validates a token only once", func() {
			token, err := auth.NewSessionToken(secret, auth.NewClaims(subjectId, users.RoleDoctor, time.Hour))
			Expect(err).ToNot(HaveOccurred())

			for i := 0; i < 3; i++ {
				ec, _ := newEchoContext(e, token)
				valid, err := authenticator.ValidateAndSetAuthData(token, ec)
				Expect(err).ToNot(HaveOccurred())
				Expect(valid).To(BeTrue())
				Expect(auth.GetAuthData(ec.Request().Context()).SubjectId).To(Equal(subjectId))
			}
			Expect(delegate.calls).To(Equal(1))
		})

		It("does not cache invalid tokens", func() {
			for i := 0; i < 2; i++ {
				ec, _ := newEchoContext(e, "invalid")
				valid, err := authenticator.ValidateAndSetAuthData("invalid", ec)
				Expect(err).To(HaveOccurred())
				Expect(valid).To(BeFalse())
			}
			Expect(delegate.calls).To(Equal(2))
		})
	})

	Describe("Middleware", func() {
		var middleware echo.MiddlewareFunc
		var next echo.HandlerFunc

		BeforeEach(func() {
			middleware = auth.NewAuthMiddleware(auth.NewTokenAuthenticator(secret), auth.AuthMiddlewareOpts{})
			next = func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}
		})

		It("returns bad request when the token is missing", func() {
			ec, _ := newEchoContext(e, "")
			err := middleware(next)(ec)
			Expect(err).To(BeAssignableToTypeOf(&echo.HTTPError{}))
			Expect(err.(*echo.HTTPError).Code).To(Equal(http.StatusBadRequest))
		})

		It("returns unauthorized when the token is invalid", func() {
			ec, _ := newEchoContext(e, "invalid")
			err := middleware(next)(ec)
			Expect(err).To(BeAssignableToTypeOf(&echo.HTTPError{}))
			Expect(err.(*echo.HTTPError).Code).To(Equal(http.StatusUnauthorized))
		})

		It("calls the next handler when the token is valid", func() {
			token, err := auth.NewSessionToken(secret, auth.NewClaims(subjectId, users.RolePatient, time.Hour))
			Expect(err).ToNot(HaveOccurred())

			ec, rec := newEchoContext(e, token)
			Expect(middleware(next)(ec)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("skips authentication when the skipper matches", func() {
			middleware = auth.NewAuthMiddleware(auth.NewTokenAuthenticator(secret), auth.AuthMiddlewareOpts{
				Skipper: func(echo.Context) bool { return true },
			})
			ec, rec := newEchoContext(e, "")
			Expect(middleware(next)(ec)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
