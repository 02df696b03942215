package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/ai-portfolio-site/auth"
	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims   *auth.Claims
	err      error
	gotToken string
}

func (s *stubVerifier) VerifyToken(token string) (*auth.Claims, error) {
	s.gotToken = token
	if token == "" {
		return nil, errs.ErrMissingToken
	}
	return s.claims, s.err
}

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ctxGetClaims(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		fmt.Fprint(w, claims.Email)
	})
}

func TestAuthenticate(t *testing.T) {
	valid := &auth.Claims{UserID: "1", Email: "admin@example.com", Role: "admin"}

	t.Run("cookie", func(t *testing.T) {
		verifier := &stubVerifier{claims: valid}
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
		rec := httptest.NewRecorder()

		newAuthMiddleware(verifier).authenticate(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin@example.com", rec.Body.String())
		assert.Equal(t, "cookie-token", verifier.gotToken)
	})

	t.Run("bearer header", func(t *testing.T) {
		verifier := &stubVerifier{claims: valid}
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		rec := httptest.NewRecorder()

		newAuthMiddleware(verifier).authenticate(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "header-token", verifier.gotToken)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newAuthMiddleware(&stubVerifier{}).authenticate(claimsEcho()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "missing access token", body.Error)
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "old"})
		rec := httptest.NewRecorder()

		newAuthMiddleware(&stubVerifier{err: errs.ErrExpiredToken}).authenticate(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "expired access token", body.Error)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()

		newAuthMiddleware(&stubVerifier{err: fmt.Errorf("%w: signature", errs.ErrInvalidToken)}).
			authenticate(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequirePageAuth(t *testing.T) {
	t.Run("redirects without token", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newAuthMiddleware(&stubVerifier{}).requirePageAuth(claimsEcho()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	})

	t.Run("passes with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: "ok"})
		rec := httptest.NewRecorder()

		newAuthMiddleware(&stubVerifier{claims: &auth.Claims{Email: "admin@example.com"}}).
			requirePageAuth(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogInternalServerErrorsRecoversPanics(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		LogInternalServerErrors(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORSCheckMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	mw := CORSCheckMiddleware([]string{"https://portfolio.example.com"})

	t.Run("blocked preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var body ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "request blocked by CORS policy", body.Error)
	})

	t.Run("allowed preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://portfolio.example.com")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	rec := httptest.NewRecorder()
	corsMiddleware([]string{"https://portfolio.example.com"})(next).ServeHTTP(rec, req)
	assert.Equal(t, "https://portfolio.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = httptest.NewRecorder()
	corsMiddleware(nil)(next).ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTokenError(t *testing.T) {
	assert.True(t, errs.IsMissingTokenError(tokenError(errs.ErrMissingToken)))
	assert.True(t, errs.IsExpiredTokenError(tokenError(errs.ErrExpiredToken)))
	assert.True(t, errs.IsInvalidTokenError(tokenError(fmt.Errorf("%w: bad signature", errs.ErrInvalidToken))))

	unexpected := tokenError(fmt.Errorf("clock skew"))
	assert.Equal(t, http.StatusInternalServerError, unexpected.StatusCode)
	assert.Equal(t, "Internal server error", unexpected.Message())
}
