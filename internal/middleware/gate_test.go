package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/auth"
)

func newGatedEcho(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService("test-secret")
	e := echo.New()
	e.Use(NewGate(jwtService, false).Enforce)
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/login", ok)
	e.GET("/dashboard", ok)
	e.GET("/orders", ok)
	e.GET("/favicon.ico", ok)
	e.GET("/api/auth/verify", ok)
	return e, jwtService
}

func request(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-auth.TokenExpiry - time.Hour)
	token, err := auth.NewJWTService("test-secret").
		WithClock(func() time.Time { return past }).
		Issue("admin-1", "admin@x.com", "super_admin")
	require.NoError(t, err)
	return token
}

func TestGate_ProtectedWithoutToken(t *testing.T) {
	e, _ := newGatedEcho(t)

	rec := request(e, "/orders", "")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login?from=%2Forders", rec.Header().Get("Location"))
}

func TestGate_ProtectedWithValidToken(t *testing.T) {
	e, jwtService := newGatedEcho(t)
	token, err := jwtService.Issue("admin-1", "admin@x.com", "super_admin")
	require.NoError(t, err)

	rec := request(e, "/dashboard", token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_ProtectedWithExpiredToken(t *testing.T) {
	e, _ := newGatedEcho(t)

	rec := request(e, "/dashboard", expiredToken(t))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The stale cookie must be cleared on the way out, and over plain http
	// the clearing cookie must not be Secure or the browser discards it.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AuthCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0 || cookies[0].Expires.Before(time.Now()))
	assert.False(t, cookies[0].Secure)
}

func TestGate_ClearedCookieSecureFollowsConfig(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	e := echo.New()
	e.Use(NewGate(jwtService, true).Enforce)
	e.GET("/dashboard", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := request(e, "/dashboard", "garbage")

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestGate_LoginPageWithValidToken(t *testing.T) {
	e, jwtService := newGatedEcho(t)
	token, err := jwtService.Issue("admin-1", "admin@x.com", "super_admin")
	require.NoError(t, err)

	rec := request(e, "/login", token)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestGate_LoginPageWithInvalidToken(t *testing.T) {
	e, _ := newGatedEcho(t)

	rec := request(e, "/login", "garbage")

	// Invalid token on the login page: clear it and let the page render.
	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AuthCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestGate_LoginPageWithoutToken(t *testing.T) {
	e, _ := newGatedEcho(t)

	rec := request(e, "/login", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_PublicPaths(t *testing.T) {
	e, _ := newGatedEcho(t)

	tests := []struct {
		name string
		path string
	}{
		{"static asset via dot heuristic", "/favicon.ico"},
		{"auth api", "/api/auth/verify"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(e, tt.path, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path   string
		public bool
	}{
		{"/login", true},
		{"/assets/app.css", true},
		{"/_proxy/health", true},
		{"/api/auth/login", true},
		{"/api/products", true}, // API enforces its own tokens
		{"/logo.png", true},
		{"/dashboard", false},
		{"/orders", false},
		{"/customers", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.public, isPublicPath(tt.path), "path %s", tt.path)
	}
}
