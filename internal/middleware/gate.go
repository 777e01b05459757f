package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"shopadmin/internal/auth"
)

const (
	// AuthCookieName is the cookie carrying the session token. It is written
	// by the client library, not by the server, and is deliberately readable
	// by client script.
	AuthCookieName = "auth_token"

	loginPath     = "/login"
	dashboardPath = "/dashboard"

	// ClaimsContextKey is where the gate stashes verified claims for
	// downstream page handlers.
	ClaimsContextKey = "auth_claims"
)

// publicPrefixes are page paths never gated: static assets, the
// reverse-proxy's internal endpoints, and the auth API. The JSON API is also
// listed here because it carries its own token middleware and must answer
// 401s, never browser redirects.
var publicPrefixes = []string{
	"/assets",
	"/_proxy",
	"/api",
	"/swagger",
	"/healthz",
}

// Gate is the per-request page guard. Each decision is made synchronously
// from the request alone; there is no shared mutable state between requests.
type Gate struct {
	jwtService *auth.JWTService
	// secureCookies must be false when serving plain http: browsers discard
	// a Secure Set-Cookie over http, so the clearing cookie would never land.
	secureCookies bool
}

// NewGate creates a request gate around the token codec.
func NewGate(jwtService *auth.JWTService, secureCookies bool) *Gate {
	return &Gate{jwtService: jwtService, secureCookies: secureCookies}
}

// Enforce classifies the path as public or protected and requires a valid
// token for protected paths. Token failures never propagate: they become a
// cleared cookie plus a redirect to the login page.
func (g *Gate) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		token := readToken(c)

		if isPublicPath(path) {
			// An authenticated user has no business on the login page.
			if path == loginPath && token != "" {
				if _, err := g.jwtService.Verify(token); err == nil {
					return c.Redirect(http.StatusTemporaryRedirect, dashboardPath)
				}
				g.clearAuthCookie(c)
			}
			return next(c)
		}

		if token == "" {
			target := loginPath + "?from=" + url.QueryEscape(path)
			return c.Redirect(http.StatusTemporaryRedirect, target)
		}

		claims, err := g.jwtService.Verify(token)
		if err != nil {
			g.clearAuthCookie(c)
			return c.Redirect(http.StatusTemporaryRedirect, loginPath)
		}

		c.Set(ClaimsContextKey, claims)
		return next(c)
	}
}

// isPublicPath reports whether the path skips token enforcement. A literal
// dot marks static files; the heuristic is intentionally coarse.
func isPublicPath(path string) bool {
	if path == loginPath {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return strings.Contains(path, ".")
}

func readToken(c echo.Context) string {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (g *Gate) clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		Secure:   g.secureCookies,
	})
}
