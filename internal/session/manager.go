// Package session implements the client half of the authentication flow:
// a state machine holding the logged-in admin, the session cookie, and the
// durable user record, with the same transitions the dashboard front end
// performs.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

// State is the session lifecycle state.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

const (
	// CookieName matches the cookie the request gate reads.
	CookieName = "auth_token"
	// CookieMaxAge matches the token lifetime: 30 days.
	CookieMaxAge = 30 * 24 * 60 * 60

	LoginRoute     = "/login"
	DashboardRoute = "/dashboard"
)

// LoginResult is returned by Login. Failed credentials produce a result with
// Success false rather than an error, so callers can render the message
// inline without unwrapping.
type LoginResult struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NextRoute is the pure route-reaction function: given the session state and
// the current route, it returns where to navigate, or "" to stay put. It is
// evaluated after every state transition, not just at startup.
func NextRoute(state State, route string) string {
	switch {
	case state == StateAuthenticated && route == LoginRoute:
		return DashboardRoute
	case state == StateUnauthenticated && route != LoginRoute:
		return LoginRoute
	default:
		return ""
	}
}

// Manager owns the client session: the durable user record and the session
// cookie are treated as one logical resource, always written and cleared
// together. All transitions are idempotent; mounting while authenticated or
// logging out twice leaves state intact.
type Manager struct {
	mu       sync.Mutex
	base     *url.URL
	client   *http.Client
	jar      http.CookieJar
	store    Store
	navigate func(route string)

	state State
	user  *User
	route string
}

// NewManager builds a session manager against the given server base URL.
// navigate is invoked with the target route after transitions that demand a
// redirect; pass nil to ignore navigation.
func NewManager(baseURL string, store Store, navigate func(route string)) (*Manager, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Manager{
		base:     base,
		client:   &http.Client{Jar: jar},
		jar:      jar,
		store:    store,
		navigate: navigate,
		state:    StateLoading,
		route:    LoginRoute,
	}, nil
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the authenticated user, or nil.
func (m *Manager) User() *User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Visit records the current route and re-runs the route reaction, mirroring
// a client-side navigation event.
func (m *Manager) Visit(route string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.route = route
	m.react()
}

// Bootstrap is the mount-time check. If both the durable record and the
// cookie are present it asks the server whether the token still verifies;
// any failure, and any half-present state, clears both stores.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.store.Load()
	if err != nil {
		m.clearSession()
		m.setState(StateUnauthenticated, nil)
		return err
	}
	hasCookie := m.authCookie() != ""

	switch {
	case user != nil && hasCookie:
		if m.verify(ctx) {
			m.setState(StateAuthenticated, user)
			return nil
		}
		m.clearSession()
		m.setState(StateUnauthenticated, nil)
	case user != nil || hasCookie:
		// Half a session is no session.
		m.clearSession()
		m.setState(StateUnauthenticated, nil)
	default:
		m.setState(StateUnauthenticated, nil)
	}
	return nil
}

// Login authenticates against the server. On success both halves of the
// session are written and the manager navigates to the dashboard. Bad
// credentials come back as a structured result, never an error.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint("/api/auth/login"), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return &LoginResult{Success: false, Error: "network or server error"}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error == "" {
			body.Error = "login failed"
		}
		return &LoginResult{Success: false, Error: body.Error}, nil
	}

	var body struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.User == nil || body.Token == "" {
		return &LoginResult{Success: false, Error: "malformed login response"}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.setSession(body.User, body.Token); err != nil {
		m.clearSession()
		return nil, err
	}
	m.setState(StateAuthenticated, body.User)
	return &LoginResult{Success: true, User: body.User, Token: body.Token}, nil
}

// Logout clears both session stores and navigates to the login page. Safe to
// call in any state.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearSession()
	m.setState(StateUnauthenticated, nil)
}

// HasPermission reports whether the user holds the permission. The elevated
// role passes unconditionally.
func (m *Manager) HasPermission(permission string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return false
	}
	if m.user.Role == "super_admin" {
		return true
	}
	for _, p := range m.user.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsRole reports an exact role match.
func (m *Manager) IsRole(role string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil && m.user.Role == role
}

// setState transitions and re-runs the route reaction. Callers hold the lock.
func (m *Manager) setState(state State, user *User) {
	m.state = state
	m.user = user
	m.react()
}

// react applies NextRoute to the current state. Callers hold the lock.
func (m *Manager) react() {
	if target := NextRoute(m.state, m.route); target != "" {
		m.route = target
		m.navigate(target)
	}
}

// setSession writes both halves of the session: the durable record first,
// then the cookie. Callers hold the lock.
func (m *Manager) setSession(user *User, token string) error {
	if err := m.store.Save(user); err != nil {
		return err
	}
	m.jar.SetCookies(m.base, []*http.Cookie{{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		SameSite: http.SameSiteStrictMode,
		Secure:   m.base.Scheme == "https",
	}})
	return nil
}

// clearSession wipes both halves of the session. Clearing an empty session
// is a no-op. Callers hold the lock.
func (m *Manager) clearSession() {
	_ = m.store.Clear()
	m.jar.SetCookies(m.base, []*http.Cookie{{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		Secure:   m.base.Scheme == "https",
	}})
}

// authCookie returns the stored token, or "" when absent. Callers hold the lock.
func (m *Manager) authCookie() string {
	for _, cookie := range m.jar.Cookies(m.base) {
		if cookie.Name == CookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}

// verify asks the server whether the current cookie still holds a valid
// token. Any transport or status failure counts as invalid.
func (m *Manager) verify(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint("/api/auth/verify"), nil)
	if err != nil {
		return false
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (m *Manager) endpoint(path string) string {
	return m.base.ResolveReference(&url.URL{Path: path}).String()
}
