package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "issued-session-token"

// newAuthServer stands in for the admin API: POST /api/auth/login checks
// fixed credentials and GET /api/auth/verify checks the session cookie.
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email != "admin@x.com" || req.Password != "correct-pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Login successful",
			"user": User{
				ID:          "admin-1",
				Name:        "Admin",
				Email:       "admin@x.com",
				Role:        "sub_admin",
				Status:      "active",
				Permissions: []string{"orders.view"},
				CanEdit:     true,
				CanCreate:   true,
				CanDelete:   true,
			},
			"token": testToken,
		})
	})

	mux.HandleFunc("/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value != testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"valid": true})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestManager wires a manager against the stub server with a file store in
// a temp dir and a navigation recorder.
func newTestManager(t *testing.T, srv *httptest.Server) (*Manager, *FileStore, *[]string) {
	t.Helper()
	store := NewFileStore(t.TempDir())
	var visited []string
	m, err := NewManager(srv.URL, store, func(route string) {
		visited = append(visited, route)
	})
	require.NoError(t, err)
	return m, store, &visited
}

func TestManager_LoginSuccess(t *testing.T) {
	srv := newAuthServer(t)
	m, store, visited := newTestManager(t, srv)
	m.Visit(LoginRoute)

	result, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, testToken, result.Token)

	assert.Equal(t, StateAuthenticated, m.State())
	require.NotNil(t, m.User())
	assert.Equal(t, "admin@x.com", m.User().Email)

	// Both halves of the session were written.
	saved, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "admin-1", saved.ID)

	// Landing on the login page while authenticated redirects onward.
	assert.Equal(t, []string{DashboardRoute}, *visited)
}

func TestManager_LoginBadCredentials(t *testing.T) {
	srv := newAuthServer(t)
	m, store, _ := newTestManager(t, srv)

	result, err := m.Login(context.Background(), "admin@x.com", "wrong-pw")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Error)

	// Nothing was written and the state did not advance.
	assert.NotEqual(t, StateAuthenticated, m.State())
	saved, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestManager_LoginServerUnreachable(t *testing.T) {
	srv := newAuthServer(t)
	srv.Close()
	m, _, _ := newTestManager(t, srv)

	result, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "network or server error", result.Error)
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	srv := newAuthServer(t)
	m, store, visited := newTestManager(t, srv)
	m.Visit(LoginRoute)

	_, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, m.State())

	m.Logout()
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())
	saved, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)

	// A second logout changes nothing.
	m.Logout()
	assert.Equal(t, StateUnauthenticated, m.State())

	// login -> dashboard, then logout pushes back to login.
	assert.Equal(t, []string{DashboardRoute, LoginRoute}, *visited)
}

func TestManager_BootstrapWithValidSession(t *testing.T) {
	srv := newAuthServer(t)
	m, _, _ := newTestManager(t, srv)
	_, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
	require.NoError(t, err)

	// A second manager sharing the same cookie jar is not possible, so
	// re-bootstrap the same one from Loading to simulate a remount.
	require.NoError(t, m.Bootstrap(context.Background()))
	assert.Equal(t, StateAuthenticated, m.State())
	require.NotNil(t, m.User())
	assert.Equal(t, "admin-1", m.User().ID)
}

func TestManager_BootstrapWithNoSession(t *testing.T) {
	srv := newAuthServer(t)
	m, _, _ := newTestManager(t, srv)

	require.NoError(t, m.Bootstrap(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())
}

func TestManager_BootstrapHalfSessionClearsBoth(t *testing.T) {
	t.Run("record without cookie", func(t *testing.T) {
		srv := newAuthServer(t)
		m, store, _ := newTestManager(t, srv)
		require.NoError(t, store.Save(&User{ID: "admin-1", Role: "viewer"}))

		require.NoError(t, m.Bootstrap(context.Background()))
		assert.Equal(t, StateUnauthenticated, m.State())
		saved, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, saved)
	})

	t.Run("cookie without record", func(t *testing.T) {
		srv := newAuthServer(t)
		m, store, _ := newTestManager(t, srv)
		_, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
		require.NoError(t, err)
		require.NoError(t, store.Clear())

		require.NoError(t, m.Bootstrap(context.Background()))
		assert.Equal(t, StateUnauthenticated, m.State())
		assert.Nil(t, m.User())
	})
}

func TestManager_BootstrapStaleTokenClearsBoth(t *testing.T) {
	srv := newAuthServer(t)
	m, store, _ := newTestManager(t, srv)
	_, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
	require.NoError(t, err)

	// The server stops honoring the token; both stores must go.
	srv.Close()
	require.NoError(t, m.Bootstrap(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
	saved, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestManager_VisitRedirectsUnauthenticated(t *testing.T) {
	srv := newAuthServer(t)
	m, _, visited := newTestManager(t, srv)
	require.NoError(t, m.Bootstrap(context.Background()))

	m.Visit("/orders")
	assert.Equal(t, []string{LoginRoute}, *visited)
}

func TestNextRoute(t *testing.T) {
	tests := []struct {
		name  string
		state State
		route string
		want  string
	}{
		{"authenticated on login page", StateAuthenticated, LoginRoute, DashboardRoute},
		{"authenticated elsewhere", StateAuthenticated, "/orders", ""},
		{"unauthenticated on protected page", StateUnauthenticated, "/orders", LoginRoute},
		{"unauthenticated on login page", StateUnauthenticated, LoginRoute, ""},
		{"loading stays put", StateLoading, "/orders", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRoute(tt.state, tt.route))
		})
	}
}

func TestManager_HasPermission(t *testing.T) {
	srv := newAuthServer(t)
	m, _, _ := newTestManager(t, srv)

	// No user: everything is denied.
	assert.False(t, m.HasPermission("orders.view"))
	assert.False(t, m.IsRole("sub_admin"))

	_, err := m.Login(context.Background(), "admin@x.com", "correct-pw")
	require.NoError(t, err)

	assert.True(t, m.HasPermission("orders.view"))
	assert.False(t, m.HasPermission("orders.delete"))
	assert.True(t, m.IsRole("sub_admin"))
	assert.False(t, m.IsRole("super_admin"))
}

func TestManager_SuperAdminHasEveryPermission(t *testing.T) {
	srv := newAuthServer(t)
	m, store, _ := newTestManager(t, srv)
	require.NoError(t, store.Save(&User{ID: "root-1", Role: "super_admin"}))
	m.mu.Lock()
	m.user = &User{ID: "root-1", Role: "super_admin"}
	m.state = StateAuthenticated
	m.mu.Unlock()

	assert.True(t, m.HasPermission("anything.at.all"))
	assert.True(t, m.IsRole("super_admin"))
}

func TestFileStore(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Absent record is not an error.
	user, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, user)

	// Save then load round-trips.
	require.NoError(t, store.Save(&User{ID: "admin-1", Email: "admin@x.com", CanEdit: true}))
	user, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin-1", user.ID)
	assert.True(t, user.CanEdit)

	// Clear twice is fine.
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	user, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, user)
}
