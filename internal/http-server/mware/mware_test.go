package mware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-shop/internal/config"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/mware"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// discard logger
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(target string, s *session.Session) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if s != nil {
		r = r.WithContext(session.Into(r.Context(), s))
	}
	return r
}

func TestRequireClient(t *testing.T) {
	tests := []struct {
		name         string
		session      *session.Session
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "no session redirects to login",
			session:      nil,
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/inicio",
		},
		{
			name:         "anonymous session redirects to login",
			session:      &session.Session{},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/inicio",
		},
		{
			name: "admin-only session still redirects to client login",
			session: &session.Session{
				Admin: &session.AdminIdentity{ID: 1, Email: "root@x.com"},
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/inicio",
		},
		{
			name: "client session passes",
			session: &session.Session{
				Client: &session.ClientIdentity{ID: 1, Email: "a@x.com"},
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			w := httptest.NewRecorder()

			mware.RequireClient(okHandler(&called)).
				ServeHTTP(w, requestWithSession("/perfil", tt.session))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
				assert.False(t, called, "guarded handler must not run")
			} else {
				assert.True(t, called)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	called := false
	w := httptest.NewRecorder()

	clientOnly := &session.Session{
		Client: &session.ClientIdentity{ID: 1, Email: "a@x.com"},
	}
	mware.RequireAdmin(okHandler(&called)).
		ServeHTTP(w, requestWithSession("/admin/dashboard", clientOnly))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	assert.False(t, called, "client auth must not satisfy the admin guard")

	called = false
	w = httptest.NewRecorder()
	admin := &session.Session{Admin: &session.AdminIdentity{ID: 1, Email: "root@x.com"}}
	mware.RequireAdmin(okHandler(&called)).
		ServeHTTP(w, requestWithSession("/admin/dashboard", admin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAnonymousOnly(t *testing.T) {
	called := false
	w := httptest.NewRecorder()

	client := &session.Session{Client: &session.ClientIdentity{ID: 1}}
	mware.AnonymousOnly("/perfil")(okHandler(&called)).
		ServeHTTP(w, requestWithSession("/inicio", client))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/perfil", w.Header().Get("Location"))
	assert.False(t, called)

	called = false
	w = httptest.NewRecorder()
	mware.AnonymousOnly("/perfil")(okHandler(&called)).
		ServeHTTP(w, requestWithSession("/inicio", &session.Session{}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestSecurityHeaders(t *testing.T) {
	called := false
	w := httptest.NewRecorder()

	mware.SecurityHeaders(okHandler(&called)).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestSessionMiddlewarePutsSessionInContext(t *testing.T) {
	manager := session.NewManager(session.NewMemoryStore(), config.Session{
		CookieName: "shop_session",
		TTL:        time.Hour,
	})

	var got *session.Session
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = session.From(r.Context())
	})

	w := httptest.NewRecorder()
	mware.Session(manager)(handler).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, got)
	assert.False(t, got.HasClient())
}

func TestLoginRateLimit(t *testing.T) {
	limited := mware.LoginRateLimit(makeLogger(), config.RateLimit{LoginRPS: 1, LoginBurst: 2})

	called := 0
	handler := limited(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
	}))

	for range 2 {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/inicio", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/inicio", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 2, called)

	// другой IP не ограничен
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/inicio", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
