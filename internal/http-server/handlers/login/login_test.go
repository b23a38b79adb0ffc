package login

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-shop/internal/config"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// Мок сервиса входа
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) LoginClient(ctx context.Context, email, password string) (*session.ClientIdentity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(*session.ClientIdentity)
	return identity, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestManager() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), config.Session{
		CookieName: "shop_session",
		TTL:        time.Hour,
	})
}

func doLogin(t *testing.T, handler http.HandlerFunc, manager *session.Manager,
	form url.Values) (*httptest.ResponseRecorder, *session.Session) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/inicio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	sess := manager.Load(req.Context(), req)
	req = req.WithContext(session.Into(req.Context(), sess))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, sess
}

func TestLoginHandler_Success(t *testing.T) {
	serviceMock := new(AuthServiceMock)
	serviceMock.On("LoginClient", mock.Anything, "juan@example.com", "secreto123").
		Return(&session.ClientIdentity{
			ID:        7,
			Email:     "juan@example.com",
			FirstName: "Juan",
		}, nil)

	manager := newTestManager()
	handler := New(newNoopLogger(), serviceMock, manager)

	rr, sess := doLogin(t, handler, manager, url.Values{
		"email":    {"juan@example.com"},
		"password": {"secreto123"},
	})

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/perfil", rr.Header().Get("Location"))
	require.True(t, sess.HasClient())
	assert.Equal(t, int64(7), sess.Client.ID)

	// токен сессии установлен и сессия сохранена в хранилище
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "shop_session", cookies[0].Name)
	assert.Equal(t, sess.ID, cookies[0].Value)
	serviceMock.AssertExpectations(t)
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	serviceMock := new(AuthServiceMock)
	serviceMock.On("LoginClient", mock.Anything, "juan@example.com", "equivocada").
		Return(nil, models.ErrBadCredentials)

	manager := newTestManager()
	handler := New(newNoopLogger(), serviceMock, manager)

	rr, sess := doLogin(t, handler, manager, url.Values{
		"email":    {"juan@example.com"},
		"password": {"equivocada"},
	})

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/inicio", rr.Header().Get("Location"))
	assert.False(t, sess.HasClient())
	require.Len(t, sess.Flashes, 1)
	assert.Equal(t, "Correo o contrasena incorrectos", sess.Flashes[0])
}

func TestLoginHandler_EmptyFields(t *testing.T) {
	serviceMock := new(AuthServiceMock)
	manager := newTestManager()
	handler := New(newNoopLogger(), serviceMock, manager)

	rr, sess := doLogin(t, handler, manager, url.Values{
		"email": {"juan@example.com"},
	})

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/inicio", rr.Header().Get("Location"))
	require.Len(t, sess.Flashes, 1)
	assert.Equal(t, "Ingresa correo y contrasena", sess.Flashes[0])
	serviceMock.AssertNotCalled(t, "LoginClient", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_TokenRotation(t *testing.T) {
	serviceMock := new(AuthServiceMock)
	serviceMock.On("LoginClient", mock.Anything, "juan@example.com", "secreto123").
		Return(&session.ClientIdentity{ID: 7, Email: "juan@example.com"}, nil)

	manager := newTestManager()
	handler := New(newNoopLogger(), serviceMock, manager)

	req := httptest.NewRequest(http.MethodPost, "/inicio", strings.NewReader(url.Values{
		"email":    {"juan@example.com"},
		"password": {"secreto123"},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// заранее сохраненная анонимная сессия получает новый токен при входе
	sess := manager.Load(req.Context(), req)
	rec := httptest.NewRecorder()
	require.NoError(t, manager.Save(req.Context(), rec, sess))
	oldID := sess.ID
	require.NotEmpty(t, oldID)

	req = req.WithContext(session.Into(req.Context(), sess))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.NotEqual(t, oldID, sess.ID)
}
