package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/subscription-shop/internal/config"
)

// Manager связывает хранилище сессий с cookie браузера.
// В cookie уходит только непрозрачный токен, все состояние
// остается на сервере.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager создает менеджер сессий с настройками из конфига.
func NewManager(store Store, cfg config.Session) *Manager {
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
}

// Load возвращает сессию запроса. Если cookie нет или сессия
// не найдена/истекла, возвращается новая несохраненная сессия:
// она попадет в хранилище только при первом Save.
func (m *Manager) Load(ctx context.Context, r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return m.fresh()
	}

	s, err := m.store.Get(ctx, cookie.Value)
	if err != nil {
		return m.fresh()
	}
	return s
}

func (m *Manager) fresh() *Session {
	return &Session{
		ExpiresAt: time.Now().Add(m.ttl),
	}
}

// Save сохраняет сессию и выставляет cookie с ее токеном.
// Первое сохранение выдает сессии новый идентификатор.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	const op = "session.Manager.Save"

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Flash добавляет одноразовое сообщение и сразу сохраняет сессию,
// чтобы оно пережило redirect.
func (m *Manager) Flash(ctx context.Context, w http.ResponseWriter, s *Session, msg string) error {
	s.AddFlash(msg)
	return m.Save(ctx, w, s)
}

// Renew меняет идентификатор сессии, удаляя старый из хранилища.
// Вызывается при входе, чтобы зафиксированный до аутентификации
// токен нельзя было использовать дальше.
func (m *Manager) Renew(ctx context.Context, s *Session) error {
	const op = "session.Manager.Renew"

	if s.ID != "" {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	s.ID = uuid.NewString()
	s.ExpiresAt = time.Now().Add(m.ttl)
	return nil
}

// Destroy удаляет сессию из хранилища и гасит cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	const op = "session.Manager.Destroy"

	if s.ID != "" {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
