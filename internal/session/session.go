// Package session реализует серверные сессии с непрозрачным токеном в cookie.
// Сессия хранит до двух независимых подсостояний аутентификации:
// клиентское и администраторское. Каждое — снимок личности, сделанный
// в момент входа; до повторного входа снимок не перечитывается из базы,
// поэтому изменения профиля или баланса видны только после re-login.
package session

import (
	"context"
	"time"
)

// ClientIdentity снимок данных клиента на момент входа.
// Баланс в минимальных единицах валюты.
type ClientIdentity struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	Balance   int64  `json:"balance"`
}

// AdminIdentity снимок данных администратора на момент входа.
type AdminIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Session значение сессии. Передается по ссылке через конвейер обработки
// запроса; изменения сохраняются явным вызовом Manager.Save.
type Session struct {
	ID        string          `json:"id"`
	Client    *ClientIdentity `json:"client,omitempty"`
	Admin     *AdminIdentity  `json:"admin,omitempty"`
	Flashes   []string        `json:"flashes,omitempty"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// HasClient сообщает, аутентифицирован ли в сессии клиент.
func (s *Session) HasClient() bool { return s.Client != nil }

// HasAdmin сообщает, аутентифицирован ли в сессии администратор.
func (s *Session) HasAdmin() bool { return s.Admin != nil }

// AttachClient записывает клиентский снимок. Администраторское
// подсостояние не затрагивается.
func (s *Session) AttachClient(id ClientIdentity) {
	s.Client = &id
}

// DetachClient очищает клиентский снимок. Идемпотентно.
func (s *Session) DetachClient() {
	s.Client = nil
}

// AttachAdmin записывает администраторский снимок.
func (s *Session) AttachAdmin(id AdminIdentity) {
	s.Admin = &id
}

// DetachAdmin очищает администраторский снимок. Идемпотентно.
func (s *Session) DetachAdmin() {
	s.Admin = nil
}

// AddFlash добавляет одноразовое сообщение для следующего отображения.
func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes возвращает накопленные сообщения и очищает их.
func (s *Session) PopFlashes() []string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Expired сообщает, истекла ли сессия к моменту now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type ctxKey struct{}

// Into кладет сессию в контекст запроса.
func Into(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// From достает сессию из контекста. Возвращает nil, если middleware
// сессий не отработал.
func From(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
