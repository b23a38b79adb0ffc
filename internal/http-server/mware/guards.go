package mware

import (
	"net/http"

	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// Маршруты входа, на которые перенаправляют охранные предикаты.
const (
	ClientLoginRoute = "/inicio"
	AdminLoginRoute  = "/admin/login"
)

// RequireClient пропускает запрос только при аутентифицированном клиенте,
// иначе перенаправляет на страницу входа. Администраторское подсостояние
// сессии на решение не влияет.
func RequireClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := session.From(r.Context())
		if s == nil || !s.HasClient() {
			http.Redirect(w, r, ClientLoginRoute, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает запрос только при аутентифицированном
// администраторе, иначе перенаправляет на вход администратора.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := session.From(r.Context())
		if s == nil || !s.HasAdmin() {
			http.Redirect(w, r, AdminLoginRoute, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AnonymousOnly закрывает маршрут от уже вошедших клиентов:
// регистрация и вход доступны только анонимной сессии.
func AnonymousOnly(redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.From(r.Context())
			if s != nil && s.HasClient() {
				http.Redirect(w, r, redirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
