// Package mware содержит middleware HTTP-сервера: защитные заголовки,
// загрузку сессии и охранные предикаты маршрутов.
package mware

import (
	"net/http"

	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// SecurityHeaders добавляет защитные заголовки ко всем ответам.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; img-src 'self' data:")
		next.ServeHTTP(w, r)
	})
}

// Session возвращает middleware, которое кладет сессию запроса в контекст.
// Для запроса без валидного cookie это свежая анонимная сессия; она
// попадет в хранилище только если обработчик ее сохранит.
func Session(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := manager.Load(r.Context(), r)
			next.ServeHTTP(w, r.WithContext(session.Into(r.Context(), s)))
		})
	}
}
