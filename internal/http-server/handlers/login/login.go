package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// Service описывает вход клиента.
type Service interface {
	LoginClient(ctx context.Context, email, password string) (*session.ClientIdentity, error)
}

// NewForm возвращает обработчик GET /inicio со страницей входа.
func NewForm(renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "login.html", view.Data{
			Title: "Iniciar sesion",
		})
	}
}

// New возвращает обработчик POST /inicio. При успехе токен сессии
// меняется и в нее записывается снимок клиента.
func New(log *slog.Logger, service Service, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Redirect(w, r, "/inicio", http.StatusSeeOther)
			return
		}
		email := r.PostFormValue("email")
		rawPassword := r.PostFormValue("password")
		if email == "" || rawPassword == "" {
			if err := manager.Flash(r.Context(), w, sess, "Ingresa correo y contrasena"); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/inicio", http.StatusSeeOther)
			return
		}

		identity, err := service.LoginClient(r.Context(), email, rawPassword)
		if err != nil {
			// неизвестная почта и неверный пароль дают одно сообщение
			if !errors.Is(err, models.ErrBadCredentials) {
				log.Error("login failed", sl.Err(err))
			}
			if err := manager.Flash(r.Context(), w, sess, "Correo o contrasena incorrectos"); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/inicio", http.StatusSeeOther)
			return
		}

		if err := manager.Renew(r.Context(), sess); err != nil {
			log.Error("failed to renew session", sl.Err(err))
		}
		sess.AttachClient(*identity)
		if err := manager.Save(r.Context(), w, sess); err != nil {
			log.Error("failed to save session", sl.Err(err))
			http.Redirect(w, r, "/inicio", http.StatusSeeOther)
			return
		}

		log.Info("client logged in", slog.Int64("user_id", identity.ID))
		http.Redirect(w, r, "/perfil", http.StatusSeeOther)
	}
}
