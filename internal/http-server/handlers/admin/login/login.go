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

// Service описывает вход администратора.
type Service interface {
	AdminExists(ctx context.Context) (bool, error)
	LoginAdmin(ctx context.Context, email, password string) (*session.AdminIdentity, error)
}

// NewForm возвращает обработчик GET /admin/login. Пока администратора
// нет, маршрут ведет на первоначальную настройку.
func NewForm(log *slog.Logger, service Service, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.login.NewForm"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		exists, err := service.AdminExists(r.Context())
		if err != nil {
			log.Error("failed to check admin existence", sl.Err(err))
			renderer.RenderError(w, r, http.StatusInternalServerError, "Algo salio mal")
			return
		}
		if !exists {
			http.Redirect(w, r, "/admin/setup", http.StatusSeeOther)
			return
		}

		renderer.Render(w, r, http.StatusOK, "admin_login.html", view.Data{
			Title: "Acceso administrador",
		})
	}
}

// New возвращает обработчик POST /admin/login.
func New(log *slog.Logger, service Service, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		exists, err := service.AdminExists(r.Context())
		if err != nil {
			log.Error("failed to check admin existence", sl.Err(err))
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		if !exists {
			http.Redirect(w, r, "/admin/setup", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		identity, err := service.LoginAdmin(r.Context(),
			r.PostFormValue("email"), r.PostFormValue("password"))
		if err != nil {
			if !errors.Is(err, models.ErrBadCredentials) {
				log.Error("admin login failed", sl.Err(err))
			}
			if err := manager.Flash(r.Context(), w, sess, "Correo o contrasena incorrectos"); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		if err := manager.Renew(r.Context(), sess); err != nil {
			log.Error("failed to renew session", sl.Err(err))
		}
		sess.AttachAdmin(*identity)
		if err := manager.Save(r.Context(), w, sess); err != nil {
			log.Error("failed to save session", sl.Err(err))
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		log.Info("admin logged in", slog.Int64("user_id", identity.ID))
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}
