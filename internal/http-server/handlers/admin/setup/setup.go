package setup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/services/auth"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// Service описывает одноразовую настройку администратора.
type Service interface {
	AdminExists(ctx context.Context) (bool, error)
	CreateAdmin(ctx context.Context, form auth.AdminForm) (int64, error)
}

// NewForm возвращает обработчик GET /admin/setup. Форма доступна
// только пока администратора нет; после его создания маршрут
// навсегда перенаправляет на вход.
func NewForm(log *slog.Logger, service Service, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.setup.NewForm"

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
		if exists {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		renderer.Render(w, r, http.StatusOK, "admin_setup.html", view.Data{
			Title: "Configuracion inicial",
		})
	}
}

// New возвращает обработчик POST /admin/setup.
func New(log *slog.Logger, service Service, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.setup.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Redirect(w, r, "/admin/setup", http.StatusSeeOther)
			return
		}

		form := auth.AdminForm{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}
		if err := validator.New().Struct(form); err != nil {
			log.Error("invalid admin form", sl.Err(err))
			if err := manager.Flash(r.Context(), w, sess, "Completa todos los campos correctamente"); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/admin/setup", http.StatusSeeOther)
			return
		}

		if _, err := service.CreateAdmin(r.Context(), form); err != nil {
			if errors.Is(err, models.ErrAdminExists) {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			log.Error("failed to create admin", sl.Err(err))
			if err := manager.Flash(r.Context(), w, sess, "No pudimos crear el administrador"); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/admin/setup", http.StatusSeeOther)
			return
		}

		log.Info("admin created", slog.String("email", form.Email))
		if err := manager.Flash(r.Context(), w, sess, "Administrador creado, inicia sesion"); err != nil {
			log.Error("failed to save session", sl.Err(err))
		}
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	}
}
