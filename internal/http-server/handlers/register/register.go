package register

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

// Service описывает регистрацию клиента.
type Service interface {
	RegisterClient(ctx context.Context, form auth.RegisterForm) (int64, error)
}

// NewForm возвращает обработчик GET /registro со страницей формы.
func NewForm(renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "register.html", view.Data{
			Title: "Registro",
		})
	}
}

// New возвращает обработчик POST /registro: валидирует форму,
// создает клиента и перенаправляет на вход.
func New(log *slog.Logger, service Service, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Redirect(w, r, "/registro", http.StatusSeeOther)
			return
		}

		form := auth.RegisterForm{
			FirstName: r.PostFormValue("first_name"),
			LastName:  r.PostFormValue("last_name"),
			Country:   r.PostFormValue("country"),
			Email:     r.PostFormValue("email"),
			Password:  r.PostFormValue("password"),
		}
		if err := validator.New().Struct(form); err != nil {
			log.Error("invalid registration form", sl.Err(err))
			if err := manager.Flash(r.Context(), w, sess, "Completa todos los campos correctamente"); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/registro", http.StatusSeeOther)
			return
		}

		_, err := service.RegisterClient(r.Context(), form)
		if err != nil {
			msg := "No pudimos crear tu cuenta, intenta de nuevo"
			if errors.Is(err, models.ErrDuplicateEmail) {
				msg = "Ese correo ya esta registrado"
			}
			log.Error("registration failed", sl.Err(err))
			if err := manager.Flash(r.Context(), w, sess, msg); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/registro", http.StatusSeeOther)
			return
		}

		log.Info("client registered", slog.String("email", form.Email))
		if err := manager.Flash(r.Context(), w, sess, "Cuenta creada, ya puedes iniciar sesion"); err != nil {
			log.Error("failed to save session", sl.Err(err))
		}
		http.Redirect(w, r, "/inicio", http.StatusSeeOther)
	}
}
