package support

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// Service описывает прием обращения в поддержку.
type Service interface {
	Submit(ctx context.Context, userID int64, subject, message string) (int64, error)
}

// New возвращает обработчик POST /soporte.
func New(log *slog.Logger, service Service, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.support.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Redirect(w, r, "/perfil", http.StatusSeeOther)
			return
		}

		_, err := service.Submit(r.Context(), sess.Client.ID,
			r.PostFormValue("subject"), r.PostFormValue("message"))
		if err != nil {
			msg := "No pudimos registrar tu mensaje, intenta de nuevo"
			if errors.Is(err, models.ErrValidation) {
				msg = "Escribe un asunto y un mensaje"
			} else {
				log.Error("failed to submit ticket", sl.Err(err))
			}
			if err := manager.Flash(r.Context(), w, sess, msg); err != nil {
				log.Error("failed to save session", sl.Err(err))
			}
			http.Redirect(w, r, "/perfil", http.StatusSeeOther)
			return
		}

		log.Info("support ticket created", slog.Int64("user_id", sess.Client.ID))
		if err := manager.Flash(r.Context(), w, sess, "Recibimos tu mensaje, te contactaremos pronto"); err != nil {
			log.Error("failed to save session", sl.Err(err))
		}
		http.Redirect(w, r, "/perfil", http.StatusSeeOther)
	}
}
