package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// New возвращает обработчик POST /salir: очищает клиентское
// подсостояние сессии. Администраторское подсостояние сохраняется.
func New(log *slog.Logger, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logout.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		sess.DetachClient()
		if !sess.HasAdmin() {
			if err := manager.Destroy(r.Context(), w, sess); err != nil {
				log.Error("failed to destroy session", sl.Err(err))
			}
		} else if err := manager.Save(r.Context(), w, sess); err != nil {
			log.Error("failed to save session", sl.Err(err))
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
