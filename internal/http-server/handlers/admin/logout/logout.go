package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// New возвращает обработчик POST /admin/logout: очищает
// администраторское подсостояние сессии.
func New(log *slog.Logger, manager *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.logout.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		sess.DetachAdmin()
		if !sess.HasClient() {
			if err := manager.Destroy(r.Context(), w, sess); err != nil {
				log.Error("failed to destroy session", sl.Err(err))
			}
		} else if err := manager.Save(r.Context(), w, sess); err != nil {
			log.Error("failed to save session", sl.Err(err))
		}

		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	}
}
