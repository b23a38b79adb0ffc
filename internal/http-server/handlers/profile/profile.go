package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// OrderLister отдает историю заказов клиента.
type OrderLister interface {
	Orders(ctx context.Context, userID int64) ([]models.OrderSummary, error)
}

// New возвращает обработчик GET /perfil. Данные профиля берутся из
// снимка в сессии, история заказов читается из хранилища.
func New(log *slog.Logger, account OrderLister, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		sess := session.From(r.Context())

		orders, err := account.Orders(r.Context(), sess.Client.ID)
		if err != nil {
			log.Error("failed to load orders", sl.Err(err))
			renderer.RenderError(w, r, http.StatusInternalServerError, "Algo salio mal")
			return
		}

		renderer.Render(w, r, http.StatusOK, "profile.html", view.Data{
			Title:   "Mi perfil",
			Content: orders,
		})
	}
}
