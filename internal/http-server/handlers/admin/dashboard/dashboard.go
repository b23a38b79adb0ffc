package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	dashboardservice "github.com/magabrotheeeer/subscription-shop/internal/services/dashboard"
)

// Service описывает подсчет агрегатов панели.
type Service interface {
	Collect(ctx context.Context) (*dashboardservice.Stats, error)
}

// New возвращает обработчик GET /admin/dashboard.
func New(log *slog.Logger, service Service, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.dashboard.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		stats, err := service.Collect(r.Context())
		if err != nil {
			log.Error("failed to collect stats", sl.Err(err))
			renderer.RenderError(w, r, http.StatusInternalServerError, "Algo salio mal")
			return
		}

		renderer.Render(w, r, http.StatusOK, "admin_dashboard.html", view.Data{
			Title:   "Panel de control",
			Content: stats,
		})
	}
}
