package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// ActiveLister отдает все активные товары каталога.
type ActiveLister interface {
	ListActive(ctx context.Context) ([]models.Product, error)
}

// New возвращает обработчик страницы каталога.
func New(log *slog.Logger, catalog ActiveLister, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		products, err := catalog.ListActive(r.Context())
		if err != nil {
			log.Error("failed to load catalog", sl.Err(err))
			renderer.RenderError(w, r, http.StatusInternalServerError, "Algo salio mal")
			return
		}

		renderer.Render(w, r, http.StatusOK, "catalog.html", view.Data{
			Title:   "Catalogo",
			Content: products,
		})
	}
}
