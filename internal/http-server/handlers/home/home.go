package home

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// FeaturedLister отдает товары для витрины главной страницы.
type FeaturedLister interface {
	Featured(ctx context.Context) ([]models.Product, error)
}

// New возвращает обработчик главной страницы с логотипами товаров.
func New(log *slog.Logger, catalog FeaturedLister, renderer *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.home.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		products, err := catalog.Featured(r.Context())
		if err != nil {
			log.Error("failed to load featured products", sl.Err(err))
			renderer.RenderError(w, r, http.StatusInternalServerError, "Algo salio mal")
			return
		}

		renderer.Render(w, r, http.StatusOK, "home.html", view.Data{
			Title:   "Inicio",
			Content: products,
		})
	}
}
