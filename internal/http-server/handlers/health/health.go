package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-shop/internal/http-server/response"
)

// New возвращает обработчик GET /health.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OKWithData(map[string]any{
			"status": "ok",
		}))
	}
}
