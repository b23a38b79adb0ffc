package subscriptionshop

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/subscription-shop/internal/config"
	admindashboard "github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/admin/dashboard"
	adminlogin "github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/admin/login"
	adminlogout "github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/admin/logout"
	adminsetup "github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/admin/setup"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/catalog"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/health"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/home"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/login"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/logout"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/profile"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/register"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/handlers/support"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/mware"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	accountservice "github.com/magabrotheeeer/subscription-shop/internal/services/account"
	authservice "github.com/magabrotheeeer/subscription-shop/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/subscription-shop/internal/services/catalog"
	dashboardservice "github.com/magabrotheeeer/subscription-shop/internal/services/dashboard"
	supportservice "github.com/magabrotheeeer/subscription-shop/internal/services/support"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// RegisterRoutes регистрирует все маршруты магазина и общие middleware.
func RegisterRoutes(r *chi.Mux, log *slog.Logger, cfg *config.Config,
	renderer *view.Renderer, manager *session.Manager,
	authSvc *authservice.Service, catalogSvc *catalogservice.Service,
	accountSvc *accountservice.Service, supportSvc *supportservice.Service,
	dashboardSvc *dashboardservice.Service) {

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mware.SecurityHeaders)
	r.Use(mware.Session(manager))

	loginLimit := mware.LoginRateLimit(log, cfg.RateLimit)

	r.Get("/", home.New(log, catalogSvc, renderer))
	r.Get("/catalogo", catalog.New(log, catalogSvc, renderer))

	r.Route("/registro", func(r chi.Router) {
		r.Use(mware.AnonymousOnly("/perfil"))
		r.Get("/", register.NewForm(renderer))
		r.With(loginLimit).Post("/", register.New(log, authSvc, manager))
	})
	r.Route("/inicio", func(r chi.Router) {
		r.Use(mware.AnonymousOnly("/perfil"))
		r.Get("/", login.NewForm(renderer))
		r.With(loginLimit).Post("/", login.New(log, authSvc, manager))
	})

	r.Group(func(r chi.Router) {
		r.Use(mware.RequireClient)
		r.Post("/salir", logout.New(log, manager))
		r.Get("/perfil", profile.New(log, accountSvc, renderer))
		r.Post("/soporte", support.New(log, supportSvc, manager))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/setup", adminsetup.NewForm(log, authSvc, renderer))
		r.With(loginLimit).Post("/setup", adminsetup.New(log, authSvc, manager))
		r.Get("/login", adminlogin.NewForm(log, authSvc, renderer))
		r.With(loginLimit).Post("/login", adminlogin.New(log, authSvc, manager))

		r.Group(func(r chi.Router) {
			r.Use(mware.RequireAdmin)
			r.Post("/logout", adminlogout.New(log, manager))
			r.Get("/dashboard", admindashboard.New(log, dashboardSvc, renderer))
		})
	})

	r.Handle("/css/*", view.Static())
	r.Get("/health", health.New())
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(renderer.NotFound())
}
