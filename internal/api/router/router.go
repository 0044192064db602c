package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/historicolocaticio/landing/internal/http/handlers"
	httpmiddleware "github.com/historicolocaticio/landing/internal/http/middleware"
	"github.com/historicolocaticio/landing/internal/leads"
	"github.com/historicolocaticio/landing/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	PageHandler    *handlers.PageHandler
	LeadsHandler   *leads.Handler
	HealthHandler  *handlers.HealthHandler
	StaticHandler  http.Handler
	MetricsHandler http.Handler

	SessionCookie      httpmiddleware.SessionCookie
	CORSAllowedOrigins []string
	// RateLimiter throttles state-changing requests. Nil disables limiting.
	RateLimiter *httpmiddleware.RateLimiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Public endpoints (health checks, assets, metrics)
	r.Group(func(public chi.Router) {
		if cfg.HealthHandler != nil {
			public.Get("/health", cfg.HealthHandler.HealthCheck)
		}
		if cfg.StaticHandler != nil {
			public.Handle("/static/*", cfg.StaticHandler)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Visitor routes carry a page session cookie.
	r.Group(func(visitor chi.Router) {
		visitor.Use(httpmiddleware.Session(cfg.SessionCookie))
		if cfg.Logger != nil {
			visitor.Use(httpmiddleware.RequestLogger(cfg.Logger))
		}

		if h := cfg.PageHandler; h != nil {
			visitor.Get("/", h.Index)
			visitor.With(httpmiddleware.CORS(cfg.CORSAllowedOrigins)).Get("/api/session", h.Session)

			visitor.Group(func(mutating chi.Router) {
				if cfg.RateLimiter != nil {
					mutating.Use(httpmiddleware.RateLimit(cfg.RateLimiter))
				}
				mutating.Route("/demo", func(demo chi.Router) {
					demo.Post("/open", h.OpenModal)
					demo.Post("/dismiss", h.DismissModal)
					demo.Post("/field", h.UpdateField)
					demo.Post("/submit", h.Submit)
				})
				mutating.Post("/faq/{index}/toggle", h.ToggleFAQ)
				mutating.Route("/menu", func(menu chi.Router) {
					menu.Post("/toggle", h.ToggleMenu)
					menu.Post("/navigate", h.Navigate)
				})
			})
		}

		if cfg.LeadsHandler != nil {
			visitor.Route("/api/lead-requests", func(api chi.Router) {
				api.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
				if cfg.RateLimiter != nil {
					api.Use(httpmiddleware.RateLimit(cfg.RateLimiter))
				}
				api.Options("/", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
				api.Post("/", cfg.LeadsHandler.CreateLeadRequest)
			})
		}
	})

	return r
}
