package router

import (
	"net/http"

	"dealerdrive-api/internal/handler"
	"dealerdrive-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler           *handler.Handler
	CarHandler        *handler.CarHandler
	EnquiryHandler    *handler.EnquiryHandler
	AuthHandler       *handler.AuthHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware func(http.Handler) http.Handler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Session-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/status", cfg.Handler.Status)
		}

		// Inventory and enquiries are deliberately unauthenticated: the
		// public site reads cars and submits enquiries with no session.
		if cfg.CarHandler != nil {
			r.Route("/cars", func(r chi.Router) {
				r.Get("/", cfg.CarHandler.List)
				r.Post("/", cfg.CarHandler.Create)
				r.Put("/{id}", cfg.CarHandler.Update)
				r.Delete("/{id}", cfg.CarHandler.Delete)
			})
		}

		if cfg.EnquiryHandler != nil {
			r.Route("/enquiries", func(r chi.Router) {
				r.Get("/", cfg.EnquiryHandler.List)
				r.Post("/", cfg.EnquiryHandler.Create)
				r.Delete("/{id}", cfg.EnquiryHandler.Delete)
			})
		}

		if cfg.AuthHandler != nil {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", cfg.AuthHandler.Login)
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Get("/session", cfg.AuthHandler.Session)
			})
		}

		// Admin surface requires a live session.
		if cfg.AdminHandler != nil {
			r.Group(func(r chi.Router) {
				if cfg.SessionMiddleware != nil {
					r.Use(cfg.SessionMiddleware)
				}
				r.Get("/admin/stats", cfg.AdminHandler.GetStats)
			})
		}
	})

	return r
}
