// internal/routes/routes.go
package routes

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adcamp/internal/config"
	appmiddleware "adcamp/internal/middleware"
	"adcamp/internal/queue"
	"adcamp/internal/services"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, store services.ImageStore, events queue.Publisher) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, db, cfg)

		// Everything below requires an authenticated advertiser.
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.JWTAuth(cfg.JWTSecret))
			RegisterBrandRoutes(r, db)
			RegisterCampaignRoutes(r, db, store, events)
		})
	})

	return r
}
