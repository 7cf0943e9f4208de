package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"adcamp/internal/config"
	"adcamp/internal/handlers"
	"adcamp/internal/repository"
)

func RegisterAuthRoutes(router chi.Router, db *sql.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(repository.NewUserRepository(db), cfg)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/join", authHandler.EmailJoin)
		r.Post("/login", authHandler.EmailLogin)
		r.Get("/email-check", authHandler.EmailCheck)
		r.Get("/phone-check", authHandler.PhoneCheck)
	})
}
