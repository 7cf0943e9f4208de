package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"adcamp/internal/handlers"
	"adcamp/internal/repository"
)

func RegisterBrandRoutes(router chi.Router, db *sql.DB) {
	brandHandler := handlers.NewBrandHandler(repository.NewBrandRepository(db))

	router.Route("/brands", func(r chi.Router) {
		r.Get("/", brandHandler.ListBrands)
		r.Post("/", brandHandler.CreateBrand)
	})
}
