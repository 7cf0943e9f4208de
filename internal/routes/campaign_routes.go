// internal/routes/campaign_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"adcamp/internal/handlers"
	"adcamp/internal/queue"
	"adcamp/internal/repository"
	"adcamp/internal/services"
)

func RegisterCampaignRoutes(router chi.Router, db *sql.DB, store services.ImageStore, events queue.Publisher) {
	svc := services.NewCampaignService(
		repository.NewReferenceRepository(db),
		repository.NewCampaignRepository(db),
		repository.NewOptionRepository(db),
		repository.NewAssetRepository(db),
		store,
		events,
	)
	campaignHandler := handlers.NewCampaignHandler(svc)

	router.Route("/campaigns", func(r chi.Router) {
		r.Post("/visiting", campaignHandler.CreateVisitingCampaign)
		r.Post("/writing", campaignHandler.CreateWritingCampaign)
	})
}
