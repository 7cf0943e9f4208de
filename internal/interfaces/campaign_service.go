// internal/interfaces/campaign_service.go
package interfaces

import (
	"context"

	"adcamp/internal/models"
)

// CampaignCreator is the orchestration surface the HTTP layer calls.
type CampaignCreator interface {
	CreateVisitingCampaign(ctx context.Context, advertiserNo int64, req *models.CreateVisitingCampaignRequest) error
	CreateWritingCampaign(ctx context.Context, advertiserNo int64, req *models.CreateWritingCampaignRequest) error
}
