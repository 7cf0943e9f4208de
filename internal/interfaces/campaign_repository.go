// internal/interfaces/campaign_repository.go
package interfaces

import (
	"context"

	"adcamp/internal/models"
)

// CampaignRepository performs the multi-entity campaign write. Each
// Create* call inserts the campaign row and its kind-specific detail row
// in one transaction: both land or neither does.
type CampaignRepository interface {
	CreateVisiting(ctx context.Context, campaign *models.Campaign, info *models.CampaignVisitingInfo) error
	CreateWriting(ctx context.Context, campaign *models.Campaign, info *models.CampaignWritingInfo) error
}

// OptionRepository bulk-inserts normalized campaign option rows.
type OptionRepository interface {
	CreateMany(ctx context.Context, options []models.CampaignOption) error
}

// AssetRepository records the mapping from a campaign to its uploaded
// asset URLs. It owns the link rows, not the stored bytes.
type AssetRepository interface {
	LinkThumbnail(ctx context.Context, campaignID int64, fileURL string) error
	LinkImages(ctx context.Context, campaignID int64, fileURLs []string) error
}
