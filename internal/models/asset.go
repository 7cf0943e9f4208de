package models

// CampaignThumbnail links a campaign to its single thumbnail image URL.
type CampaignThumbnail struct {
	ID         int64  `json:"id"`
	CampaignID int64  `json:"campaign_id"`
	FileURL    string `json:"file_url"`
}

// CampaignImage links a campaign to one of its detail image URLs.
type CampaignImage struct {
	ID         int64  `json:"id"`
	CampaignID int64  `json:"campaign_id"`
	FileURL    string `json:"file_url"`
}
