package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"adcamp/internal/apperrors"
	"adcamp/internal/interfaces"
	"adcamp/internal/models"
)

type campaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) interfaces.CampaignRepository {
	return &campaignRepository{db: db}
}

const insertCampaignQuery = `
        INSERT INTO campaigns (
            brand_id, advertiser_no, channel_condition_id, kind, title,
            recruitment_head_count, recruitment_starts_date, recruitment_ends_date,
            selection_ends_date, submit_starts_date, submit_ends_date, hashtag
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at
    `

func (r *campaignRepository) CreateVisiting(ctx context.Context, campaign *models.Campaign, info *models.CampaignVisitingInfo) error {
	return r.createWithDetail(ctx, campaign, func(tx *sql.Tx) error {
		query := `
            INSERT INTO campaign_visiting_infos (
                campaign_id, visiting_addr, visiting_time, note, visiting_ends_date, service_price
            ) VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING id
        `
		info.CampaignID = campaign.ID
		return tx.QueryRowContext(
			ctx,
			query,
			info.CampaignID,
			info.VisitingAddr,
			info.VisitingTime,
			info.Note,
			info.VisitingEndsDate,
			info.ServicePrice,
		).Scan(&info.ID)
	})
}

func (r *campaignRepository) CreateWriting(ctx context.Context, campaign *models.Campaign, info *models.CampaignWritingInfo) error {
	return r.createWithDetail(ctx, campaign, func(tx *sql.Tx) error {
		query := `
            INSERT INTO campaign_writing_infos (
                campaign_id, product_url, note, writing_ends_date, product_price
            ) VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `
		info.CampaignID = campaign.ID
		return tx.QueryRowContext(
			ctx,
			query,
			info.CampaignID,
			info.ProductURL,
			info.Note,
			info.WritingEndsDate,
			info.ProductPrice,
		).Scan(&info.ID)
	})
}

// createWithDetail inserts the campaign row and its detail row in one
// transaction. No campaign row may exist without its detail row.
func (r *campaignRepository) createWithDetail(ctx context.Context, campaign *models.Campaign, insertDetail func(tx *sql.Tx) error) error {
	hashtag := campaign.Hashtag
	if hashtag == nil {
		hashtag = []string{}
	}
	hashtagJSON, err := json.Marshal(hashtag)
	if err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to serialize hashtag list", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to begin campaign transaction", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(
		ctx,
		insertCampaignQuery,
		campaign.BrandID,
		campaign.AdvertiserNo,
		campaign.ChannelConditionID,
		campaign.Kind,
		campaign.Title,
		campaign.RecruitmentHeadCount,
		campaign.RecruitmentStartsDate,
		campaign.RecruitmentEndsDate,
		campaign.SelectionEndsDate,
		campaign.SubmitStartsDate,
		campaign.SubmitEndsDate,
		string(hashtagJSON),
	).Scan(&campaign.ID, &campaign.CreatedAt)
	if err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to insert campaign", err)
	}

	if err := insertDetail(tx); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to insert campaign detail", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to commit campaign transaction", err)
	}
	return nil
}
