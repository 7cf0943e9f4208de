package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"adcamp/internal/apperrors"
	"adcamp/internal/interfaces"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) interfaces.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) LinkThumbnail(ctx context.Context, campaignID int64, fileURL string) error {
	query := `
        INSERT INTO campaign_thumbnails (campaign_id, file_url)
        VALUES ($1, $2)
    `

	if _, err := r.db.ExecContext(ctx, query, campaignID, fileURL); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to link campaign thumbnail", err)
	}
	return nil
}

// LinkImages bulk-inserts one row per detail image URL. An empty slice is
// a no-op.
func (r *assetRepository) LinkImages(ctx context.Context, campaignID int64, fileURLs []string) error {
	if len(fileURLs) == 0 {
		return nil
	}

	var placeholders []string
	var args []interface{}
	argPos := 1

	for _, fileURL := range fileURLs {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d)", argPos, argPos+1))
		args = append(args, campaignID, fileURL)
		argPos += 2
	}

	query := "INSERT INTO campaign_images (campaign_id, file_url) VALUES " + strings.Join(placeholders, ", ")

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to link campaign images", err)
	}
	return nil
}
