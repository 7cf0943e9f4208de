package repository

import (
	"context"
	"database/sql"
	"errors"

	"adcamp/internal/apperrors"
	"adcamp/internal/interfaces"
)

type referenceRepository struct {
	db *sql.DB
}

func NewReferenceRepository(db *sql.DB) interfaces.ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ResolveChannelCondition(ctx context.Context, channel int, recruitmentCondition int) (int64, error) {
	query := `
		SELECT id
		FROM campaign_channel_conditions
		WHERE channel = $1 AND recruitment_condition = $2
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, channel, recruitmentCondition).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.New(apperrors.KindInvalidReference, "channel and recruitment condition are not valid")
		}
		return 0, apperrors.Wrap(apperrors.KindPersistence, "failed to resolve channel condition", err)
	}
	return id, nil
}

func (r *referenceRepository) VerifyBrandOwnership(ctx context.Context, brandID int64, advertiserNo int64) error {
	query := `
		SELECT id
		FROM brands
		WHERE id = $1 AND advertiser_no = $2
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, brandID, advertiserNo).Scan(&id)
	if err != nil {
		// A brand owned by another advertiser reads the same as no brand.
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.New(apperrors.KindInvalidReference, "brand does not exist")
		}
		return apperrors.Wrap(apperrors.KindPersistence, "failed to verify brand ownership", err)
	}
	return nil
}
