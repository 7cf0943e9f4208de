package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"adcamp/internal/apperrors"
	"adcamp/internal/interfaces"
	"adcamp/internal/models"
)

type optionRepository struct {
	db *sql.DB
}

func NewOptionRepository(db *sql.DB) interfaces.OptionRepository {
	return &optionRepository{db: db}
}

// CreateMany bulk-inserts all option rows in a single statement. An empty
// slice is a no-op.
func (r *optionRepository) CreateMany(ctx context.Context, options []models.CampaignOption) error {
	if len(options) == 0 {
		return nil
	}

	var placeholders []string
	var args []interface{}
	argPos := 1

	for _, opt := range options {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d)", argPos, argPos+1, argPos+2))
		args = append(args, opt.CampaignID, opt.Name, opt.Value)
		argPos += 3
	}

	query := "INSERT INTO campaign_options (campaign_id, name, value) VALUES " + strings.Join(placeholders, ", ")

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, "failed to insert campaign options", err)
	}
	return nil
}
