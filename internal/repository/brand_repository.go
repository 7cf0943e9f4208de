package repository

import (
	"context"
	"database/sql"

	"adcamp/internal/models"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	ListByAdvertiser(ctx context.Context, advertiserNo int64) ([]*models.Brand, error)
}

type brandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	query := `
        INSERT INTO brands (advertiser_no, name)
        VALUES ($1, $2)
        RETURNING id, created_at
    `

	return r.db.QueryRowContext(ctx, query, brand.AdvertiserNo, brand.Name).Scan(&brand.ID, &brand.CreatedAt)
}

func (r *brandRepository) ListByAdvertiser(ctx context.Context, advertiserNo int64) ([]*models.Brand, error) {
	query := `
        SELECT id, advertiser_no, name, created_at
        FROM brands
        WHERE advertiser_no = $1
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query, advertiserNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.AdvertiserNo, &b.Name, &b.CreatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}
