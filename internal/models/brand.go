package models

import "time"

type Brand struct {
	ID           int64     `json:"id"`
	AdvertiserNo int64     `json:"advertiser_no"`
	Name         string    `json:"name" validate:"required,min=1,max=255"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
