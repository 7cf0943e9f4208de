// internal/models/campaign.go
package models

import (
	"encoding/json"
	"time"
)

type CampaignKind string

const (
	CampaignKindVisiting CampaignKind = "VISITING"
	CampaignKindWriting  CampaignKind = "WRITING"
)

type Campaign struct {
	ID                    int64        `json:"id"`
	BrandID               int64        `json:"brand_id"`
	AdvertiserNo          int64        `json:"advertiser_no"`
	ChannelConditionID    int64        `json:"channel_condition_id"`
	Kind                  CampaignKind `json:"kind"`
	Title                 string       `json:"title"`
	RecruitmentHeadCount  int          `json:"recruitment_head_count"`
	RecruitmentStartsDate time.Time    `json:"recruitment_starts_date"`
	RecruitmentEndsDate   time.Time    `json:"recruitment_ends_date"`
	SelectionEndsDate     time.Time    `json:"selection_ends_date"`
	SubmitStartsDate      time.Time    `json:"submit_starts_date"`
	SubmitEndsDate        time.Time    `json:"submit_ends_date"`
	Hashtag               []string     `json:"hashtag"`
	CreatedAt             time.Time    `json:"created_at"`
}

// CampaignVisitingInfo is the one-to-one detail row of a VISITING campaign.
type CampaignVisitingInfo struct {
	ID               int64     `json:"id"`
	CampaignID       int64     `json:"campaign_id"`
	VisitingAddr     string    `json:"visiting_addr"`
	VisitingTime     string    `json:"visiting_time"`
	Note             string    `json:"note"`
	VisitingEndsDate time.Time `json:"visiting_ends_date"`
	ServicePrice     int64     `json:"service_price"`
}

// CampaignWritingInfo is the one-to-one detail row of a WRITING campaign.
type CampaignWritingInfo struct {
	ID              int64     `json:"id"`
	CampaignID      int64     `json:"campaign_id"`
	ProductURL      string    `json:"product_url"`
	Note            string    `json:"note"`
	WritingEndsDate time.Time `json:"writing_ends_date"`
	ProductPrice    int64     `json:"product_price"`
}

// CampaignOption is an option row in its storable form: the value is
// already serialized to canonical JSON text.
type CampaignOption struct {
	ID         int64  `json:"id"`
	CampaignID int64  `json:"campaign_id"`
	Name       string `json:"name"`
	Value      string `json:"value"`
}

// CampaignOptionInput carries one option as submitted by the advertiser.
// Value is arbitrary structured JSON and stays opaque until normalization.
type CampaignOptionInput struct {
	Name  string          `json:"name" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

type CreateVisitingCampaignRequest struct {
	BrandID               int64                 `json:"brand_id" validate:"required"`
	Channel               int                   `json:"channel" validate:"required"`
	RecruitmentCondition  int                   `json:"recruitment_condition" validate:"required"`
	Title                 string                `json:"title" validate:"required"`
	RecruitmentHeadCount  int                   `json:"recruitment_head_count" validate:"required,gt=0"`
	RecruitmentStartsDate time.Time             `json:"recruitment_starts_date" validate:"required"`
	RecruitmentEndsDate   time.Time             `json:"recruitment_ends_date" validate:"required"`
	SelectionEndsDate     time.Time             `json:"selection_ends_date" validate:"required"`
	SubmitStartsDate      time.Time             `json:"submit_starts_date" validate:"required"`
	SubmitEndsDate        time.Time             `json:"submit_ends_date" validate:"required"`
	Hashtag               []string              `json:"hashtag"`
	Options               []CampaignOptionInput `json:"options" validate:"omitempty,dive"`
	Thumbnail             string                `json:"thumbnail" validate:"required"`
	Images                []string              `json:"images"`
	VisitingAddr          string                `json:"visiting_addr" validate:"required"`
	VisitingTime          string                `json:"visiting_time"`
	Note                  string                `json:"note"`
	VisitingEndsDate      time.Time             `json:"visiting_ends_date" validate:"required"`
	ServicePrice          int64                 `json:"service_price"`
}

type CreateWritingCampaignRequest struct {
	BrandID               int64                 `json:"brand_id" validate:"required"`
	Channel               int                   `json:"channel" validate:"required"`
	RecruitmentCondition  int                   `json:"recruitment_condition" validate:"required"`
	Title                 string                `json:"title" validate:"required"`
	RecruitmentHeadCount  int                   `json:"recruitment_head_count" validate:"required,gt=0"`
	RecruitmentStartsDate time.Time             `json:"recruitment_starts_date" validate:"required"`
	RecruitmentEndsDate   time.Time             `json:"recruitment_ends_date" validate:"required"`
	SelectionEndsDate     time.Time             `json:"selection_ends_date" validate:"required"`
	SubmitStartsDate      time.Time             `json:"submit_starts_date" validate:"required"`
	SubmitEndsDate        time.Time             `json:"submit_ends_date" validate:"required"`
	Hashtag               []string              `json:"hashtag"`
	Options               []CampaignOptionInput `json:"options" validate:"omitempty,dive"`
	Thumbnail             string                `json:"thumbnail" validate:"required"`
	Images                []string              `json:"images"`
	ProductURL            string                `json:"product_url" validate:"required,url"`
	Note                  string                `json:"note"`
	WritingEndsDate       time.Time             `json:"writing_ends_date" validate:"required"`
	ProductPrice          int64                 `json:"product_price"`
}
