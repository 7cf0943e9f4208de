// internal/services/campaign_service.go
package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strconv"
	"sync"

	"adcamp/internal/apperrors"
	"adcamp/internal/interfaces"
	"adcamp/internal/models"
	"adcamp/internal/queue"
)

const (
	assetNameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	assetNameLength   = 10

	// Cap on simultaneous detail-image uploads per request.
	maxConcurrentUploads = 4
)

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// CampaignService orchestrates campaign creation: resolve references,
// commit the campaign graph, persist options, then upload and link the
// thumbnail and detail images. There is no rollback once the campaign
// transaction has committed; a later failure aborts the request and
// leaves the committed rows in place.
type CampaignService struct {
	refs      interfaces.ReferenceRepository
	campaigns interfaces.CampaignRepository
	options   interfaces.OptionRepository
	assets    interfaces.AssetRepository
	store     ImageStore
	events    queue.Publisher
}

func NewCampaignService(
	refs interfaces.ReferenceRepository,
	campaigns interfaces.CampaignRepository,
	options interfaces.OptionRepository,
	assets interfaces.AssetRepository,
	store ImageStore,
	events queue.Publisher,
) *CampaignService {
	return &CampaignService{
		refs:      refs,
		campaigns: campaigns,
		options:   options,
		assets:    assets,
		store:     store,
		events:    events,
	}
}

var _ interfaces.CampaignCreator = (*CampaignService)(nil)

func (s *CampaignService) CreateVisitingCampaign(ctx context.Context, advertiserNo int64, req *models.CreateVisitingCampaignRequest) error {
	channelConditionID, err := s.refs.ResolveChannelCondition(ctx, req.Channel, req.RecruitmentCondition)
	if err != nil {
		return err
	}
	if err := s.refs.VerifyBrandOwnership(ctx, req.BrandID, advertiserNo); err != nil {
		return err
	}

	campaign := &models.Campaign{
		BrandID:               req.BrandID,
		AdvertiserNo:          advertiserNo,
		ChannelConditionID:    channelConditionID,
		Kind:                  models.CampaignKindVisiting,
		Title:                 req.Title,
		RecruitmentHeadCount:  req.RecruitmentHeadCount,
		RecruitmentStartsDate: req.RecruitmentStartsDate,
		RecruitmentEndsDate:   req.RecruitmentEndsDate,
		SelectionEndsDate:     req.SelectionEndsDate,
		SubmitStartsDate:      req.SubmitStartsDate,
		SubmitEndsDate:        req.SubmitEndsDate,
		Hashtag:               req.Hashtag,
	}
	info := &models.CampaignVisitingInfo{
		VisitingAddr:     req.VisitingAddr,
		VisitingTime:     req.VisitingTime,
		Note:             req.Note,
		VisitingEndsDate: req.VisitingEndsDate,
		ServicePrice:     req.ServicePrice,
	}

	if err := s.campaigns.CreateVisiting(ctx, campaign, info); err != nil {
		return err
	}

	return s.attachOptionsAndAssets(ctx, campaign, req.Options, req.Thumbnail, req.Images)
}

func (s *CampaignService) CreateWritingCampaign(ctx context.Context, advertiserNo int64, req *models.CreateWritingCampaignRequest) error {
	channelConditionID, err := s.refs.ResolveChannelCondition(ctx, req.Channel, req.RecruitmentCondition)
	if err != nil {
		return err
	}
	if err := s.refs.VerifyBrandOwnership(ctx, req.BrandID, advertiserNo); err != nil {
		return err
	}

	campaign := &models.Campaign{
		BrandID:               req.BrandID,
		AdvertiserNo:          advertiserNo,
		ChannelConditionID:    channelConditionID,
		Kind:                  models.CampaignKindWriting,
		Title:                 req.Title,
		RecruitmentHeadCount:  req.RecruitmentHeadCount,
		RecruitmentStartsDate: req.RecruitmentStartsDate,
		RecruitmentEndsDate:   req.RecruitmentEndsDate,
		SelectionEndsDate:     req.SelectionEndsDate,
		SubmitStartsDate:      req.SubmitStartsDate,
		SubmitEndsDate:        req.SubmitEndsDate,
		Hashtag:               req.Hashtag,
	}
	info := &models.CampaignWritingInfo{
		ProductURL:      req.ProductURL,
		Note:            req.Note,
		WritingEndsDate: req.WritingEndsDate,
		ProductPrice:    req.ProductPrice,
	}

	if err := s.campaigns.CreateWriting(ctx, campaign, info); err != nil {
		return err
	}

	return s.attachOptionsAndAssets(ctx, campaign, req.Options, req.Thumbnail, req.Images)
}

// attachOptionsAndAssets runs the post-commit stages shared by both
// campaign kinds: options, thumbnail, detail images, created event.
func (s *CampaignService) attachOptionsAndAssets(ctx context.Context, campaign *models.Campaign, options []models.CampaignOptionInput, thumbnail string, images []string) error {
	if len(options) > 0 {
		rows, err := normalizeOptions(options, campaign.ID)
		if err != nil {
			return err
		}
		if err := s.options.CreateMany(ctx, rows); err != nil {
			return err
		}
	}

	if err := s.uploadThumbnail(ctx, campaign, thumbnail); err != nil {
		return err
	}

	if err := s.uploadDetailImages(ctx, campaign, images); err != nil {
		return err
	}

	if s.events != nil {
		event := queue.CampaignCreatedEvent{
			CampaignID:   campaign.ID,
			Kind:         string(campaign.Kind),
			AdvertiserNo: campaign.AdvertiserNo,
		}
		if err := s.events.PublishCampaignCreated(event); err != nil {
			log.Printf("Failed to publish campaign created event for campaign %d: %v", campaign.ID, err)
		}
	}

	return nil
}

func (s *CampaignService) uploadThumbnail(ctx context.Context, campaign *models.Campaign, thumbnail string) error {
	data, err := decodeImage(thumbnail)
	if err != nil {
		return err
	}

	name := newAssetName(campaign.AdvertiserNo)
	if err := s.store.Put(ctx, name+".jpeg", data, "image/jpeg"); err != nil {
		return err
	}

	return s.assets.LinkThumbnail(ctx, campaign.ID, s.store.PublicURL(name))
}

// uploadDetailImages decodes every payload up front, uploads the blobs
// with bounded concurrency, and links the URLs in one bulk insert only
// after every upload has succeeded. Any upload failure aborts the whole
// batch: no detail-image row is ever written for a blob that may not be
// in the store.
func (s *CampaignService) uploadDetailImages(ctx context.Context, campaign *models.Campaign, images []string) error {
	if len(images) == 0 {
		return nil
	}

	names := make([]string, len(images))
	blobs := make([][]byte, len(images))
	for i, payload := range images {
		data, err := decodeImage(payload)
		if err != nil {
			return err
		}
		blobs[i] = data
		names[i] = newAssetName(campaign.AdvertiserNo)
	}

	sem := make(chan struct{}, maxConcurrentUploads)
	uploadErrs := make([]error, len(images))
	var wg sync.WaitGroup

	for i := range blobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			uploadErrs[i] = s.store.Put(ctx, names[i]+".jpeg", blobs[i], "image/jpeg")
		}(i)
	}
	wg.Wait()

	for _, err := range uploadErrs {
		if err != nil {
			return err
		}
	}

	urls := make([]string, len(names))
	for i, name := range names {
		urls[i] = s.store.PublicURL(name)
	}
	return s.assets.LinkImages(ctx, campaign.ID, urls)
}

// normalizeOptions serializes each option value to canonical JSON text
// and tags it with the campaign id.
func normalizeOptions(options []models.CampaignOptionInput, campaignID int64) ([]models.CampaignOption, error) {
	rows := make([]models.CampaignOption, 0, len(options))
	for _, opt := range options {
		value, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize option %q: %w", opt.Name, err)
		}
		rows = append(rows, models.CampaignOption{
			CampaignID: campaignID,
			Name:       opt.Name,
			Value:      string(value),
		})
	}
	return rows, nil
}

// decodeImage strips a data-URL image prefix, if present, and
// base64-decodes the remainder. The decoded bytes are not validated as a
// real image.
func decodeImage(payload string) ([]byte, error) {
	raw := dataURLPrefix.ReplaceAllString(payload, "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindMalformedImage, "image payload is not valid base64", err)
	}
	return data, nil
}

// newAssetName produces an opaque asset name: the advertiser number
// followed by a random token. Collisions are possible but improbable
// (36^10 token space); must be called fresh per asset.
func newAssetName(advertiserNo int64) string {
	token := make([]byte, assetNameLength)
	for i := range token {
		token[i] = assetNameAlphabet[rand.Intn(len(assetNameAlphabet))]
	}
	return strconv.FormatInt(advertiserNo, 10) + string(token)
}
