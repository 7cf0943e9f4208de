package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"adcamp/internal/apperrors"
	"adcamp/internal/models"
)

func testCampaign() *models.Campaign {
	now := time.Now().UTC()
	return &models.Campaign{
		BrandID:               11,
		AdvertiserNo:          42,
		ChannelConditionID:    3,
		Kind:                  models.CampaignKindVisiting,
		Title:                 "new cafe opening",
		RecruitmentHeadCount:  10,
		RecruitmentStartsDate: now,
		RecruitmentEndsDate:   now.AddDate(0, 0, 7),
		SelectionEndsDate:     now.AddDate(0, 0, 10),
		SubmitStartsDate:      now.AddDate(0, 0, 11),
		SubmitEndsDate:        now.AddDate(0, 0, 21),
		Hashtag:               []string{"cafe"},
	}
}

func TestCreateVisitingCommitsCampaignAndDetail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	createdAt := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), createdAt))
	mock.ExpectQuery("INSERT INTO campaign_visiting_infos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(200)))
	mock.ExpectCommit()

	campaign := testCampaign()
	info := &models.CampaignVisitingInfo{
		VisitingAddr:     "12 Main St",
		VisitingEndsDate: time.Now().UTC(),
	}

	repo := NewCampaignRepository(db)
	if err := repo.CreateVisiting(context.Background(), campaign, info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if campaign.ID != 100 {
		t.Fatalf("expected campaign id 100, got %d", campaign.ID)
	}
	if info.CampaignID != 100 {
		t.Fatalf("expected detail to carry campaign id 100, got %d", info.CampaignID)
	}
	if info.ID != 200 {
		t.Fatalf("expected detail id 200, got %d", info.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A detail insert failure must roll back the campaign row too.
func TestCreateVisitingRollsBackOnDetailFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), time.Now().UTC()))
	mock.ExpectQuery("INSERT INTO campaign_visiting_infos").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	repo := NewCampaignRepository(db)
	err = repo.CreateVisiting(context.Background(), testCampaign(), &models.CampaignVisitingInfo{VisitingAddr: "12 Main St"})
	if !apperrors.IsKind(err, apperrors.KindPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateWritingCommitsCampaignAndDetail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO campaigns").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(101), time.Now().UTC()))
	mock.ExpectQuery("INSERT INTO campaign_writing_infos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(201)))
	mock.ExpectCommit()

	campaign := testCampaign()
	campaign.Kind = models.CampaignKindWriting
	info := &models.CampaignWritingInfo{
		ProductURL:      "https://shop.example.com/item/1",
		WritingEndsDate: time.Now().UTC(),
	}

	repo := NewCampaignRepository(db)
	if err := repo.CreateWriting(context.Background(), campaign, info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.CampaignID != 101 {
		t.Fatalf("expected detail to carry campaign id 101, got %d", info.CampaignID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVisitingBeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	repo := NewCampaignRepository(db)
	err = repo.CreateVisiting(context.Background(), testCampaign(), &models.CampaignVisitingInfo{})
	if !apperrors.IsKind(err, apperrors.KindPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}
