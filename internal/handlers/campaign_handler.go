// internal/handlers/campaign_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"adcamp/internal/apperrors"
	"adcamp/internal/interfaces"
	"adcamp/internal/middleware"
	"adcamp/internal/models"
)

type CampaignHandler struct {
	svc       interfaces.CampaignCreator
	validator *validator.Validate
}

func NewCampaignHandler(svc interfaces.CampaignCreator) *CampaignHandler {
	return &CampaignHandler{
		svc:       svc,
		validator: validator.New(),
	}
}

// CreateVisitingCampaign handles POST /api/v1/campaigns/visiting
func (h *CampaignHandler) CreateVisitingCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserNo := middleware.AdvertiserNo(r.Context())
	if advertiserNo == 0 {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing advertiser identity")
		return
	}

	var req models.CreateVisitingCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.svc.CreateVisitingCampaign(r.Context(), advertiserNo, &req); err != nil {
		writeCampaignError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusCreated, "campaign created successfully")
}

// CreateWritingCampaign handles POST /api/v1/campaigns/writing
func (h *CampaignHandler) CreateWritingCampaign(w http.ResponseWriter, r *http.Request) {
	advertiserNo := middleware.AdvertiserNo(r.Context())
	if advertiserNo == 0 {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing advertiser identity")
		return
	}

	var req models.CreateWritingCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.svc.CreateWritingCampaign(r.Context(), advertiserNo, &req); err != nil {
		writeCampaignError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusCreated, "campaign created successfully")
}

// writeCampaignError maps orchestration error kinds onto HTTP statuses:
// client faults to 400, upload failures to 502, everything else to 500.
func writeCampaignError(w http.ResponseWriter, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidReference:
		writeJSONError(w, http.StatusBadRequest, "invalid_reference", err.Error())
	case apperrors.KindMalformedImage:
		writeJSONError(w, http.StatusBadRequest, "malformed_image", err.Error())
	case apperrors.KindUploadFailed:
		log.Printf("Upload failed during campaign creation: %v", err)
		writeJSONError(w, http.StatusBadGateway, "upload_failed", "Failed to upload image")
	default:
		log.Printf("Failed to create campaign: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "create_campaign_failed", "Failed to create campaign")
	}
}
