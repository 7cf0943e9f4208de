package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"adcamp/internal/middleware"
	"adcamp/internal/models"
	"adcamp/internal/repository"
)

type BrandHandler struct {
	repo      repository.BrandRepository
	validator *validator.Validate
}

func NewBrandHandler(repo repository.BrandRepository) *BrandHandler {
	return &BrandHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// CreateBrand handles POST /api/v1/brands
func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	advertiserNo := middleware.AdvertiserNo(r.Context())
	if advertiserNo == 0 {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing advertiser identity")
		return
	}

	var req models.CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	brand := &models.Brand{
		AdvertiserNo: advertiserNo,
		Name:         req.Name,
	}
	if err := h.repo.Create(r.Context(), brand); err != nil {
		log.Printf("Failed to create brand: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "create_brand_failed", "Failed to create brand")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(brand)
}

// ListBrands handles GET /api/v1/brands
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	advertiserNo := middleware.AdvertiserNo(r.Context())
	if advertiserNo == 0 {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing advertiser identity")
		return
	}

	brands, err := h.repo.ListByAdvertiser(r.Context(), advertiserNo)
	if err != nil {
		log.Printf("Failed to list brands: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "list_brands_failed", "Failed to list brands")
		return
	}

	if brands == nil {
		brands = []*models.Brand{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(brands)
}
