package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adcamp/internal/config"
	"adcamp/internal/models"
	"adcamp/internal/repository"
)

type AuthHandler struct {
	users repository.UserRepository
	cfg   *config.Config
	v     *validator.Validate
}

func NewAuthHandler(users repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users: users,
		cfg:   cfg,
		v:     validator.New(),
	}
}

// EmailJoin handles POST /api/v1/auth/join
func (h *AuthHandler) EmailJoin(w http.ResponseWriter, r *http.Request) {
	var req models.EmailJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	phoneExists, err := h.users.PhoneExists(r.Context(), req.CellPhone)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "join_failed", "Failed to create user")
		return
	}
	if phoneExists {
		writeJSONError(w, http.StatusConflict, "phone_exists", "Phone number is already registered")
		return
	}

	emailExists, err := h.users.EmailExists(r.Context(), req.Email)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "join_failed", "Failed to create user")
		return
	}
	if emailExists {
		writeJSONError(w, http.StatusConflict, "email_exists", "Email is already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "join_failed", "Failed to create user")
		return
	}

	user := &models.User{Email: req.Email}
	auth := &models.UserAuthentication{
		PasswordHash:      string(hash),
		Name:              req.Name,
		CellPhone:         req.CellPhone,
		Sex:               req.Sex,
		TosAgree:          req.TosAgree,
		PersonalInfoAgree: req.PersonalInfoAgree,
		AgeLimitAgree:     req.AgeLimitAgree,
		MailAgree:         req.MailAgree,
		NotificationAgree: req.NotificationAgree,
	}

	if err := h.users.CreateWithAuth(r.Context(), user, auth); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "join_failed", "Failed to create user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"user_no": user.No, "email": user.Email, "created_at": user.CreatedAt})
}

// EmailLogin handles POST /api/v1/auth/login
func (h *AuthHandler) EmailLogin(w http.ResponseWriter, r *http.Request) {
	var req models.EmailLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusUnauthorized, "user_not_found", "No user is registered with this email")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "login_failed", "Failed to login")
		return
	}

	auth, err := h.users.GetAuthByUserNo(r.Context(), user.No)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "login_failed", "Failed to login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(req.Password)); err != nil {
		writeJSONError(w, http.StatusUnauthorized, "password_mismatch", "Password does not match")
		return
	}

	expiresIn := h.cfg.JWTExpiresInSeconds
	if expiresIn <= 0 {
		expiresIn = 86400
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.No, 10),
		"email": user.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(expiresIn) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "login_failed", "Failed to login")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   expiresIn,
		UserNo:      user.No,
		Email:       user.Email,
		Name:        auth.Name,
	})
}

// EmailCheck handles GET /api/v1/auth/email-check?email=...
func (h *AuthHandler) EmailCheck(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "email is required")
		return
	}

	exists, err := h.users.EmailExists(r.Context(), email)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "email_check_failed", "Failed to check email")
		return
	}
	if exists {
		writeJSONError(w, http.StatusConflict, "email_exists", "Email is already registered")
		return
	}

	writeJSONMessage(w, http.StatusOK, "email is available")
}

// PhoneCheck handles GET /api/v1/auth/phone-check?cell_phone=...
func (h *AuthHandler) PhoneCheck(w http.ResponseWriter, r *http.Request) {
	cellPhone := r.URL.Query().Get("cell_phone")
	if cellPhone == "" {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "cell_phone is required")
		return
	}

	exists, err := h.users.PhoneExists(r.Context(), cellPhone)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "phone_check_failed", "Failed to check phone")
		return
	}
	if exists {
		writeJSONError(w, http.StatusConflict, "phone_exists", "Phone number is already registered")
		return
	}

	writeJSONMessage(w, http.StatusOK, "phone number is available")
}
