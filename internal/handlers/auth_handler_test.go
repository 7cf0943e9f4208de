package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"adcamp/internal/config"
	"adcamp/internal/models"
	"adcamp/internal/repository"
)

type mockUserRepo struct {
	emailTaken bool
	phoneTaken bool
	user       *models.User
	auth       *models.UserAuthentication
	created    bool
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailTaken, nil
}

func (m *mockUserRepo) PhoneExists(ctx context.Context, cellPhone string) (bool, error) {
	return m.phoneTaken, nil
}

func (m *mockUserRepo) CreateWithAuth(ctx context.Context, user *models.User, auth *models.UserAuthentication) error {
	user.No = 5
	auth.UserNo = 5
	m.created = true
	return nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.user == nil || m.user.Email != email {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m *mockUserRepo) GetAuthByUserNo(ctx context.Context, userNo int64) (*models.UserAuthentication, error) {
	if m.auth == nil {
		return nil, sql.ErrNoRows
	}
	return m.auth, nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiresInSeconds: 3600}
}

func joinBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(models.EmailJoinRequest{
		Email:             "adv@example.com",
		Password:          "hunter2hunter2",
		Name:              "Adv",
		CellPhone:         "01012345678",
		TosAgree:          true,
		PersonalInfoAgree: true,
		AgeLimitAgree:     true,
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return body
}

func postJSON(h http.HandlerFunc, path string, body []byte) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post(path, h)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmailJoinCreatesUser(t *testing.T) {
	repo := &mockUserRepo{}
	h := NewAuthHandler(repo, testConfig())

	w := postJSON(h.EmailJoin, "/auth/join", joinBody(t))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	if !repo.created {
		t.Fatal("expected user to be created")
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_no"] != float64(5) {
		t.Fatalf("expected user_no 5, got %v", resp["user_no"])
	}
}

func TestEmailJoinDuplicatePhone(t *testing.T) {
	repo := &mockUserRepo{phoneTaken: true}
	h := NewAuthHandler(repo, testConfig())

	w := postJSON(h.EmailJoin, "/auth/join", joinBody(t))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
	if repo.created {
		t.Fatal("user must not be created for a duplicate phone")
	}
}

func TestEmailJoinDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{emailTaken: true}
	h := NewAuthHandler(repo, testConfig())

	w := postJSON(h.EmailJoin, "/auth/join", joinBody(t))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestEmailLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	repo := &mockUserRepo{
		user: &models.User{No: 5, Email: "adv@example.com"},
		auth: &models.UserAuthentication{UserNo: 5, PasswordHash: string(hash), Name: "Adv"},
	}
	h := NewAuthHandler(repo, testConfig())

	body, _ := json.Marshal(models.EmailLoginRequest{Email: "adv@example.com", Password: "hunter2hunter2"})
	w := postJSON(h.EmailLogin, "/auth/login", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		t.Fatalf("expected a verifiable token: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "5" {
		t.Fatalf("expected sub \"5\", got %v", claims["sub"])
	}
}

func TestEmailLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	repo := &mockUserRepo{
		user: &models.User{No: 5, Email: "adv@example.com"},
		auth: &models.UserAuthentication{UserNo: 5, PasswordHash: string(hash)},
	}
	h := NewAuthHandler(repo, testConfig())

	body, _ := json.Marshal(models.EmailLoginRequest{Email: "adv@example.com", Password: "wrong-password"})
	w := postJSON(h.EmailLogin, "/auth/login", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestEmailLoginUnknownUser(t *testing.T) {
	h := NewAuthHandler(&mockUserRepo{}, testConfig())

	body, _ := json.Marshal(models.EmailLoginRequest{Email: "nobody@example.com", Password: "whatever"})
	w := postJSON(h.EmailLogin, "/auth/login", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestEmailCheckAvailable(t *testing.T) {
	h := NewAuthHandler(&mockUserRepo{}, testConfig())
	r := chi.NewRouter()
	r.Get("/auth/email-check", h.EmailCheck)

	req := httptest.NewRequest(http.MethodGet, "/auth/email-check?email=new@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPhoneCheckTaken(t *testing.T) {
	h := NewAuthHandler(&mockUserRepo{phoneTaken: true}, testConfig())
	r := chi.NewRouter()
	r.Get("/auth/phone-check", h.PhoneCheck)

	req := httptest.NewRequest(http.MethodGet, "/auth/phone-check?cell_phone=01012345678", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d (%s)", w.Code, w.Body.String())
	}
}
