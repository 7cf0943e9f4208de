package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"adcamp/internal/models"
)

func TestCreateWithAuthCommitsBothRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"no", "created_at"}).AddRow(int64(5), time.Now().UTC()))
	mock.ExpectQuery("INSERT INTO user_authentications").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(50)))
	mock.ExpectCommit()

	user := &models.User{Email: "adv@example.com"}
	auth := &models.UserAuthentication{PasswordHash: "x", Name: "Adv", CellPhone: "01012345678"}

	repo := NewUserRepository(db)
	if err := repo.CreateWithAuth(context.Background(), user, auth); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.No != 5 {
		t.Fatalf("expected user no 5, got %d", user.No)
	}
	if auth.UserNo != 5 {
		t.Fatalf("expected auth row to carry user no 5, got %d", auth.UserNo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// No user row may remain when the authentication insert fails.
func TestCreateWithAuthRollsBackOnAuthFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"no", "created_at"}).AddRow(int64(5), time.Now().UTC()))
	mock.ExpectQuery("INSERT INTO user_authentications").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	err = repo.CreateWithAuth(context.Background(), &models.User{Email: "adv@example.com"}, &models.UserAuthentication{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmailExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewUserRepository(db)
	exists, err := repo.EmailExists(context.Background(), "taken@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}
}
