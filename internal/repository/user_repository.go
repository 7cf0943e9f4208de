package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adcamp/internal/models"
)

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, cellPhone string) (bool, error)
	CreateWithAuth(ctx context.Context, user *models.User, auth *models.UserAuthentication) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAuthByUserNo(ctx context.Context, userNo int64) (*models.UserAuthentication, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *userRepository) PhoneExists(ctx context.Context, cellPhone string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM user_authentications WHERE cell_phone = $1)", cellPhone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return exists, nil
}

// CreateWithAuth inserts the user row and its authentication row in one
// transaction, mirroring the campaign/detail atomic pair.
func (r *userRepository) CreateWithAuth(ctx context.Context, user *models.User, auth *models.UserAuthentication) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin user transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
        INSERT INTO users (email, login_type, role)
        VALUES ($1, $2, $3)
        RETURNING no, created_at
    `
	if err := tx.QueryRowContext(ctx, userQuery, user.Email, user.LoginType, user.Role).Scan(&user.No, &user.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	authQuery := `
        INSERT INTO user_authentications (
            user_no, password_hash, name, cell_phone, sex,
            tos_agree, personal_info_agree, age_limit_agree, mail_agree, notification_agree
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	auth.UserNo = user.No
	if err := tx.QueryRowContext(
		ctx,
		authQuery,
		auth.UserNo,
		auth.PasswordHash,
		auth.Name,
		auth.CellPhone,
		auth.Sex,
		auth.TosAgree,
		auth.PersonalInfoAgree,
		auth.AgeLimitAgree,
		auth.MailAgree,
		auth.NotificationAgree,
	).Scan(&auth.ID); err != nil {
		return fmt.Errorf("failed to insert user authentication: %w", err)
	}

	return tx.Commit()
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT no, email, login_type, role, created_at
        FROM users
        WHERE email = $1
    `

	var u models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.No, &u.Email, &u.LoginType, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetAuthByUserNo(ctx context.Context, userNo int64) (*models.UserAuthentication, error) {
	query := `
        SELECT id, user_no, password_hash, name, cell_phone, sex,
               tos_agree, personal_info_agree, age_limit_agree, mail_agree, notification_agree
        FROM user_authentications
        WHERE user_no = $1
    `

	var a models.UserAuthentication
	err := r.db.QueryRowContext(ctx, query, userNo).Scan(
		&a.ID,
		&a.UserNo,
		&a.PasswordHash,
		&a.Name,
		&a.CellPhone,
		&a.Sex,
		&a.TosAgree,
		&a.PersonalInfoAgree,
		&a.AgeLimitAgree,
		&a.MailAgree,
		&a.NotificationAgree,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
