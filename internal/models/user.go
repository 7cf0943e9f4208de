package models

import "time"

type User struct {
	No        int64     `json:"no"`
	Email     string    `json:"email" validate:"required,email"`
	LoginType int       `json:"login_type"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserAuthentication holds the credential and consent row paired
// one-to-one with a user.
type UserAuthentication struct {
	ID                int64  `json:"id"`
	UserNo            int64  `json:"user_no"`
	PasswordHash      string `json:"-"`
	Name              string `json:"name"`
	CellPhone         string `json:"cell_phone"`
	Sex               string `json:"sex"`
	TosAgree          bool   `json:"tos_agree"`
	PersonalInfoAgree bool   `json:"personal_info_agree"`
	AgeLimitAgree     bool   `json:"age_limit_agree"`
	MailAgree         bool   `json:"mail_agree"`
	NotificationAgree bool   `json:"notification_agree"`
}

type EmailJoinRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	Name              string `json:"name" validate:"required"`
	CellPhone         string `json:"cell_phone" validate:"required"`
	Sex               string `json:"sex" validate:"omitempty,oneof=M F"`
	TosAgree          bool   `json:"tos_agree" validate:"required"`
	PersonalInfoAgree bool   `json:"personal_info_agree" validate:"required"`
	AgeLimitAgree     bool   `json:"age_limit_agree" validate:"required"`
	MailAgree         bool   `json:"mail_agree"`
	NotificationAgree bool   `json:"notification_agree"`
}

type EmailLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserNo      int64  `json:"user_no"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
}
