package models

import "time"

type User struct {
	ID                        int64      `json:"user_id"`
	FirstName                 string     `json:"first_name"`
	LastName                  string     `json:"last_name"`
	Email                     string     `json:"email"`
	Password                  string     `json:"-"`
	ContactPhone              string     `json:"contact_phone,omitempty"`
	Address                   string     `json:"address,omitempty"`
	Role                      string     `json:"role"`
	ImageURL                  string     `json:"image_url,omitempty"`
	IsVerified                bool       `json:"is_verified"`
	VerificationCode          string     `json:"-"`
	VerificationCodeExpiresAt *time.Time `json:"-"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}
