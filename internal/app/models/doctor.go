package models

import "time"

type Doctor struct {
	ID             int64     `json:"doctor_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	ContactPhone   string    `json:"contact_phone,omitempty"`
	AvailableDays  string    `json:"available_days,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
