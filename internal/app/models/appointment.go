package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

type Appointment struct {
	ID          int64             `json:"appointment_id"`
	UserID      int64             `json:"user_id"`
	DoctorID    int64             `json:"doctor_id"`
	Date        time.Time         `json:"appointment_date"`
	TimeSlot    string            `json:"time_slot"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Status      AppointmentStatus `json:"appointment_status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// AppointmentWithDoctor and AppointmentWithPayment back the join endpoints
// on the user resource.
type AppointmentWithDoctor struct {
	Appointment
	Doctor Doctor `json:"doctor"`
}

type AppointmentWithPayment struct {
	Appointment
	Payment *Payment `json:"payment,omitempty"`
}
