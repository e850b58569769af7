package requests

import "github.com/shopspring/decimal"

type CreateAppointment struct {
	UserID      int64           `json:"user_id" validate:"required,gt=0"`
	DoctorID    int64           `json:"doctor_id" validate:"required,gt=0"`
	Date        string          `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string          `json:"time_slot" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type UpdateAppointment struct {
	Date        *string          `json:"appointment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot    *string          `json:"time_slot,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Status      *string          `json:"appointment_status,omitempty" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}
