package requests

import "github.com/shopspring/decimal"

// InitiatePayment starts the STK push flow for an appointment.
type InitiatePayment struct {
	AppointmentID int64           `json:"appointment_id" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PhoneNumber   string          `json:"phone_number" validate:"required"`
}

// UpdatePayment is the administrative update path: any field may be set,
// including a free-text status. It is intentionally not guarded by the
// Pending-only transition rule that the callback path enforces.
type UpdatePayment struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Status        *string          `json:"payment_status,omitempty"`
	TransactionID *string          `json:"transaction_id,omitempty"`
	PaymentDate   *string          `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
