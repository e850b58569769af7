package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
	// PaymentStatusUnknown covers any free-text value written through the
	// administrative update endpoint.
	PaymentStatusUnknown PaymentStatus = "Unknown"
)

// ParsePaymentStatus maps the stored free-text status column onto the enum.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return PaymentStatus(raw)
	default:
		return PaymentStatusUnknown
	}
}

// PaymentTransition reports the outcome of a conditional terminal-status
// update. A transition applies only when the payment is still Pending, so a
// replayed gateway callback is detected instead of silently re-applied.
type PaymentTransition int

const (
	TransitionApplied PaymentTransition = iota
	TransitionAlreadyProcessed
	TransitionNotFound
)

type Payment struct {
	ID            int64           `json:"payment_id"`
	AppointmentID int64           `json:"appointment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"payment_status"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	PaymentDate   time.Time       `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Payment) StatusEnum() PaymentStatus {
	return ParsePaymentStatus(p.Status)
}
