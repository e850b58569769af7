package models

import "time"

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "Open"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
	ComplaintStatusClosed     ComplaintStatus = "Closed"
)

type Complaint struct {
	ID                   int64           `json:"complaint_id"`
	UserID               int64           `json:"user_id"`
	RelatedAppointmentID *int64          `json:"related_appointment_id,omitempty"`
	Subject              string          `json:"subject"`
	Description          string          `json:"description,omitempty"`
	Status               ComplaintStatus `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
