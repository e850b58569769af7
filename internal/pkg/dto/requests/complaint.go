package requests

type CreateComplaint struct {
	UserID               int64  `json:"user_id" validate:"required,gt=0"`
	RelatedAppointmentID *int64 `json:"related_appointment_id,omitempty" validate:"omitempty,gt=0"`
	Subject              string `json:"subject" validate:"required,max=255"`
	Description          string `json:"description,omitempty"`
}

type UpdateComplaint struct {
	Subject     *string `json:"subject,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=Open 'In Progress' Resolved Closed"`
}
