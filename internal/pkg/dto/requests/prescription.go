package requests

type CreatePrescription struct {
	AppointmentID int64  `json:"appointment_id" validate:"required,gt=0"`
	DoctorID      int64  `json:"doctor_id" validate:"required,gt=0"`
	UserID        int64  `json:"user_id" validate:"required,gt=0"`
	Notes         string `json:"notes,omitempty"`
}

type UpdatePrescription struct {
	Notes *string `json:"notes,omitempty"`
}
