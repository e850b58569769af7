package requests

type CreateDoctor struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	ContactPhone   string `json:"contact_phone,omitempty" validate:"omitempty,phone_number"`
	AvailableDays  string `json:"available_days,omitempty" validate:"omitempty,max=100"`
}

type UpdateDoctor struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=100"`
	ContactPhone   *string `json:"contact_phone,omitempty" validate:"omitempty,phone_number"`
	AvailableDays  *string `json:"available_days,omitempty" validate:"omitempty,max=100"`
}
