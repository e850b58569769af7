package requests

type RegisterUser struct {
	FirstName    string `json:"first_name" validate:"required,max=50"`
	LastName     string `json:"last_name" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email,max=100"`
	Password     string `json:"password" validate:"required,password"`
	ContactPhone string `json:"contact_phone,omitempty" validate:"omitempty,phone_number"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=255"`
	Role         string `json:"role,omitempty" validate:"omitempty,role"`
}

type VerifyUser struct {
	Email            string `json:"email" validate:"required,email"`
	VerificationCode string `json:"verification_code" validate:"required,len=6"`
}

type ResendVerification struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUser carries optional fields; nil pointers are skipped by the
// repository so a partial update touches only what the caller sent.
type UpdateUser struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,phone_number"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Role         *string `json:"role,omitempty" validate:"omitempty,role"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,max=255"`
}
