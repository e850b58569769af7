package queries

const (
	doctorColumns = `doctor_id, first_name, last_name, specialization, contact_phone, available_days, created_at, updated_at`

	GetAllDoctors = `
		SELECT ` + doctorColumns + `
		FROM doctors
		ORDER BY doctor_id
	`

	GetDoctorByID = `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE doctor_id = $1
	`

	InsertDoctor = `
		INSERT INTO doctors (first_name, last_name, specialization, contact_phone, available_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + doctorColumns + `
	`

	UpdateDoctor = `
		UPDATE doctors
		SET first_name = $1, last_name = $2, specialization = $3, contact_phone = $4, available_days = $5, updated_at = NOW()
		WHERE doctor_id = $6
		RETURNING ` + doctorColumns + `
	`

	DeleteDoctor = `
		DELETE FROM doctors
		WHERE doctor_id = $1
	`
)
