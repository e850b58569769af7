package queries

const (
	prescriptionColumns = `prescription_id, appointment_id, doctor_id, user_id, notes, created_at, updated_at`

	GetAllPrescriptions = `
		SELECT ` + prescriptionColumns + `
		FROM prescriptions
		ORDER BY prescription_id
	`

	GetPrescriptionByID = `
		SELECT ` + prescriptionColumns + `
		FROM prescriptions
		WHERE prescription_id = $1
	`

	GetPrescriptionsByAppointmentID = `
		SELECT ` + prescriptionColumns + `
		FROM prescriptions
		WHERE appointment_id = $1
		ORDER BY prescription_id
	`

	GetPrescriptionsByUserID = `
		SELECT ` + prescriptionColumns + `
		FROM prescriptions
		WHERE user_id = $1
		ORDER BY prescription_id
	`

	GetPrescriptionsByDoctorID = `
		SELECT ` + prescriptionColumns + `
		FROM prescriptions
		WHERE doctor_id = $1
		ORDER BY prescription_id
	`

	InsertPrescription = `
		INSERT INTO prescriptions (appointment_id, doctor_id, user_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + prescriptionColumns + `
	`

	UpdatePrescription = `
		UPDATE prescriptions
		SET notes = $1, updated_at = NOW()
		WHERE prescription_id = $2
		RETURNING ` + prescriptionColumns + `
	`

	DeletePrescription = `
		DELETE FROM prescriptions
		WHERE prescription_id = $1
	`
)
