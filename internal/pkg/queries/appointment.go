package queries

const (
	appointmentColumns = `appointment_id, user_id, doctor_id, appointment_date, time_slot, total_amount, appointment_status, created_at, updated_at`

	GetAllAppointments = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		ORDER BY appointment_id
	`

	GetAppointmentByID = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE appointment_id = $1
	`

	GetAppointmentsByUserID = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE user_id = $1
		ORDER BY appointment_date
	`

	GetAppointmentsByDoctorID = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY appointment_date
	`

	GetAppointmentsWithDoctorByUserID = `
		SELECT a.appointment_id, a.user_id, a.doctor_id, a.appointment_date, a.time_slot, a.total_amount, a.appointment_status, a.created_at, a.updated_at,
			d.doctor_id, d.first_name, d.last_name, d.specialization, d.contact_phone, d.available_days, d.created_at, d.updated_at
		FROM appointments a
		JOIN doctors d ON d.doctor_id = a.doctor_id
		WHERE a.user_id = $1
		ORDER BY a.appointment_date
	`

	GetAppointmentsWithPaymentByUserID = `
		SELECT a.appointment_id, a.user_id, a.doctor_id, a.appointment_date, a.time_slot, a.total_amount, a.appointment_status, a.created_at, a.updated_at,
			p.payment_id, p.appointment_id, p.amount, p.payment_status, p.transaction_id, p.payment_date, p.created_at, p.updated_at
		FROM appointments a
		LEFT JOIN payments p ON p.appointment_id = a.appointment_id
		WHERE a.user_id = $1
		ORDER BY a.appointment_date
	`

	InsertAppointment = `
		INSERT INTO appointments (user_id, doctor_id, appointment_date, time_slot, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + appointmentColumns + `
	`

	UpdateAppointment = `
		UPDATE appointments
		SET appointment_date = $1, time_slot = $2, total_amount = $3, appointment_status = $4, updated_at = NOW()
		WHERE appointment_id = $5
		RETURNING ` + appointmentColumns + `
	`

	DeleteAppointment = `
		DELETE FROM appointments
		WHERE appointment_id = $1
	`
)
