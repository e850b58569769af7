package queries

const (
	paymentColumns = `payment_id, appointment_id, amount, payment_status, transaction_id, payment_date, created_at, updated_at`

	GetAllPayments = `
		SELECT ` + paymentColumns + `
		FROM payments
		ORDER BY payment_id
	`

	GetPaymentByID = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_id = $1
	`

	GetPaymentByAppointmentID = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE appointment_id = $1
	`

	// The unique index on appointment_id makes a second insert for the same
	// appointment fail with a unique violation.
	InsertPayment = `
		INSERT INTO payments (appointment_id, amount, payment_status, payment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + paymentColumns + `
	`

	UpdatePayment = `
		UPDATE payments
		SET amount = $1, payment_status = $2, transaction_id = $3, payment_date = $4, updated_at = NOW()
		WHERE payment_id = $5
		RETURNING ` + paymentColumns + `
	`

	DeletePayment = `
		DELETE FROM payments
		WHERE payment_id = $1
	`

	// Terminal transitions apply only while the payment is still Pending so
	// a replayed callback cannot re-apply them.
	ConfirmPendingPayment = `
		UPDATE payments
		SET payment_status = 'Paid', transaction_id = $2, updated_at = NOW()
		WHERE payment_id = $1 AND payment_status = 'Pending'
		RETURNING appointment_id
	`

	FailPendingPayment = `
		UPDATE payments
		SET payment_status = 'Failed', updated_at = NOW()
		WHERE payment_id = $1 AND payment_status = 'Pending'
		RETURNING appointment_id
	`

	ConfirmAppointment = `
		UPDATE appointments
		SET appointment_status = 'Confirmed', updated_at = NOW()
		WHERE appointment_id = $1
	`

	PaymentExists = `
		SELECT EXISTS (SELECT 1 FROM payments WHERE payment_id = $1)
	`
)
