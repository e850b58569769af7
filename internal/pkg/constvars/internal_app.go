package constvars

const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleDoctor = "doctor"
)

const (
	ResourceUser         = "user"
	ResourceDoctor       = "doctor"
	ResourceAppointment  = "appointment"
	ResourcePrescription = "prescription"
	ResourceComplaint    = "complaint"
	ResourceContact      = "contact"
	ResourcePayment      = "payment"
)

const (
	// Subject lines used by the mailer worker.
	EmailVerificationSubject = "AfyaCare - Verify Your Account"
	EmailVerificationBody    = "Hello %s,\r\n\r\nYour verification code is: %s\r\nThe code expires in %d minutes.\r\n"

	EmailSendBasicFormat = "To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s"
)

// Postgres error code raised when a unique constraint is violated. The
// payments table relies on it to reject a second payment per appointment.
const PostgresUniqueViolationCode = "23505"
