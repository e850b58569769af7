package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	UserCreatedSuccess      = "user created successfully, verification code sent to your email"
	UserVerifiedSuccess     = "account verified successfully"
	VerificationCodeResent  = "verification code sent to your email"
	UserUpdatedSuccess      = "user updated successfully"
	UserDeletedSuccess      = "user deleted successfully"
	LoginSuccess            = "successfully login"

	// Doctor-related messages
	DoctorCreatedSuccess = "doctor created successfully"
	DoctorUpdatedSuccess = "doctor updated successfully"
	DoctorDeletedSuccess = "doctor deleted successfully"

	// Appointment-related messages
	AppointmentCreatedSuccess = "appointment created successfully"
	AppointmentUpdatedSuccess = "appointment updated successfully"
	AppointmentDeletedSuccess = "appointment deleted successfully"

	// Prescription-related messages
	PrescriptionCreatedSuccess = "prescription created successfully"
	PrescriptionUpdatedSuccess = "prescription updated successfully"
	PrescriptionDeletedSuccess = "prescription deleted successfully"

	// Complaint-related messages
	ComplaintCreatedSuccess = "complaint created successfully"
	ComplaintUpdatedSuccess = "complaint updated successfully"
	ComplaintDeletedSuccess = "complaint deleted successfully"

	// Contact-related messages
	ContactCreatedSuccess = "message received, we will get back to you"

	// Payment-related messages
	PaymentInitiatedSuccess = "payment initiated, check your phone to complete the transaction"
	PaymentUpdatedSuccess   = "payment updated successfully"
	PaymentDeletedSuccess   = "payment deleted successfully"
	CallbackProcessed       = "Callback processed successfully"
)
