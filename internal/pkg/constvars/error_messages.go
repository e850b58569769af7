package constvars

// Client messages are safe to show to API consumers. Dev messages carry the
// detail that goes into logs and non-production error envelopes.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientAccountNotVerified            = "account not verified, please check your email"
	ErrClientVerificationCodeInvalid       = "verification code is invalid or expired"
	ErrClientInvalidPhoneNumber            = "phone number is not a valid Safaricom number"
	ErrClientPaymentAlreadyExists          = "a payment already exists for this appointment"
	ErrClientPaymentNotFound               = "payment not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientPaymentGatewayUnavailable     = "payment service is temporarily unavailable, please try again"
)

const (
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed     = "request validation failed"
	ErrDevURLParamIDValidation = "URL param %s is not a valid identifier"
	ErrDevMissingRequestID     = "request ID missing from request context"

	ErrDevDBFailedToFindData      = "failed to find data in postgres"
	ErrDevDBFailedToInsertData    = "failed to insert data into postgres"
	ErrDevDBFailedToUpdateData    = "failed to update data in postgres"
	ErrDevDBFailedToDeleteData    = "failed to delete data from postgres"
	ErrDevDBFailedToIterateData   = "failed to iterate postgres dataset"
	ErrDevDBUniqueViolation       = "unique constraint violated on insert"
	ErrDevDBFailedToBeginTx       = "failed to begin postgres transaction"
	ErrDevDBFailedToCommitTx      = "failed to commit postgres transaction"
	ErrDevDBNoFieldsToUpdate      = "no valid fields to update"
	ErrDevResourceNotFound        = "%s with the given identifier does not exist"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevFailedToGenerateCode    = "failed to generate verification code"
	ErrDevInvalidCredentials      = "invalid credentials"
	ErrDevAccountNotVerified      = "account email is not verified yet"
	ErrDevVerificationCodeInvalid = "verification code does not match or already expired"

	ErrDevAuthTokenMissing          = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate authorization token"
	ErrDevAuthRoleNotAllowed        = "token role is not allowed for this endpoint"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevSMTPSendEmail     = "failed to send email via SMTP client hostname %s"
	ErrDevQueuePublish      = "failed to publish message to queue %s"

	ErrDevMpesaAuthFailed      = "failed to obtain access token from daraja OAuth endpoint"
	ErrDevMpesaAuthBadStatus   = "daraja OAuth endpoint returned status %d"
	ErrDevMpesaPushFailed      = "failed to send STK push request to daraja"
	ErrDevMpesaPushBadStatus   = "daraja STK push endpoint returned status %d"
	ErrDevMpesaInvalidPhone    = "phone number cannot be normalized to 2547XXXXXXXX/2541XXXXXXXX"
	ErrDevMpesaCallbackBadID   = "callback paymentID query parameter is missing or not numeric"
	ErrDevMpesaPaymentNotFound = "callback references a payment that does not exist"
)
