package constvars

// Daraja (Safaricom M-Pesa) gateway constants. The STK push request and the
// callback envelope use the gateway's exact field values.
const (
	MpesaSandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	MpesaProductionBaseURL = "https://api.safaricom.co.ke"

	MpesaOAuthPath   = "/oauth/v1/generate?grant_type=client_credentials"
	MpesaSTKPushPath = "/mpesa/stkpush/v1/processrequest"

	MpesaTransactionType    = "CustomerPayBillOnline"
	MpesaAccountReference   = "AppointmentBooking"
	MpesaTransactionDesc    = "Appointment Payment"
	MpesaTimestampFormat    = "20060102150405"
	MpesaReceiptMetadataKey = "MpesaReceiptNumber"

	// ResultCode 0 is the only success signal; everything else (1032 user
	// cancel, 1037 timeout, ...) is a failed attempt.
	MpesaResultCodeSuccess = 0

	MpesaEnvSandbox = "sandbox"

	// Daraja tokens expire after 3600s; cache slightly shorter so a cached
	// token is never presented right at its expiry edge.
	MpesaTokenCacheKey       = "mpesa:access_token"
	MpesaTokenCacheTTLSecond = 3300
)
