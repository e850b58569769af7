package contracts

import (
	"context"
	"time"

	"afyacare-service/internal/pkg/dto/responses"
)

// MpesaService talks to the daraja gateway: OAuth token, request signature
// and the STK push itself.
type MpesaService interface {
	FetchAccessToken(ctx context.Context) (string, error)
	// GenerateCredentials derives the request password and its timestamp
	// from the merchant shortcode, the passkey and now truncated to whole
	// seconds.
	GenerateCredentials(now time.Time) (password, timestamp string)
	// InitiateSTKPush sends the debit request. callbackURL must already
	// carry the payment correlation key.
	InitiateSTKPush(ctx context.Context, amount, phoneNumber, callbackURL string) (*responses.STKPushResponse, error)
	// CallbackURL builds the callback address embedding the payment
	// identifier as the paymentID query parameter.
	CallbackURL(paymentID int64) string
}
